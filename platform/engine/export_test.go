package engine

import (
	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/cards"
)

func (e *Engine) Place(i, pos int) {
	e.players[i].Position = pos
}

func (e *Engine) SetMoney(i, amount int) {
	e.players[i].Money = amount
}

func (e *Engine) Give(i int, squares ...int) {
	for _, id := range squares {
		e.ledger.Acquire(id, i)
		e.players[i].Properties = append(e.players[i].Properties, id)
	}
}

func (e *Engine) Jail(i, served int) {
	e.sendToJail(i)
	e.players[i].JailTurns = served
	e.flush()
}

func (e *Engine) MarkBankrupt(i int) {
	e.players[i].Bankrupt = true
}

// StartTurn hands a fresh turn to seat i.
func (e *Engine) StartTurn(i int) {
	e.current = i
	e.turn = models.TurnState{}
	e.phase = models.PhaseAwaitRoll
	if e.players[i].InJail {
		e.phase = models.PhaseAwaitJailChoice
	}
}

// StackDeck moves the given cards to the front of a deck, in order.
func (e *Engine) StackDeck(kind models.DeckKind, ids ...int) {
	deck := e.chance
	if kind == models.DeckChest {
		deck = e.chest
	}
	order := append([]int{}, ids...)
	for _, id := range deck.Order() {
		stacked := false
		for _, top := range ids {
			stacked = stacked || top == id
		}
		if !stacked {
			order = append(order, id)
		}
	}
	restored, err := cards.RestoreDeck(kind, e.printed[kind], order)
	if err != nil {
		panic(err)
	}
	if kind == models.DeckChest {
		e.chest = restored
	} else {
		e.chance = restored
	}
}
