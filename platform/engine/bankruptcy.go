package engine

import (
	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/sirupsen/logrus"
)

// checkBankruptcy runs after every debit. Negative cash alone is recoverable
// as long as the holdings cover it.
func (e *Engine) checkBankruptcy(i int) {
	p := e.players[i]
	if p.Bankrupt || p.Money >= 0 {
		return
	}
	if e.ledger.AssetValue(i, p.Money) >= 0 {
		return
	}
	e.bankrupt(i)
}

func (e *Engine) bankrupt(i int) {
	p := &e.players[i]
	for _, id := range e.ledger.OwnedBy(i) {
		e.ledger.Release(id)
	}
	p.Properties = []int{}
	p.Bankrupt = true
	p.InJail = false
	p.JailTurns = 0

	ev := e.event(models.EventPlayerBankrupt, i, -1)
	ev.Amount = p.Money
	ev.Message = e.printer.Sprintf("%s is bankrupt!", p.Name)
	e.emit(ev)
	e.log.WithFields(logrus.Fields{"player": i, "money": p.Money}).Info("player bankrupt")

	if e.activeCount() == 1 {
		for seat, other := range e.players {
			if !other.Bankrupt {
				e.declareWinner(seat, e.printer.Sprintf("%s wins the game!", other.Name))
				return
			}
		}
	}
	if i == e.current {
		e.turn = models.TurnState{}
		e.pendingPurchase = nil
		e.pendingRent = nil
		e.pendingCard = nil
		e.phase = models.PhaseTurnOver
	}
}

// DeclareBankruptcy lets the current player concede.
func (e *Engine) DeclareBankruptcy() ([]models.Event, error) {
	if e.phase == models.PhaseGameOver {
		return nil, ErrGameOver
	}
	if e.phase == models.PhaseAwaitAuction {
		return nil, wrongPhase(e.phase, models.PhaseTurnOver)
	}
	if e.players[e.current].Bankrupt {
		return nil, ErrBankrupt
	}
	e.bankrupt(e.current)
	return e.flush(), nil
}

// endByLimit finishes the game on a turn or time limit. The richest active
// player wins and the earlier seat takes a tie.
func (e *Engine) endByLimit(reason string) {
	best, bestWorth := -1, 0
	for i, p := range e.players {
		if p.Bankrupt {
			continue
		}
		if w := e.NetWorth(i); best < 0 || w > bestWorth {
			best, bestWorth = i, w
		}
	}
	e.log.WithFields(logrus.Fields{"reason": reason, "winner": best, "worth": bestWorth}).Info("game ended by limit")
	e.declareWinner(best, e.printer.Sprintf("%s: %s wins with a net worth of %s", reason, e.players[best].Name, e.money(bestWorth)))
}

func (e *Engine) declareWinner(i int, msg string) {
	e.winner = i
	e.phase = models.PhaseGameOver
	e.turn = models.TurnState{}
	e.pendingPurchase = nil
	e.pendingRent = nil
	e.pendingCard = nil
	e.auction = nil
	ev := e.event(models.EventGameWon, i, -1)
	ev.Amount = e.NetWorth(i)
	ev.Message = msg
	e.emit(ev)
}
