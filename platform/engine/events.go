package engine

import (
	"github.com/DedS3t/disney-monopoly/app/models"
)

func (e *Engine) event(kind models.EventKind, player, square int) models.Event {
	return models.Event{Kind: kind, Player: player, Other: -1, Square: square}
}

func (e *Engine) emit(ev models.Event) {
	e.seq++
	ev.Seq = e.seq
	ev.At = e.now().UTC()
	e.out = append(e.out, ev)
	e.history = append(e.history, ev)
	if len(e.history) > HistoryLimit {
		e.history = append([]models.Event{}, e.history[len(e.history)-HistoryLimit:]...)
	}
}

// flush hands over the events of the command that just ran.
func (e *Engine) flush() []models.Event {
	out := e.out
	e.out = nil
	return out
}

func (e *Engine) money(amount int) string {
	return e.printer.Sprintf("%d€", amount)
}

func (e *Engine) name(i int) string {
	return e.players[i].Name
}

func (e *Engine) credit(i, amount int) {
	e.players[i].Money += amount
	e.stats[i].MoneyEarned += amount
}

func (e *Engine) debit(i, amount int) {
	e.players[i].Money -= amount
	e.stats[i].MoneySpent += amount
}

// transfer moves money between two seats. The bank is never involved.
func (e *Engine) transfer(from, to, amount int) {
	e.debit(from, amount)
	e.credit(to, amount)
}
