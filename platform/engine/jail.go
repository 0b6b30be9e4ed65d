package engine

import (
	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/board"
	"github.com/DedS3t/disney-monopoly/platform/ledger"
)

type JailOption string

const (
	JailPayFine JailOption = "pay"
	JailUseCard JailOption = "card"
	JailRoll    JailOption = "roll"
)

// ResolveJailChoice handles the jailed player's choice at the start of their turn.
func (e *Engine) ResolveJailChoice(opt JailOption) ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitJailChoice); err != nil {
		return nil, err
	}
	i := e.current
	p := &e.players[i]

	switch opt {
	case JailPayFine:
		if p.Money < e.cfg.JailFine {
			return nil, ledger.ErrInsufficientFunds
		}
		e.debit(i, e.cfg.JailFine)
		e.release(i, e.printer.Sprintf("%s pays %s and leaves jail", p.Name, e.money(e.cfg.JailFine)))
		e.phase = models.PhaseAwaitRoll
	case JailUseCard:
		if p.GetOutOfJailCards == 0 {
			return nil, ErrNoJailCard
		}
		p.GetOutOfJailCards--
		e.release(i, e.printer.Sprintf("%s uses a Get Out of Jail Free card", p.Name))
		e.phase = models.PhaseAwaitRoll
	case JailRoll:
		e.jailRoll(i)
	default:
		return nil, ErrInvalidJailOption
	}
	return e.flush(), nil
}

func (e *Engine) jailRoll(i int) {
	p := &e.players[i]
	d1, d2 := e.rollDice(i)
	if d1 != d2 {
		p.JailTurns++
		if p.JailTurns < e.cfg.MaxJailTurns {
			ev := e.event(models.EventStayedInJail, i, board.JailPosition)
			ev.Amount = p.JailTurns
			ev.Message = e.printer.Sprintf("%s stays in jail (%d/%d)", p.Name, p.JailTurns, e.cfg.MaxJailTurns)
			e.emit(ev)
			e.phase = models.PhaseTurnOver
			return
		}
		e.debit(i, e.cfg.JailFine)
		e.release(i, e.printer.Sprintf("%s served %d turns and pays %s", p.Name, p.JailTurns, e.money(e.cfg.JailFine)))
		e.phase = models.PhaseTurnOver
		e.checkBankruptcy(i)
		if p.Bankrupt || e.phase == models.PhaseGameOver {
			return
		}
	} else {
		e.stats[i].DoublesRolled++
		e.release(i, e.printer.Sprintf("%s rolled doubles and leaves jail", p.Name))
	}
	// Leaving jail never earns the doubles re-roll.
	e.turn.DoublesGranted = false
	e.turn.RollTotal = d1 + d2
	e.moveBy(i, d1+d2)
	e.land(i)
}

func (e *Engine) release(i int, msg string) {
	p := &e.players[i]
	p.InJail = false
	p.JailTurns = 0
	ev := e.event(models.EventReleasedFromJail, i, board.JailPosition)
	ev.Message = msg
	e.emit(ev)
}

func (e *Engine) sendToJail(i int) {
	p := &e.players[i]
	p.Position = board.JailPosition
	p.InJail = true
	p.JailTurns = 0
	e.stats[i].TimesJailed++
	e.turn.DoublesGranted = false
	e.turn.RollTotal = 0
	ev := e.event(models.EventSentToJail, i, board.JailPosition)
	ev.Message = e.printer.Sprintf("%s goes to jail!", p.Name)
	e.emit(ev)
	e.phase = models.PhaseTurnOver
}
