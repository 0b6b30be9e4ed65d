package engine

import (
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/board"
)

func (e *Engine) expect(want models.Phase) error {
	if e.phase == models.PhaseGameOver {
		return ErrGameOver
	}
	if e.phase != want {
		return wrongPhase(e.phase, want)
	}
	return nil
}

// RollDice rolls for the current player, moves the token and resolves the landing square.
func (e *Engine) RollDice() ([]models.Event, error) {
	if e.phase != models.PhaseAwaitRoll && e.phase != models.PhaseGameOver && e.turn.DiceRolled {
		return nil, ErrAlreadyRolled
	}
	if err := e.expect(models.PhaseAwaitRoll); err != nil {
		return nil, err
	}
	i := e.current
	if e.players[i].Bankrupt {
		return nil, ErrBankrupt
	}

	d1, d2 := e.rollDice(i)
	if d1 == d2 {
		e.turn.ConsecutiveDoubles++
		e.stats[i].DoublesRolled++
		ev := e.event(models.EventDoubles, i, -1)
		ev.Amount = e.turn.ConsecutiveDoubles
		ev.Message = e.printer.Sprintf("%s rolled doubles!", e.name(i))
		e.emit(ev)
		if e.turn.ConsecutiveDoubles >= MaxConsecutiveDoubles {
			e.sendToJail(i)
			return e.flush(), nil
		}
		e.turn.DoublesGranted = true
	} else {
		e.turn.DoublesGranted = false
	}

	e.turn.RollTotal = d1 + d2
	e.moveBy(i, d1+d2)
	e.land(i)
	return e.flush(), nil
}

func (e *Engine) rollDice(i int) (int, int) {
	d1, d2 := e.roller.Roll()
	e.turn.DiceRolled = true
	e.turn.LastDice = [2]int{d1, d2}
	ev := e.event(models.EventDiceRolled, i, -1)
	ev.Dice = e.turn.LastDice
	ev.Amount = d1 + d2
	ev.Message = e.printer.Sprintf("%s rolled %d and %d", e.name(i), d1, d2)
	e.emit(ev)
	return d1, d2
}

// moveBy walks the token one square at a time so every crossing of GO pays out.
func (e *Engine) moveBy(i, steps int) {
	p := &e.players[i]
	from := p.Position
	for step := 0; step < steps; step++ {
		p.Position = board.Advance(p.Position, 1)
		if p.Position == board.GoPosition {
			e.collectGo(i)
		}
	}
	ev := e.event(models.EventTokenMoved, i, p.Position)
	ev.Other = from
	ev.Amount = steps
	ev.Message = e.printer.Sprintf("%s moves to %s", p.Name, e.board[p.Position].Name)
	e.emit(ev)
}

func (e *Engine) collectGo(i int) {
	e.credit(i, e.cfg.GoReward)
	ev := e.event(models.EventPassedGo, i, board.GoPosition)
	ev.Amount = e.cfg.GoReward
	ev.Message = e.printer.Sprintf("%s passes GO and collects %s", e.name(i), e.money(e.cfg.GoReward))
	e.emit(ev)
}

// EndTurnIfEligible grants the doubles re-roll or hands the turn to the next active player.
func (e *Engine) EndTurnIfEligible() ([]models.Event, error) {
	if err := e.expect(models.PhaseTurnOver); err != nil {
		return nil, err
	}
	i := e.current
	p := e.players[i]
	if !p.Bankrupt && p.Money < 0 {
		return nil, ErrNegativeBalance
	}

	if e.turn.DoublesGranted && !p.InJail && !p.Bankrupt {
		e.turn.DiceRolled = false
		e.turn.DoublesGranted = false
		e.turn.RollTotal = 0
		e.phase = models.PhaseAwaitRoll
		ev := e.event(models.EventExtraRoll, i, -1)
		ev.Message = e.printer.Sprintf("%s rolled doubles. Roll again!", p.Name)
		e.emit(ev)
		return e.flush(), nil
	}

	e.turn = models.TurnState{}
	e.turnsPlayed++
	if e.cfg.MaxTurns > 0 && e.turnsPlayed >= e.cfg.MaxTurns {
		e.endByLimit("turn limit reached")
		return e.flush(), nil
	}
	if e.timeUp() {
		e.endByLimit("time is up")
		return e.flush(), nil
	}

	e.current = e.nextActive()
	next := e.players[e.current]
	ev := e.event(models.EventTurnChanged, e.current, -1)
	if next.InJail {
		e.phase = models.PhaseAwaitJailChoice
		ev.Message = e.printer.Sprintf("%s's turn, in jail", next.Name)
	} else {
		e.phase = models.PhaseAwaitRoll
		ev.Message = e.printer.Sprintf("%s's turn. Roll the dice!", next.Name)
	}
	e.emit(ev)
	return e.flush(), nil
}

// CheckClock ends the game when the configured time limit has run out.
func (e *Engine) CheckClock() ([]models.Event, error) {
	if e.phase == models.PhaseGameOver {
		return nil, ErrGameOver
	}
	if e.timeUp() {
		e.endByLimit("time is up")
	}
	return e.flush(), nil
}

func (e *Engine) timeUp() bool {
	if e.cfg.TimeLimitMinutes <= 0 {
		return false
	}
	return e.now().Sub(e.startedAt) >= time.Duration(e.cfg.TimeLimitMinutes)*time.Minute
}

func (e *Engine) nextActive() int {
	n := len(e.players)
	for step := 1; step <= n; step++ {
		next := (e.current + step) % n
		if !e.players[next].Bankrupt {
			return next
		}
	}
	panic("engine: no active player left to take the turn")
}
