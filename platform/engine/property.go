package engine

import (
	"github.com/DedS3t/disney-monopoly/app/models"
)

// propertyTurn checks that the current player may manage their holdings now.
// Building and mortgaging are open during the whole turn except an auction.
func (e *Engine) propertyTurn() error {
	switch e.phase {
	case models.PhaseGameOver:
		return ErrGameOver
	case models.PhaseAwaitAuction:
		return wrongPhase(e.phase, models.PhaseTurnOver)
	}
	if e.players[e.current].Bankrupt {
		return ErrBankrupt
	}
	return nil
}

func (e *Engine) BuildHouse(squareID int) ([]models.Event, error) {
	if err := e.propertyTurn(); err != nil {
		return nil, err
	}
	i := e.current
	res, err := e.ledger.Build(i, e.players[i].Money, squareID)
	if err != nil {
		return nil, err
	}
	e.debit(i, res.Cost)
	ev := e.event(models.EventHouseBuilt, i, squareID)
	ev.Amount = res.Cost
	if res.Hotel {
		ev.Message = e.printer.Sprintf("%s builds a hotel on %s", e.name(i), e.board[squareID].Name)
	} else {
		ev.Message = e.printer.Sprintf("%s builds house %d on %s", e.name(i), res.Level, e.board[squareID].Name)
	}
	e.emit(ev)
	return e.flush(), nil
}

func (e *Engine) SellHouse(squareID int) ([]models.Event, error) {
	if err := e.propertyTurn(); err != nil {
		return nil, err
	}
	i := e.current
	res, err := e.ledger.SellHouse(i, squareID)
	if err != nil {
		return nil, err
	}
	e.credit(i, res.Refund)
	ev := e.event(models.EventHouseSold, i, squareID)
	ev.Amount = res.Refund
	ev.Message = e.printer.Sprintf("%s sells a building on %s for %s", e.name(i), e.board[squareID].Name, e.money(res.Refund))
	e.emit(ev)
	return e.flush(), nil
}

func (e *Engine) Mortgage(squareID int) ([]models.Event, error) {
	if err := e.propertyTurn(); err != nil {
		return nil, err
	}
	i := e.current
	value, err := e.ledger.Mortgage(i, squareID)
	if err != nil {
		return nil, err
	}
	e.credit(i, value)
	ev := e.event(models.EventMortgaged, i, squareID)
	ev.Amount = value
	ev.Message = e.printer.Sprintf("%s mortgages %s for %s", e.name(i), e.board[squareID].Name, e.money(value))
	e.emit(ev)
	return e.flush(), nil
}

func (e *Engine) Unmortgage(squareID int) ([]models.Event, error) {
	if err := e.propertyTurn(); err != nil {
		return nil, err
	}
	i := e.current
	cost, err := e.ledger.Unmortgage(i, e.players[i].Money, squareID)
	if err != nil {
		return nil, err
	}
	e.debit(i, cost)
	ev := e.event(models.EventUnmortgaged, i, squareID)
	ev.Amount = cost
	ev.Message = e.printer.Sprintf("%s lifts the mortgage on %s for %s", e.name(i), e.board[squareID].Name, e.money(cost))
	e.emit(ev)
	return e.flush(), nil
}
