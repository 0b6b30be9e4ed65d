package engine

import (
	"fmt"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/cards"
	"github.com/DedS3t/disney-monopoly/platform/ledger"
)

// land resolves the square the player is standing on.
func (e *Engine) land(i int) {
	sq := e.board[e.players[i].Position]
	switch sq.Type {
	case models.SquareProperty, models.SquareStation, models.SquareUtility:
		e.landOnOwnable(i, sq)
	case models.SquareTax:
		e.debit(i, sq.TaxAmount)
		ev := e.event(models.EventTaxPaid, i, sq.ID)
		ev.Amount = sq.TaxAmount
		ev.Message = e.printer.Sprintf("%s pays %s in tax", e.name(i), e.money(sq.TaxAmount))
		e.emit(ev)
		e.phase = models.PhaseTurnOver
		e.checkBankruptcy(i)
	case models.SquareGoToJail:
		e.sendToJail(i)
	case models.SquareChance:
		e.drawCard(i, e.chance)
	case models.SquareChest:
		e.drawCard(i, e.chest)
	case models.SquareJail, models.SquareParking, models.SquareGo:
		ev := e.event(models.EventLanded, i, sq.ID)
		ev.Message = e.printer.Sprintf("%s rests on %s", e.name(i), sq.Name)
		e.emit(ev)
		e.phase = models.PhaseTurnOver
	default:
		panic(fmt.Sprintf("engine: no action for square type %q", sq.Type))
	}
}

func (e *Engine) landOnOwnable(i int, sq models.Square) {
	entry, owned := e.ledger.Entry(sq.ID)
	ev := e.event(models.EventLanded, i, sq.ID)
	switch {
	case !owned:
		id := sq.ID
		e.pendingPurchase = &id
		e.phase = models.PhaseAwaitPurchase
		ev.Amount = sq.Price
		ev.Message = e.printer.Sprintf("%s can buy %s for %s", e.name(i), sq.Name, e.money(sq.Price))
	case entry.Owner == i:
		e.phase = models.PhaseTurnOver
		ev.Message = e.printer.Sprintf("%s is on their own property %s", e.name(i), sq.Name)
	default:
		amount := e.ledger.Rent(sq.ID, e.turn.RollTotal)
		e.pendingRent = &models.PendingRent{Square: sq.ID, Owner: entry.Owner, Amount: amount}
		e.phase = models.PhaseAwaitRent
		ev.Other = entry.Owner
		ev.Amount = amount
		if entry.Mortgaged {
			ev.Message = e.printer.Sprintf("%s is mortgaged. No rent is due.", sq.Name)
		} else {
			ev.Message = e.printer.Sprintf("%s owes %s rent to %s", e.name(i), e.money(amount), e.name(entry.Owner))
		}
	}
	e.emit(ev)
}

// DecidePurchase buys the offered square or declines it, which may open an auction.
func (e *Engine) DecidePurchase(accept bool) ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitPurchase); err != nil {
		return nil, err
	}
	i := e.current
	sq := e.board[*e.pendingPurchase]
	if accept {
		if e.players[i].Money < sq.Price {
			return nil, ledger.ErrInsufficientFunds
		}
		e.pendingPurchase = nil
		e.acquire(i, sq.ID, sq.Price)
		ev := e.event(models.EventPropertyPurchased, i, sq.ID)
		ev.Amount = sq.Price
		ev.Message = e.printer.Sprintf("%s bought %s!", e.name(i), sq.Name)
		e.emit(ev)
		e.phase = models.PhaseTurnOver
		return e.flush(), nil
	}

	e.pendingPurchase = nil
	ev := e.event(models.EventPurchaseDeclined, i, sq.ID)
	ev.Message = e.printer.Sprintf("%s passes on %s", e.name(i), sq.Name)
	e.emit(ev)
	if e.cfg.AuctionsEnabled {
		e.startAuction(sq.ID)
	} else {
		e.phase = models.PhaseTurnOver
	}
	return e.flush(), nil
}

func (e *Engine) acquire(i, squareID, price int) {
	e.debit(i, price)
	e.ledger.Acquire(squareID, i)
	e.players[i].Properties = append(e.players[i].Properties, squareID)
	e.stats[i].PropertiesBought++
}

// PayRent settles the rent owed on the square the current player landed on.
func (e *Engine) PayRent() ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitRent); err != nil {
		return nil, err
	}
	r := *e.pendingRent
	if r.Amount == 0 {
		return e.AcknowledgeRent()
	}
	i := e.current
	e.pendingRent = nil
	e.transfer(i, r.Owner, r.Amount)
	e.stats[i].RentPaid += r.Amount
	e.stats[r.Owner].RentReceived += r.Amount
	ev := e.event(models.EventRentPaid, i, r.Square)
	ev.Other = r.Owner
	ev.Amount = r.Amount
	ev.Message = e.printer.Sprintf("%s pays %s to %s for %s", e.name(i), e.money(r.Amount), e.name(r.Owner), e.board[r.Square].Name)
	e.emit(ev)
	e.phase = models.PhaseTurnOver
	e.checkBankruptcy(i)
	return e.flush(), nil
}

// AcknowledgeRent closes a rent stop that costs nothing, such as a mortgaged square.
func (e *Engine) AcknowledgeRent() ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitRent); err != nil {
		return nil, err
	}
	r := *e.pendingRent
	if r.Amount > 0 {
		return nil, ErrRentOwed
	}
	e.pendingRent = nil
	ev := e.event(models.EventRentWaived, e.current, r.Square)
	ev.Other = r.Owner
	ev.Message = e.printer.Sprintf("No rent due on %s", e.board[r.Square].Name)
	e.emit(ev)
	e.phase = models.PhaseTurnOver
	return e.flush(), nil
}

func (e *Engine) drawCard(i int, deck *cards.Deck) {
	c := deck.Draw()
	e.pendingCard = &models.PendingCard{Deck: deck.Kind(), CardID: c.ID}
	e.phase = models.PhaseAwaitCard
	ev := e.event(models.EventCardDrawn, i, e.players[i].Position)
	ev.CardID = c.ID
	ev.Message = c.Text
	e.emit(ev)
}

// ResolveCard applies the card drawn on this turn.
func (e *Engine) ResolveCard() ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitCard); err != nil {
		return nil, err
	}
	i := e.current
	c := e.card(*e.pendingCard)
	res := cards.Execute(i, e.players, c, e.ledger, e.cfg)
	e.pendingCard = nil

	ev := e.event(models.EventCardResolved, i, e.players[i].Position)
	ev.CardID = c.ID
	ev.Amount = res.MoneyDelta
	ev.Message = e.cardMessage(i, res)
	e.emit(ev)

	if res.GoToJail {
		e.sendToJail(i)
		return e.flush(), nil
	}
	if res.GrantJailCard {
		e.players[i].GetOutOfJailCards++
	}

	e.phase = models.PhaseTurnOver
	switch {
	case res.CollectFromAll > 0:
		for _, payer := range res.Payers {
			e.transfer(payer, i, res.CollectFromAll)
		}
		for _, payer := range res.Payers {
			e.checkBankruptcy(payer)
		}
	case res.PassedGo:
		e.collectGo(i)
	case res.MoneyDelta > 0:
		e.credit(i, res.MoneyDelta)
	case res.MoneyDelta < 0:
		e.debit(i, -res.MoneyDelta)
	}
	if res.MoneyDelta < 0 {
		e.checkBankruptcy(i)
	}
	if e.phase == models.PhaseGameOver || e.players[i].Bankrupt {
		return e.flush(), nil
	}

	if res.NewPosition >= 0 {
		p := &e.players[i]
		from := p.Position
		p.Position = res.NewPosition
		mv := e.event(models.EventTokenMoved, i, p.Position)
		mv.Other = from
		mv.Message = e.printer.Sprintf("%s moves to %s", p.Name, e.board[p.Position].Name)
		e.emit(mv)
		if res.FireSquareEvent {
			e.turn.RollTotal = 0
			e.land(i)
		}
	}
	return e.flush(), nil
}

func (e *Engine) cardMessage(i int, res cards.Result) string {
	switch res.Kind {
	case models.ActionCollect:
		return e.printer.Sprintf("%s collects %s", e.name(i), e.money(res.MoneyDelta))
	case models.ActionPay:
		return e.printer.Sprintf("%s pays %s", e.name(i), e.money(-res.MoneyDelta))
	case models.ActionRepairs:
		return e.printer.Sprintf("%s pays %s in repairs", e.name(i), e.money(res.RepairsBill))
	case models.ActionCollectFromAll:
		return e.printer.Sprintf("%s collects %s from the other players", e.name(i), e.money(res.MoneyDelta))
	case models.ActionJail:
		return e.printer.Sprintf("%s goes to jail!", e.name(i))
	case models.ActionGetOutOfJailFree:
		return e.printer.Sprintf("%s keeps a Get Out of Jail Free card", e.name(i))
	case models.ActionGoto, models.ActionMove, models.ActionNextStation:
		return e.printer.Sprintf("%s moves to %s", e.name(i), e.board[res.NewPosition].Name)
	default:
		panic(fmt.Sprintf("engine: no message for card action %q", res.Kind))
	}
}
