package engine

import (
	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/ledger"
)

// startAuction opens bidding on a declined square. Active players bid in
// seat order starting with the mover.
func (e *Engine) startAuction(squareID int) {
	a := &models.Auction{Square: squareID, HighBidder: -1}
	n := len(e.players)
	for step := 0; step < n; step++ {
		seat := (e.current + step) % n
		if !e.players[seat].Bankrupt {
			a.Bidders = append(a.Bidders, seat)
		}
	}
	e.auction = a
	e.phase = models.PhaseAwaitAuction
	ev := e.event(models.EventAuctionStarted, e.current, squareID)
	ev.Message = e.printer.Sprintf("%s goes to auction", e.board[squareID].Name)
	e.emit(ev)
}

// Bidder returns the seat whose turn it is to bid.
func (e *Engine) Bidder() (int, bool) {
	if e.auction == nil || len(e.auction.Bidders) == 0 {
		return -1, false
	}
	return e.auction.Bidders[e.auction.Turn], true
}

// PlaceBid raises the high bid on behalf of the bidder whose turn it is.
func (e *Engine) PlaceBid(amount int) ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitAuction); err != nil {
		return nil, err
	}
	a := e.auction
	seat := a.Bidders[a.Turn]
	if amount <= a.HighBid {
		return nil, ErrBidTooLow
	}
	if amount > e.players[seat].Money {
		return nil, ledger.ErrInsufficientFunds
	}
	a.HighBid = amount
	a.HighBidder = seat
	ev := e.event(models.EventBidPlaced, seat, a.Square)
	ev.Amount = amount
	ev.Message = e.printer.Sprintf("%s bids %s", e.name(seat), e.money(amount))
	e.emit(ev)
	a.Turn = (a.Turn + 1) % len(a.Bidders)
	e.settleAuction()
	return e.flush(), nil
}

// PassBid drops the bidder whose turn it is out of the auction.
func (e *Engine) PassBid() ([]models.Event, error) {
	if err := e.expect(models.PhaseAwaitAuction); err != nil {
		return nil, err
	}
	a := e.auction
	seat := a.Bidders[a.Turn]
	a.Bidders = append(a.Bidders[:a.Turn:a.Turn], a.Bidders[a.Turn+1:]...)
	if len(a.Bidders) > 0 {
		a.Turn %= len(a.Bidders)
	} else {
		a.Turn = 0
	}
	ev := e.event(models.EventBidPassed, seat, a.Square)
	ev.Message = e.printer.Sprintf("%s passes", e.name(seat))
	e.emit(ev)
	e.settleAuction()
	return e.flush(), nil
}

func (e *Engine) settleAuction() {
	a := e.auction
	switch {
	case len(a.Bidders) == 0:
		ev := e.event(models.EventAuctionUnsold, e.current, a.Square)
		ev.Message = e.printer.Sprintf("Nobody bought %s", e.board[a.Square].Name)
		e.emit(ev)
	case len(a.Bidders) == 1 && a.Bidders[0] == a.HighBidder:
		winner := a.HighBidder
		e.acquire(winner, a.Square, a.HighBid)
		ev := e.event(models.EventAuctionWon, winner, a.Square)
		ev.Amount = a.HighBid
		ev.Message = e.printer.Sprintf("%s wins %s for %s", e.name(winner), e.board[a.Square].Name, e.money(a.HighBid))
		e.emit(ev)
	default:
		return
	}
	e.auction = nil
	e.phase = models.PhaseTurnOver
}
