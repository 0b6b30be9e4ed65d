package models

import "time"

type EventKind string

const (
	EventDiceRolled        EventKind = "dice-rolled"
	EventDoubles           EventKind = "doubles"
	EventTokenMoved        EventKind = "token-moved"
	EventPassedGo          EventKind = "passed-go"
	EventPropertyPurchased EventKind = "property-purchased"
	EventPurchaseDeclined  EventKind = "purchase-declined"
	EventPropertyAssigned  EventKind = "property-assigned"
	EventAuctionStarted    EventKind = "auction-started"
	EventBidPlaced         EventKind = "bid-placed"
	EventBidPassed         EventKind = "bid-passed"
	EventAuctionWon        EventKind = "auction-won"
	EventAuctionUnsold     EventKind = "auction-unsold"
	EventRentPaid          EventKind = "rent-paid"
	EventRentWaived        EventKind = "rent-waived"
	EventTaxPaid           EventKind = "tax-paid"
	EventCardDrawn         EventKind = "card-drawn"
	EventCardResolved      EventKind = "card-resolved"
	EventSentToJail        EventKind = "sent-to-jail"
	EventReleasedFromJail  EventKind = "released-from-jail"
	EventStayedInJail      EventKind = "stayed-in-jail"
	EventHouseBuilt        EventKind = "house-built"
	EventHouseSold         EventKind = "house-sold"
	EventMortgaged         EventKind = "mortgaged"
	EventUnmortgaged       EventKind = "unmortgaged"
	EventLanded            EventKind = "landed"
	EventPlayerBankrupt    EventKind = "player-bankrupt"
	EventTurnChanged       EventKind = "turn-changed"
	EventExtraRoll         EventKind = "extra-roll"
	EventGameWon           EventKind = "game-won"
)

// Event is an outcome the presentation layer replays in order.
// Player, Other and Square are -1 when not relevant.
type Event struct {
	Seq     int       `json:"seq"`
	Kind    EventKind `json:"kind"`
	Player  int       `json:"player"`
	Other   int       `json:"other"`
	Square  int       `json:"square"`
	Amount  int       `json:"amount"`
	Dice    [2]int    `json:"dice,omitempty"`
	CardID  int       `json:"cardId,omitempty"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
