package models

type DeckKind string

const (
	DeckChance DeckKind = "chance"
	DeckChest  DeckKind = "chest"
)

type ActionKind string

const (
	ActionCollect          ActionKind = "collect"
	ActionPay              ActionKind = "pay"
	ActionGoto             ActionKind = "goto"
	ActionMove             ActionKind = "move"
	ActionJail             ActionKind = "jail"
	ActionGetOutOfJailFree ActionKind = "getOutOfJailFree"
	ActionCollectFromAll   ActionKind = "collectFromAll"
	ActionRepairs          ActionKind = "repairs"
	ActionNextStation      ActionKind = "nextStation"
)

// CardAction describes what a card does. Only the fields relevant to Kind are set.
type CardAction struct {
	Kind        ActionKind `json:"action"`
	Amount      int        `json:"amount,omitempty"`
	Destination int        `json:"destination,omitempty"`
	Spaces      int        `json:"spaces,omitempty"`
	HouseCost   int        `json:"houseCost,omitempty"`
	HotelCost   int        `json:"hotelCost,omitempty"`
	// CollectGo pays the GO reward when a goto wraps past square 0.
	CollectGo   bool       `json:"collectGo,omitempty"`
}

type Card struct {
	ID     int        `json:"id"`
	Deck   DeckKind   `json:"deck"`
	Text   string     `json:"text"`
	Action CardAction `json:"effect"`
}
