package models

import "time"

type Phase string

const (
	PhaseAwaitRoll       Phase = "await-roll"
	PhaseAwaitJailChoice Phase = "await-jail-choice"
	PhaseAwaitPurchase   Phase = "await-purchase"
	PhaseAwaitAuction    Phase = "await-auction"
	PhaseAwaitRent       Phase = "await-rent"
	PhaseAwaitCard       Phase = "await-card"
	PhaseTurnOver        Phase = "turn-over"
	PhaseGameOver        Phase = "game-over"
)

type TurnState struct {
	DiceRolled         bool   `json:"diceRolled"`
	ConsecutiveDoubles int    `json:"consecutiveDoubles"`
	DoublesGranted     bool   `json:"doublesGranted"`
	LastDice           [2]int `json:"lastDice"`
	// RollTotal is the dice total behind the current move, 0 when the move came from a card.
	RollTotal int `json:"rollTotal"`
}

type PendingRent struct {
	Square int `json:"square"`
	Owner  int `json:"owner"`
	Amount int `json:"amount"`
}

type PendingCard struct {
	Deck   DeckKind `json:"deck"`
	CardID int      `json:"cardId"`
}

type Auction struct {
	Square     int   `json:"square"`
	Bidders    []int `json:"bidders"`
	Turn       int   `json:"turn"`
	HighBid    int   `json:"highBid"`
	HighBidder int   `json:"highBidder"`
}

// Snapshot is the flat save format of a session.
type Snapshot struct {
	ID              string            `json:"id"`
	Players         []Player          `json:"players"`
	CurrentPlayer   int               `json:"currentPlayerIndex"`
	Phase           Phase             `json:"phase"`
	Turn            TurnState         `json:"turn"`
	PendingPurchase *int              `json:"pendingPurchase,omitempty"`
	PendingRent     *PendingRent      `json:"pendingRent,omitempty"`
	PendingCard     *PendingCard      `json:"pendingCard,omitempty"`
	Auction         *Auction          `json:"auction,omitempty"`
	Properties      map[int]Ownership `json:"properties"`
	AvailableHouses int               `json:"availableHouses"`
	AvailableHotels int               `json:"availableHotels"`
	ChanceDeck      []int             `json:"chanceDeck"`
	ChestDeck       []int             `json:"chestDeck"`
	Stats           []Stats           `json:"stats"`
	TurnsPlayed     int               `json:"turnsPlayed"`
	Config          Config            `json:"gameConfig"`
	StartedAt       time.Time         `json:"gameStartTime"`
	Winner          int               `json:"winner"`
	EventSeq        int               `json:"eventSeq"`
	History         []Event           `json:"history"`
}
