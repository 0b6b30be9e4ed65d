package models

type Player struct {
	Name              string `json:"name"`
	Token             string `json:"token"`
	Money             int    `json:"money"`
	Position          int    `json:"position"`
	Properties        []int  `json:"properties"`
	InJail            bool   `json:"inJail"`
	JailTurns         int    `json:"jailTurns"`
	Bankrupt          bool   `json:"bankrupt"`
	GetOutOfJailCards int    `json:"getOutOfJailCards"`
}

// Owns reports whether squareID is in the player's property list.
func (p *Player) Owns(squareID int) bool {
	for _, id := range p.Properties {
		if id == squareID {
			return true
		}
	}
	return false
}

// PlayerDto is what the setup screen sends for each seat.
type PlayerDto struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type Stats struct {
	MoneyEarned      int `json:"moneyEarned"`
	MoneySpent       int `json:"moneySpent"`
	PropertiesBought int `json:"propertiesBought"`
	RentPaid         int `json:"rentPaid"`
	RentReceived     int `json:"rentReceived"`
	TimesJailed      int `json:"timesJailed"`
	DoublesRolled    int `json:"doublesRolled"`
}

// Ownership is a ledger entry. It exists only for owned squares.
type Ownership struct {
	Owner     int  `json:"owner"`
	Houses    int  `json:"houses"`
	Mortgaged bool `json:"mortgaged"`
}

const HotelLevel = 5
