package models

type SquareType string

const (
	SquareGo       SquareType = "go"
	SquareProperty SquareType = "property"
	SquareStation  SquareType = "station"
	SquareUtility  SquareType = "utility"
	SquareTax      SquareType = "tax"
	SquareChance   SquareType = "chance"
	SquareChest    SquareType = "chest"
	SquareJail     SquareType = "jail"
	SquareGoToJail SquareType = "go-to-jail"
	SquareParking  SquareType = "parking"
)

// Ownable reports whether a square can be bought and appear in the ledger.
func (t SquareType) Ownable() bool {
	return t == SquareProperty || t == SquareStation || t == SquareUtility
}

type Square struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Type      SquareType `json:"type"`
	Group     string     `json:"group,omitempty"`
	Price     int        `json:"price,omitempty"`
	Rent      []int      `json:"rent,omitempty"`
	HouseCost int        `json:"housecost,omitempty"`
	TaxAmount int        `json:"amount,omitempty"`
}

// MortgageValue is what the bank pays for mortgaging the square.
func (s Square) MortgageValue() int {
	return s.Price / 2
}

// UnmortgageCost is the mortgage value plus 10% interest, rounded down.
func (s Square) UnmortgageCost() int {
	return s.Price * 11 / 20
}

type PropertyGroup struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Token struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

var Tokens = []Token{
	{Name: "Elsa", Emoji: "❄️"},
	{Name: "Simba", Emoji: "🦁"},
	{Name: "Ariel", Emoji: "🧜‍♀️"},
	{Name: "Woody", Emoji: "🤠"},
	{Name: "Mulan", Emoji: "⚔️"},
	{Name: "Vaiana", Emoji: "🌊"},
	{Name: "Genie", Emoji: "🧞"},
	{Name: "Scar", Emoji: "🦹"},
	{Name: "WALL-E", Emoji: "🤖"},
	{Name: "Wachowsky", Emoji: "🎬"},
}

func KnownToken(name string) bool {
	for _, t := range Tokens {
		if t.Name == name {
			return true
		}
	}
	return false
}
