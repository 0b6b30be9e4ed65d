package board

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DedS3t/disney-monopoly/app/models"
)

const (
	Size             = 40
	GoPosition       = 0
	JailPosition     = 10
	ParkingPosition  = 20
	GoToJailPosition = 30
)

var StationPositions = []int{5, 15, 25, 35}

var Groups = []models.PropertyGroup{
	{Key: "brown", Name: "Clàssics Antics", Color: "#8B4513"},
	{Key: "lightblue", Name: "Princeses Clàssiques", Color: "#87CEEB"},
	{Key: "pink", Name: "Princeses Modernes", Color: "#FF69B4"},
	{Key: "orange", Name: "Pixar Clàssics", Color: "#FFA500"},
	{Key: "red", Name: "Aventures", Color: "#FF0000"},
	{Key: "yellow", Name: "Pixar Moderns", Color: "#FFD700"},
	{Key: "green", Name: "Màgia i Fantasia", Color: "#228B22"},
	{Key: "darkblue", Name: "Moderns Premium", Color: "#00008B"},
}

//go:embed squares.json
var squaresJSON []byte

var ErrNotFound = errors.New("square not found")

// Board is the immutable track, indexed by square id.
type Board []models.Square

// Load parses the embedded board and panics if it breaks a board invariant.
func Load() Board {
	var squares []models.Square
	if err := json.Unmarshal(squaresJSON, &squares); err != nil {
		panic(err)
	}
	b := Board(squares)
	if err := b.Validate(); err != nil {
		panic(err)
	}
	return b
}

func (b Board) Validate() error {
	if len(b) != Size {
		return fmt.Errorf("board has %d squares, want %d", len(b), Size)
	}
	fixed := map[int]models.SquareType{
		GoPosition:       models.SquareGo,
		JailPosition:     models.SquareJail,
		ParkingPosition:  models.SquareParking,
		GoToJailPosition: models.SquareGoToJail,
	}
	for _, pos := range StationPositions {
		fixed[pos] = models.SquareStation
	}
	counts := map[models.SquareType]int{}
	for i, sq := range b {
		if sq.ID != i {
			return fmt.Errorf("square at index %d has id %d", i, sq.ID)
		}
		if want, ok := fixed[i]; ok && sq.Type != want {
			return fmt.Errorf("square %d is %s, want %s", i, sq.Type, want)
		}
		counts[sq.Type]++
		switch sq.Type {
		case models.SquareProperty:
			if sq.Group == "" || len(sq.Rent) != models.HotelLevel+1 || sq.HouseCost <= 0 {
				return fmt.Errorf("property %d is incomplete", i)
			}
			fallthrough
		case models.SquareStation, models.SquareUtility:
			if sq.Price <= 0 {
				return fmt.Errorf("square %d has no price", i)
			}
		case models.SquareTax:
			if sq.TaxAmount <= 0 {
				return fmt.Errorf("tax square %d has no amount", i)
			}
		}
	}
	for _, t := range []models.SquareType{models.SquareGo, models.SquareJail, models.SquareParking, models.SquareGoToJail} {
		if counts[t] != 1 {
			return fmt.Errorf("board has %d %s squares, want 1", counts[t], t)
		}
	}
	if counts[models.SquareStation] != len(StationPositions) {
		return fmt.Errorf("board has %d stations", counts[models.SquareStation])
	}
	return nil
}

func (b Board) GetByPos(pos int) (models.Square, error) {
	if pos < 0 || pos >= len(b) {
		return models.Square{}, ErrNotFound
	}
	return b[pos], nil
}

// Group returns the ids of every property in a colour group.
func (b Board) Group(group string) []int {
	var ids []int
	for _, sq := range b {
		if sq.Type == models.SquareProperty && sq.Group == group {
			ids = append(ids, sq.ID)
		}
	}
	return ids
}

func (b Board) OfType(t models.SquareType) []int {
	var ids []int
	for _, sq := range b {
		if sq.Type == t {
			ids = append(ids, sq.ID)
		}
	}
	return ids
}

// Ownable returns every square that can be bought, in board order.
func (b Board) Ownable() []int {
	var ids []int
	for _, sq := range b {
		if sq.Type.Ownable() {
			ids = append(ids, sq.ID)
		}
	}
	return ids
}

// Advance returns the position steps squares ahead on the ring. Negative steps move backwards.
func Advance(pos, steps int) int {
	return ((pos+steps)%Size + Size) % Size
}

// NextStation returns the first station strictly after pos and whether the search wrapped past GO.
func NextStation(pos int) (int, bool) {
	for _, s := range StationPositions {
		if s > pos {
			return s, false
		}
	}
	return StationPositions[0], true
}
