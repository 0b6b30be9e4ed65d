package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/board"
)

const (
	TotalHouses = 32
	TotalHotels = 12

	UtilityOneOwned  = 4
	UtilityBothOwned = 10
	// FallbackRoll stands in for the dice total when a utility is reached without a roll.
	FallbackRoll = 7
)

var StationRents = []int{25, 50, 100, 200}

var (
	ErrNotOwner          = errors.New("property not owned by player")
	ErrNotBuildable      = errors.New("only colour-group properties can be built on")
	ErrGroupNotOwned     = errors.New("player does not own the full colour group")
	ErrGroupMortgaged    = errors.New("a property in the group is mortgaged")
	ErrMortgaged         = errors.New("property is mortgaged")
	ErrNotMortgaged      = errors.New("property is not mortgaged")
	ErrMaxDevelopment    = errors.New("maximum development reached")
	ErrNoBuildings       = errors.New("property has no buildings")
	ErrUnevenBuilding    = errors.New("buildings must be spread evenly across the group")
	ErrDeveloped         = errors.New("sell the group's buildings first")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrNoHousesAvailable = errors.New("no houses available")
	ErrNoHotelsAvailable = errors.New("no hotels available")
)

// Ledger tracks who owns what and the bank's building stock.
type Ledger struct {
	board   board.Board
	entries map[int]*models.Ownership
	houses  int
	hotels  int
}

func New(b board.Board) *Ledger {
	return &Ledger{
		board:   b,
		entries: map[int]*models.Ownership{},
		houses:  TotalHouses,
		hotels:  TotalHotels,
	}
}

// Restore rebuilds a ledger from saved entries, rejecting states that break ledger invariants.
func Restore(b board.Board, entries map[int]models.Ownership, houses, hotels int) (*Ledger, error) {
	if houses < 0 || houses > TotalHouses || hotels < 0 || hotels > TotalHotels {
		return nil, fmt.Errorf("building inventory %d/%d out of range", houses, hotels)
	}
	l := &Ledger{board: b, entries: map[int]*models.Ownership{}, houses: houses, hotels: hotels}
	for id, e := range entries {
		sq, err := b.GetByPos(id)
		if err != nil || !sq.Type.Ownable() {
			return nil, fmt.Errorf("ledger entry for square %d which cannot be owned", id)
		}
		if e.Houses < 0 || e.Houses > models.HotelLevel || (e.Houses > 0 && sq.Type != models.SquareProperty) {
			return nil, fmt.Errorf("square %d has invalid development %d", id, e.Houses)
		}
		if e.Houses > 0 && e.Mortgaged {
			return nil, fmt.Errorf("square %d is mortgaged with buildings", id)
		}
		entry := e
		l.entries[id] = &entry
	}
	if err := l.checkDevelopment(houses, hotels); err != nil {
		return nil, err
	}
	return l, nil
}

// checkDevelopment verifies that buildings stand only on whole, unmortgaged,
// evenly built groups and that board plus bank never exceeds the full stock.
func (l *Ledger) checkDevelopment(houses, hotels int) error {
	for id, e := range l.entries {
		if e.Houses == 0 {
			continue
		}
		if e.Houses == models.HotelLevel {
			hotels++
		} else {
			houses += e.Houses
		}
		group := l.board[id].Group
		if !l.OwnsGroup(e.Owner, group) {
			return fmt.Errorf("square %d is built on without the full %s group", id, group)
		}
		for _, other := range l.board.Group(group) {
			o := l.entries[other]
			if o.Mortgaged {
				return fmt.Errorf("square %d is built on while %d is mortgaged", id, other)
			}
			if d := e.Houses - o.Houses; d > 1 || d < -1 {
				return fmt.Errorf("square %d is built unevenly against %d", id, other)
			}
		}
	}
	if houses > TotalHouses || hotels > TotalHotels {
		return fmt.Errorf("building stock %d/%d exceeds %d/%d", houses, hotels, TotalHouses, TotalHotels)
	}
	return nil
}

func (l *Ledger) Board() board.Board {
	return l.board
}

func (l *Ledger) Entry(squareID int) (models.Ownership, bool) {
	e, ok := l.entries[squareID]
	if !ok {
		return models.Ownership{}, false
	}
	return *e, true
}

// Entries returns a copy of every ledger entry.
func (l *Ledger) Entries() map[int]models.Ownership {
	out := make(map[int]models.Ownership, len(l.entries))
	for id, e := range l.entries {
		out[id] = *e
	}
	return out
}

func (l *Ledger) Inventory() (houses int, hotels int) {
	return l.houses, l.hotels
}

// OwnedBy lists the squares owned by owner in board order.
func (l *Ledger) OwnedBy(owner int) []int {
	var ids []int
	for id, e := range l.entries {
		if e.Owner == owner {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func (l *Ledger) Acquire(squareID, owner int) {
	sq := l.board[squareID]
	if !sq.Type.Ownable() {
		panic(fmt.Sprintf("ledger: square %d cannot be owned", squareID))
	}
	if _, ok := l.entries[squareID]; ok {
		panic(fmt.Sprintf("ledger: square %d is already owned", squareID))
	}
	l.entries[squareID] = &models.Ownership{Owner: owner}
}

// Release hands a square back to the bank. Its buildings return to the stock.
func (l *Ledger) Release(squareID int) {
	e, ok := l.entries[squareID]
	if !ok {
		panic(fmt.Sprintf("ledger: releasing unowned square %d", squareID))
	}
	if e.Houses == models.HotelLevel {
		l.hotels++
	} else {
		l.houses += e.Houses
	}
	delete(l.entries, squareID)
	l.checkInventory()
}

func (l *Ledger) OwnsGroup(owner int, group string) bool {
	if group == "" {
		return false
	}
	for _, id := range l.board.Group(group) {
		e, ok := l.entries[id]
		if !ok || e.Owner != owner {
			return false
		}
	}
	return true
}

func (l *Ledger) CountOwned(owner int, t models.SquareType) int {
	n := 0
	for id, e := range l.entries {
		if e.Owner == owner && l.board[id].Type == t {
			n++
		}
	}
	return n
}

// Rent is what a visitor owes on squareID. rollTotal <= 0 means no live roll.
func (l *Ledger) Rent(squareID, rollTotal int) int {
	e, ok := l.entries[squareID]
	if !ok {
		panic(fmt.Sprintf("ledger: rent on unowned square %d", squareID))
	}
	if e.Mortgaged {
		return 0
	}
	sq := l.board[squareID]
	switch sq.Type {
	case models.SquareStation:
		return StationRents[l.CountOwned(e.Owner, models.SquareStation)-1]
	case models.SquareUtility:
		if rollTotal <= 0 {
			rollTotal = FallbackRoll
		}
		if l.CountOwned(e.Owner, models.SquareUtility) >= 2 {
			return UtilityBothOwned * rollTotal
		}
		return UtilityOneOwned * rollTotal
	case models.SquareProperty:
		rent := sq.Rent[e.Houses]
		if e.Houses == 0 && l.OwnsGroup(e.Owner, sq.Group) {
			rent *= 2
		}
		return rent
	default:
		panic(fmt.Sprintf("ledger: rent on %s square %d", sq.Type, squareID))
	}
}

// AssetValue is cash plus what the owner's holdings are worth to the bank.
func (l *Ledger) AssetValue(owner, cash int) int {
	total := cash
	for id, e := range l.entries {
		if e.Owner != owner {
			continue
		}
		sq := l.board[id]
		if e.Mortgaged {
			total += sq.MortgageValue()
			continue
		}
		total += sq.Price + e.Houses*sq.HouseCost
	}
	return total
}

// Repairs is the bill for houseCost per house plus hotelCost per hotel on owner's properties.
func (l *Ledger) Repairs(owner, houseCost, hotelCost int) int {
	bill := 0
	for id, e := range l.entries {
		if e.Owner != owner || l.board[id].Type != models.SquareProperty {
			continue
		}
		bill += e.Houses * houseCost
		if e.Houses == models.HotelLevel {
			bill += hotelCost
		}
	}
	return bill
}

func (l *Ledger) owned(owner, squareID int) (*models.Ownership, error) {
	e, ok := l.entries[squareID]
	if !ok || e.Owner != owner {
		return nil, ErrNotOwner
	}
	return e, nil
}

func (l *Ledger) checkInventory() {
	if l.houses < 0 || l.hotels < 0 || l.houses > TotalHouses || l.hotels > TotalHotels {
		panic(fmt.Sprintf("ledger: building inventory out of range (%d houses, %d hotels)", l.houses, l.hotels))
	}
}
