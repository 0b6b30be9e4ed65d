package ledger

import (
	"github.com/DedS3t/disney-monopoly/app/models"
)

type BuildResult struct {
	Cost  int
	Level int
	Hotel bool
}

type Buildable struct {
	SquareID int `json:"square"`
	Level    int `json:"level"`
	Cost     int `json:"cost"`
}

// CheckBuild validates one level of development on squareID without changing anything.
func (l *Ledger) CheckBuild(owner, money, squareID int) (int, error) {
	e, err := l.owned(owner, squareID)
	if err != nil {
		return 0, err
	}
	sq := l.board[squareID]
	if sq.Type != models.SquareProperty {
		return 0, ErrNotBuildable
	}
	if !l.OwnsGroup(owner, sq.Group) {
		return 0, ErrGroupNotOwned
	}
	if e.Mortgaged {
		return 0, ErrMortgaged
	}
	if e.Houses >= models.HotelLevel {
		return 0, ErrMaxDevelopment
	}
	for _, id := range l.board.Group(sq.Group) {
		sibling := l.entries[id]
		if sibling.Mortgaged {
			return 0, ErrGroupMortgaged
		}
		if sibling.Houses < e.Houses {
			return 0, ErrUnevenBuilding
		}
	}
	if money < sq.HouseCost {
		return 0, ErrInsufficientFunds
	}
	if e.Houses < models.HotelLevel-1 {
		if l.houses <= 0 {
			return 0, ErrNoHousesAvailable
		}
	} else if l.hotels <= 0 {
		return 0, ErrNoHotelsAvailable
	}
	return sq.HouseCost, nil
}

// Build adds one level to squareID. The caller debits Cost from the owner.
func (l *Ledger) Build(owner, money, squareID int) (BuildResult, error) {
	cost, err := l.CheckBuild(owner, money, squareID)
	if err != nil {
		return BuildResult{}, err
	}
	e := l.entries[squareID]
	if e.Houses == models.HotelLevel-1 {
		l.hotels--
		l.houses += models.HotelLevel - 1
	} else {
		l.houses--
	}
	e.Houses++
	l.checkInventory()
	return BuildResult{Cost: cost, Level: e.Houses, Hotel: e.Houses == models.HotelLevel}, nil
}

type SellResult struct {
	Refund int
	Level  int
}

// SellHouse removes one level from squareID and returns half its build cost.
func (l *Ledger) SellHouse(owner, squareID int) (SellResult, error) {
	e, err := l.owned(owner, squareID)
	if err != nil {
		return SellResult{}, err
	}
	sq := l.board[squareID]
	if sq.Type != models.SquareProperty {
		return SellResult{}, ErrNotBuildable
	}
	if e.Houses == 0 {
		return SellResult{}, ErrNoBuildings
	}
	for _, id := range l.board.Group(sq.Group) {
		if sibling, ok := l.entries[id]; ok && sibling.Houses > e.Houses {
			return SellResult{}, ErrUnevenBuilding
		}
	}
	if e.Houses == models.HotelLevel {
		if l.houses < models.HotelLevel-1 {
			return SellResult{}, ErrNoHousesAvailable
		}
		l.houses -= models.HotelLevel - 1
		l.hotels++
	} else {
		l.houses++
	}
	e.Houses--
	l.checkInventory()
	return SellResult{Refund: sq.HouseCost / 2, Level: e.Houses}, nil
}

// Mortgage marks squareID mortgaged and returns what the bank pays for it.
func (l *Ledger) Mortgage(owner, squareID int) (int, error) {
	e, err := l.owned(owner, squareID)
	if err != nil {
		return 0, err
	}
	if e.Mortgaged {
		return 0, ErrMortgaged
	}
	sq := l.board[squareID]
	if sq.Type == models.SquareProperty {
		for _, id := range l.board.Group(sq.Group) {
			if sibling, ok := l.entries[id]; ok && sibling.Houses > 0 {
				return 0, ErrDeveloped
			}
		}
	}
	e.Mortgaged = true
	return sq.MortgageValue(), nil
}

// Unmortgage lifts the mortgage on squareID and returns what the owner pays.
func (l *Ledger) Unmortgage(owner, money, squareID int) (int, error) {
	e, err := l.owned(owner, squareID)
	if err != nil {
		return 0, err
	}
	if !e.Mortgaged {
		return 0, ErrNotMortgaged
	}
	cost := l.board[squareID].UnmortgageCost()
	if money < cost {
		return 0, ErrInsufficientFunds
	}
	e.Mortgaged = false
	return cost, nil
}

// Buildable lists every square where owner could add a level right now.
func (l *Ledger) Buildable(owner, money int) []Buildable {
	var out []Buildable
	for _, id := range l.OwnedBy(owner) {
		cost, err := l.CheckBuild(owner, money, id)
		if err != nil {
			continue
		}
		out = append(out, Buildable{SquareID: id, Level: l.entries[id].Houses, Cost: cost})
	}
	return out
}
