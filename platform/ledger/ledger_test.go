package ledger

import (
	"testing"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lightblue = []int{6, 8, 9}

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(board.Load())
}

func ownAll(l *Ledger, owner int, ids ...int) {
	for _, id := range ids {
		l.Acquire(id, owner)
	}
}

func setLevels(l *Ledger, levels map[int]int) {
	for id, lvl := range levels {
		l.entries[id].Houses = lvl
	}
}

func TestStationRentTable(t *testing.T) {
	for owned, want := range []int{25, 50, 100, 200} {
		l := newLedger(t)
		ownAll(l, 0, board.StationPositions[:owned+1]...)
		for _, roll := range []int{0, 2, 12} {
			assert.Equal(t, want, l.Rent(5, roll), "%d stations, roll %d", owned+1, roll)
		}
	}
}

func TestUtilityRent(t *testing.T) {
	l := newLedger(t)
	l.Acquire(12, 1)
	assert.Equal(t, 32, l.Rent(12, 8))
	assert.Equal(t, 4*FallbackRoll, l.Rent(12, 0))

	l.Acquire(28, 1)
	assert.Equal(t, 80, l.Rent(12, 8))
	assert.Equal(t, 10*FallbackRoll, l.Rent(28, 0))
}

func TestPropertyRentDoublesOnFullGroup(t *testing.T) {
	l := newLedger(t)
	l.Acquire(1, 0)
	assert.Equal(t, 2, l.Rent(1, 7))

	l.Acquire(3, 0)
	assert.Equal(t, 4, l.Rent(1, 7))
	assert.Equal(t, 8, l.Rent(3, 7))

	setLevels(l, map[int]int{1: 1, 3: 1})
	assert.Equal(t, 10, l.Rent(1, 7))
	setLevels(l, map[int]int{1: 5, 3: 4})
	assert.Equal(t, 250, l.Rent(1, 7))
}

func TestMortgagedRentIsZero(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	_, err := l.Mortgage(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Rent(1, 7))
	assert.Equal(t, 8, l.Rent(3, 7))
}

func TestRentOnUnownedSquarePanics(t *testing.T) {
	l := newLedger(t)
	assert.Panics(t, func() { l.Rent(1, 7) })
}

func TestAcquireTwicePanics(t *testing.T) {
	l := newLedger(t)
	l.Acquire(1, 0)
	assert.Panics(t, func() { l.Acquire(1, 1) })
	assert.Panics(t, func() { l.Acquire(2, 0) })
}

func TestEvenBuilding(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, lightblue...)
	setLevels(l, map[int]int{6: 1, 8: 1, 9: 0})

	_, err := l.Build(0, 10000, 6)
	assert.ErrorIs(t, err, ErrUnevenBuilding)
	_, err = l.Build(0, 10000, 8)
	assert.ErrorIs(t, err, ErrUnevenBuilding)

	res, err := l.Build(0, 10000, 9)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Level)
	assert.Equal(t, 50, res.Cost)

	_, err = l.Build(0, 10000, 6)
	assert.NoError(t, err)
}

func TestBuildRequiresFullGroup(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 6, 8)
	l.Acquire(9, 1)
	_, err := l.Build(0, 10000, 6)
	assert.ErrorIs(t, err, ErrGroupNotOwned)

	_, err = l.Build(1, 10000, 6)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestBuildRejections(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	ownAll(l, 0, 5, 12)

	_, err := l.Build(0, 10000, 5)
	assert.ErrorIs(t, err, ErrNotBuildable)

	_, err = l.Build(0, 49, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = l.Mortgage(0, 3)
	require.NoError(t, err)
	_, err = l.Build(0, 10000, 1)
	assert.ErrorIs(t, err, ErrGroupMortgaged)
	_, err = l.Build(0, 10000, 3)
	assert.ErrorIs(t, err, ErrMortgaged)

	houses, hotels := l.Inventory()
	assert.Equal(t, TotalHouses, houses)
	assert.Equal(t, TotalHotels, hotels)
}

func TestHotelUpgradeReturnsHouses(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	for i := 0; i < 8; i++ {
		_, err := l.Build(0, 10000, []int{1, 3}[i%2])
		require.NoError(t, err)
	}
	houses, hotels := l.Inventory()
	assert.Equal(t, TotalHouses-8, houses)

	res, err := l.Build(0, 10000, 1)
	require.NoError(t, err)
	assert.True(t, res.Hotel)
	houses, hotels = l.Inventory()
	assert.Equal(t, TotalHouses-4, houses)
	assert.Equal(t, TotalHotels-1, hotels)

	_, err = l.Build(0, 10000, 1)
	assert.ErrorIs(t, err, ErrMaxDevelopment)
}

func TestBuildFailsWhenStockIsEmpty(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	l.houses = 0
	_, err := l.Build(0, 10000, 1)
	assert.ErrorIs(t, err, ErrNoHousesAvailable)
	assert.Equal(t, 0, l.entries[1].Houses)

	setLevels(l, map[int]int{1: 4, 3: 4})
	l.hotels = 0
	_, err = l.Build(0, 10000, 1)
	assert.ErrorIs(t, err, ErrNoHotelsAvailable)
	assert.Equal(t, 4, l.entries[1].Houses)
}

func TestSellHouse(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, lightblue...)
	setLevels(l, map[int]int{6: 1, 8: 1, 9: 0})
	l.houses -= 2

	_, err := l.SellHouse(0, 9)
	assert.ErrorIs(t, err, ErrNoBuildings)

	res, err := l.SellHouse(0, 6)
	require.NoError(t, err)
	assert.Equal(t, 25, res.Refund)
	assert.Equal(t, 0, res.Level)

	setLevels(l, map[int]int{6: 1, 8: 2, 9: 1})
	_, err = l.SellHouse(0, 6)
	assert.ErrorIs(t, err, ErrUnevenBuilding)
}

func TestSellHotelNeedsFourHouses(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	setLevels(l, map[int]int{1: 5, 3: 5})
	l.hotels -= 2
	l.houses = 3

	_, err := l.SellHouse(0, 1)
	assert.ErrorIs(t, err, ErrNoHousesAvailable)

	l.houses = 4
	res, err := l.SellHouse(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Level)
	houses, hotels := l.Inventory()
	assert.Equal(t, 0, houses)
	assert.Equal(t, TotalHotels-1, hotels)
}

func TestMortgageRules(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	setLevels(l, map[int]int{3: 1})

	_, err := l.Mortgage(0, 1)
	assert.ErrorIs(t, err, ErrDeveloped)

	setLevels(l, map[int]int{3: 0})
	value, err := l.Mortgage(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, value)

	_, err = l.Mortgage(0, 1)
	assert.ErrorIs(t, err, ErrMortgaged)

	_, err = l.Unmortgage(0, 32, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	cost, err := l.Unmortgage(0, 33, 1)
	require.NoError(t, err)
	assert.Equal(t, 33, cost)

	_, err = l.Unmortgage(0, 100, 1)
	assert.ErrorIs(t, err, ErrNotMortgaged)
}

func TestAssetValue(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3, 5)
	setLevels(l, map[int]int{1: 2, 3: 2})
	_, err := l.Mortgage(0, 5)
	require.NoError(t, err)

	// 60+2*50 + 60+2*50 + 200/2
	assert.Equal(t, -10+160+160+100, l.AssetValue(0, -10))
	assert.Equal(t, -10, l.AssetValue(1, -10))
}

func TestRepairs(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3, 5)
	setLevels(l, map[int]int{1: 5, 3: 2})
	assert.Equal(t, 5*25+100+2*25, l.Repairs(0, 25, 100))
	assert.Equal(t, 0, l.Repairs(1, 25, 100))
}

func TestReleaseReturnsBuildings(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, 1, 3)
	setLevels(l, map[int]int{1: 5, 3: 4})
	l.hotels--
	l.houses -= 4

	l.Release(1)
	l.Release(3)
	houses, hotels := l.Inventory()
	assert.Equal(t, TotalHouses, houses)
	assert.Equal(t, TotalHotels, hotels)
	_, ok := l.Entry(1)
	assert.False(t, ok)
}

func TestBuildable(t *testing.T) {
	l := newLedger(t)
	ownAll(l, 0, lightblue...)
	ownAll(l, 0, 1)
	setLevels(l, map[int]int{6: 1, 8: 1})
	l.houses -= 2

	got := l.Buildable(0, 1000)
	require.Len(t, got, 1)
	assert.Equal(t, Buildable{SquareID: 9, Level: 0, Cost: 50}, got[0])

	assert.Empty(t, l.Buildable(0, 10))
}

func TestRestore(t *testing.T) {
	b := board.Load()
	l, err := Restore(b, map[int]models.Ownership{1: {Owner: 0, Houses: 2}, 3: {Owner: 0, Houses: 1}, 5: {Owner: 1, Mortgaged: true}}, 29, 12)
	require.NoError(t, err)
	e, ok := l.Entry(1)
	require.True(t, ok)
	assert.Equal(t, 2, e.Houses)

	_, err = Restore(b, map[int]models.Ownership{2: {Owner: 0}}, 32, 12)
	assert.Error(t, err)
	_, err = Restore(b, map[int]models.Ownership{5: {Owner: 0, Houses: 1}}, 32, 12)
	assert.Error(t, err)
	_, err = Restore(b, nil, -1, 12)
	assert.Error(t, err)
}

func TestRestoreRejectsImpossibleDevelopment(t *testing.T) {
	b := board.Load()
	cases := []struct {
		name    string
		entries map[int]models.Ownership
		houses  int
		hotels  int
	}{
		{"houses counted twice", map[int]models.Ownership{1: {Owner: 0, Houses: 2}, 3: {Owner: 0, Houses: 2}}, 32, 12},
		{"hotels counted twice", map[int]models.Ownership{1: {Owner: 0, Houses: models.HotelLevel}, 3: {Owner: 0, Houses: models.HotelLevel}}, 0, 12},
		{"group split between owners", map[int]models.Ownership{1: {Owner: 0, Houses: 1}, 3: {Owner: 1, Houses: 1}}, 30, 12},
		{"group partly unowned", map[int]models.Ownership{1: {Owner: 0, Houses: 1}}, 31, 12},
		{"uneven", map[int]models.Ownership{1: {Owner: 0, Houses: 3}, 3: {Owner: 0, Houses: 1}}, 28, 12},
		{"mortgaged neighbour", map[int]models.Ownership{1: {Owner: 0, Houses: 1}, 3: {Owner: 0, Mortgaged: true}}, 31, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Restore(b, tc.entries, tc.houses, tc.hotels)
			assert.Error(t, err)
		})
	}

	l, err := Restore(b, map[int]models.Ownership{1: {Owner: 0, Houses: models.HotelLevel}, 3: {Owner: 0, Houses: 4}}, 28, 11)
	require.NoError(t, err)
	_, err = l.SellHouse(0, 1)
	assert.NoError(t, err)
}
