package board

import (
	"testing"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	b := Load()
	require.Len(t, b, Size)

	assert.Equal(t, models.SquareGo, b[GoPosition].Type)
	assert.Equal(t, models.SquareJail, b[JailPosition].Type)
	assert.Equal(t, models.SquareGoToJail, b[GoToJailPosition].Type)
	assert.Equal(t, models.SquareParking, b[ParkingPosition].Type)
	assert.Equal(t, StationPositions, b.OfType(models.SquareStation))
	assert.Equal(t, []int{12, 28}, b.OfType(models.SquareUtility))
	assert.Equal(t, 75, b[4].TaxAmount)
	assert.Equal(t, 28, len(b.Ownable()))
}

func TestGroup(t *testing.T) {
	b := Load()
	assert.Equal(t, []int{1, 3}, b.Group("brown"))
	assert.Equal(t, []int{6, 8, 9}, b.Group("lightblue"))
	assert.Equal(t, []int{37, 39}, b.Group("darkblue"))
	assert.Empty(t, b.Group("purple"))

	total := 0
	for _, g := range Groups {
		total += len(b.Group(g.Key))
	}
	assert.Equal(t, len(b.OfType(models.SquareProperty)), total)
}

func TestValidateRejectsBrokenBoard(t *testing.T) {
	b := append(Board(nil), Load()...)
	b[30].Type = models.SquareParking
	assert.Error(t, b.Validate())

	assert.Error(t, Load()[:39].Validate())
}

func TestGetByPos(t *testing.T) {
	b := Load()
	sq, err := b.GetByPos(39)
	require.NoError(t, err)
	assert.Equal(t, "Raya", sq.Name)

	_, err = b.GetByPos(40)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, 3, Advance(35, 8))
	assert.Equal(t, 0, Advance(39, 1))
	assert.Equal(t, 39, Advance(2, -3))
}

func TestNextStation(t *testing.T) {
	tests := []struct {
		pos     int
		station int
		wrapped bool
	}{
		{pos: 0, station: 5},
		{pos: 5, station: 15},
		{pos: 7, station: 15},
		{pos: 22, station: 25},
		{pos: 35, station: 5, wrapped: true},
		{pos: 36, station: 5, wrapped: true},
	}
	for _, tt := range tests {
		station, wrapped := NextStation(tt.pos)
		assert.Equal(t, tt.station, station, "from %d", tt.pos)
		assert.Equal(t, tt.wrapped, wrapped, "from %d", tt.pos)
	}
}
