package queries

import (
	"testing"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "AB12CD", NormalizeCode(" ab12cd\n"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestVisibleGames(t *testing.T) {
	games := []models.Game{{Id: "1", Code: "AAA"}, {Id: "2"}, {Id: "3", Code: "BBB"}}
	got := VisibleGames(games)
	assert.Equal(t, []models.Game{{Id: "1", Code: "AAA"}, {Id: "3", Code: "BBB"}}, got)
	assert.Empty(t, VisibleGames(nil))
}
