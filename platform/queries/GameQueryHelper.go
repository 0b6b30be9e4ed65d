package queries

import (
	"strings"

	"github.com/DedS3t/disney-monopoly/app/models"
)

// NormalizeCode makes join codes case- and space-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// VisibleGames drops records that were never given a join code.
func VisibleGames(games []models.Game) []models.Game {
	out := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.Code == "" {
			continue
		}
		out = append(out, g)
	}
	return out
}
