package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/go-pg/pg/v10"
)

var ErrNoGame = errors.New("no game with that code")

// GameQueries reads and writes the games table.
type GameQueries struct {
	db  *pg.DB
	now func() time.Time
}

func NewGameQueries(db *pg.DB) *GameQueries {
	return &GameQueries{db: db, now: time.Now}
}

func (q *GameQueries) Create(game *models.Game) error {
	game.Code = NormalizeCode(game.Code)
	_, err := q.db.Model(game).Insert()
	return err
}

func (q *GameQueries) MarkFinished(id, winner string, turns int) error {
	game := &models.Game{Id: id}
	res, err := q.db.Model(game).WherePK().
		Set("status = ?", models.GameStatusFinished).
		Set("winner = ?", winner).
		Set("turns_played = ?", turns).
		Set("finished_at = ?", q.now().UTC()).
		Update()
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("mark finished %s: %w", id, ErrNoGame)
	}
	return nil
}

// FindByCode looks up a game by the join code players type in.
func (q *GameQueries) FindByCode(code string) (*models.Game, error) {
	game := new(models.Game)
	err := q.db.Model(game).Where("code = ?", NormalizeCode(code)).Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrNoGame
	}
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (q *GameQueries) ListInProgress() ([]models.Game, error) {
	var games []models.Game
	err := q.db.Model(&games).
		Where("status = ?", models.GameStatusInProgress).
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, err
	}
	return VisibleGames(games), nil
}
