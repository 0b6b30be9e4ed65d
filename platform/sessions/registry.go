package sessions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/pkg"
	"github.com/DedS3t/disney-monopoly/platform/engine"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const CodeLength = 6

var (
	ErrNotFound    = errors.New("game not found")
	ErrUnknownMode = errors.New("unknown game mode")
	ErrUnavailable = errors.New("snapshot storage unavailable")
)

// SnapshotStore keeps the last snapshot of every live session.
type SnapshotStore interface {
	Save(s models.Snapshot) error
	Load(id string) (models.Snapshot, error)
	Delete(id string) error
	List() ([]string, error)
}

// GameRepository records sessions in the relational store.
type GameRepository interface {
	Create(g *models.Game) error
	MarkFinished(id, winner string, turns int) error
}

// Publisher fans outcome events out to the browsers watching a session.
type Publisher interface {
	Publish(gameID string, events []models.Event)
	GameOver(gameID string, winner models.Player)
}

type Settings struct {
	Locale string
	Logger *logrus.Entry
	// Roller and Now are handed to every engine; nil means real dice and wall time.
	Roller engine.Roller
	Now    func() time.Time
}

type session struct {
	mu     sync.Mutex
	engine *engine.Engine
}

// Registry owns every running engine and serialises the commands sent to each.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session

	store SnapshotStore
	games GameRepository
	pub   Publisher
	set   Settings
	log   *logrus.Entry
}

func New(store SnapshotStore, games GameRepository, pub Publisher, set Settings) *Registry {
	if set.Logger == nil {
		set.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Registry{
		sessions: map[string]*session{},
		store:    store,
		games:    games,
		pub:      pub,
		set:      set,
		log:      set.Logger.WithField("component", "sessions"),
	}
}

func (r *Registry) options(id string) engine.Options {
	return engine.Options{
		ID:     id,
		Roller: r.set.Roller,
		Now:    r.set.Now,
		Locale: r.set.Locale,
		Logger: r.set.Logger,
	}
}

// Create starts a new session and records it.
func (r *Registry) Create(dto models.GameCreateDto) (*models.Game, error) {
	mode := dto.Mode
	if mode == "" {
		mode = "classic"
	}
	cfg, ok := models.ModeConfig(mode, dto.Overrides)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, dto.Mode)
	}

	id := uuid.NewV4().String()
	e, events, err := engine.StartSession(dto.Players, cfg, r.options(id))
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		Id:        id,
		Code:      pkg.RandString(CodeLength),
		Name:      dto.Name,
		Status:    models.GameStatusInProgress,
		Mode:      cfg.Mode,
		Players:   playerNames(e.Players()),
		CreatedAt: e.Snapshot().StartedAt,
	}
	if err := r.games.Create(game); err != nil {
		r.log.WithError(err).WithField("game_id", id).Error("failed recording game")
	}

	r.mu.Lock()
	r.sessions[id] = &session{engine: e}
	r.mu.Unlock()

	r.persist(e)
	r.pub.Publish(id, events)
	r.log.WithFields(logrus.Fields{"game_id": id, "mode": cfg.Mode, "players": len(dto.Players)}).Info("game created")
	return game, nil
}

func (r *Registry) cached(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// lookup restores unknown ids from the store without holding the registry lock.
// Finished games are served from their snapshot but never cached.
func (r *Registry) lookup(id string) (*session, error) {
	if s, ok := r.cached(id); ok {
		return s, nil
	}
	snap, err := r.store.Load(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	e, err := engine.Restore(snap, r.options(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	s := &session{engine: e}
	if e.Phase() == models.PhaseGameOver {
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[id]; ok {
		return existing, nil
	}
	r.sessions[id] = s
	r.log.WithField("game_id", id).Info("game restored from snapshot")
	return s, nil
}

// Do runs one engine command under the session lock. Accepted commands are
// persisted and broadcast; rejected ones change nothing.
func (r *Registry) Do(id string, cmd func(e *engine.Engine) ([]models.Event, error)) ([]models.Event, error) {
	s, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := cmd(s.engine)
	if err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{"game_id": id, "phase": s.engine.Phase()}).Debug("command rejected")
		return nil, err
	}
	r.applied(s.engine, events)
	return events, nil
}

func (r *Registry) applied(e *engine.Engine, events []models.Event) {
	r.persist(e)
	if len(events) > 0 {
		r.pub.Publish(e.ID(), events)
	}
	if winner, over := e.Winner(); over && gameWon(events) {
		r.finish(e, winner)
	}
}

// View reads a session under its lock.
func (r *Registry) View(id string, fn func(e *engine.Engine)) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
	return nil
}

// Save writes the session snapshot and reports storage failures.
func (r *Registry) Save(id string) error {
	s, err := r.lookup(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := r.store.Save(s.engine.Snapshot()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Load throws away the in-memory session and resumes from the stored snapshot.
func (r *Registry) Load(id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	_, err := r.lookup(id)
	return err
}

// Resume restores every session the store still holds.
func (r *Registry) Resume() int {
	ids, err := r.store.List()
	if err != nil {
		r.log.WithError(err).Warn("cannot list stored games")
		return 0
	}
	n := 0
	for _, id := range ids {
		if _, err := r.lookup(id); err != nil {
			r.log.WithError(err).WithField("game_id", id).Warn("dropping unreadable snapshot")
			if err := r.store.Delete(id); err != nil {
				r.log.WithError(err).WithField("game_id", id).Warn("snapshot not deleted")
			}
			continue
		}
		n++
	}
	return n
}

func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Tick ends every session whose time limit has run out. Sessions that are
// already over, or whose clock has not run out, are left untouched.
func (r *Registry) Tick() {
	for _, id := range r.IDs() {
		s, ok := r.cached(id)
		if !ok {
			continue
		}
		s.mu.Lock()
		if s.engine.Phase() != models.PhaseGameOver {
			events, err := s.engine.CheckClock()
			if err != nil {
				r.log.WithError(err).WithField("game_id", id).Warn("clock check failed")
			} else if len(events) > 0 {
				r.applied(s.engine, events)
			}
		}
		s.mu.Unlock()
	}
}

// RunClock calls Tick every interval until ctx is done.
func (r *Registry) RunClock(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Tick()
		}
	}
}

func (r *Registry) persist(e *engine.Engine) {
	if err := r.store.Save(e.Snapshot()); err != nil {
		r.log.WithError(err).WithField("game_id", e.ID()).Warn("snapshot not saved")
	}
}

func (r *Registry) finish(e *engine.Engine, winner int) {
	w := e.Player(winner)
	if err := r.games.MarkFinished(e.ID(), w.Name, e.TurnsPlayed()); err != nil {
		r.log.WithError(err).WithField("game_id", e.ID()).Error("failed closing game record")
	}
	r.pub.GameOver(e.ID(), w)
	r.mu.Lock()
	delete(r.sessions, e.ID())
	r.mu.Unlock()
	r.log.WithFields(logrus.Fields{"game_id": e.ID(), "winner": w.Name}).Info("game over")
}

func gameWon(events []models.Event) bool {
	for _, ev := range events {
		if ev.Kind == models.EventGameWon {
			return true
		}
	}
	return false
}

func playerNames(players []models.Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
