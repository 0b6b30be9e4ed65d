package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/board"
	"github.com/DedS3t/disney-monopoly/platform/cards"
	"github.com/DedS3t/disney-monopoly/platform/ledger"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	MinPlayers            = 2
	MaxPlayers            = 6
	MaxConsecutiveDoubles = 3
	HistoryLimit          = 100
)

// Roller produces two dice values in [1,6].
type Roller interface {
	Roll() (int, int)
}

type randomRoller struct {
	rng *rand.Rand
}

func (r randomRoller) Roll() (int, int) {
	return r.rng.Intn(6) + 1, r.rng.Intn(6) + 1
}

type Options struct {
	ID     string
	Roller Roller
	// Rand shuffles the decks and deals initial properties.
	Rand   *rand.Rand
	Now    func() time.Time
	Locale string
	Logger *logrus.Entry
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Roller == nil {
		o.Roller = randomRoller{rng: o.Rand}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Locale == "" {
		o.Locale = "en"
	}
	if o.Logger == nil {
		o.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	o.Logger = o.Logger.WithField("game_id", o.ID)
	return o
}

// Engine is the rules state machine of one session. It is not safe for concurrent use.
type Engine struct {
	id      string
	cfg     models.Config
	board   board.Board
	printed map[models.DeckKind][]models.Card

	players []models.Player
	stats   []models.Stats
	current int
	phase   models.Phase
	turn    models.TurnState

	pendingPurchase *int
	pendingRent     *models.PendingRent
	pendingCard     *models.PendingCard
	auction         *models.Auction

	ledger *ledger.Ledger
	chance *cards.Deck
	chest  *cards.Deck

	turnsPlayed int
	winner      int
	startedAt   time.Time

	seq     int
	history []models.Event
	out     []models.Event

	roller  Roller
	now     func() time.Time
	printer *message.Printer
	log     *logrus.Entry
}

func newEngine(cfg models.Config, opts Options) *Engine {
	return &Engine{
		id:      opts.ID,
		cfg:     cfg,
		board:   board.Load(),
		printed: cards.LoadSpecial(),
		winner:  -1,
		roller:  opts.Roller,
		now:     opts.Now,
		printer: message.NewPrinter(language.Make(opts.Locale)),
		log:     opts.Logger,
	}
}

func validateConfig(cfg models.Config, players int) error {
	switch {
	case cfg.StartingMoney <= 0:
		return fmt.Errorf("%w: starting money must be positive", ErrInvalidConfig)
	case cfg.GoReward < 0, cfg.JailFine < 0:
		return fmt.Errorf("%w: negative reward or fine", ErrInvalidConfig)
	case cfg.MaxJailTurns < 1:
		return fmt.Errorf("%w: max jail turns must be at least 1", ErrInvalidConfig)
	case cfg.MaxTurns < 0, cfg.TimeLimitMinutes < 0, cfg.InitialProperties < 0:
		return fmt.Errorf("%w: negative limit", ErrInvalidConfig)
	case cfg.InitialProperties*players > len(board.Load().Ownable()):
		return fmt.Errorf("%w: not enough properties to deal %d each", ErrInvalidConfig, cfg.InitialProperties)
	}
	return nil
}

// StartSession seats the players, shuffles both decks and deals any initial properties.
func StartSession(setup []models.PlayerDto, cfg models.Config, opts Options) (*Engine, []models.Event, error) {
	if len(setup) < MinPlayers || len(setup) > MaxPlayers {
		return nil, nil, ErrPlayerCount
	}
	tokens := map[string]bool{}
	for _, p := range setup {
		if p.Name == "" || !models.KnownToken(p.Token) || tokens[p.Token] {
			return nil, nil, ErrInvalidPlayer
		}
		tokens[p.Token] = true
	}
	if cfg.MaxJailTurns == 0 {
		cfg.MaxJailTurns = 3
	}
	if err := validateConfig(cfg, len(setup)); err != nil {
		return nil, nil, err
	}

	opts = opts.withDefaults()
	e := newEngine(cfg, opts)
	e.startedAt = e.now().UTC()
	e.ledger = ledger.New(e.board)
	e.chance = cards.NewDeck(models.DeckChance, e.printed[models.DeckChance], opts.Rand)
	e.chest = cards.NewDeck(models.DeckChest, e.printed[models.DeckChest], opts.Rand)
	for _, p := range setup {
		e.players = append(e.players, models.Player{
			Name:       p.Name,
			Token:      p.Token,
			Money:      cfg.StartingMoney,
			Properties: []int{},
		})
	}
	e.stats = make([]models.Stats, len(setup))
	e.dealInitialProperties(opts.Rand)
	e.phase = models.PhaseAwaitRoll

	ev := e.event(models.EventTurnChanged, 0, -1)
	ev.Message = e.printer.Sprintf("%s's turn. Roll the dice!", e.players[0].Name)
	e.emit(ev)

	e.log.WithFields(logrus.Fields{"players": len(setup), "mode": cfg.Mode}).Info("session started")
	return e, e.flush(), nil
}

func (e *Engine) dealInitialProperties(rng *rand.Rand) {
	if e.cfg.InitialProperties == 0 {
		return
	}
	pool := e.board.Ownable()
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	next := 0
	for round := 0; round < e.cfg.InitialProperties; round++ {
		for i := range e.players {
			id := pool[next]
			next++
			e.ledger.Acquire(id, i)
			e.players[i].Properties = append(e.players[i].Properties, id)
			ev := e.event(models.EventPropertyAssigned, i, id)
			ev.Message = e.printer.Sprintf("%s starts with %s", e.players[i].Name, e.board[id].Name)
			e.emit(ev)
		}
	}
}

// Restore rebuilds an engine from a snapshot taken by Snapshot.
func Restore(s models.Snapshot, opts Options) (*Engine, error) {
	if len(s.Players) < MinPlayers || len(s.Players) > MaxPlayers || len(s.Stats) != len(s.Players) {
		return nil, fmt.Errorf("%w: %d players, %d stats", ErrInvalidSnapshot, len(s.Players), len(s.Stats))
	}
	if s.CurrentPlayer < 0 || s.CurrentPlayer >= len(s.Players) {
		return nil, fmt.Errorf("%w: current player %d", ErrInvalidSnapshot, s.CurrentPlayer)
	}
	if err := validateConfig(s.Config, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if opts.ID == "" {
		opts.ID = s.ID
	}
	opts = opts.withDefaults()
	e := newEngine(s.Config, opts)

	var err error
	if e.ledger, err = ledger.Restore(e.board, s.Properties, s.AvailableHouses, s.AvailableHotels); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if e.chance, err = cards.RestoreDeck(models.DeckChance, e.printed[models.DeckChance], s.ChanceDeck); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if e.chest, err = cards.RestoreDeck(models.DeckChest, e.printed[models.DeckChest], s.ChestDeck); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	for i, p := range s.Players {
		p.Properties = append([]int{}, p.Properties...)
		owned := e.ledger.OwnedBy(i)
		if len(owned) != len(p.Properties) {
			return nil, fmt.Errorf("%w: player %d holdings disagree with the ledger", ErrInvalidSnapshot, i)
		}
		for _, id := range owned {
			if !p.Owns(id) {
				return nil, fmt.Errorf("%w: player %d does not list square %d", ErrInvalidSnapshot, i, id)
			}
		}
		e.players = append(e.players, p)
	}
	e.stats = append([]models.Stats{}, s.Stats...)
	e.current = s.CurrentPlayer
	e.phase = s.Phase
	e.turn = s.Turn
	if s.PendingPurchase != nil {
		id := *s.PendingPurchase
		e.pendingPurchase = &id
	}
	if s.PendingRent != nil {
		r := *s.PendingRent
		e.pendingRent = &r
	}
	if s.PendingCard != nil {
		c := *s.PendingCard
		e.pendingCard = &c
	}
	if s.Auction != nil {
		a := *s.Auction
		a.Bidders = append([]int{}, a.Bidders...)
		e.auction = &a
	}
	if err := e.checkPending(); err != nil {
		return nil, err
	}
	e.turnsPlayed = s.TurnsPlayed
	e.winner = s.Winner
	e.startedAt = s.StartedAt
	e.seq = s.EventSeq
	e.history = append([]models.Event{}, s.History...)
	return e, nil
}

func (e *Engine) checkPending() error {
	ok := true
	switch e.phase {
	case models.PhaseAwaitPurchase:
		ok = e.pendingPurchase != nil
	case models.PhaseAwaitRent:
		ok = e.pendingRent != nil
	case models.PhaseAwaitCard:
		ok = e.pendingCard != nil
	case models.PhaseAwaitAuction:
		ok = e.auction != nil && len(e.auction.Bidders) > 0
	case models.PhaseAwaitRoll, models.PhaseAwaitJailChoice, models.PhaseTurnOver, models.PhaseGameOver:
	default:
		ok = false
	}
	if !ok {
		return fmt.Errorf("%w: phase %q without its pending decision", ErrInvalidSnapshot, e.phase)
	}
	return nil
}

// Snapshot copies the whole session into its save format.
func (e *Engine) Snapshot() models.Snapshot {
	houses, hotels := e.ledger.Inventory()
	s := models.Snapshot{
		ID:              e.id,
		CurrentPlayer:   e.current,
		Phase:           e.phase,
		Turn:            e.turn,
		Properties:      e.ledger.Entries(),
		AvailableHouses: houses,
		AvailableHotels: hotels,
		ChanceDeck:      e.chance.Order(),
		ChestDeck:       e.chest.Order(),
		Stats:           append([]models.Stats{}, e.stats...),
		TurnsPlayed:     e.turnsPlayed,
		Config:          e.cfg,
		StartedAt:       e.startedAt,
		Winner:          e.winner,
		EventSeq:        e.seq,
		History:         append([]models.Event{}, e.history...),
	}
	s.Players = e.Players()
	if e.pendingPurchase != nil {
		id := *e.pendingPurchase
		s.PendingPurchase = &id
	}
	if e.pendingRent != nil {
		r := *e.pendingRent
		s.PendingRent = &r
	}
	if e.pendingCard != nil {
		c := *e.pendingCard
		s.PendingCard = &c
	}
	if e.auction != nil {
		a := *e.auction
		a.Bidders = append([]int{}, a.Bidders...)
		s.Auction = &a
	}
	return s
}

func (e *Engine) ID() string {
	return e.id
}

func (e *Engine) Config() models.Config {
	return e.cfg
}

func (e *Engine) Board() board.Board {
	return e.board
}

func (e *Engine) Phase() models.Phase {
	return e.phase
}

func (e *Engine) CurrentPlayerIndex() int {
	return e.current
}

func (e *Engine) CurrentPlayer() models.Player {
	return e.Player(e.current)
}

func (e *Engine) Player(i int) models.Player {
	p := e.players[i]
	p.Properties = append([]int{}, p.Properties...)
	return p
}

func (e *Engine) Players() []models.Player {
	out := make([]models.Player, len(e.players))
	for i := range e.players {
		out[i] = e.Player(i)
	}
	return out
}

func (e *Engine) Ownership(squareID int) (models.Ownership, bool) {
	return e.ledger.Entry(squareID)
}

func (e *Engine) Inventory() (houses int, hotels int) {
	return e.ledger.Inventory()
}

func (e *Engine) Stats(i int) models.Stats {
	return e.stats[i]
}

func (e *Engine) TurnsPlayed() int {
	return e.turnsPlayed
}

// Winner returns the winning seat once the game is over.
func (e *Engine) Winner() (int, bool) {
	return e.winner, e.phase == models.PhaseGameOver && e.winner >= 0
}

func (e *Engine) NetWorth(i int) int {
	return e.ledger.AssetValue(i, e.players[i].Money)
}

func (e *Engine) PendingPurchase() (models.Square, bool) {
	if e.pendingPurchase == nil {
		return models.Square{}, false
	}
	return e.board[*e.pendingPurchase], true
}

func (e *Engine) PendingRent() (models.PendingRent, bool) {
	if e.pendingRent == nil {
		return models.PendingRent{}, false
	}
	return *e.pendingRent, true
}

func (e *Engine) PendingCard() (models.Card, bool) {
	if e.pendingCard == nil {
		return models.Card{}, false
	}
	return e.card(*e.pendingCard), true
}

func (e *Engine) Auction() (models.Auction, bool) {
	if e.auction == nil {
		return models.Auction{}, false
	}
	a := *e.auction
	a.Bidders = append([]int{}, a.Bidders...)
	return a, true
}

// Buildable lists where the current player may build right now.
func (e *Engine) Buildable() []ledger.Buildable {
	p := e.players[e.current]
	if p.Bankrupt {
		return nil
	}
	return e.ledger.Buildable(e.current, p.Money)
}

func (e *Engine) History() []models.Event {
	return append([]models.Event{}, e.history...)
}

func (e *Engine) card(ref models.PendingCard) models.Card {
	deck := e.chance
	if ref.Deck == models.DeckChest {
		deck = e.chest
	}
	c, ok := deck.Card(ref.CardID)
	if !ok {
		panic(fmt.Sprintf("engine: pending card %s/%d is not in its deck", ref.Deck, ref.CardID))
	}
	return c
}

func (e *Engine) activeCount() int {
	n := 0
	for _, p := range e.players {
		if !p.Bankrupt {
			n++
		}
	}
	return n
}
