package controllers

import (
	"errors"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/engine"
	"github.com/DedS3t/disney-monopoly/platform/ledger"
	"github.com/DedS3t/disney-monopoly/platform/sessions"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// GameFinder answers lobby queries from the games table.
type GameFinder interface {
	FindByCode(code string) (*models.Game, error)
	ListInProgress() ([]models.Game, error)
}

type GameController struct {
	Sessions *sessions.Registry
	Games    GameFinder
	Secret   []byte
}

var badInput = []error{
	engine.ErrInvalidJailOption,
	engine.ErrPlayerCount,
	engine.ErrInvalidPlayer,
	engine.ErrInvalidConfig,
	sessions.ErrUnknownMode,
}

func commandError(c *fiber.Ctx, err error) error {
	status := fiber.StatusConflict
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, sessions.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	default:
		for _, bad := range badInput {
			if errors.Is(err, bad) {
				status = fiber.StatusUnprocessableEntity
				break
			}
		}
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func unprocessable(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return unprocessable(c, err)
	}

	game, err := gc.Sessions.Create(*gameCreateDto)
	if err != nil {
		return commandError(c, err)
	}
	token, err := IssueToken(game.Id, gc.Secret)
	if err != nil {
		logrus.WithError(err).Error("cannot sign session token")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           game.Id,
		"code":         game.Code,
		"access_token": token,
	})
}

func (gc *GameController) GetAllAvailGames(c *fiber.Ctx) error {
	games, err := gc.Games.ListInProgress()
	if err != nil {
		logrus.WithError(err).Error("cannot list games")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func (gc *GameController) VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return unprocessable(c, err)
	}
	game, err := gc.Games.FindByCode(verifyGameDto.Code)
	if err != nil || game.Status != models.GameStatusInProgress {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true, "name": game.Name})
}

func (gc *GameController) GetModes(c *fiber.Ctx) error {
	return c.JSON(models.GameModes)
}

func (gc *GameController) GetTokens(c *fiber.Ctx) error {
	return c.JSON(models.Tokens)
}

func (gc *GameController) State(c *fiber.Ctx) error {
	var state fiber.Map
	err := gc.Sessions.View(c.Params("id"), func(e *engine.Engine) {
		state = stateOf(e)
	})
	if err != nil {
		return commandError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) Buildable(c *fiber.Ctx) error {
	list := []ledger.Buildable{}
	err := gc.Sessions.View(c.Params("id"), func(e *engine.Engine) {
		list = append(list, e.Buildable()...)
	})
	if err != nil {
		return commandError(c, err)
	}
	return c.JSON(list)
}

func (gc *GameController) command(c *fiber.Ctx, cmd func(e *engine.Engine) ([]models.Event, error)) error {
	events, err := gc.Sessions.Do(c.Params("id"), cmd)
	if err != nil {
		return commandError(c, err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return c.JSON(fiber.Map{"events": events})
}

func (gc *GameController) squareCommand(c *fiber.Ctx, cmd func(e *engine.Engine, square int) ([]models.Event, error)) error {
	dto := new(models.SquareDto)
	if err := c.BodyParser(dto); err != nil {
		return unprocessable(c, err)
	}
	return gc.command(c, func(e *engine.Engine) ([]models.Event, error) {
		return cmd(e, dto.Square)
	})
}

func (gc *GameController) RollDice(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).RollDice)
}

func (gc *GameController) DecidePurchase(c *fiber.Ctx) error {
	dto := new(models.PurchaseDto)
	if err := c.BodyParser(dto); err != nil {
		return unprocessable(c, err)
	}
	return gc.command(c, func(e *engine.Engine) ([]models.Event, error) {
		return e.DecidePurchase(dto.Accept)
	})
}

func (gc *GameController) PayRent(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).PayRent)
}

func (gc *GameController) AcknowledgeRent(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).AcknowledgeRent)
}

func (gc *GameController) ResolveCard(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).ResolveCard)
}

func (gc *GameController) BuildHouse(c *fiber.Ctx) error {
	return gc.squareCommand(c, (*engine.Engine).BuildHouse)
}

func (gc *GameController) SellHouse(c *fiber.Ctx) error {
	return gc.squareCommand(c, (*engine.Engine).SellHouse)
}

func (gc *GameController) Mortgage(c *fiber.Ctx) error {
	return gc.squareCommand(c, (*engine.Engine).Mortgage)
}

func (gc *GameController) Unmortgage(c *fiber.Ctx) error {
	return gc.squareCommand(c, (*engine.Engine).Unmortgage)
}

func (gc *GameController) ResolveJailChoice(c *fiber.Ctx) error {
	dto := new(models.JailChoiceDto)
	if err := c.BodyParser(dto); err != nil {
		return unprocessable(c, err)
	}
	return gc.command(c, func(e *engine.Engine) ([]models.Event, error) {
		return e.ResolveJailChoice(engine.JailOption(dto.Option))
	})
}

func (gc *GameController) PlaceBid(c *fiber.Ctx) error {
	dto := new(models.BidDto)
	if err := c.BodyParser(dto); err != nil {
		return unprocessable(c, err)
	}
	return gc.command(c, func(e *engine.Engine) ([]models.Event, error) {
		return e.PlaceBid(dto.Amount)
	})
}

func (gc *GameController) PassBid(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).PassBid)
}

func (gc *GameController) DeclareBankruptcy(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).DeclareBankruptcy)
}

func (gc *GameController) EndTurn(c *fiber.Ctx) error {
	return gc.command(c, (*engine.Engine).EndTurnIfEligible)
}

func (gc *GameController) SaveGame(c *fiber.Ctx) error {
	if err := gc.Sessions.Save(c.Params("id")); err != nil {
		return commandError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (gc *GameController) LoadGame(c *fiber.Ctx) error {
	if err := gc.Sessions.Load(c.Params("id")); err != nil {
		return commandError(c, err)
	}
	return gc.State(c)
}

func stateOf(e *engine.Engine) fiber.Map {
	s := e.Snapshot()
	state := fiber.Map{
		"id":              s.ID,
		"phase":           s.Phase,
		"currentPlayer":   s.CurrentPlayer,
		"players":         s.Players,
		"stats":           s.Stats,
		"properties":      s.Properties,
		"availableHouses": s.AvailableHouses,
		"availableHotels": s.AvailableHotels,
		"turn":            s.Turn,
		"turnsPlayed":     s.TurnsPlayed,
		"config":          s.Config,
		"history":         s.History,
	}
	netWorth := make([]int, len(s.Players))
	for i := range s.Players {
		netWorth[i] = e.NetWorth(i)
	}
	state["netWorth"] = netWorth
	if sq, ok := e.PendingPurchase(); ok {
		state["pendingPurchase"] = sq
	}
	if rent, ok := e.PendingRent(); ok {
		state["pendingRent"] = rent
	}
	if card, ok := e.PendingCard(); ok {
		state["pendingCard"] = card
	}
	if a, ok := e.Auction(); ok {
		state["auction"] = a
		if bidder, ok := e.Bidder(); ok {
			state["bidder"] = bidder
		}
	}
	if winner, ok := e.Winner(); ok {
		state["winner"] = winner
	}
	return state
}
