package controllers

import (
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TokenTTL bounds how long a seat token stays valid.
const TokenTTL = 24 * time.Hour

// IssueToken signs a token that lets its holder drive one game.
func IssueToken(gameID string, secret []byte) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["game_id"] = gameID
	claims["exp"] = time.Now().Add(TokenTTL).Unix()
	return token.SignedString(secret)
}

func tokenGame(c *fiber.Ctx) (string, bool) {
	user, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := user.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	gameID, ok := claims["game_id"].(string)
	return gameID, ok
}

// Authorize lets a request through only when its token was issued for the game in the path.
func (gc *GameController) Authorize(c *fiber.Ctx) error {
	gameID, ok := tokenGame(c)
	if !ok || gameID != c.Params("id") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "token is not valid for this game"})
	}
	return c.Next()
}

// JoinGame hands a token to another browser at the table, given the share code.
func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	joinGameDto := new(models.JoinGameDto)
	if err := c.BodyParser(joinGameDto); err != nil {
		return unprocessable(c, err)
	}
	game, err := gc.Games.FindByCode(joinGameDto.Code)
	if err != nil || game.Status != models.GameStatusInProgress {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no game with that code"})
	}
	t, err := IssueToken(game.Id, gc.Secret)
	if err != nil {
		logrus.WithError(err).Error("cannot sign session token")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"id": game.Id, "access_token": t})
}

func Cur(c *fiber.Ctx) error {
	gameID, ok := tokenGame(c)
	if !ok {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.SendString(gameID)
}
