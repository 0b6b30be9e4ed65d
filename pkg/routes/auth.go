package routes

import (
	"github.com/DedS3t/disney-monopoly/app/controllers"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

func AuthRoutes(a *fiber.App, gc *controllers.GameController) {
	route := a.Group("/session")

	route.Post("/join", gc.JoinGame)
	route.Get("/cur", jwtware.New(jwtware.Config{SigningKey: gc.Secret}), controllers.Cur)
}
