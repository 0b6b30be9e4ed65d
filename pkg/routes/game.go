package routes

import (
	"github.com/DedS3t/disney-monopoly/app/controllers"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

func GameRoutes(a *fiber.App, gc *controllers.GameController) {
	route := a.Group("/game")
	route.Post("/create", gc.CreateGame)
	route.Get("/verify", gc.VerifyGame)
	route.Get("/all", gc.GetAllAvailGames)
	route.Get("/modes", gc.GetModes)
	route.Get("/tokens", gc.GetTokens)

	play := route.Group("/:id", jwtware.New(jwtware.Config{SigningKey: gc.Secret}), gc.Authorize)
	play.Get("/state", gc.State)
	play.Get("/buildable", gc.Buildable)
	play.Post("/roll", gc.RollDice)
	play.Post("/purchase", gc.DecidePurchase)
	play.Post("/rent/pay", gc.PayRent)
	play.Post("/rent/ack", gc.AcknowledgeRent)
	play.Post("/card/resolve", gc.ResolveCard)
	play.Post("/build", gc.BuildHouse)
	play.Post("/sell", gc.SellHouse)
	play.Post("/mortgage", gc.Mortgage)
	play.Post("/unmortgage", gc.Unmortgage)
	play.Post("/jail", gc.ResolveJailChoice)
	play.Post("/auction/bid", gc.PlaceBid)
	play.Post("/auction/pass", gc.PassBid)
	play.Post("/bankrupt", gc.DeclareBankruptcy)
	play.Post("/end-turn", gc.EndTurn)
	play.Post("/save", gc.SaveGame)
	play.Post("/load", gc.LoadGame)
}
