package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/DedS3t/disney-monopoly/app/controllers"
	"github.com/DedS3t/disney-monopoly/pkg/routes"
	"github.com/DedS3t/disney-monopoly/platform/cache"
	"github.com/DedS3t/disney-monopoly/platform/config"
	"github.com/DedS3t/disney-monopoly/platform/database"
	"github.com/DedS3t/disney-monopoly/platform/engine"
	"github.com/DedS3t/disney-monopoly/platform/logging"
	"github.com/DedS3t/disney-monopoly/platform/queries"
	"github.com/DedS3t/disney-monopoly/platform/sessions"
	socket "github.com/DedS3t/disney-monopoly/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("bad configuration")
	}
	logging.Init(cfg.LogLevel)

	db := database.PostgreSQLConnection(cfg)
	defer db.Close()
	if err := database.CreateSchema(db); err != nil {
		logrus.WithError(err).Fatal("cannot create schema")
	}
	games := queries.NewGameQueries(db)

	pool := cache.CreateRedisPool(cfg.RedisURL)
	defer pool.Close()
	store := cache.NewSnapshotStore(pool, cfg.SnapshotTTL)

	var reg *sessions.Registry
	server, err := socket.CreateSocketIOServer(func(id string) bool {
		return reg.View(id, func(*engine.Engine) {}) == nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("cannot create socket.io server")
	}
	defer server.Close()

	reg = sessions.New(store, games, server, sessions.Settings{
		Locale: cfg.Locale,
		Logger: logrus.WithField("service", "monopoly"),
	})
	logrus.WithField("games", reg.Resume()).Info("resumed stored games")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reg.RunClock(ctx, cfg.ClockInterval)

	go server.Serve()
	go func() {
		if err := http.ListenAndServe(cfg.SocketAddr, server.Handler(cfg.AllowedOrigins)); err != nil {
			logrus.WithError(err).Error("socket listener stopped")
		}
	}()

	app := fiber.New()
	app.Use(cors.New(cors.Config{AllowOrigins: strings.Join(cfg.AllowedOrigins, ",")}))

	gc := &controllers.GameController{Sessions: reg, Games: games, Secret: []byte(cfg.JWTSecret)}
	routes.AuthRoutes(app, gc)
	routes.GameRoutes(app, gc)

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Error("http listener stopped")
	}
}
