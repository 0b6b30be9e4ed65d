package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is read once at startup from the environment and an optional .env file.
type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":4101"`
	SocketAddr string `env:"SOCKET_ADDR" envDefault:":8000"`

	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBAddr     string `env:"DB_ADDR" envDefault:"localhost:5432"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"monopoly"`

	RedisURL string `env:"REDIS_URL" envDefault:"localhost:6379"`

	JWTSecret      string   `env:"JWT_SECRET,required,notEmpty"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Locale   string `env:"GAME_LOCALE" envDefault:"ca"`

	SnapshotTTL   time.Duration `env:"SNAPSHOT_TTL" envDefault:"24h"`
	ClockInterval time.Duration `env:"CLOCK_INTERVAL" envDefault:"30s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
