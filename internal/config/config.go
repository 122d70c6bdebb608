package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Store    Store    `envPrefix:"STORE_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
	Kafka    Kafka    `envPrefix:"KAFKA_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host      string  `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port      string  `env:"HTTP_PORT" envDefault:"8080"`
	StaticDir string  `env:"HTTP_STATIC_DIR"`
	RateLimit float64 `env:"HTTP_RATE_LIMIT" envDefault:"20"` // order submissions per second per client
}

func (h HTTPServer) Addr() string {
	return h.Host + ":" + h.Port
}

type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"` // memory, sqlite, mysql
	DSN    string `env:"DSN" envDefault:"file::memory:?cache=shared"`
}

type Auth struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

type Checkout struct {
	// VerifyPricing recomputes order totals against the catalog instead of
	// trusting the client.
	VerifyPricing bool `env:"VERIFY_PRICING" envDefault:"false"`
}

type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"orders.placed"`
}

// Load reads an optional .env file into the environment and parses it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.Store.Driver {
	case "memory", "sqlite", "mysql":
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}
