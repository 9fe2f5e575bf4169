package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Port            string   `env:"PORT" envDefault:"8001"`
	APIPrefix       string   `env:"API_PREFIX" envDefault:"/api"`
	StoreDriver     string   `env:"STORE_DRIVER" envDefault:"postgres"`
	DatabaseURL     string   `env:"DATABASE_URL"`
	AcceptedOrigins []string `env:"ACCEPTED_ORIGINS" envSeparator:"," envDefault:"*"`

	ReadTimeoutSeconds     int `env:"READ_TIMEOUT_SECONDS" envDefault:"180"`
	WriteTimeoutSeconds    int `env:"WRITE_TIMEOUT_SECONDS" envDefault:"180"`
	IdleTimeoutSeconds     int `env:"IDLE_TIMEOUT_SECONDS" envDefault:"180"`
	ShutdownTimeoutSeconds int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"30"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	ServiceName    string `env:"SERVICE_NAME" envDefault:"Vinoth Kumar Portfolio API"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"1.0.0"`

	SeedOnStart bool `env:"SEED_ON_START" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using existing environment variables")
	}
	return Parse()
}

// Parse builds a Config from the process environment alone.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	c.APIPrefix = normalizePrefix(c.APIPrefix)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORE_DRIVER is postgres")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port) // Bind to 0.0.0.0 for external access
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// normalizePrefix returns "/x" for "x", "/x/" or "/x", and "" for "/".
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
