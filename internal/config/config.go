package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const devEnvFile = ".env.dev"

type Config struct {
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	TZ       string `env:"TZ" envDefault:"UTC"`

	DBDriver      string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath        string        `env:"DB_PATH" envDefault:"data/bookshelf.db"`
	DBHost        string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT" envDefault:"5432"`
	DBUser        string        `env:"DB_USER" envDefault:"postgres"`
	DBPass        string        `env:"DB_PASS"`
	DBName        string        `env:"DB_NAME" envDefault:"bookshelf"`
	DBSSLMode     string        `env:"DB_SSLMODE"`
	DBMaxAttempts int           `env:"DB_MAX_ATTEMPTS" envDefault:"10"`
	DBRetryDelay  time.Duration `env:"DB_RETRY_DELAY" envDefault:"2s"`

	// AuthUsers holds "login:role:token" triples.
	AuthUsers []string `env:"AUTH_USERS" envSeparator:","`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	SeedMax int `env:"SEED_MAX" envDefault:"500"`
}

// Load reads .env files and the environment. In debug mode the nearest
// .env.dev found walking up from the working directory is loaded first.
func Load() (*Config, error) {
	if getenv("GIN_MODE", "debug") == "debug" {
		if root := findRepoRoot(); root != "" {
			envPath := filepath.Join(root, devEnvFile)
			if err := godotenv.Load(envPath); err != nil {
				slog.Warn("could not load env file", "path", envPath, "error", err)
			} else {
				slog.Debug("loaded env file", "path", envPath)
			}
		}
	}

	// A plain .env next to the binary is optional.
	_ = godotenv.Load()

	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required when DB_DRIVER is sqlite")
		}
	case "postgres":
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required when DB_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DBDriver)
	}

	if c.DBMaxAttempts < 1 {
		return fmt.Errorf("DB_MAX_ATTEMPTS must be at least 1")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST cannot be negative")
	}
	if c.SeedMax < 1 {
		return fmt.Errorf("SEED_MAX must be at least 1")
	}

	for _, u := range c.AuthUsers {
		if len(strings.Split(strings.TrimSpace(u), ":")) != 3 {
			return fmt.Errorf("AUTH_USERS entry %q must look like login:role:token", u)
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func findRepoRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, devEnvFile)); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
