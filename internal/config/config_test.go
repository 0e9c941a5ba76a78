package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10, cfg.DBMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.DBRetryDelay)
	assert.Equal(t, 500, cfg.SeedMax)
	assert.False(t, cfg.IsProduction())
}

func TestParse_ReleaseRequiresSSL(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_SSLMODE", "")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "require", cfg.DBSSLMode)
}

func TestParse_AuthUsers(t *testing.T) {
	t.Setenv("AUTH_USERS", "ana:administrator:s3cret,bo:editor:t0ken")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"ana:administrator:s3cret", "bo:editor:t0ken"}, cfg.AuthUsers)
}

func TestValidate_Errors(t *testing.T) {
	base := func() *Config {
		return &Config{DBDriver: "sqlite", DBPath: "x.db", DBMaxAttempts: 1, SeedMax: 10}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }, "DB_DRIVER"},
		{"postgres without host", func(c *Config) { c.DBDriver = "postgres" }, "DB_HOST"},
		{"no attempts", func(c *Config) { c.DBMaxAttempts = 0 }, "DB_MAX_ATTEMPTS"},
		{"negative rate", func(c *Config) { c.RateLimitRPS = -1 }, "RATE_LIMIT"},
		{"zero seed max", func(c *Config) { c.SeedMax = 0 }, "SEED_MAX"},
		{"bad user", func(c *Config) { c.AuthUsers = []string{"ana:admin"} }, "AUTH_USERS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.want), "got %v", err)
		})
	}

	assert.NoError(t, base().Validate())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBUser: "u", DBPass: "p", DBName: "books",
		DBPort: "5432", DBSSLMode: "disable", TZ: "UTC",
	}

	assert.Equal(t,
		"host=db user=u password=p dbname=books port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
