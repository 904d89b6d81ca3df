package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:        "development",
			DatabaseName:       "flagfootball",
			JWTSecret:          defaultJWTSecret,
			JWTExpirationHours: 24,
			QRSize:             300,
		}
	}

	t.Run("development accepts default secret", func(t *testing.T) {
		assert.NoError(t, validate(base()))
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := base()
		cfg.Environment = "production"
		assert.Error(t, validate(cfg))

		cfg.JWTSecret = "a-real-secret"
		assert.NoError(t, validate(cfg))
	})

	t.Run("rejects tiny QR size", func(t *testing.T) {
		cfg := base()
		cfg.QRSize = 10
		assert.Error(t, validate(cfg))
	})

	t.Run("rejects non-positive expiration", func(t *testing.T) {
		cfg := base()
		cfg.JWTExpirationHours = 0
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5432",
		DatabaseName:     "league",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/league?sslmode=disable", buildDatabaseURL(cfg))
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitOrigins(" http://a, ,http://b "))
}
