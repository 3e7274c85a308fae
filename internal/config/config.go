package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from environment variables.
// It is built once at startup and passed by value to the components that need it.
type Config struct {
	ServerPort       string   `env:"PORT" envDefault:"5000"`
	MySQLDSN         string   `env:"DATABASE_URL" envDefault:"user:password@tcp(localhost:3306)/burritos?charset=utf8mb4&parseTime=True&loc=Local"`
	JWTSecret        string   `env:"JWT_SECRET"`
	PasswordCost     int      `env:"PASSWORD_COST" envDefault:"10"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir        string   `env:"STATIC_DIR" envDefault:"public"`
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	SwaggerHost      string   `env:"SWAGGER_HOST"`
	ResetDB          bool     `env:"RESET_DB"`
}

var (
	// ErrMissingJWTSecret is returned when JWT_SECRET is not set.
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")
	// ErrInvalidPasswordCost is returned when PASSWORD_COST is outside bcrypt's range.
	ErrInvalidPasswordCost = errors.New("PASSWORD_COST out of range")
)

// Load builds Config from environment with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that have no usable default.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.PasswordCost < bcrypt.MinCost || c.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d", ErrInvalidPasswordCost, c.PasswordCost)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.ServerPort
}
