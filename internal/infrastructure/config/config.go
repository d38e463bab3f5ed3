package config

import (
	"context"
	"errors"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// JWTSecret signs every bearer token. Rotating it invalidates all
	// outstanding tokens; there is no revocation list.
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTLHours is the token lifetime. 168h = 7 days.
	TokenTTLHours int `env:"TOKEN_TTL_HOURS, default=168"`
	// LoginMaxAttempts failed logins per email within LoginWindowMinutes
	// trip the throttle.
	LoginMaxAttempts   int64 `env:"LOGIN_MAX_ATTEMPTS,   default=10"`
	LoginWindowMinutes int   `env:"LOGIN_WINDOW_MINUTES, default=15"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=skillx"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The JWT secret has no default: refusing to start beats signing tokens
// with an empty key.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
