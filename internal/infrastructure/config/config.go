// Package config loads the process-wide configuration once at startup.
// Security-critical settings (signing secret, mail credentials, admin
// address) are required: the process refuses to boot without them rather
// than falling back to insecure defaults.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Restaurant string `env:"RESTAURANT_NAME, default=YPA Mbuzi Choma"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type JWTConfig struct {
	// Secret has no default on purpose. A missing secret must abort
	// startup, never silently sign with a known value.
	Secret   string        `env:"JWT_SECRET, required"`
	TokenTTL time.Duration `env:"TOKEN_TTL,  default=60m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=restaurant"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host       string `env:"SMTP_HOST, default=smtp.gmail.com"`
	Port       int    `env:"SMTP_PORT, default=587"`
	Username   string `env:"SMTP_USERNAME, required"`
	Password   string `env:"SMTP_PASSWORD, required"`
	From       string `env:"FROM_EMAIL"`
	AdminEmail string `env:"ADMIN_EMAIL, required"`
	// SSL selects implicit TLS on connect; otherwise the session is
	// plaintext upgraded via STARTTLS.
	SSL bool `env:"SMTP_SSL, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required variables make startup fail fast.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	return &cfg, nil
}
