package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Betting   BettingConfig
	Worker    WorkerConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"betpool"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}
type BettingConfig struct {
	// MinBetAmount is in minor currency units; 1000 = R$10,00.
	MinBetAmount  int64         `env:"MIN_BET_AMOUNT" envDefault:"1000"`
	DepositExpiry time.Duration `env:"DEPOSIT_EXPIRY" envDefault:"24h"`
}
type WorkerConfig struct {
	ExpiryInterval  time.Duration `env:"WORKER_EXPIRY_INTERVAL" envDefault:"1m"`
	ExpiryBatchSize int           `env:"WORKER_EXPIRY_BATCH_SIZE" envDefault:"50"`
}
type AuthConfig struct {
	WebhookSecret string `env:"PAYMENT_WEBHOOK_SECRET" envDefault:"dev-webhook-secret"`
}
type RateLimitConfig struct {
	// RequestsPerSecond applies per authenticated user on money-moving routes.
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
