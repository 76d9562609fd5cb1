package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Single operator credential. The shop runs with exactly one login;
	// the hash comes from `go run ./cmd/genhash <password>`.
	AdminUser         string `mapstructure:"ADMIN_USER"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// CORS — comma-separated list of allowed frontend origins.
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// SMTP — low-stock alert mail. Leaving SMTP_HOST empty disables sending.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	AlertEmail   string `mapstructure:"ALERT_EMAIL"`
}

// Load reads configuration from environment variables (and optional .env file).
// A missing DATABASE_URL is a hard error: the service refuses to start without
// its backing store.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 3000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("WORKER_POOL_SIZE", 4)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("ADMIN_USER", "Admin")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD_HASH is required (generate one with cmd/genhash)")
	}
	return cfg, nil
}
