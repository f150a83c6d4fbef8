package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	DBMaxConns     int32

	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration

	// Bearer-token auth on mutating routes.
	AuthEnabled bool
	JWTSecret   string

	// RateLimit is a ulule/limiter formatted rate such as "100-M". Empty disables limiting.
	RateLimit string
	RedisURL  string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 0)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		DBMaxConns:      viper.GetInt32("DB_MAX_CONNS"),
		ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
		RequestTimeout:  viper.GetDuration("REQUEST_TIMEOUT"),
		AuthEnabled:     viper.GetBool("AUTH_ENABLED"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		RateLimit:       strings.TrimSpace(viper.GetString("RATE_LIMIT")),
		RedisURL:        viper.GetString("REDIS_URL"),
	}
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.DatabaseURL == "" {
		return nil, errors.New("PGSQL_URL environment variable is required")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.DBMaxConns < 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must not be negative, got %d", cfg.DBMaxConns)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration, got %q", viper.GetString("SHUTDOWN_TIMEOUT"))
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be a positive duration, got %q", viper.GetString("REQUEST_TIMEOUT"))
	}
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	if cfg.RedisURL != "" && cfg.RateLimit == "" {
		slog.Warn("REDIS_URL is set but RATE_LIMIT is empty, rate limiting stays disabled")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
