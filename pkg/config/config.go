package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	RedisURL      string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret string
	JWTIssuer string

	// Upstream FX table endpoint (base-currency relative).
	RatesAPIURL string
	// Fixed refresh cadence for both cached tables.
	RatesRefreshInterval time.Duration
	// Timeout applied to upstream fetches.
	HTTPTimeout time.Duration

	// ulule/limiter formatted rate, e.g. "120-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "craftkart")
	viper.SetDefault("RATES_API_URL", "https://open.er-api.com/v6/latest/INR")
	viper.SetDefault("RATES_REFRESH_INTERVAL", "1h")
	viper.SetDefault("HTTP_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")

	refreshStr := viper.GetString("RATES_REFRESH_INTERVAL")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil || refresh <= 0 {
		refresh = time.Hour
		if refreshStr != "" {
			log.Printf("Warning: Invalid value for RATES_REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshStr, refresh)
		}
	}
	cfg.RatesRefreshInterval = refresh

	timeoutStr := viper.GetString("HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.HTTPTimeout = timeout

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
