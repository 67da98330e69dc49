package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream rate provider
	ExchangeAPIURL     string
	ExchangeAPIKey     string
	ExchangeHTTPTimeout time.Duration

	// FX core tuning
	RateCacheTTL       time.Duration
	HistoryMaxDays     int
	HistoryConcurrency int

	// Inbound rate limiting, in ulule/limiter notation (e.g. "60-M")
	RateLimit string

	// Optional transaction archive
	DatabaseURL string

	// Per-currency opening balances for the ledger
	OpeningBalances map[string]decimal.Decimal
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EXCHANGE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("EXCHANGE_API_KEY", "")
	viper.SetDefault("EXCHANGE_HTTP_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "5m")
	viper.SetDefault("HISTORY_MAX_DAYS", 365)
	viper.SetDefault("HISTORY_CONCURRENCY", 5)
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("LEDGER_OPENING_BALANCES", "USD=1000,EUR=1000,GBP=1000,NGN=100000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.ExchangeAPIURL = viper.GetString("EXCHANGE_API_URL")

	cfg.ExchangeAPIKey = viper.GetString("EXCHANGE_API_KEY")
	if cfg.ExchangeAPIKey == "" {
		log.Println("Warning: EXCHANGE_API_KEY environment variable not set. Upstream rate fetches will be rejected by the provider.")
	}

	cfg.ExchangeHTTPTimeout = parseDurationOr("EXCHANGE_HTTP_TIMEOUT", 10*time.Second)
	cfg.RateCacheTTL = parseDurationOr("RATE_CACHE_TTL", 5*time.Minute)

	cfg.HistoryMaxDays = viper.GetInt("HISTORY_MAX_DAYS")
	if cfg.HistoryMaxDays <= 0 {
		cfg.HistoryMaxDays = 365
		log.Printf("Warning: Invalid value for HISTORY_MAX_DAYS. Defaulting to %d.\n", cfg.HistoryMaxDays)
	}

	cfg.HistoryConcurrency = viper.GetInt("HISTORY_CONCURRENCY")
	if cfg.HistoryConcurrency <= 0 {
		cfg.HistoryConcurrency = 5
		log.Printf("Warning: Invalid value for HISTORY_CONCURRENCY. Defaulting to %d.\n", cfg.HistoryConcurrency)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Transaction archiving is disabled.")
	}

	balances, err := parseOpeningBalances(viper.GetString("LEDGER_OPENING_BALANCES"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_OPENING_BALANCES: %w", err)
	}
	cfg.OpeningBalances = balances

	return cfg, nil
}

// parseDurationOr reads a duration from viper, falling back to def on a
// missing or malformed value.
func parseDurationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def)
		}
		return def
	}
	return d
}

// parseOpeningBalances parses "USD=1000,EUR=250.75" into a balance map.
func parseOpeningBalances(raw string) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal)
	if strings.TrimSpace(raw) == "" {
		return balances, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		code, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("entry %q is not CODE=AMOUNT", pair)
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("entry %q has a non-numeric amount: %w", pair, err)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("entry %q has a negative amount", pair)
		}
		balances[code] = amount
	}
	return balances, nil
}
