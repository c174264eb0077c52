package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/forex_history_app/internal/core/domain"
	"github.com/SscSPs/forex_history_app/internal/utils/period"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Pair is one configured currency pair to sync, as base and quote codes.
type Pair struct {
	From string
	To   string
}

// SourceFormat returns the pair identifier the upstream source expects.
func (p Pair) SourceFormat() string {
	return domain.FormatPair(p.From, p.To)
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Scraper
	SourceBaseURL    string
	MaxRetries       int
	RequestTimeout   time.Duration
	RetryBackoffBase time.Duration
	FetchCacheSize   int
	MaxPairWorkers   int
	MaxChunkWorkers  int

	// Domain data
	SupportedCurrencies []string
	SyncPairs           []Pair
	SupportedPeriods    []period.Period
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SOURCE_BASE_URL", "https://finance.yahoo.com")
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("RETRY_BACKOFF_BASE", "1s")
	viper.SetDefault("FETCH_CACHE_SIZE", 32)
	viper.SetDefault("MAX_PAIR_WORKERS", 2)
	viper.SetDefault("MAX_CHUNK_WORKERS", 4)
	viper.SetDefault("SUPPORTED_CURRENCIES", "GBP,AED,INR")
	viper.SetDefault("SYNC_PAIRS", "GBP-INR,AED-INR")
	viper.SetDefault("SUPPORTED_PERIODS", "1W,1M,3M,6M,1Y")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.SourceBaseURL = strings.TrimSuffix(viper.GetString("SOURCE_BASE_URL"), "/")
	cfg.MaxRetries = viper.GetInt("MAX_RETRIES")
	cfg.FetchCacheSize = viper.GetInt("FETCH_CACHE_SIZE")
	cfg.MaxPairWorkers = viper.GetInt("MAX_PAIR_WORKERS")
	cfg.MaxChunkWorkers = viper.GetInt("MAX_CHUNK_WORKERS")

	timeoutStr := viper.GetString("REQUEST_TIMEOUT")
	requestTimeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		requestTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, requestTimeout)
	}
	cfg.RequestTimeout = requestTimeout

	backoffStr := viper.GetString("RETRY_BACKOFF_BASE")
	backoffBase, err := time.ParseDuration(backoffStr)
	if err != nil {
		backoffBase = time.Second
		log.Printf("Warning: Invalid value for RETRY_BACKOFF_BASE ('%s'). Defaulting to %s.\n", backoffStr, backoffBase)
	}
	cfg.RetryBackoffBase = backoffBase

	cfg.SupportedCurrencies = splitCSV(viper.GetString("SUPPORTED_CURRENCIES"))

	cfg.SyncPairs, err = parsePairs(viper.GetString("SYNC_PAIRS"))
	if err != nil {
		return nil, err
	}

	cfg.SupportedPeriods, err = period.ParseList(viper.GetString("SUPPORTED_PERIODS"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUPPORTED_PERIODS: %w", err)
	}

	return cfg, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.ToUpper(strings.TrimSpace(part)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parsePairs parses a list like "GBP-INR,AED-INR".
func parsePairs(csv string) ([]Pair, error) {
	var pairs []Pair
	for _, part := range splitCSV(csv) {
		from, to, ok := strings.Cut(part, "-")
		if !ok || len(from) != 3 || len(to) != 3 {
			return nil, fmt.Errorf("invalid SYNC_PAIRS entry %q, expected format like GBP-INR", part)
		}
		pairs = append(pairs, Pair{From: from, To: to})
	}
	return pairs, nil
}
