package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ohlcv-data/internal/model"
)

// sinceLayout is the accepted SINCE format (UTC).
const sinceLayout = "2006-01-02 15:04:05"

// Config holds application configuration from env.
type Config struct {
	Exchange       string // binance | kucoin
	Symbol         string // pair as "BASE/QUOTE", e.g. BTC/USDT
	Interval       string // bar width, e.g. 5m
	Since          time.Time
	PageLimit      int
	DataDir        string
	OutFile        string // overrides the default output path when set
	SaveFormat     string // csv | parquet | json
	LogLevel       string // debug | info | warn | error
	HTTPTimeout    time.Duration
	BinanceBaseURL string // override for tests / mirrors
	KucoinBaseURL  string
}

// LoadConfig reads config from environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Exchange:       getEnv("EXCHANGE", "binance"),
		Symbol:         getEnv("SYMBOL", "BTC/USDT"),
		Interval:       getEnv("INTERVAL", "5m"),
		PageLimit:      1000,
		DataDir:        getEnv("DATA_DIR", "data"),
		OutFile:        os.Getenv("OUT_FILE"),
		SaveFormat:     getEnv("SAVE_FORMAT", "csv"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPTimeout:    10 * time.Second,
		BinanceBaseURL: os.Getenv("BINANCE_BASE_URL"),
		KucoinBaseURL:  os.Getenv("KUCOIN_BASE_URL"),
	}

	if cfg.Symbol == "" {
		return nil, fmt.Errorf("SYMBOL must not be empty")
	}
	if _, err := model.IntervalDuration(cfg.Interval); err != nil {
		return nil, fmt.Errorf("INTERVAL: %w", err)
	}

	since := getEnv("SINCE", "2020-07-21 00:00:00")
	t, err := time.ParseInLocation(sinceLayout, since, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("SINCE %q: want %q (UTC)", since, sinceLayout)
	}
	if t.After(time.Now()) {
		return nil, fmt.Errorf("SINCE %q is in the future", since)
	}
	cfg.Since = t

	if v := os.Getenv("PAGE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("PAGE_LIMIT %q: want a positive integer", v)
		}
		cfg.PageLimit = n
	}
	if v := os.Getenv("HTTP_TIMEOUT_SEC"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT_SEC %q: want a positive integer", v)
		}
		cfg.HTTPTimeout = time.Duration(n) * time.Second
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// OutPath returns the output file path for the given extension:
// OUT_FILE when set, otherwise DATA_DIR/market_data.<ext>.
func (c *Config) OutPath(ext string) string {
	if c.OutFile != "" {
		return c.OutFile
	}
	return filepath.Join(c.DataDir, "market_data."+ext)
}
