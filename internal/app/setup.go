package app

import (
	"fmt"
	"strings"

	"ohlcv-data/internal/exchange"
	"ohlcv-data/internal/exchange/binance"
	"ohlcv-data/internal/exchange/kucoin"
)

// CreateExchange creates the Exchange client from config.
func CreateExchange(cfg *Config) (exchange.Exchange, error) {
	switch strings.ToLower(cfg.Exchange) {
	case "binance":
		return binance.NewClient(binance.Config{
			BaseURL: cfg.BinanceBaseURL,
			Timeout: cfg.HTTPTimeout,
		}), nil
	case "kucoin":
		return kucoin.NewClient(kucoin.Config{
			BaseURL: cfg.KucoinBaseURL,
			Timeout: cfg.HTTPTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported exchange: %s. Options: binance, kucoin", cfg.Exchange)
	}
}
