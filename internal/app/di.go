package app

import (
	"fmt"

	"ohlcv-data/internal/exchange"
	"ohlcv-data/internal/saver"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvidePacketSaver creates PacketSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvidePacketSaver(cfg *Config) (saver.PacketSaver, error) {
	ps := saver.NewPacketSaver(cfg.SaveFormat)
	if ps == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return ps, nil
}

// ProvideExchange creates the exchange client from config (for Wire).
// Caller must call Close() when shutting down.
func ProvideExchange(cfg *Config) (exchange.Exchange, error) {
	return CreateExchange(cfg)
}
