package exchange

import (
	"context"

	"ohlcv-data/internal/model"
)

// Exchange defines a market-data source serving pages of historical OHLCV bars.
type Exchange interface {
	// FetchOHLCV returns up to limit bars for symbol/interval at or after
	// since (Unix ms), ascending by timestamp.
	FetchOHLCV(ctx context.Context, symbol, interval string, since int64, limit int) ([]model.Bar, error)

	// Name returns the exchange name.
	Name() string

	// Close releases connections.
	Close() error
}
