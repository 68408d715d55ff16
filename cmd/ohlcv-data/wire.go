//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"ohlcv-data/internal/app"
)

// InitializeApp builds App (Config + Exchange + Saver) via Wire.
// Caller must call a.Exchange.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvidePacketSaver,
		app.ProvideExchange,
		wire.Struct(new(App), "Config", "Exchange", "Saver"),
	)
	return nil, nil
}
