package main

import (
	"ohlcv-data/internal/app"
	"ohlcv-data/internal/exchange"
	"ohlcv-data/internal/saver"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	Exchange exchange.Exchange
	Saver    saver.PacketSaver
}
