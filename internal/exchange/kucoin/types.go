package kucoin

import (
	"fmt"
	"strconv"

	"ohlcv-data/internal/model"
)

// candlesResponse is the KuCoin response envelope. Data rows are positional
// string arrays [time, open, close, high, low, volume, turnover] with time in
// seconds, ordered newest first.
type candlesResponse struct {
	Code string     `json:"code"`
	Msg  string     `json:"msg,omitempty"`
	Data [][]string `json:"data"`
}

func parseCandle(row []string) (model.Bar, error) {
	if len(row) < 6 {
		return model.Bar{}, fmt.Errorf("candle row has %d fields, want at least 6", len(row))
	}
	sec, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse time %q: %w", row[0], err)
	}
	open, err := decimalField(row[1], "open")
	if err != nil {
		return model.Bar{}, err
	}
	cls, err := decimalField(row[2], "close")
	if err != nil {
		return model.Bar{}, err
	}
	high, err := decimalField(row[3], "high")
	if err != nil {
		return model.Bar{}, err
	}
	low, err := decimalField(row[4], "low")
	if err != nil {
		return model.Bar{}, err
	}
	vol, err := decimalField(row[5], "volume")
	if err != nil {
		return model.Bar{}, err
	}
	return model.Bar{
		Timestamp: sec * 1000,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     cls,
		Volume:    vol,
	}, nil
}

func decimalField(s, name string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return f, nil
}
