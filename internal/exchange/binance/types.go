package binance

import (
	"fmt"
	"strconv"

	"ohlcv-data/internal/model"
)

// Binance encodes each kline as a positional JSON array:
// [openTime, open, high, low, close, volume, closeTime, ...].
// Prices and volume come as decimal strings, timestamps as numbers.
func parseKline(row []interface{}) (model.Bar, error) {
	if len(row) < 6 {
		return model.Bar{}, fmt.Errorf("kline row has %d fields, want at least 6", len(row))
	}
	ts, ok := row[0].(float64)
	if !ok {
		return model.Bar{}, fmt.Errorf("kline open time %v is not a number", row[0])
	}
	open, err := decimalField(row[1], "open")
	if err != nil {
		return model.Bar{}, err
	}
	high, err := decimalField(row[2], "high")
	if err != nil {
		return model.Bar{}, err
	}
	low, err := decimalField(row[3], "low")
	if err != nil {
		return model.Bar{}, err
	}
	cls, err := decimalField(row[4], "close")
	if err != nil {
		return model.Bar{}, err
	}
	vol, err := decimalField(row[5], "volume")
	if err != nil {
		return model.Bar{}, err
	}
	return model.Bar{
		Timestamp: int64(ts),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     cls,
		Volume:    vol,
	}, nil
}

func decimalField(v interface{}, name string) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("kline %s %v is not a string", name, v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", name, s, err)
	}
	return f, nil
}
