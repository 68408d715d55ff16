package saver

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ohlcv-data/internal/model"
)

// dateLayout renders the bar open time as a human-readable UTC date.
const dateLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"date", "open", "high", "low", "close", "volume"}

// CSVSaver writes bars as CSV (header: date,open,high,low,close,volume).
// The file is fully overwritten on each save.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	w := csv.NewWriter(f)

	write := func() error {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
		for _, b := range bars {
			row := []string{
				b.Time().Format(dateLayout),
				floatStr(b.Open),
				floatStr(b.High),
				floatStr(b.Low),
				floatStr(b.Close),
				floatStr(b.Volume),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	if err := write(); err != nil {
		f.Close()
		return &SerializationError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	return nil
}

// LoadCSV reads a file written by CSVSaver back into bars. Timestamps round
// to the second resolution of the date column.
func LoadCSV(path string) ([]model.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SerializationError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &SerializationError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &SerializationError{Path: path, Err: errors.New("empty file")}
	}

	bars := make([]model.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		b, err := parseRow(rec)
		if err != nil {
			return nil, &SerializationError{Path: path, Err: fmt.Errorf("row %d: %w", i+2, err)}
		}
		bars = append(bars, b)
	}
	return bars, nil
}

func parseRow(rec []string) (model.Bar, error) {
	if len(rec) != len(csvHeader) {
		return model.Bar{}, fmt.Errorf("has %d columns, want %d", len(rec), len(csvHeader))
	}
	ts, err := time.ParseInLocation(dateLayout, rec[0], time.UTC)
	if err != nil {
		return model.Bar{}, fmt.Errorf("parse date %q: %w", rec[0], err)
	}
	var vals [5]float64
	for i := 1; i < len(rec); i++ {
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return model.Bar{}, fmt.Errorf("parse %s %q: %w", csvHeader[i], rec[i], err)
		}
		vals[i-1] = v
	}
	return model.Bar{
		Timestamp: ts.UnixMilli(),
		Open:      vals[0],
		High:      vals[1],
		Low:       vals[2],
		Close:     vals[3],
		Volume:    vals[4],
	}, nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
