package saver

import (
	"encoding/json"
	"os"

	"ohlcv-data/internal/model"
)

// JSONSaver writes bars as an indented JSON array.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bars); err != nil {
		f.Close()
		return &SerializationError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	return nil
}
