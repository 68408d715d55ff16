package saver

import (
	"github.com/parquet-go/parquet-go"

	"ohlcv-data/internal/model"
)

// ParquetSaver writes bars as a Parquet file.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	if err := parquet.WriteFile(path, bars); err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	return nil
}
