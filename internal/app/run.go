package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ohlcv-data/internal/exchange"
	"ohlcv-data/internal/history"
	"ohlcv-data/internal/saver"
)

// Run executes one fetch: page through the exchange, sort and dedupe, write
// the output file, then the run report. Returns the output path.
//
// Fail-fast: the first error aborts the run and no output file is written.
func Run(ctx context.Context, cfg *Config, ex exchange.Exchange, ps saver.PacketSaver) (string, error) {
	req := history.Request{
		Symbol:   cfg.Symbol,
		Interval: cfg.Interval,
		Since:    cfg.Since.UnixMilli(),
		Limit:    cfg.PageLimit,
	}
	slog.Info("fetching history",
		"exchange", ex.Name(),
		"symbol", req.Symbol,
		"interval", req.Interval,
		"since", cfg.Since.Format(sinceLayout),
		"page_limit", req.Limit,
	)

	started := time.Now()
	bars, err := history.Fetch(ctx, ex, req)
	if err != nil {
		return "", err
	}

	fetched := len(bars)
	bars = history.SortDedupe(bars)
	if dropped := fetched - len(bars); dropped > 0 {
		slog.Debug("dropped duplicate boundary bars", "count", dropped)
	}

	outPath := cfg.OutPath(ps.Extension())
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", &saver.SerializationError{Path: outPath, Err: err}
		}
	}
	if err := ps.Save(bars, outPath); err != nil {
		return "", err
	}
	elapsed := time.Since(started)
	slog.Info("history saved", "path", outPath, "bars", len(bars), "elapsed_sec", elapsed.Seconds())

	report := runReport{
		Exchange:   ex.Name(),
		Symbol:     cfg.Symbol,
		Interval:   cfg.Interval,
		Since:      cfg.Since.Format(sinceLayout),
		Bars:       len(bars),
		Output:     outPath,
		ElapsedSec: elapsed.Seconds(),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeRunReport(filepath.Join(filepath.Dir(outPath), ".lastrun.json"), report); err != nil {
		slog.Warn("could not write run report", "error", err)
	}
	return outPath, nil
}
