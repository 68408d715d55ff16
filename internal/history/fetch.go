package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"ohlcv-data/internal/model"
)

// PageSource serves one page of historical bars per call. It is the single
// capability the fetch loop needs from an exchange, so tests can inject a
// double.
type PageSource interface {
	FetchOHLCV(ctx context.Context, symbol, interval string, since int64, limit int) ([]model.Bar, error)
}

// Request describes one history fetch.
type Request struct {
	Symbol   string
	Interval string
	Since    int64 // Unix ms, inclusive start cursor
	Limit    int   // max bars per page
}

func (r Request) validate() error {
	if r.Symbol == "" {
		return errors.New("history: empty symbol")
	}
	if r.Limit <= 0 {
		return fmt.Errorf("history: page limit %d, want a positive integer", r.Limit)
	}
	if r.Since > time.Now().UnixMilli() {
		return fmt.Errorf("history: start %d is in the future", r.Since)
	}
	return nil
}

// Fetch pages through src strictly sequentially until a short page signals the
// end of data, and returns the concatenation of all pages in request order.
// Each page's cursor is the timestamp of the previous page's last bar, so the
// boundary bar can appear twice across adjacent pages; callers that need
// unique rows run the result through SortDedupe.
//
// The first source error aborts the fetch with no retry. The context is
// checked between pages.
func Fetch(ctx context.Context, src PageSource, req Request) ([]model.Bar, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var bars []model.Bar
	cursor := req.Since
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := src.FetchOHLCV(ctx, req.Symbol, req.Interval, cursor, req.Limit)
		if err != nil {
			return nil, err
		}
		bars = append(bars, rows...)
		slog.Debug("page fetched", "page", page, "bars", len(rows), "cursor", cursor, "total", len(bars))

		// Any page whose length differs from the limit is the final page,
		// a zero-length page included.
		if len(rows) != req.Limit {
			return bars, nil
		}
		cursor = rows[len(rows)-1].Timestamp
	}
}

// SortDedupe sorts bars ascending by timestamp and drops rows repeating a
// timestamp, keeping the first occurrence. Used to collapse the duplicate
// boundary bars Fetch can produce.
func SortDedupe(bars []model.Bar) []model.Bar {
	if len(bars) < 2 {
		return bars
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Timestamp < bars[j].Timestamp
	})
	out := bars[:1]
	for _, b := range bars[1:] {
		if b.Timestamp != out[len(out)-1].Timestamp {
			out = append(out, b)
		}
	}
	return out
}
