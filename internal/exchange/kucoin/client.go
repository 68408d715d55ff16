package kucoin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ohlcv-data/internal/exchange"
	"ohlcv-data/internal/model"
)

const (
	// Name is the exchange name reported by this client.
	Name = "KuCoin"

	// DefaultBaseURL is the KuCoin spot REST endpoint.
	DefaultBaseURL = "https://api.kucoin.com"

	defaultTimeout = 10 * time.Second

	// API success code in the response envelope.
	codeOK = "200000"
)

// intervalTypes maps interval names to KuCoin candle types.
var intervalTypes = map[string]string{
	"1m":  "1min",
	"3m":  "3min",
	"5m":  "5min",
	"15m": "15min",
	"30m": "30min",
	"1h":  "1hour",
	"2h":  "2hour",
	"4h":  "4hour",
	"6h":  "6hour",
	"8h":  "8hour",
	"12h": "12hour",
	"1d":  "1day",
	"1w":  "1week",
}

// Config holds KuCoin client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches candles from the KuCoin REST API (GET /api/v1/market/candles).
type Client struct {
	cfg    Config
	client *http.Client
}

var _ exchange.Exchange = (*Client)(nil)

// NewClient creates a KuCoin client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the exchange name.
func (c *Client) Name() string { return Name }

// Close closes connections.
func (c *Client) Close() error { return nil }

// pairSymbol converts "BTC/USDT" to KuCoin's "BTC-USDT".
func pairSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", "-"))
}

// FetchOHLCV requests up to limit candles at or after since (Unix ms).
// KuCoin takes second-resolution startAt/endAt instead of a row limit, so the
// window is sized as limit bar widths; rows arrive newest first and are
// reversed to ascending before returning.
func (c *Client) FetchOHLCV(ctx context.Context, symbol, interval string, since int64, limit int) ([]model.Bar, error) {
	typ, ok := intervalTypes[interval]
	if !ok {
		return nil, exchange.NewDataSourceError(Name, "candles", fmt.Errorf("unsupported interval %q", interval))
	}
	step, err := model.IntervalDuration(interval)
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "candles", err)
	}

	startAt := since / 1000
	endAt := startAt + int64(step.Seconds())*int64(limit)

	u, err := url.Parse(c.cfg.BaseURL + "/api/v1/market/candles")
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "candles", fmt.Errorf("parse URL: %w", err))
	}
	q := u.Query()
	q.Set("symbol", pairSymbol(symbol))
	q.Set("type", typ)
	q.Set("startAt", strconv.FormatInt(startAt, 10))
	q.Set("endAt", strconv.FormatInt(endAt, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "candles", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "candles", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, exchange.NewDataSourceError(Name, "candles",
			fmt.Errorf("http %d: %s", res.StatusCode, strings.TrimSpace(string(body))))
	}

	var dto candlesResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, exchange.NewDataSourceError(Name, "candles", fmt.Errorf("parse JSON: %w", err))
	}
	if dto.Code != codeOK {
		return nil, exchange.NewDataSourceError(Name, "candles",
			fmt.Errorf("API code %s: %s", dto.Code, dto.Msg))
	}

	bars := make([]model.Bar, 0, len(dto.Data))
	for i := len(dto.Data) - 1; i >= 0; i-- {
		b, err := parseCandle(dto.Data[i])
		if err != nil {
			return nil, exchange.NewDataSourceError(Name, "candles", err)
		}
		bars = append(bars, b)
	}
	if len(bars) > limit {
		bars = bars[:limit]
	}
	return bars, nil
}
