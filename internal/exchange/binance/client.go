package binance

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
	Name = "Binance"

	// DefaultBaseURL is the Binance spot REST endpoint.
	DefaultBaseURL = "https://api.binance.com"

	defaultTimeout = 10 * time.Second
)

// Config holds Binance client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches spot klines from the Binance REST API (GET /api/v3/klines).
type Client struct {
	cfg    Config
	client *http.Client
}

var _ exchange.Exchange = (*Client)(nil)

// NewClient creates a Binance client.
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

// pairSymbol converts "BTC/USDT" to Binance's "BTCUSDT".
func pairSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", ""))
}

// FetchOHLCV requests up to limit klines at or after since (Unix ms).
// Binance returns klines ascending by open time.
func (c *Client) FetchOHLCV(ctx context.Context, symbol, interval string, since int64, limit int) ([]model.Bar, error) {
	u, err := url.Parse(c.cfg.BaseURL + "/api/v3/klines")
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "klines", fmt.Errorf("parse URL: %w", err))
	}
	q := u.Query()
	q.Set("symbol", pairSymbol(symbol))
	q.Set("interval", interval)
	q.Set("startTime", strconv.FormatInt(since, 10))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "klines", fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, exchange.NewDataSourceError(Name, "klines", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, exchange.NewDataSourceError(Name, "klines",
			fmt.Errorf("http %d: %s", res.StatusCode, strings.TrimSpace(string(body))))
	}

	var rows [][]interface{}
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, exchange.NewDataSourceError(Name, "klines", fmt.Errorf("parse JSON: %w", err))
	}

	bars := make([]model.Bar, 0, len(rows))
	for _, row := range rows {
		b, err := parseKline(row)
		if err != nil {
			return nil, exchange.NewDataSourceError(Name, "klines", err)
		}
		bars = append(bars, b)
	}
	return bars, nil
}
