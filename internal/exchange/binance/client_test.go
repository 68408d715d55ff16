package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohlcv-data/internal/exchange"
)

const klinesBody = `[
	[1595289600000, "9357.3", "9360.0", "9350.01", "9358.92", "41.872345", 1595289899999, "391849.2", 120, "20.1", "188112.5", "0"],
	[1595289900000, "9358.92", "9362.5", "9356.0", "9361.1", "18.004", 1595290199999, "168514.7", 88, "9.3", "87021.4", "0"]
]`

func TestFetchOHLCVSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "BTCUSDT", q.Get("symbol"))
		assert.Equal(t, "5m", q.Get("interval"))
		assert.Equal(t, "1595289600000", q.Get("startTime"))
		assert.Equal(t, "1000", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(klinesBody))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})

	bars, err := c.FetchOHLCV(context.Background(), "BTC/USDT", "5m", 1595289600000, 1000)

	require.NoError(t, err)
	require.Equal(t, 2, len(bars))
	assert.Equal(t, int64(1595289600000), bars[0].Timestamp)
	assert.Equal(t, 9357.3, bars[0].Open)
	assert.Equal(t, 9360.0, bars[0].High)
	assert.Equal(t, 9350.01, bars[0].Low)
	assert.Equal(t, 9358.92, bars[0].Close)
	assert.Equal(t, 41.872345, bars[0].Volume)
	assert.Equal(t, int64(1595289900000), bars[1].Timestamp)
}

func TestFetchOHLCVHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"code":-1003,"msg":"Too many requests."}`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})

	_, err := c.FetchOHLCV(context.Background(), "BTC/USDT", "5m", 0, 1000)

	var dsErr *exchange.DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, Name, dsErr.Exchange)
	assert.Contains(t, err.Error(), "429")
}

func TestFetchOHLCVMalformedRow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[1595289600000, "not-a-price", "1", "1", "1", "1"]]`))
	}))
	defer server.Close()

	c := NewClient(Config{BaseURL: server.URL})

	_, err := c.FetchOHLCV(context.Background(), "BTC/USDT", "5m", 0, 1000)

	var dsErr *exchange.DataSourceError
	assert.ErrorAs(t, err, &dsErr)
}

func TestFetchOHLCVUnreachable(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := c.FetchOHLCV(context.Background(), "BTC/USDT", "5m", 0, 1000)

	var dsErr *exchange.DataSourceError
	assert.ErrorAs(t, err, &dsErr)
}

func TestPairSymbol(t *testing.T) {
	assert.Equal(t, "BTCUSDT", pairSymbol("BTC/USDT"))
	assert.Equal(t, "ETHBTC", pairSymbol("eth/btc"))
	assert.Equal(t, "BTCUSDT", pairSymbol("BTCUSDT"))
}
