package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"EXCHANGE", "SYMBOL", "INTERVAL", "SINCE", "PAGE_LIMIT",
		"DATA_DIR", "OUT_FILE", "SAVE_FORMAT", "LOG_LEVEL",
		"HTTP_TIMEOUT_SEC", "BINANCE_BASE_URL", "KUCOIN_BASE_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "binance", cfg.Exchange)
	assert.Equal(t, "BTC/USDT", cfg.Symbol)
	assert.Equal(t, "5m", cfg.Interval)
	assert.Equal(t, 1000, cfg.PageLimit)
	assert.Equal(t, "csv", cfg.SaveFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Date(2020, 7, 21, 0, 0, 0, 0, time.UTC), cfg.Since)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXCHANGE", "kucoin")
	t.Setenv("SYMBOL", "ETH/USDT")
	t.Setenv("INTERVAL", "1h")
	t.Setenv("SINCE", "2023-01-01 12:30:00")
	t.Setenv("PAGE_LIMIT", "500")
	t.Setenv("SAVE_FORMAT", "parquet")
	t.Setenv("HTTP_TIMEOUT_SEC", "30")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "kucoin", cfg.Exchange)
	assert.Equal(t, "ETH/USDT", cfg.Symbol)
	assert.Equal(t, "1h", cfg.Interval)
	assert.Equal(t, 500, cfg.PageLimit)
	assert.Equal(t, "parquet", cfg.SaveFormat)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Date(2023, 1, 1, 12, 30, 0, 0, time.UTC), cfg.Since)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad since format", "SINCE", "2024-012-21 00:00:00"},
		{"future since", "SINCE", "2222-01-01 00:00:00"},
		{"bad page limit", "PAGE_LIMIT", "abc"},
		{"zero page limit", "PAGE_LIMIT", "0"},
		{"negative page limit", "PAGE_LIMIT", "-5"},
		{"bad timeout", "HTTP_TIMEOUT_SEC", "soon"},
		{"unknown interval", "INTERVAL", "7m"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(c.key, c.value)

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}

func TestOutPath(t *testing.T) {
	cfg := &Config{DataDir: "data"}
	assert.Equal(t, "data/market_data.csv", cfg.OutPath("csv"))

	cfg.OutFile = "/tmp/out.csv"
	assert.Equal(t, "/tmp/out.csv", cfg.OutPath("csv"))
}

func TestCreateExchange(t *testing.T) {
	t.Run("binance", func(t *testing.T) {
		ex, err := CreateExchange(&Config{Exchange: "binance"})
		require.NoError(t, err)
		assert.Equal(t, "Binance", ex.Name())
	})

	t.Run("kucoin", func(t *testing.T) {
		ex, err := CreateExchange(&Config{Exchange: "KuCoin"})
		require.NoError(t, err)
		assert.Equal(t, "KuCoin", ex.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := CreateExchange(&Config{Exchange: "mtgox"})
		assert.Error(t, err)
	})
}

func TestProvidePacketSaver(t *testing.T) {
	ps, err := ProvidePacketSaver(&Config{SaveFormat: "csv"})
	require.NoError(t, err)
	assert.Equal(t, "csv", ps.Extension())

	_, err = ProvidePacketSaver(&Config{SaveFormat: "xml"})
	assert.Error(t, err)
}
