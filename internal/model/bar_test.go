package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalDuration(t *testing.T) {
	d, err := IntervalDuration("5m")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, d)

	d, err = IntervalDuration("1d")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	_, err = IntervalDuration("5min")
	assert.Error(t, err)
	_, err = IntervalDuration("")
	assert.Error(t, err)
}

func TestBarTime(t *testing.T) {
	b := Bar{Timestamp: 1595289600000}
	assert.Equal(t, time.Date(2020, 7, 21, 0, 0, 0, 0, time.UTC), b.Time())
}
