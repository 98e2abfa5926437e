package services

import (
	"testing"
	"time"

	"networth-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(date, amount string) models.BalanceEntry {
	return models.BalanceEntry{
		Date:   day(date),
		Amount: decimal.RequireFromString(amount),
	}
}

func TestBalanceTimeline_CarriesForward(t *testing.T) {
	timeline := newBalanceTimeline([]models.BalanceEntry{
		entry("2024-01-10", "100"),
		entry("2024-02-20", "250"),
	})

	// Before the first entry: no balance at all
	_, ok := timeline.LatestAtOrBefore(day("2024-01-09"))
	assert.False(t, ok)

	// On the entry date itself
	amount, ok := timeline.LatestAtOrBefore(day("2024-01-10"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(100)))

	// Between entries the old value holds
	amount, ok = timeline.LatestAtOrBefore(day("2024-02-19"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(100)))

	// After the second entry it supersedes
	amount, ok = timeline.LatestAtOrBefore(day("2024-02-20"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(250)))

	// Far in the future the last value still holds
	amount, ok = timeline.LatestAtOrBefore(day("2030-01-01"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(250)))
}

func TestBalanceTimeline_SortsUnorderedInput(t *testing.T) {
	timeline := newBalanceTimeline([]models.BalanceEntry{
		entry("2024-03-01", "300"),
		entry("2024-01-01", "100"),
		entry("2024-02-01", "200"),
	})

	amount, ok := timeline.LatestAtOrBefore(day("2024-02-15"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(200)))
}

func TestBalanceTimeline_RewindAfterAdvance(t *testing.T) {
	timeline := newBalanceTimeline([]models.BalanceEntry{
		entry("2024-01-10", "100"),
		entry("2024-02-10", "200"),
		entry("2024-03-10", "300"),
	})

	// Advance the cursor to the end
	amount, ok := timeline.LatestAtOrBefore(day("2024-03-15"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(300)))

	// An out-of-order older query still answers correctly
	amount, ok = timeline.LatestAtOrBefore(day("2024-01-15"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(100)))

	_, ok = timeline.LatestAtOrBefore(day("2024-01-01"))
	assert.False(t, ok)

	// And the sweep can resume forward afterwards
	amount, ok = timeline.LatestAtOrBefore(day("2024-02-15"))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(200)))
}

func TestBalanceTimeline_IntradayTimestampsNormalized(t *testing.T) {
	timeline := newBalanceTimeline([]models.BalanceEntry{
		{Date: time.Date(2024, 1, 10, 17, 30, 0, 0, time.UTC), Amount: decimal.NewFromInt(100)},
	})

	amount, ok := timeline.LatestAtOrBefore(time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(100)))
}

func TestBalanceTimeline_Empty(t *testing.T) {
	timeline := newBalanceTimeline(nil)

	_, ok := timeline.LatestAtOrBefore(day("2024-01-01"))
	assert.False(t, ok)

	_, ok = timeline.FirstEntryDate()
	assert.False(t, ok)
}

func TestBalanceTimeline_FirstEntryDate(t *testing.T) {
	timeline := newBalanceTimeline([]models.BalanceEntry{
		entry("2024-03-01", "300"),
		entry("2024-01-01", "100"),
	})

	first, ok := timeline.FirstEntryDate()
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", models.FormatDate(first))
}
