package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow_Defaults(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	start, end := ResolveWindow(time.Time{}, time.Time{}, now)

	assert.Equal(t, 2026, end.Year())
	assert.Equal(t, time.August, end.Month())
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, time.August, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 0, start.Hour())
}

func TestResolveWindow_KeepsExplicitBounds(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	explicitStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	explicitEnd := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	start, end := ResolveWindow(explicitStart, explicitEnd, now)

	assert.Equal(t, explicitStart, start)
	assert.Equal(t, explicitEnd, end)
}

func TestDailyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	buckets := DailyBuckets(now, 7)

	require.Len(t, buckets, 7)
	assert.Equal(t, "2026-08-25", buckets[0].Label)
	assert.Equal(t, "2026-08-31", buckets[6].Label)
	for _, b := range buckets {
		assert.True(t, b.Start.Before(b.End))
	}
}

func TestWeeklyBuckets(t *testing.T) {
	// 2026-08-31 is a Monday in ISO week 36
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	buckets := WeeklyBuckets(now, 8)

	require.Len(t, buckets, 8)
	assert.Equal(t, "2026-W36", buckets[7].Label)
	assert.Equal(t, "2026-W29", buckets[0].Label)
	assert.Equal(t, time.Monday, buckets[7].Start.Weekday())
	assert.Equal(t, 31, buckets[7].Start.Day())
}

func TestWeeklyBuckets_SundayBelongsToCurrentWeek(t *testing.T) {
	// Sunday must map to the week starting the previous Monday
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	buckets := WeeklyBuckets(sunday, 1)

	require.Len(t, buckets, 1)
	assert.Equal(t, time.Monday, buckets[0].Start.Weekday())
	assert.Equal(t, 24, buckets[0].Start.Day())
}

func TestMonthlyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	buckets := MonthlyBuckets(now, 6)

	require.Len(t, buckets, 6)
	assert.Equal(t, "2026-03", buckets[0].Label)
	assert.Equal(t, "2026-08", buckets[5].Label)
	assert.Equal(t, 1, buckets[5].Start.Day())
	assert.Equal(t, 31, buckets[5].End.Day())
}

func TestMonthlyBuckets_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	buckets := MonthlyBuckets(now, 6)

	require.Len(t, buckets, 6)
	assert.Equal(t, "2025-09", buckets[0].Label)
	assert.Equal(t, "2026-02", buckets[5].Label)
}

func TestYearlyBuckets(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	buckets := YearlyBuckets(now)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2025", buckets[0].Label)
	assert.Equal(t, "2026", buckets[1].Label)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		total    string
		expected string
	}{
		{"half", "50", "100", "50"},
		{"third rounded", "1", "3", "33.33"},
		{"zero total", "10", "0", "0"},
		{"zero part", "0", "100", "0"},
		{"full", "250", "250", "100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			part, _ := decimal.NewFromString(tc.part)
			total, _ := decimal.NewFromString(tc.total)
			expected, _ := decimal.NewFromString(tc.expected)

			assert.True(t, Percentage(part, total).Equal(expected))
		})
	}
}
