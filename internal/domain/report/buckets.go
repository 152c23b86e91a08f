package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultWindowDays is the statistics window when no explicit range is given
const DefaultWindowDays = 30

// ResolveWindow fills in the default window for unset bounds. The end defaults
// to the end of today, the start to DefaultWindowDays before the end.
func ResolveWindow(start, end, now time.Time) (time.Time, time.Time) {
	if end.IsZero() {
		end = endOfDay(now)
	}
	if start.IsZero() {
		start = startOfDay(end.AddDate(0, 0, -DefaultWindowDays))
	}
	return start, end
}

// Bucket is a labeled half-open time range used to slice series queries
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// DailyBuckets returns the last n calendar days ending today, oldest first
func DailyBuckets(now time.Time, n int) []Bucket {
	buckets := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		start := startOfDay(day)
		buckets = append(buckets, Bucket{
			Label: start.Format("2006-01-02"),
			Start: start,
			End:   endOfDay(day),
		})
	}
	return buckets
}

// WeeklyBuckets returns the last n ISO weeks ending with the current week,
// oldest first
func WeeklyBuckets(now time.Time, n int) []Bucket {
	buckets := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -7*i)
		start := startOfISOWeek(day)
		year, week := start.ISOWeek()
		buckets = append(buckets, Bucket{
			Label: fmt.Sprintf("%d-W%02d", year, week),
			Start: start,
			End:   endOfDay(start.AddDate(0, 0, 6)),
		})
	}
	return buckets
}

// MonthlyBuckets returns the last n calendar months ending with the current
// month, oldest first
func MonthlyBuckets(now time.Time, n int) []Bucket {
	buckets := make([]Bucket, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := n - 1; i >= 0; i-- {
		start := first.AddDate(0, -i, 0)
		buckets = append(buckets, Bucket{
			Label: start.Format("2006-01"),
			Start: start,
			End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
		})
	}
	return buckets
}

// YearlyBuckets returns last year and this year, oldest first
func YearlyBuckets(now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 2)
	for i := 1; i >= 0; i-- {
		start := time.Date(now.Year()-i, 1, 1, 0, 0, 0, 0, now.Location())
		buckets = append(buckets, Bucket{
			Label: start.Format("2006"),
			Start: start,
			End:   start.AddDate(1, 0, 0).Add(-time.Nanosecond),
		})
	}
	return buckets
}

// Percentage returns part/total*100 rounded to 2 places, or zero when the
// total is zero
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func startOfISOWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
