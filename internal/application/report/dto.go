package report

import (
	"time"
)

// StatisticsRequest bounds a farm statistics query. Unset dates fall back to
// the default window.
type StatisticsRequest struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}
