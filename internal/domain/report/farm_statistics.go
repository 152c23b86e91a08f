package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FarmStatistics is the read model for a farm's financial overview: revenue
// and cost totals over a window, a per-source cost breakdown, and bucketed
// time series for charting.
type FarmStatistics struct {
	FarmID      uuid.UUID       `json:"farm_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Revenue     RevenueSummary  `json:"revenue"`
	Cost        CostSummary     `json:"cost"`
	NetResult   decimal.Decimal `json:"net_result"` // Revenue total - cost total
	Daily       []SeriesPoint   `json:"daily"`      // Last 7 days
	Weekly      []SeriesPoint   `json:"weekly"`     // Last 8 ISO weeks
	Monthly     []SeriesPoint   `json:"monthly"`    // Last 6 months
	Yearly      []SeriesPoint   `json:"yearly"`     // This year and last
}

// RevenueSummary totals the two revenue sources
type RevenueSummary struct {
	ProductSales         decimal.Decimal `json:"product_sales"`
	IncomingTransactions decimal.Decimal `json:"incoming_transactions"`
	Total                decimal.Decimal `json:"total"`
}

// CostSummary totals the six cost sources. Sources are summed independently;
// a feed purchase that also appears as an outgoing transaction counts twice.
type CostSummary struct {
	Expenses             decimal.Decimal `json:"expenses"`
	Treatments           decimal.Decimal `json:"treatments"`
	EquipmentPurchases   decimal.Decimal `json:"equipment_purchases"`
	FeedPurchases        decimal.Decimal `json:"feed_purchases"`
	FeedConsumption      decimal.Decimal `json:"feed_consumption"`
	OutgoingTransactions decimal.Decimal `json:"outgoing_transactions"`
	Total                decimal.Decimal `json:"total"`
	Breakdown            []CostShare     `json:"breakdown"`
}

// CostShare is one cost source's share of the total
type CostShare struct {
	Source     string          `json:"source"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"` // Zero when the total is zero
}

// SeriesPoint is one bucket in a revenue/cost time series
type SeriesPoint struct {
	Label   string          `json:"label"` // e.g. "2026-08-30", "2026-W35", "2026-08", "2026"
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
}

// StatisticsFilter bounds a statistics query. Zero Start/End fall back to the
// default window.
type StatisticsFilter struct {
	FarmID uuid.UUID `json:"-"`
	Start  time.Time `json:"start_date"`
	End    time.Time `json:"end_date"`
}

// StatisticsRepository defines the per-source sum queries the aggregator runs.
// Each method totals one source over [start, end] by that source's own date
// column; soft-deleted rows are excluded.
type StatisticsRepository interface {
	SumProductSales(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumIncomingTransactions(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumOutgoingTransactions(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumExpenses(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumTreatmentCosts(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumEquipmentPurchases(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumFeedPurchases(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumFeedConsumption(ctx context.Context, farmID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}
