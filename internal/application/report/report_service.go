package report

import (
	"context"
	"fmt"
	"time"

	"github.com/farmstead/backend/internal/domain/farm"
	"github.com/farmstead/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CacheTTL bounds how stale a served statistics snapshot can be
const CacheTTL = 2 * time.Minute

// StatisticsCache caches assembled statistics snapshots. Implementations may
// drop entries at any time; a miss just recomputes.
type StatisticsCache interface {
	Get(ctx context.Context, key string) (*report.FarmStatistics, bool)
	Set(ctx context.Context, key string, stats *report.FarmStatistics, ttl time.Duration)
}

// ReportService assembles the farm statistics read model
type ReportService struct {
	farmRepo  farm.FarmRepository
	statsRepo report.StatisticsRepository
	cache     StatisticsCache
	now       func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(farmRepo farm.FarmRepository, statsRepo report.StatisticsRepository) *ReportService {
	return &ReportService{
		farmRepo:  farmRepo,
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// SetCache sets an optional statistics cache
func (s *ReportService) SetCache(cache StatisticsCache) {
	s.cache = cache
}

// GetFarmStatistics assembles revenue and cost totals, a cost breakdown and
// bucketed time series for one farm. Any failing sub-query fails the whole
// aggregation; a partial snapshot is worse than none.
func (s *ReportService) GetFarmStatistics(ctx context.Context, farmID uuid.UUID, req StatisticsRequest) (*report.FarmStatistics, error) {
	if _, err := s.farmRepo.FindByID(ctx, farmID); err != nil {
		return nil, err
	}

	now := s.now()
	var start, end time.Time
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	start, end = report.ResolveWindow(start, end, now)

	cacheKey := fmt.Sprintf("farm_stats:%s:%s:%s", farmID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	revenue, cost, err := s.sumWindow(ctx, farmID, start, end)
	if err != nil {
		return nil, err
	}

	stats := &report.FarmStatistics{
		FarmID:      farmID,
		PeriodStart: start,
		PeriodEnd:   end,
		Revenue:     revenue,
		Cost:        cost,
		NetResult:   revenue.Total.Sub(cost.Total),
	}

	if stats.Daily, err = s.series(ctx, farmID, report.DailyBuckets(now, 7)); err != nil {
		return nil, err
	}
	if stats.Weekly, err = s.series(ctx, farmID, report.WeeklyBuckets(now, 8)); err != nil {
		return nil, err
	}
	if stats.Monthly, err = s.series(ctx, farmID, report.MonthlyBuckets(now, 6)); err != nil {
		return nil, err
	}
	if stats.Yearly, err = s.series(ctx, farmID, report.YearlyBuckets(now)); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, stats, CacheTTL)
	}

	return stats, nil
}

// sumWindow runs the per-source sums over one window and derives the totals
// and the cost breakdown
func (s *ReportService) sumWindow(ctx context.Context, farmID uuid.UUID, start, end time.Time) (report.RevenueSummary, report.CostSummary, error) {
	var revenue report.RevenueSummary
	var cost report.CostSummary
	var err error

	if revenue.ProductSales, err = s.statsRepo.SumProductSales(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum product sales: %w", err)
	}
	if revenue.IncomingTransactions, err = s.statsRepo.SumIncomingTransactions(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum incoming transactions: %w", err)
	}
	revenue.Total = revenue.ProductSales.Add(revenue.IncomingTransactions)

	if cost.Expenses, err = s.statsRepo.SumExpenses(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum expenses: %w", err)
	}
	if cost.Treatments, err = s.statsRepo.SumTreatmentCosts(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum treatment costs: %w", err)
	}
	if cost.EquipmentPurchases, err = s.statsRepo.SumEquipmentPurchases(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum equipment purchases: %w", err)
	}
	if cost.FeedPurchases, err = s.statsRepo.SumFeedPurchases(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum feed purchases: %w", err)
	}
	if cost.FeedConsumption, err = s.statsRepo.SumFeedConsumption(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum feed consumption: %w", err)
	}
	if cost.OutgoingTransactions, err = s.statsRepo.SumOutgoingTransactions(ctx, farmID, start, end); err != nil {
		return revenue, cost, fmt.Errorf("sum outgoing transactions: %w", err)
	}

	cost.Total = decimal.Sum(cost.Expenses, cost.Treatments, cost.EquipmentPurchases, cost.FeedPurchases, cost.FeedConsumption, cost.OutgoingTransactions)
	cost.Breakdown = buildBreakdown(cost)

	return revenue, cost, nil
}

// series totals revenue and cost per bucket
func (s *ReportService) series(ctx context.Context, farmID uuid.UUID, buckets []report.Bucket) ([]report.SeriesPoint, error) {
	points := make([]report.SeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		revenue, cost, err := s.sumWindow(ctx, farmID, b.Start, b.End)
		if err != nil {
			return nil, err
		}
		points = append(points, report.SeriesPoint{
			Label:   b.Label,
			Start:   b.Start,
			End:     b.End,
			Revenue: revenue.Total,
			Cost:    cost.Total,
		})
	}
	return points, nil
}

func buildBreakdown(cost report.CostSummary) []report.CostShare {
	sources := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"expenses", cost.Expenses},
		{"treatments", cost.Treatments},
		{"equipment_purchases", cost.EquipmentPurchases},
		{"feed_purchases", cost.FeedPurchases},
		{"feed_consumption", cost.FeedConsumption},
		{"outgoing_transactions", cost.OutgoingTransactions},
	}

	breakdown := make([]report.CostShare, 0, len(sources))
	for _, src := range sources {
		breakdown = append(breakdown, report.CostShare{
			Source:     src.name,
			Amount:     src.amount,
			Percentage: report.Percentage(src.amount, cost.Total),
		})
	}
	return breakdown
}
