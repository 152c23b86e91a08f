package telemetry

import (
	"context"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database query tracing.
type DBTracingConfig struct {
	Enabled         bool          // register the plugin at all
	LogFullSQL      bool          // include query variables in spans; parameter values leak into traces
	SlowQueryThresh time.Duration // queries above this get a slow_query span event
	DBSystem        string        // reported db system name
}

// DefaultDBTracingConfig returns the tracing defaults: variables stripped
// from statements and a 200ms slow query threshold.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		Enabled:         true,
		LogFullSQL:      false,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "postgresql",
	}
}

// DBTracingPlugin wraps the otelgorm plugin and adds slow query detection,
// row counts, and error status on the query spans.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a database tracing plugin.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	return &DBTracingPlugin{
		config: cfg,
		logger: logger,
	}
}

// RegisterOtelGorm installs otelgorm on the given GORM handle together with
// the timing callbacks used for slow query detection.
func (p *DBTracingPlugin) RegisterOtelGorm(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("database tracing disabled")
		return nil
	}

	opts := []otelgorm.Option{
		otelgorm.WithDBName(p.config.DBSystem),
	}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}
	if err := p.registerTimingCallbacks(db); err != nil {
		return err
	}

	p.logger.Info("database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("db_system", p.config.DBSystem),
	)
	return nil
}

// registerTimingCallbacks brackets every GORM operation: the before hook
// stamps the start time into the statement context, the after hook enriches
// the otelgorm span.
func (p *DBTracingPlugin) registerTimingCallbacks(db *gorm.DB) error {
	before := func(db *gorm.DB) {
		if db.Statement.Context != nil {
			db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
		}
	}

	cb := db.Callback()
	for _, err := range []error{
		cb.Create().Before("gorm:create").Register("farm_tracing:before_create", before),
		cb.Query().Before("gorm:query").Register("farm_tracing:before_query", before),
		cb.Update().Before("gorm:update").Register("farm_tracing:before_update", before),
		cb.Delete().Before("gorm:delete").Register("farm_tracing:before_delete", before),
		cb.Row().Before("gorm:row").Register("farm_tracing:before_row", before),
		cb.Raw().Before("gorm:raw").Register("farm_tracing:before_raw", before),
		cb.Create().After("gorm:create").Register("farm_tracing:after_create", p.enrichSpan),
		cb.Query().After("gorm:query").Register("farm_tracing:after_query", p.enrichSpan),
		cb.Update().After("gorm:update").Register("farm_tracing:after_update", p.enrichSpan),
		cb.Delete().After("gorm:delete").Register("farm_tracing:after_delete", p.enrichSpan),
		cb.Row().After("gorm:row").Register("farm_tracing:after_row", p.enrichSpan),
		cb.Raw().After("gorm:raw").Register("farm_tracing:after_raw", p.enrichSpan),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// enrichSpan runs after each operation: row count, table, error status, and
// a slow_query event when the elapsed time crosses the threshold.
func (p *DBTracingPlugin) enrichSpan(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}

	// record-not-found is an expected lookup miss, not a span failure
	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if startTime, ok := ctx.Value(queryStartTimeKey).(time.Time); ok {
		elapsed := time.Since(startTime)
		if elapsed > p.config.SlowQueryThresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
			span.AddEvent("slow_query", trace.WithAttributes(
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", p.config.SlowQueryThresh.Milliseconds()),
			))
		}
	}
}

type contextKey string

const queryStartTimeKey contextKey = "query_start_time"

// WithQueryStartTime stamps the query start time into the context, for
// callers that run raw SQL outside the registered callbacks.
func WithQueryStartTime(ctx context.Context) context.Context {
	return context.WithValue(ctx, queryStartTimeKey, time.Now())
}
