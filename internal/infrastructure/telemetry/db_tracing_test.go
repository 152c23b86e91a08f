package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type feedRow struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100"`
	CreatedAt time.Time
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&feedRow{}))
	return db
}

func setupSpanRecorder() (*trace.TracerProvider, *tracetest.SpanRecorder) {
	spanRecorder := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(spanRecorder))
	return tp, spanRecorder
}

func sqlitePlugin(thresh time.Duration) *DBTracingPlugin {
	return NewDBTracingPlugin(DBTracingConfig{
		Enabled:         true,
		SlowQueryThresh: thresh,
		DBSystem:        "sqlite",
	}, zap.NewNop())
}

func TestDefaultDBTracingConfig(t *testing.T) {
	cfg := DefaultDBTracingConfig()

	assert.True(t, cfg.Enabled)
	assert.False(t, cfg.LogFullSQL, "query variables must stay out of spans by default")
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThresh)
	assert.Equal(t, "postgresql", cfg.DBSystem)
}

func TestNewDBTracingPlugin(t *testing.T) {
	cfg := DefaultDBTracingConfig()
	plugin := NewDBTracingPlugin(cfg, zap.NewNop())

	require.NotNil(t, plugin)
	assert.Equal(t, cfg, plugin.config)
}

func TestRegisterOtelGorm_Disabled(t *testing.T) {
	db := setupTestDB(t)

	cfg := DefaultDBTracingConfig()
	cfg.Enabled = false

	plugin := NewDBTracingPlugin(cfg, zap.NewNop())
	assert.NoError(t, plugin.RegisterOtelGorm(db))
}

func TestRegisterOtelGorm_Enabled(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, sqlitePlugin(200*time.Millisecond).RegisterOtelGorm(db))
}

func TestRegisterOtelGorm_WithFullSQL(t *testing.T) {
	db := setupTestDB(t)
	plugin := NewDBTracingPlugin(DBTracingConfig{
		Enabled:         true,
		LogFullSQL:      true,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        "sqlite",
	}, zap.NewNop())

	assert.NoError(t, plugin.RegisterOtelGorm(db))
}

func TestRegisterOtelGorm_DoubleRegistration(t *testing.T) {
	db := setupTestDB(t)
	plugin := sqlitePlugin(200 * time.Millisecond)

	assert.NoError(t, plugin.RegisterOtelGorm(db))
	// callback names collide on the second install
	assert.Error(t, plugin.RegisterOtelGorm(db))
}

func TestEnrichSpan_RowsAffectedAndTable(t *testing.T) {
	db := setupTestDB(t)
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "feed-write")

	plugin := sqlitePlugin(200 * time.Millisecond)
	db = db.WithContext(ctx)
	rows := []feedRow{{Name: "hay"}, {Name: "silage"}, {Name: "grain"}}
	result := db.Create(&rows)
	require.NoError(t, result.Error)

	plugin.enrichSpan(result.Statement.DB)
	span.End()

	spans := spanRecorder.Ended()
	require.NotEmpty(t, spans)

	foundRows := false
	for _, attr := range spans[0].Attributes() {
		if attr.Key == "db.rows_affected" {
			foundRows = true
			assert.Equal(t, int64(3), attr.Value.AsInt64())
		}
	}
	assert.True(t, foundRows, "db.rows_affected attribute should be present")
}

func TestEnrichSpan_RecordNotFoundIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "feed-miss")
	db = db.WithContext(ctx)

	plugin := sqlitePlugin(200 * time.Millisecond)

	var row feedRow
	tx := db.First(&row, 99999)
	require.Error(t, tx.Error)

	plugin.enrichSpan(tx)
	span.End()

	spans := spanRecorder.Ended()
	require.NotEmpty(t, spans)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestEnrichSpan_SlowQueryEvent(t *testing.T) {
	db := setupTestDB(t)
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "feed-slow")
	ctx = WithQueryStartTime(ctx)
	time.Sleep(1 * time.Millisecond)

	plugin := sqlitePlugin(1 * time.Nanosecond)
	db = db.WithContext(ctx)
	var row feedRow
	db.First(&row)

	plugin.enrichSpan(db.Statement.DB)
	span.End()

	spans := spanRecorder.Ended()
	require.NotEmpty(t, spans)

	foundEvent := false
	for _, event := range spans[0].Events() {
		if event.Name == "slow_query" {
			foundEvent = true
			for _, attr := range event.Attributes {
				if attr.Key == "duration_ms" {
					assert.GreaterOrEqual(t, attr.Value.AsInt64(), int64(1))
				}
			}
		}
	}
	assert.True(t, foundEvent, "slow_query event should be recorded")
}

func TestEnrichSpan_NonRecordingSpan(t *testing.T) {
	db := setupTestDB(t)
	plugin := sqlitePlugin(200 * time.Millisecond)

	db = db.WithContext(context.Background())
	assert.NotPanics(t, func() {
		plugin.enrichSpan(db)
	})
}

func TestEnrichSpan_NoStatementContext(t *testing.T) {
	db := setupTestDB(t)
	plugin := sqlitePlugin(200 * time.Millisecond)

	assert.NotPanics(t, func() {
		plugin.enrichSpan(db)
	})
}

func TestWithQueryStartTime(t *testing.T) {
	ctx := WithQueryStartTime(context.Background())

	startTime, ok := ctx.Value(queryStartTimeKey).(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), startTime, 1*time.Second)
}

func TestRegisteredCallbacks_EndToEnd(t *testing.T) {
	db := setupTestDB(t)
	tp, spanRecorder := setupSpanRecorder()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	plugin := sqlitePlugin(200 * time.Millisecond)
	require.NoError(t, plugin.RegisterOtelGorm(db))

	ctx, span := tp.Tracer("test").Start(context.Background(), "feed-lifecycle")
	db = db.WithContext(ctx)

	result := db.Create(&feedRow{Name: "corn silage"})
	require.NoError(t, result.Error)

	var found feedRow
	require.NoError(t, db.First(&found, "name = ?", "corn silage").Error)
	assert.Equal(t, "corn silage", found.Name)

	span.End()
	assert.NotEmpty(t, spanRecorder.Ended())
}
