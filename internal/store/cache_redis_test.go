package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReportCache(t *testing.T) (ReportCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewReportCache(context.Background(), config.Cache{Address: mr.Addr(), TTL: time.Minute}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, mr
}

// storeReport runs a miss and stores result under the key the miss resolved.
func storeReport(t *testing.T, cache ReportCache, formID int64, req models.ReportRequest, result models.ReportResult) {
	t.Helper()

	_, key, _, err := cache.Get(context.Background(), formID, req)
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), key, result))
}

func TestReportCache_SetGet(t *testing.T) {
	cache, _ := newTestReportCache(t)
	ctx := context.Background()

	req := models.ReportRequest{GroupBy: []string{"question_1"}, Target: "user_id", Func: models.FuncCount}
	result := models.ReportResult{Rows: []models.ReportRow{{"question_1": "a", "COUNT_user_id": 2.0}}}

	_, key, ok, err := cache.Get(ctx, 1, req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, key)

	require.NoError(t, cache.Set(ctx, key, result))

	got, hitKey, ok, err := cache.Get(ctx, 1, req)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, result, got)
	assert.Equal(t, key, hitKey)

	// different request, different key
	_, otherKey, ok, err := cache.Get(ctx, 1, models.ReportRequest{Target: "user_id", Func: models.FuncCount})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEqual(t, key, otherKey)
}

func TestReportCache_Invalidate(t *testing.T) {
	cache, _ := newTestReportCache(t)
	ctx := context.Background()

	req := models.ReportRequest{Target: "user_id", Func: models.FuncCount}
	storeReport(t, cache, 1, req, models.ReportResult{})
	storeReport(t, cache, 2, req, models.ReportResult{})

	require.NoError(t, cache.Invalidate(ctx, 1))

	_, _, ok, err := cache.Get(ctx, 1, req)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, ok, err = cache.Get(ctx, 2, req)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReportCache_InvalidateBetweenMissAndSet(t *testing.T) {
	cache, _ := newTestReportCache(t)
	ctx := context.Background()

	req := models.ReportRequest{GroupBy: []string{"question_1"}, Target: "user_id", Func: models.FuncCount}
	before := models.ReportResult{Rows: []models.ReportRow{{"question_1": "a", "COUNT_user_id": 1.0}}}

	_, key, ok, err := cache.Get(ctx, 1, req)
	require.NoError(t, err)
	require.False(t, ok)

	// a submission lands while the report computed before it is in flight
	require.NoError(t, cache.Invalidate(ctx, 1))
	require.NoError(t, cache.Set(ctx, key, before))

	_, freshKey, ok, err := cache.Get(ctx, 1, req)
	require.NoError(t, err)
	assert.False(t, ok, "report computed before the invalidation must not be served")
	assert.NotEqual(t, key, freshKey)
}

func TestReportCache_TTL(t *testing.T) {
	cache, mr := newTestReportCache(t)
	ctx := context.Background()

	req := models.ReportRequest{Target: "user_id", Func: models.FuncCount}
	storeReport(t, cache, 1, req, models.ReportResult{})

	mr.FastForward(2 * time.Minute)

	_, _, ok, err := cache.Get(ctx, 1, req)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReportCache_Disabled(t *testing.T) {
	cache, err := NewReportCache(context.Background(), config.Cache{}, logger.Nop())
	require.NoError(t, err)

	_, key, ok, err := cache.Get(context.Background(), 1, models.ReportRequest{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, key)
	require.NoError(t, cache.Set(context.Background(), key, models.ReportResult{}))
	require.NoError(t, cache.Invalidate(context.Background(), 1))
	require.NoError(t, cache.Close())
}

func TestReportCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewReportCache(context.Background(), config.Cache{Address: addr}, logger.Nop())
	require.Error(t, err)
}
