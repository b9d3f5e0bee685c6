package pipeline

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-insights-go/internal/cache"
	"payment-insights-go/internal/config"
	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/filter"
	"payment-insights-go/internal/logger"
	"payment-insights-go/internal/surveytest"
)

func quietLogger() *logger.Logger {
	return logger.NewWithOptions(logger.Options{Environment: "test", Output: io.Discard})
}

func newTable(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.LoadBytes("sample.csv", surveytest.CSV(surveytest.Sample()))
	require.NoError(t, err)
	return table
}

func newCachedService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	svc := NewService(newTable(t), config.DefaultCatalog(), cache.NewCache(client, time.Minute), WithLogger(quietLogger()))
	return svc, mr
}

func TestDashboardUncached(t *testing.T) {
	svc := NewService(newTable(t), config.DefaultCatalog(), nil, WithLogger(quietLogger()))
	d, err := svc.Dashboard(context.Background(), filter.Selection{Frequency: "Daily"})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Filters.Matched)
	assert.Equal(t, 5, d.Filters.Total)
	assert.Equal(t, "Daily", d.Filters.Frequency)
	assert.NoError(t, svc.Invalidate(context.Background()))
}

func TestDashboardInvalidSelection(t *testing.T) {
	svc := NewService(newTable(t), config.DefaultCatalog(), nil, WithLogger(quietLogger()))
	_, err := svc.Dashboard(context.Background(), filter.Selection{Platform: "PayPal"})
	assert.ErrorIs(t, err, filter.ErrInvalidSelection)
}

func TestDashboardCached(t *testing.T) {
	svc, mr := newCachedService(t)
	ctx := context.Background()

	first, err := svc.Dashboard(ctx, filter.Everything)
	require.NoError(t, err)

	keys := mr.Keys()
	assert.Contains(t, keys, "dashboard:"+svc.Table().Fingerprint()+":ALL|ALL:1")

	second, err := svc.Dashboard(ctx, filter.Selection{})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, svc.Invalidate(ctx))
	_, err = svc.Dashboard(ctx, filter.Everything)
	require.NoError(t, err)
	assert.Contains(t, mr.Keys(), "dashboard:"+svc.Table().Fingerprint()+":ALL|ALL:2")
}

func TestDashboardDegradesWhenRedisDown(t *testing.T) {
	svc, mr := newCachedService(t)
	mr.Close()

	d, err := svc.Dashboard(context.Background(), filter.Selection{Platform: "JazzCash"})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Filters.Matched)
	assert.Equal(t, 100, d.KPI.SatisfactionRate)
}

func TestDashboardConcurrent(t *testing.T) {
	svc, _ := newCachedService(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sel := filter.Everything
			if i%2 == 0 {
				sel = filter.Selection{Platform: "Easypaisa"}
			}
			d, err := svc.Dashboard(context.Background(), sel)
			assert.NoError(t, err)
			assert.NotZero(t, d.Filters.Matched)
		}(i)
	}
	wg.Wait()
}
