package usecase

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BayPortal/internal/domain/models"
	"BayPortal/pkg/cache"
)

func TestTodayActionsServedFromCacheWithinTTL(t *testing.T) {
	var hits atomic.Int32
	bc := fakeBackend(t, map[string]http.HandlerFunc{
		"/risk/today-actions": func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeJSON(`{"items":[{"title":"Typhoon warning","severity":"high"}],"dataSource":"live","ttlSeconds":300,"updatedAt":"2025-06-01T10:00:00Z"}`)(w, r)
		},
	})

	cs := cache.NewMemoryCache()
	t.Cleanup(func() { _ = cs.Close() })

	uc := NewTodayActionsUseCase(bc, cs, testLogger(t), nil, time.Minute)

	first, err := uc.Fetch(context.Background(), "sf")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	require.Len(t, first.Actions.Items, 1)

	second, err := uc.Fetch(context.Background(), "sf")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	require.Len(t, second.Actions.Items, 1)
	assert.Equal(t, first.Actions.Items[0].Title, second.Actions.Items[0].Title)

	assert.Equal(t, int32(1), hits.Load())
}

func TestTodayActionsCacheKeyPerCity(t *testing.T) {
	var hits atomic.Int32
	bc := fakeBackend(t, map[string]http.HandlerFunc{
		"/risk/today-actions": func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeJSON(`{"items":[],"dataSource":"live","ttlSeconds":300}`)(w, r)
		},
	})

	cs := cache.NewMemoryCache()
	t.Cleanup(func() { _ = cs.Close() })

	uc := NewTodayActionsUseCase(bc, cs, testLogger(t), nil, time.Minute)

	_, err := uc.Fetch(context.Background(), "sf")
	require.NoError(t, err)
	_, err = uc.Fetch(context.Background(), "south-bay")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestTodayActionsDegradesToEmpty(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{})

	uc := NewTodayActionsUseCase(bc, nil, testLogger(t), nil, time.Minute)
	res, err := uc.Fetch(context.Background(), "sf")
	require.NoError(t, err)

	require.NotNil(t, res.Actions)
	assert.Empty(t, res.Actions.Items)
	assert.Equal(t, []string{models.SectionActions}, res.Degraded)
}

func TestTodayActionsStaleSentinel(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{
		"/risk/today-actions": writeJSON(`{"items":[{"title":"x","severity":"low"}],"dataSource":"mock"}`),
	})

	uc := NewTodayActionsUseCase(bc, nil, testLogger(t), nil, time.Minute)
	res, err := uc.Fetch(context.Background(), "sf")
	require.NoError(t, err)
	assert.True(t, res.Actions.IsStale())
}

func TestTechTrendsPartialDegrade(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{
		"/tech-trends/channel": writeJSON(`{"items":[{"videoId":"v1","title":"AI weekly","publishedAt":"2025-06-01T09:00:00Z"}]}`),
		// context endpoint missing -> 404
	})

	uc := NewTechTrendsUseCase(bc, testLogger(t), nil, 6)
	res, err := uc.Fetch(context.Background(), "ai-news")
	require.NoError(t, err)

	require.Len(t, res.Videos, 1)
	assert.Nil(t, res.Context)
	assert.Equal(t, []string{models.SectionContext}, res.Degraded)
}

func TestFinancialStatusDegradesToNilSnapshot(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{})

	uc := NewFinancialStatusUseCase(bc, testLogger(t), nil)
	res := uc.Fetch(context.Background())

	assert.Nil(t, res.Snapshot)
	assert.Equal(t, []string{models.SectionPortfolio}, res.Degraded)
}
