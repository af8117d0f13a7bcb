package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/service/backend"
	xlogger "BayPortal/pkg/logger"
)

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func fakeBackend(t *testing.T, routes map[string]http.HandlerFunc) *backend.Client {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, 2*time.Second, "test-agent", nil)
}

func writeJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestCityDashboardAllFeedsHealthy(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{
		"/food/restaurants": writeJSON(`{"restaurants":[{"id":"r1","name":"Dim Sum House"}]}`),
		"/feeds/deals":      writeJSON(`{"coupons":[{"id":"d1","title":"BOGO"}]}`),
		"/feeds/gossip":     writeJSON(`{"articles":[{"id":"g1","title":"New shop opening"}]}`),
	})

	uc := NewCityDashboardUseCase(bc, testLogger(t), nil, "", 5, 5, 5)
	res, err := uc.Fetch(context.Background(), "sf", "")
	require.NoError(t, err)

	assert.Len(t, res.Restaurants, 1)
	assert.Len(t, res.Deals, 1)
	assert.Len(t, res.Gossip, 1)
	assert.Empty(t, res.Degraded)
}

func TestCityDashboardOneFeedDown(t *testing.T) {
	// The deals endpoint fails; siblings must be unaffected and the result
	// must still be fully populated.
	bc := fakeBackend(t, map[string]http.HandlerFunc{
		"/food/restaurants": writeJSON(`{"restaurants":[{"id":"r1","name":"Dim Sum House"}]}`),
		"/feeds/deals": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream timeout", http.StatusGatewayTimeout)
		},
		"/feeds/gossip": writeJSON(`{"articles":[{"id":"g1","title":"New shop opening"}]}`),
	})

	uc := NewCityDashboardUseCase(bc, testLogger(t), nil, "", 5, 5, 5)
	res, err := uc.Fetch(context.Background(), "sf", "")
	require.NoError(t, err)

	assert.Len(t, res.Restaurants, 1)
	assert.Len(t, res.Gossip, 1)
	assert.NotNil(t, res.Deals)
	assert.Empty(t, res.Deals)
	assert.Equal(t, []string{models.FeedDeals}, res.Degraded)
}

func TestCityDashboardTotalFailure(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{})

	uc := NewCityDashboardUseCase(bc, testLogger(t), nil, "", 5, 5, 5)
	res, err := uc.Fetch(context.Background(), "sf", "")
	require.NoError(t, err)

	assert.Empty(t, res.Restaurants)
	assert.Empty(t, res.Deals)
	assert.Empty(t, res.Gossip)
	assert.ElementsMatch(t,
		[]string{models.FeedRestaurants, models.FeedDeals, models.FeedGossip},
		res.Degraded)
}

func TestCityDashboardRequiresCity(t *testing.T) {
	bc := fakeBackend(t, map[string]http.HandlerFunc{})
	uc := NewCityDashboardUseCase(bc, testLogger(t), nil, "", 5, 5, 5)
	_, err := uc.Fetch(context.Background(), "", "")
	require.Error(t, err)
}
