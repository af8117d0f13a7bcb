package view

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/services/derive"
)

func f(v float64) *float64 { return &v }

func feedItems(n int) []models.FeedItem {
	items := make([]models.FeedItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.FeedItem{
			ID:        fmt.Sprintf("id-%d", i),
			Title:     fmt.Sprintf("Item %d", i),
			SourceTag: "src",
		})
	}
	return items
}

func TestBindCityDashboardCaps(t *testing.T) {
	agg := &models.CityDashboard{
		City:        "sf",
		Restaurants: feedItems(8),
		Deals:       feedItems(2),
		Gossip:      nil,
	}

	v := BindCityDashboard(agg)

	assert.Len(t, v.Restaurants.Items, MaxRestaurants)
	assert.Equal(t, StatePopulated, v.Restaurants.State)

	assert.Len(t, v.Deals.Items, 2)
	assert.Equal(t, StatePopulated, v.Deals.State)

	assert.Equal(t, StateEmpty, v.Gossip.State)
	assert.Equal(t, PlaceholderGossip, v.Gossip.Placeholder)
	assert.NotNil(t, v.Gossip.Items)

	assert.Equal(t, "San Francisco", v.CityName)
	assert.Equal(t, "/city/sf", v.CityPath)
}

func TestBindCityDashboardRoutePaths(t *testing.T) {
	agg := &models.CityDashboard{
		City:        "sf",
		Restaurants: []models.FeedItem{{ID: "r1", Title: "Dim Sum House", SourceTag: "yelp"}},
		Deals:       []models.FeedItem{{ID: "d1", Title: "50% Off", SourceTag: "weee"}},
		Gossip:      []models.FeedItem{{ID: "g1", SourceTag: "unknown"}},
	}

	v := BindCityDashboard(agg)
	assert.Equal(t, "/eat/sf/dim-sum-house-r1", v.Restaurants.Items[0].Path)
	assert.Equal(t, "/deals/weee/50-off-d1", v.Deals.Items[0].Path)
	// Empty title degenerates to an id-only path.
	assert.Equal(t, "/posts/unknown/g1", v.Gossip.Items[0].Path)
}

func TestBindFinancialStatusPopulated(t *testing.T) {
	agg := &models.FinancialStatus{
		Snapshot: &models.PortfolioSnapshot{
			TotalValue:     100000,
			DayGain:        800,
			DayGainPercent: 0.8,
			TotalPnL:       5000,
			Holdings: []models.Holding{
				{Ticker: "AAPL", DayGain: f(10)},
				{Ticker: "NVDA", DayGain: f(-300)},
				{Ticker: "MSFT", DayGain: f(40)},
				{Ticker: "TSLA", DayGain: f(-55)},
			},
			Benchmark: &models.Benchmark{Symbol: "SPY", DayGainPercent: 1.2},
		},
	}

	v := BindFinancialStatus(agg)
	assert.Equal(t, StatePopulated, v.State)
	assert.Equal(t, derive.ConclusionFollowsUp, v.Conclusion)
	require.Len(t, v.TopMovers, 3)
	assert.Equal(t, "NVDA", v.TopMovers[0].Ticker)
	assert.Len(t, v.Holdings, 4)
	assert.False(t, v.MoreHoldings)
}

func TestBindFinancialStatusHoldingsOverflow(t *testing.T) {
	holdings := make([]models.Holding, MaxHoldings+5)
	for i := range holdings {
		holdings[i] = models.Holding{Ticker: fmt.Sprintf("T%d", i)}
	}
	agg := &models.FinancialStatus{
		Snapshot: &models.PortfolioSnapshot{Holdings: holdings},
	}

	v := BindFinancialStatus(agg)
	assert.Len(t, v.Holdings, MaxHoldings)
	assert.True(t, v.MoreHoldings)
}

func TestBindFinancialStatusEmpty(t *testing.T) {
	agg := &models.FinancialStatus{Degraded: []string{models.SectionPortfolio}}

	v := BindFinancialStatus(agg)
	assert.Equal(t, StateEmpty, v.State)
	assert.Equal(t, PlaceholderPortfolio, v.Placeholder)
	assert.NotNil(t, v.TopMovers)
	assert.NotNil(t, v.Holdings)
	assert.Equal(t, agg.Degraded, v.Degraded)
}

func TestBindTechTrendsFallbacks(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	agg := &models.TechTrends{
		Channel: "ai-news",
		Videos: []models.VideoItem{
			{VideoID: "v1", Title: "AI weekly", PublishedAt: now.Add(-3 * time.Hour).Format(time.RFC3339)},
			{VideoID: "v2", Title: "Rust vs Go", Thumbnail: "https://img/x.jpg", URL: "https://example.com/v2", PublishedAt: "garbage"},
		},
	}

	v := BindTechTrends(agg, now)
	require.Len(t, v.Videos.Items, 2)

	assert.Equal(t, VideoThumbnailFallback, v.Videos.Items[0].Thumbnail)
	assert.Equal(t, "https://www.youtube.com/watch?v=v1", v.Videos.Items[0].URL)
	assert.Equal(t, "3 hours ago", v.Videos.Items[0].Published)

	assert.Equal(t, "https://img/x.jpg", v.Videos.Items[1].Thumbnail)
	assert.Equal(t, "https://example.com/v2", v.Videos.Items[1].URL)
	assert.Equal(t, derive.RelativeUnknown, v.Videos.Items[1].Published)

	assert.Nil(t, v.Context)
}

func TestBindTechTrendsEmpty(t *testing.T) {
	v := BindTechTrends(&models.TechTrends{Channel: "x"}, time.Now())
	assert.Equal(t, StateEmpty, v.Videos.State)
	assert.Equal(t, PlaceholderVideos, v.Videos.Placeholder)
}

func TestBindTodayActionsCapAndIcons(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []models.ActionItem{
		{Title: "a", Severity: models.SeverityHigh},
		{Title: "b", Severity: models.SeverityMedium},
		{Title: "c", Severity: models.SeverityLow},
		{Title: "d", Severity: models.SeverityLow},
	}
	agg := &models.TodayActionsResult{
		City: "sf",
		Actions: &models.TodayActions{
			Items:      items,
			UpdatedAt:  now.Add(-30 * time.Minute).Format(time.RFC3339),
			DataSource: "live",
			Disclaimer: "not advice",
		},
	}

	v := BindTodayActions(agg, now)
	require.Len(t, v.Items, MaxActions)
	assert.Equal(t, "🔴", v.Items[0].Icon)
	assert.Equal(t, "🟡", v.Items[1].Icon)
	assert.Equal(t, "🟢", v.Items[2].Icon)
	assert.Equal(t, "30 minutes ago", v.Updated)
	assert.False(t, v.Stale)
	assert.Equal(t, "not advice", v.Disclaimer)
}

func TestBindTodayActionsStaleAndEmpty(t *testing.T) {
	agg := &models.TodayActionsResult{
		City: "sf",
		Actions: &models.TodayActions{
			Items:      []models.ActionItem{},
			DataSource: models.MockSource,
		},
	}

	v := BindTodayActions(agg, time.Now())
	assert.Equal(t, StateEmpty, v.State)
	assert.Equal(t, PlaceholderActions, v.Placeholder)
	assert.True(t, v.Stale)
	assert.Equal(t, derive.RelativeUnknown, v.Updated)
}
