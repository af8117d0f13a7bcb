package models

// Aggregate results. One per view, produced by a fan-out fetch cycle. Every
// field is populated even when a branch failed: failed branches contribute
// their zero value and their name lands in Degraded. Downstream code never
// sees a partial shape.

// Section names used in Degraded lists. The city feeds reuse the Feed*
// constants; these cover the remaining views.
const (
	SectionPortfolio = "portfolio"
	SectionVideos    = "videos"
	SectionContext   = "context"
	SectionActions   = "actions"
)

// CityDashboard combines the three city feeds.
type CityDashboard struct {
	City        string
	Restaurants []FeedItem
	Deals       []FeedItem
	Gossip      []FeedItem
	Degraded    []string
}

// FinancialStatus wraps the portfolio snapshot fetch.
type FinancialStatus struct {
	Snapshot *PortfolioSnapshot
	Degraded []string
}

// TechTrends combines the channel feed and the context blurb.
type TechTrends struct {
	Channel  string
	Videos   []VideoItem
	Context  *TechTrendContext
	Degraded []string
}

// TodayActionsResult wraps the today-actions fetch and whether it was served
// from cache.
type TodayActionsResult struct {
	City     string
	Actions  *TodayActions
	Cached   bool
	Degraded []string
}
