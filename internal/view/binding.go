package view

import (
	"time"

	"BayPortal/internal/domain/models"
	"BayPortal/internal/services/derive"
	"BayPortal/pkg/util"
)

// Section states. A degraded section is indistinguishable from a genuinely
// empty one in the render model; only the aggregate's Degraded list (meta,
// operator-facing) records the difference.
const (
	StatePopulated = "populated"
	StateEmpty     = "empty"
)

// Display caps. Presentation contracts: the fetch may return more, the bound
// view never shows more.
const (
	MaxRestaurants = 5
	MaxDeals       = 5
	MaxGossip      = 5
	MaxActions     = 3
	MaxHoldings    = 10
	MaxVideos      = 6
)

// MaxSnippetRunes caps feed card snippets; backend descriptions can run to
// full paragraphs.
const MaxSnippetRunes = 160

// Empty-state placeholders. Rendered instead of an empty container.
const (
	PlaceholderRestaurants = "No restaurants to recommend right now."
	PlaceholderDeals       = "No deals available right now."
	PlaceholderGossip      = "Nothing new on the grapevine."
	PlaceholderActions     = "Nothing urgent for today."
	PlaceholderPortfolio   = "Portfolio data is unavailable."
	PlaceholderVideos      = "No videos in this channel yet."
)

// VideoThumbnailFallback replaces a missing thumbnail URL.
const VideoThumbnailFallback = "/static/video-placeholder.png"

// --- bound view models ---

type FeedCard struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Snippet string   `json:"snippet,omitempty"`
	Source  string   `json:"source"`
	Path    string   `json:"path"`
	Tags    []string `json:"tags,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

type FeedSection struct {
	State       string     `json:"state"`
	Placeholder string     `json:"placeholder,omitempty"`
	Items       []FeedCard `json:"items"`
}

type CityDashboardView struct {
	City        string      `json:"city"`
	CityName    string      `json:"cityName"`
	CityPath    string      `json:"cityPath"`
	Restaurants FeedSection `json:"restaurants"`
	Deals       FeedSection `json:"deals"`
	Gossip      FeedSection `json:"gossip"`
	Degraded    []string    `json:"degraded,omitempty"`
}

type HoldingRow struct {
	Ticker         string   `json:"ticker"`
	CurrentPrice   *float64 `json:"currentPrice,omitempty"`
	Quantity       float64  `json:"quantity"`
	Value          float64  `json:"value"`
	DayGain        *float64 `json:"dayGain,omitempty"`
	DayGainPercent float64  `json:"dayGainPercent"`
}

type FinancialStatusView struct {
	State          string       `json:"state"`
	Placeholder    string       `json:"placeholder,omitempty"`
	TotalValue     float64      `json:"totalValue"`
	DayGain        float64      `json:"dayGain"`
	DayGainPercent float64      `json:"dayGainPercent"`
	TotalPnL       float64      `json:"totalPnl"`
	Conclusion     string       `json:"conclusion,omitempty"`
	TopMovers      []HoldingRow `json:"topMovers"`
	Holdings       []HoldingRow `json:"holdings"`
	MoreHoldings   bool         `json:"moreHoldings"`
	Degraded       []string     `json:"degraded,omitempty"`
}

type VideoCard struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Published string `json:"published"`
	URL       string `json:"url"`
}

type ContextCard struct {
	Background string   `json:"background"`
	Points     []string `json:"points"`
	Domains    []string `json:"domains,omitempty"`
}

type VideoSection struct {
	State       string      `json:"state"`
	Placeholder string      `json:"placeholder,omitempty"`
	Items       []VideoCard `json:"items"`
}

type TechTrendsView struct {
	Channel  string       `json:"channel"`
	Videos   VideoSection `json:"videos"`
	Context  *ContextCard `json:"context,omitempty"`
	Degraded []string     `json:"degraded,omitempty"`
}

type ActionCard struct {
	Title    string              `json:"title"`
	Why      string              `json:"why"`
	Action   string              `json:"action"`
	Deadline string              `json:"deadline,omitempty"`
	Severity string              `json:"severity"`
	Icon     string              `json:"icon"`
	Links    []models.ActionLink `json:"links,omitempty"`
}

type TodayActionsView struct {
	City        string       `json:"city"`
	CityName    string       `json:"cityName"`
	State       string       `json:"state"`
	Placeholder string       `json:"placeholder,omitempty"`
	Items       []ActionCard `json:"items"`
	Updated     string       `json:"updated"`
	Stale       bool         `json:"stale"`
	Disclaimer  string       `json:"disclaimer,omitempty"`
	Degraded    []string     `json:"degraded,omitempty"`
}

// --- bind functions ---

// BindCityDashboard maps the aggregate onto the card sections.
func BindCityDashboard(agg *models.CityDashboard) *CityDashboardView {
	return &CityDashboardView{
		City:     agg.City,
		CityName: derive.CityName(agg.City),
		CityPath: derive.CityPath(agg.City),
		Restaurants: bindFeedSection(agg.Restaurants, MaxRestaurants, PlaceholderRestaurants,
			func(it models.FeedItem) string { return derive.EatPath(agg.City, it.Title, it.ID) }),
		Deals: bindFeedSection(agg.Deals, MaxDeals, PlaceholderDeals,
			func(it models.FeedItem) string { return derive.DealPath(it.SourceTag, it.Title, it.ID) }),
		Gossip: bindFeedSection(agg.Gossip, MaxGossip, PlaceholderGossip,
			func(it models.FeedItem) string { return derive.PostPath(it.SourceTag, it.Title, it.ID) }),
		Degraded: agg.Degraded,
	}
}

func bindFeedSection(items []models.FeedItem, max int, placeholder string, path func(models.FeedItem) string) FeedSection {
	if len(items) == 0 {
		return FeedSection{State: StateEmpty, Placeholder: placeholder, Items: []FeedCard{}}
	}
	if len(items) > max {
		items = items[:max]
	}
	cards := make([]FeedCard, 0, len(items))
	for _, it := range items {
		cards = append(cards, FeedCard{
			ID:      it.ID,
			Title:   it.Title,
			Snippet: util.Truncate(it.Description, MaxSnippetRunes),
			Source:  it.SourceTag,
			Path:    path(it),
			Tags:    it.Tags,
			Rating:  it.Rating,
		})
	}
	return FeedSection{State: StatePopulated, Items: cards}
}

// BindFinancialStatus maps the snapshot plus derived fields onto the table
// view. A nil snapshot renders the empty state.
func BindFinancialStatus(agg *models.FinancialStatus) *FinancialStatusView {
	if agg.Snapshot == nil {
		return &FinancialStatusView{
			State:       StateEmpty,
			Placeholder: PlaceholderPortfolio,
			TopMovers:   []HoldingRow{},
			Holdings:    []HoldingRow{},
			Degraded:    agg.Degraded,
		}
	}

	snap := agg.Snapshot
	var benchPct *float64
	if snap.Benchmark != nil {
		benchPct = &snap.Benchmark.DayGainPercent
	}

	holdings := snap.Holdings
	more := len(holdings) > MaxHoldings
	if more {
		holdings = holdings[:MaxHoldings]
	}

	return &FinancialStatusView{
		State:          StatePopulated,
		TotalValue:     snap.TotalValue,
		DayGain:        snap.DayGain,
		DayGainPercent: snap.DayGainPercent,
		TotalPnL:       snap.TotalPnL,
		Conclusion:     derive.Conclusion(snap.DayGainPercent, benchPct),
		TopMovers:      bindHoldings(derive.TopMovers(snap.Holdings, derive.TopMoversLimit)),
		Holdings:       bindHoldings(holdings),
		MoreHoldings:   more,
		Degraded:       agg.Degraded,
	}
}

func bindHoldings(holdings []models.Holding) []HoldingRow {
	rows := make([]HoldingRow, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, HoldingRow{
			Ticker:         h.Ticker,
			CurrentPrice:   h.CurrentPrice,
			Quantity:       h.Quantity,
			Value:          h.Value,
			DayGain:        h.DayGain,
			DayGainPercent: h.DayGainPercent,
		})
	}
	return rows
}

// BindTechTrends maps the channel aggregate onto the video grid.
func BindTechTrends(agg *models.TechTrends, now time.Time) *TechTrendsView {
	v := &TechTrendsView{
		Channel:  agg.Channel,
		Degraded: agg.Degraded,
	}

	if len(agg.Videos) == 0 {
		v.Videos = VideoSection{State: StateEmpty, Placeholder: PlaceholderVideos, Items: []VideoCard{}}
	} else {
		items := agg.Videos
		if len(items) > MaxVideos {
			items = items[:MaxVideos]
		}
		cards := make([]VideoCard, 0, len(items))
		for _, it := range items {
			cards = append(cards, VideoCard{
				VideoID:   it.VideoID,
				Title:     it.Title,
				Thumbnail: videoThumbnail(it),
				Published: derive.Relative(it.PublishedAt, now),
				URL:       videoURL(it),
			})
		}
		v.Videos = VideoSection{State: StatePopulated, Items: cards}
	}

	if agg.Context != nil {
		v.Context = &ContextCard{
			Background: agg.Context.Background,
			Points:     agg.Context.Points,
			Domains:    agg.Context.Domains,
		}
	}
	return v
}

func videoThumbnail(it models.VideoItem) string {
	if it.Thumbnail == "" {
		return VideoThumbnailFallback
	}
	return it.Thumbnail
}

func videoURL(it models.VideoItem) string {
	if it.URL == "" {
		return "https://www.youtube.com/watch?v=" + it.VideoID
	}
	return it.URL
}

// BindTodayActions maps the actions aggregate onto the alert cards.
func BindTodayActions(agg *models.TodayActionsResult, now time.Time) *TodayActionsView {
	actions := agg.Actions
	v := &TodayActionsView{
		City:     agg.City,
		CityName: derive.CityName(agg.City),
		Updated:  derive.Relative(actions.UpdatedAt, now),
		Stale:    actions.IsStale(),
		Items:    []ActionCard{},
		Degraded: agg.Degraded,
	}

	if len(actions.Items) == 0 {
		v.State = StateEmpty
		v.Placeholder = PlaceholderActions
		return v
	}

	items := actions.Items
	if len(items) > MaxActions {
		items = items[:MaxActions]
	}
	for _, it := range items {
		v.Items = append(v.Items, ActionCard{
			Title:    it.Title,
			Why:      it.Why,
			Action:   it.Action,
			Deadline: it.Deadline,
			Severity: it.Severity,
			Icon:     derive.SeverityIcon(it.Severity),
			Links:    it.Links,
		})
	}
	v.State = StatePopulated
	v.Disclaimer = actions.Disclaimer
	return v
}
