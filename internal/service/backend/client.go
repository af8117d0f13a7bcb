package backend

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"BayPortal/internal/domain/models"
	xhttp "BayPortal/pkg/http"
	"BayPortal/pkg/metrics"
)

// Endpoint names used for metrics labels and degraded-section reporting.
const (
	EndpointRestaurants  = "food/restaurants"
	EndpointDeals        = "feeds/deals"
	EndpointGossip       = "feeds/gossip"
	EndpointPortfolio    = "portfolio/db-summary"
	EndpointTodayActions = "risk/today-actions"
	EndpointChannel      = "tech-trends/channel"
	EndpointContext      = "tech-trends/context"
)

// Client is the typed gateway to the content backend. Every method performs
// exactly one request and decodes the response at this boundary, so callers
// only ever see normalized domain models.
type Client struct {
	http    *xhttp.Client
	metrics *metrics.Recorder
}

// New creates a backend client for the given base URL.
func New(baseURL string, timeout time.Duration, userAgent string, rec *metrics.Recorder) *Client {
	return &Client{
		http: xhttp.NewClient(baseURL,
			xhttp.WithTimeout(timeout),
			xhttp.WithUserAgent(userAgent),
		),
		metrics: rec,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, dest interface{}) error {
	start := time.Now()
	err := c.http.GetJSON(ctx, "/"+endpoint, query, dest)
	if c.metrics != nil {
		c.metrics.RecordFetch(endpoint, err, time.Since(start).Seconds())
	}
	return err
}

// --- feed endpoints ---

type restaurantDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CuisineType string   `json:"cuisine_type"`
	Description string   `json:"description"`
	Rating      *float64 `json:"rating"`
	Source      string   `json:"source"`
}

type articleDTO struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Source  string   `json:"source"`
	Snippet string   `json:"snippet"`
	Tags    []string `json:"tags"`
}

// Restaurants fetches the restaurant feed for a cuisine tag.
func (c *Client) Restaurants(ctx context.Context, cuisine string, limit int) ([]models.FeedItem, error) {
	var body struct {
		Restaurants []restaurantDTO `json:"restaurants"`
	}
	q := url.Values{}
	if cuisine != "" {
		q.Set("cuisine_type", cuisine)
	}
	q.Set("limit", strconv.Itoa(limit))

	if err := c.get(ctx, EndpointRestaurants, q, &body); err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(body.Restaurants))
	for _, r := range body.Restaurants {
		var tags []string
		if r.CuisineType != "" {
			tags = []string{r.CuisineType}
		}
		items = append(items, models.FeedItem{
			ID:          r.ID,
			Title:       r.Name,
			SourceTag:   sourceOrUnknown(r.Source),
			Description: r.Description,
			Tags:        tags,
			Rating:      r.Rating,
		})
	}
	return items, nil
}

// Deals fetches the deals (coupons) feed.
func (c *Client) Deals(ctx context.Context, limit int) ([]models.FeedItem, error) {
	var body struct {
		Coupons []articleDTO `json:"coupons"`
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	if err := c.get(ctx, EndpointDeals, q, &body); err != nil {
		return nil, err
	}
	return normalizeArticles(body.Coupons), nil
}

// Gossip fetches the gossip/news article feed.
func (c *Client) Gossip(ctx context.Context, limit int) ([]models.FeedItem, error) {
	var body struct {
		Articles []articleDTO `json:"articles"`
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	if err := c.get(ctx, EndpointGossip, q, &body); err != nil {
		return nil, err
	}
	return normalizeArticles(body.Articles), nil
}

func normalizeArticles(dtos []articleDTO) []models.FeedItem {
	items := make([]models.FeedItem, 0, len(dtos))
	for _, a := range dtos {
		items = append(items, models.FeedItem{
			ID:          a.ID,
			Title:       a.Title,
			SourceTag:   sourceOrUnknown(a.Source),
			Description: a.Snippet,
			Tags:        a.Tags,
		})
	}
	return items
}

func sourceOrUnknown(s string) string {
	if s == "" {
		return models.UnknownSource
	}
	return s
}

// --- portfolio ---

// PortfolioSummary fetches the portfolio snapshot.
func (c *Client) PortfolioSummary(ctx context.Context) (*models.PortfolioSnapshot, error) {
	var snap models.PortfolioSnapshot
	if err := c.get(ctx, EndpointPortfolio, nil, &snap); err != nil {
		return nil, err
	}
	if snap.Holdings == nil {
		snap.Holdings = []models.Holding{}
	}
	return &snap, nil
}

// --- today actions ---

// TodayActions fetches the action items for a city.
func (c *Client) TodayActions(ctx context.Context, city string) (*models.TodayActions, error) {
	var body models.TodayActions
	q := url.Values{}
	q.Set("city", city)

	if err := c.get(ctx, EndpointTodayActions, q, &body); err != nil {
		return nil, err
	}
	if body.Items == nil {
		body.Items = []models.ActionItem{}
	}
	if body.DataSource == "" {
		body.DataSource = models.UnknownSource
	}
	return &body, nil
}

// --- tech trends ---

// ChannelVideos fetches the video feed of a channel.
func (c *Client) ChannelVideos(ctx context.Context, channel string, limit int) ([]models.VideoItem, error) {
	var body struct {
		Items []models.VideoItem `json:"items"`
	}
	q := url.Values{}
	q.Set("channel", channel)
	q.Set("limit", strconv.Itoa(limit))

	if err := c.get(ctx, EndpointChannel, q, &body); err != nil {
		return nil, err
	}
	return body.Items, nil
}

// TrendContext fetches the channel-independent context blurb.
func (c *Client) TrendContext(ctx context.Context) (*models.TechTrendContext, error) {
	var body struct {
		Context *models.TechTrendContext `json:"context"`
	}
	if err := c.get(ctx, EndpointContext, nil, &body); err != nil {
		return nil, err
	}
	return body.Context, nil
}
