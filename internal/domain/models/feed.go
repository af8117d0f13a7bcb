package models

// FeedItem is the normalized form of a restaurant, deal, or gossip post.
// Backend feeds use different field names per source; the backend client maps
// them into this shape at the fetch boundary.
type FeedItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	SourceTag   string   `json:"sourceTag"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// Feed kinds as they appear in route paths and degraded-section lists.
const (
	FeedRestaurants = "restaurants"
	FeedDeals       = "deals"
	FeedGossip      = "gossip"
)

// UnknownSource is the sourceTag applied when a feed item carries none.
const UnknownSource = "unknown"
