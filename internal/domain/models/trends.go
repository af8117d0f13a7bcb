package models

// VideoItem is one video in a tech-trends channel feed.
type VideoItem struct {
	VideoID     string `json:"videoId"`
	Title       string `json:"title"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url,omitempty"`
}

// TechTrendContext is the editorial blurb accompanying a trends view.
type TechTrendContext struct {
	Background string   `json:"background"`
	Points     []string `json:"points"`
	Domains    []string `json:"domains,omitempty"`
}
