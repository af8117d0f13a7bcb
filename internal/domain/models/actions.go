package models

// Severity levels for action items.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// MockSource is the dataSource sentinel marking fallback payloads.
const MockSource = "mock"

// ActionLink is a labeled link attached to an action item.
type ActionLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ActionItem is one "do this today" recommendation for a city.
type ActionItem struct {
	Title    string       `json:"title"`
	Why      string       `json:"why"`
	Action   string       `json:"action"`
	Deadline string       `json:"deadline,omitempty"`
	Severity string       `json:"severity"`
	Links    []ActionLink `json:"links,omitempty"`
}

// TodayActions is the today-actions payload with its freshness envelope.
type TodayActions struct {
	Items      []ActionItem `json:"items"`
	UpdatedAt  string       `json:"updatedAt"`
	DataSource string       `json:"dataSource"`
	Stale      bool         `json:"stale"`
	TTLSeconds int          `json:"ttlSeconds"`
	Disclaimer string       `json:"disclaimer,omitempty"`
}

// IsStale reports whether the payload should be presented as stale: either
// the backend marked it, or it came from the mock fallback source.
func (t *TodayActions) IsStale() bool {
	return t.Stale || t.DataSource == MockSource
}
