package models

// Holding is one position inside a portfolio snapshot.
type Holding struct {
	Ticker         string   `json:"ticker"`
	CurrentPrice   *float64 `json:"currentPrice,omitempty"`
	Quantity       float64  `json:"quantity"`
	Value          float64  `json:"value"`
	DayGain        *float64 `json:"dayGain,omitempty"`
	DayGainPercent float64  `json:"dayGainPercent"`
}

// Benchmark is an optional market reference attached to a snapshot.
type Benchmark struct {
	Symbol         string  `json:"symbol"`
	DayGainPercent float64 `json:"dayGainPercent"`
}

// PortfolioSnapshot is the backend's portfolio summary. Request-scoped; the
// service never stores it.
type PortfolioSnapshot struct {
	TotalValue     float64    `json:"totalValue"`
	DayGain        float64    `json:"dayGain"`
	DayGainPercent float64    `json:"dayGainPercent"`
	TotalPnL       float64    `json:"totalPnl"`
	Holdings       []Holding  `json:"holdings"`
	Benchmark      *Benchmark `json:"benchmark,omitempty"`
}
