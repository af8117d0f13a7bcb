package derive

import (
	"testing"

	"BayPortal/internal/domain/models"
)

func f(v float64) *float64 { return &v }

func TestTopMoversOrderAndLimit(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "AAPL", DayGain: f(10)},
		{Ticker: "NVDA", DayGain: f(-120)},
		{Ticker: "MSFT", DayGain: f(40)},
		{Ticker: "TSLA", DayGain: f(-55)},
	}

	movers := TopMovers(holdings, TopMoversLimit)
	if len(movers) != 3 {
		t.Fatalf("len = %d", len(movers))
	}
	want := []string{"NVDA", "TSLA", "MSFT"}
	for i, w := range want {
		if movers[i].Ticker != w {
			t.Fatalf("movers[%d] = %s, want %s", i, movers[i].Ticker, w)
		}
	}
}

func TestTopMoversSkipsNilGain(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "AAPL"},
		{Ticker: "MSFT", DayGain: f(1)},
	}
	movers := TopMovers(holdings, TopMoversLimit)
	if len(movers) != 1 || movers[0].Ticker != "MSFT" {
		t.Fatalf("got %+v", movers)
	}
}

func TestTopMoversStable(t *testing.T) {
	// Equal magnitudes keep snapshot order.
	holdings := []models.Holding{
		{Ticker: "A", DayGain: f(5)},
		{Ticker: "B", DayGain: f(-5)},
		{Ticker: "C", DayGain: f(5)},
	}
	movers := TopMovers(holdings, TopMoversLimit)
	want := []string{"A", "B", "C"}
	for i, w := range want {
		if movers[i].Ticker != w {
			t.Fatalf("movers[%d] = %s, want %s", i, movers[i].Ticker, w)
		}
	}
}

func TestTopMoversEmpty(t *testing.T) {
	if got := TopMovers(nil, TopMoversLimit); len(got) != 0 {
		t.Fatalf("got %+v", got)
	}
}
