package derive

import (
	"math"
	"sort"

	"BayPortal/internal/domain/models"
)

// TopMoversLimit caps the movers list shown on the financial view.
const TopMoversLimit = 3

// TopMovers returns the holdings with the largest absolute day gain, largest
// first. Holdings with no day gain are excluded. The sort is stable, so
// equal-magnitude holdings keep their snapshot order.
func TopMovers(holdings []models.Holding, limit int) []models.Holding {
	movers := make([]models.Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.DayGain != nil {
			movers = append(movers, h)
		}
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return math.Abs(*movers[i].DayGain) > math.Abs(*movers[j].DayGain)
	})

	if limit > 0 && len(movers) > limit {
		movers = movers[:limit]
	}
	return movers
}
