package derive

import "math"

// One-line conclusions for the financial view. Textual summary only: the
// numbers are already on screen, so no phrase restates them.
const (
	ConclusionFollowsUp  = "Your portfolio follows the market higher today."
	ConclusionPullsBack  = "Your portfolio pulls back along with a weak market."
	ConclusionDefiesDown = "Your portfolio defies the rally and slips."
	ConclusionDefiesUp   = "Your portfolio defies the dip and climbs."
	ConclusionStrong     = "A strong day for your portfolio."
	ConclusionPullback   = "A notable pullback for your portfolio."
	ConclusionFlat       = "A quiet, flat day for your portfolio."
)

// Thresholds, in percent points.
const (
	benchmarkMoveMin = 0.5
	portfolioMoveBig = 1.0
)

// Conclusion synthesizes the one-line summary from the portfolio's day
// percent change and an optional market benchmark change. With a meaningful
// benchmark move the phrase reflects sign agreement; otherwise it reflects
// the portfolio move alone.
func Conclusion(portfolioPct float64, benchmarkPct *float64) string {
	if benchmarkPct != nil && math.Abs(*benchmarkPct) > benchmarkMoveMin {
		benchUp := *benchmarkPct > 0
		portUp := portfolioPct >= 0
		switch {
		case benchUp && portUp:
			return ConclusionFollowsUp
		case !benchUp && !portUp:
			return ConclusionPullsBack
		case benchUp && !portUp:
			return ConclusionDefiesDown
		default:
			return ConclusionDefiesUp
		}
	}

	if math.Abs(portfolioPct) > portfolioMoveBig {
		if portfolioPct > 0 {
			return ConclusionStrong
		}
		return ConclusionPullback
	}
	return ConclusionFlat
}
