package strategy

import (
	"math"

	"FinanceLab/internal/model"
)

// compositeScore maps a metrics snapshot to a 0..100 rating under the
// given weights.
//
// riskScore and momentumScore both use MomentumWeight while trendScore
// has its own weight; every published score depends on that exact
// formula, so the asymmetry must stay.
func compositeScore(m model.AssetMetrics, w model.RiskProfile) float64 {
	trendScore := 50.0
	if m.CurrentPrice > m.SMA200 {
		trendScore += 25
	}
	if m.SMA50 > m.SMA200 {
		trendScore += 25
	}

	volPenalty := math.Min(m.Volatility*100, 50) * w.RiskPenalty
	mddPenalty := math.Min(math.Abs(m.MaxDrawdown)*100, 50) * w.RiskPenalty
	riskScore := math.Max(0, 100-volPenalty-mddPenalty)

	var momentumScore float64
	switch {
	case m.RSI < 30:
		momentumScore = 90
	case m.RSI > 70:
		momentumScore = 20
	default:
		// Neutral band: centered on RSI=50, higher as RSI falls.
		momentumScore = 50 + (50 - m.RSI)
	}

	final := (trendScore*w.TrendWeight + riskScore*w.MomentumWeight + momentumScore*w.MomentumWeight) /
		(w.TrendWeight + 2*w.MomentumWeight)

	return math.Min(math.Max(final, 0), 100)
}
