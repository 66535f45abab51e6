package strategy

import (
	"fmt"

	"FinanceLab/internal/model"
)

// rule evaluates one independent signal against the metrics snapshot.
// ok=false means the rule does not fire and contributes nothing.
type rule func(m model.AssetMetrics) (model.Signal, bool)

// rules are evaluated in this fixed order; reasons accumulate in the
// same order.
var rules = []rule{ruleTrendCross, rulePriceVsSMA200, ruleRSI}

// ruleTrendCross fires on the SMA50/SMA200 relation. Equal SMAs produce
// no signal at all.
func ruleTrendCross(m model.AssetMetrics) (model.Signal, bool) {
	switch {
	case m.SMA50 > m.SMA200:
		return model.Signal{Kind: model.SignalTrendCross, Delta: 1, Reason: "Golden Cross (Bullish Trend)"}, true
	case m.SMA50 < m.SMA200:
		return model.Signal{Kind: model.SignalTrendCross, Delta: -1, Reason: "Death Cross (Bearish Trend)"}, true
	}
	return model.Signal{}, false
}

// rulePriceVsSMA200 always fires one way or the other.
func rulePriceVsSMA200(m model.AssetMetrics) (model.Signal, bool) {
	if m.CurrentPrice > m.SMA200 {
		return model.Signal{Kind: model.SignalTrendSMA200, Delta: 1, Reason: "Price above SMA 200 (Long-term Bullish)"}, true
	}
	return model.Signal{Kind: model.SignalTrendSMA200, Delta: -1, Reason: "Price below SMA 200 (Long-term Bearish)"}, true
}

// ruleRSI always appends a reason, including the neutral band where it
// contributes zero.
func ruleRSI(m model.AssetMetrics) (model.Signal, bool) {
	switch {
	case m.RSI < 30:
		return model.Signal{Kind: model.SignalMomentumRSI, Delta: 2,
			Reason: fmt.Sprintf("RSI Oversold (%.1f) -> Potential Buy", m.RSI)}, true
	case m.RSI > 70:
		return model.Signal{Kind: model.SignalMomentumRSI, Delta: -2,
			Reason: fmt.Sprintf("RSI Overbought (%.1f) -> Potential Sell", m.RSI)}, true
	}
	return model.Signal{Kind: model.SignalMomentumRSI, Delta: 0,
		Reason: fmt.Sprintf("RSI Neutral (%.1f)", m.RSI)}, true
}

// recommend runs the rule list over the snapshot and maps the summed
// deltas to a verdict: >= 2 Buy, <= -2 Sell, otherwise Hold.
func recommend(m model.AssetMetrics) (model.Recommendation, []string) {
	total := 0
	var reasons []string
	for _, r := range rules {
		sig, ok := r(m)
		if !ok {
			continue
		}
		total += sig.Delta
		reasons = append(reasons, sig.Reason)
	}

	switch {
	case total >= 2:
		return model.RecommendBuy, reasons
	case total <= -2:
		return model.RecommendSell, reasons
	default:
		return model.RecommendHold, reasons
	}
}
