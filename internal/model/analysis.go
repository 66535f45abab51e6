package model

// AssetMetrics is a snapshot of indicator and risk/return values taken
// from the most recent point of a price series.
type AssetMetrics struct {
	CurrentPrice float64
	DailyReturn  float64
	TotalReturn  float64
	Volatility   float64
	MaxDrawdown  float64
	RSI          float64
	SMA20        float64
	SMA50        float64
	SMA200       float64
}

// Recommendation is the rule engine's verdict for a ticker.
type Recommendation string

const (
	RecommendBuy  Recommendation = "Buy"
	RecommendHold Recommendation = "Hold"
	RecommendSell Recommendation = "Sell"
	RecommendNA   Recommendation = "N/A"
)

// SignalKind identifies which rule produced a signal.
type SignalKind string

const (
	SignalTrendCross  SignalKind = "TREND_CROSS"
	SignalTrendSMA200 SignalKind = "TREND_SMA200"
	SignalMomentumRSI SignalKind = "MOMENTUM_RSI"
)

// Signal is one fired rule: its integer contribution to the decision
// plus a human-readable reason.
type Signal struct {
	Kind   SignalKind
	Delta  int
	Reason string
}

// AnalysisResult is the full per-ticker output of the signal engine.
type AnalysisResult struct {
	Ticker         string
	Metrics        AssetMetrics
	Score          float64 // 0..100
	Recommendation Recommendation
	Reasoning      []string
	RiskProfile    string
}
