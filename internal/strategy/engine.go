// Package strategy turns a price series into a recommendation and a
// risk-adjusted composite score.
package strategy

import (
	"github.com/rs/zerolog"

	"FinanceLab/internal/calculator"
	"FinanceLab/internal/metrics"
	"FinanceLab/internal/model"
)

// MinBars is the minimum history required for the SMA50/SMA200
// comparisons to be meaningful; shorter series get a sentinel result.
const MinBars = 50

// Engine computes per-ticker analysis results. It holds no mutable
// state; calls are independent and safe to run concurrently.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a signal engine.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("component", "engine").Logger()}
}

// AnalyzeTicker analyzes one ticker's series under the named risk
// profile. Unknown profile names score with Moderate weights; the
// result carries the name as requested.
func (e *Engine) AnalyzeTicker(ticker string, series *model.PriceSeries, profileName string) model.AnalysisResult {
	if series.Len() < MinBars {
		return model.AnalysisResult{
			Ticker:         ticker,
			Metrics:        model.AssetMetrics{},
			Score:          0,
			Recommendation: model.RecommendNA,
			Reasoning:      []string{"Insufficient Data"},
			RiskProfile:    profileName,
		}
	}

	closes := series.Closes()

	rsi := calculator.CalculateRSI(closes, 14)
	sma20 := calculator.CalculateSMA(closes, 20)
	sma50 := calculator.CalculateSMA(closes, 50)
	sma200 := calculator.CalculateSMA(closes, 200)

	dailyRets := metrics.DailyReturns(closes)

	m := model.AssetMetrics{
		CurrentPrice: closes[len(closes)-1],
		DailyReturn:  calculator.Latest(dailyRets, 0.0),
		TotalReturn:  metrics.CumulativeReturn(closes),
		Volatility:   metrics.Volatility(dailyRets, true),
		MaxDrawdown:  metrics.MaxDrawdown(closes),
		RSI:          calculator.Latest(rsi, 50.0),
		SMA20:        calculator.Latest(sma20, 0.0),
		SMA50:        calculator.Latest(sma50, 0.0),
		SMA200:       calculator.Latest(sma200, 0.0),
	}

	rec, reasons := recommend(m)
	score := compositeScore(m, ProfileByName(profileName))

	e.log.Debug().
		Str("ticker", ticker).
		Float64("score", score).
		Str("recommendation", string(rec)).
		Msg("analyzed")

	return model.AnalysisResult{
		Ticker:         ticker,
		Metrics:        m,
		Score:          score,
		Recommendation: rec,
		Reasoning:      reasons,
		RiskProfile:    profileName,
	}
}
