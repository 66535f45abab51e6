package report

import (
	"fmt"
	"strings"
	"time"

	"FinanceLab/internal/model"
)

// FormatSummary formats ranked results into a console report.
func FormatSummary(results []model.AnalysisResult, profile string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("FinanceLab screen | %s | profile: %s\n\n", time.Now().Format("2006-01-02"), profile))
	b.WriteString(fmt.Sprintf("%-8s %6s  %-5s %10s %8s %7s %6s\n",
		"TICKER", "SCORE", "REC", "PRICE", "RETURN", "VOL", "RSI"))

	for _, r := range results {
		b.WriteString(fmt.Sprintf("%-8s %6.1f  %-5s %10.2f %7.1f%% %6.1f%% %6.1f\n",
			r.Ticker, r.Score, r.Recommendation,
			r.Metrics.CurrentPrice,
			r.Metrics.TotalReturn*100,
			r.Metrics.Volatility*100,
			r.Metrics.RSI))
	}

	return b.String()
}

// FormatDetail formats one result with its full reasoning.
func FormatDetail(r *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s: %s (score %.1f, %s profile)\n",
		r.Ticker, r.Recommendation, r.Score, r.RiskProfile))
	b.WriteString(fmt.Sprintf("  price %.2f | return %+.1f%% | vol %.1f%% | mdd %.1f%% | rsi %.1f\n",
		r.Metrics.CurrentPrice,
		r.Metrics.TotalReturn*100,
		r.Metrics.Volatility*100,
		r.Metrics.MaxDrawdown*100,
		r.Metrics.RSI))
	b.WriteString(fmt.Sprintf("  sma20 %.2f | sma50 %.2f | sma200 %.2f\n",
		r.Metrics.SMA20, r.Metrics.SMA50, r.Metrics.SMA200))
	for _, reason := range r.Reasoning {
		b.WriteString(fmt.Sprintf("  - %s\n", reason))
	}

	return b.String()
}
