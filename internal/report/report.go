// Package report ranks analysis results and renders them for the
// console and for flat-file export.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"FinanceLab/internal/model"
)

// Rank returns the results sorted by score descending; ties break by
// ticker so output is deterministic. The input is not modified.
func Rank(results []model.AnalysisResult) []model.AnalysisResult {
	ranked := make([]model.AnalysisResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Ticker < ranked[j].Ticker
	})
	return ranked
}

// WriteCSV exports the tabular report: one row per ticker with score,
// recommendation and key metrics.
func WriteCSV(path string, results []model.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ticker", "score", "recommendation", "price", "total_return", "volatility", "rsi"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Ticker,
			strconv.FormatFloat(r.Score, 'f', 1, 64),
			string(r.Recommendation),
			strconv.FormatFloat(r.Metrics.CurrentPrice, 'f', 2, 64),
			strconv.FormatFloat(r.Metrics.TotalReturn, 'f', 4, 64),
			strconv.FormatFloat(r.Metrics.Volatility, 'f', 4, 64),
			strconv.FormatFloat(r.Metrics.RSI, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.Ticker, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
