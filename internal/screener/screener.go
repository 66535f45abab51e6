// Package screener orchestrates a watchlist run: fetch history, analyze
// each ticker, rank the results.
package screener

import (
	"github.com/rs/zerolog"

	"FinanceLab/internal/collector"
	"FinanceLab/internal/model"
	"FinanceLab/internal/report"
	"FinanceLab/internal/strategy"
)

// Service runs the screen over a watchlist.
type Service struct {
	loader *collector.Loader
	engine *strategy.Engine
	log    zerolog.Logger
}

// NewService creates a screener service.
func NewService(loader *collector.Loader, engine *strategy.Engine, log zerolog.Logger) *Service {
	return &Service{
		loader: loader,
		engine: engine,
		log:    log.With().Str("component", "screener").Logger(),
	}
}

// Screen fetches history for every ticker and analyzes the ones that
// came back. Failed fetches are omitted; short series still produce
// their sentinel result. Results come back ranked by score.
func (s *Service) Screen(tickers []string, period model.Period, profileName string) []model.AnalysisResult {
	seriesByTicker := s.loader.GetBatchHistory(tickers, period)

	results := make([]model.AnalysisResult, 0, len(seriesByTicker))
	for _, t := range tickers {
		series, ok := seriesByTicker[t]
		if !ok {
			continue
		}
		results = append(results, s.engine.AnalyzeTicker(t, series, profileName))
	}

	s.log.Info().
		Int("requested", len(tickers)).
		Int("analyzed", len(results)).
		Str("period", string(period)).
		Msg("screen complete")

	return report.Rank(results)
}
