package collector

import (
	"time"

	"github.com/rs/zerolog"

	"FinanceLab/internal/cache"
	"FinanceLab/internal/model"
)

// Loader fetches price history through the cache: lookups hit the store
// first, and successful provider fetches populate it. Provider failures
// degrade to a nil series so one bad ticker never aborts a batch.
type Loader struct {
	fetcher Fetcher
	store   cache.Store
	log     zerolog.Logger
}

// NewLoader creates a Loader on top of a fetcher and a cache store.
func NewLoader(fetcher Fetcher, store cache.Store, log zerolog.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		store:   store,
		log:     log.With().Str("component", "loader").Logger(),
	}
}

// GetHistory returns the price series for (ticker, period), or nil when
// the provider fails or returns nothing usable. Errors are logged here,
// never raised: the caller contract is series-or-nil.
func (l *Loader) GetHistory(ticker string, period model.Period) *model.PriceSeries {
	if series, ok := l.store.Get(ticker, period); ok {
		l.log.Debug().Str("ticker", ticker).Str("period", string(period)).Msg("cache hit")
		return series
	}

	bars, err := l.fetcher.FetchHistory(ticker, period)
	if err != nil {
		l.log.Warn().Err(err).Str("ticker", ticker).Str("source", l.fetcher.Name()).Msg("fetch failed")
		return nil
	}
	if len(bars) == 0 {
		l.log.Warn().Str("ticker", ticker).Msg("provider returned empty series")
		return nil
	}

	series := &model.PriceSeries{
		Ticker:    ticker,
		Bars:      bars,
		FetchedAt: time.Now(),
	}
	l.store.Save(ticker, period, series)
	return series
}

// GetBatchHistory fetches history for each ticker; tickers that fail are
// omitted from the result.
func (l *Loader) GetBatchHistory(tickers []string, period model.Period) map[string]*model.PriceSeries {
	results := make(map[string]*model.PriceSeries, len(tickers))
	for _, t := range tickers {
		if series := l.GetHistory(t, period); series != nil {
			results[t] = series
		}
	}
	return results
}
