package collector

import "FinanceLab/internal/model"

// Fetcher defines the provider boundary for historical market data.
type Fetcher interface {
	// FetchHistory returns daily OHLCV bars covering the given period,
	// oldest first.
	FetchHistory(ticker string, period model.Period) ([]model.OHLCV, error)
	Name() string
}
