package collector

import (
	"time"

	"FinanceLab/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars  map[string][]model.OHLCV
	Errs  map[string]error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(ticker string, _ model.Period) ([]model.OHLCV, error) {
	m.Calls++
	if err, ok := m.Errs[ticker]; ok {
		return nil, err
	}
	return m.Bars[ticker], nil
}

// GenerateBars produces count synthetic daily bars starting at basePrice
// with a constant per-bar drift.
func GenerateBars(basePrice float64, count int, drift float64) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice + float64(i)*drift
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
