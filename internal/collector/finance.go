package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"FinanceLab/internal/model"
)

// FinanceGoFetcher implements Fetcher using the finance-go client
// library, selectable via the data_source.provider config key.
type FinanceGoFetcher struct{}

// NewFinanceGoFetcher creates a finance-go backed fetcher.
func NewFinanceGoFetcher() *FinanceGoFetcher {
	return &FinanceGoFetcher{}
}

func (f *FinanceGoFetcher) Name() string { return "finance-go" }

// periodStart maps the period enum onto an absolute start date relative
// to now. The chart endpoint takes date ranges, not range keywords.
func periodStart(now time.Time, period model.Period) time.Time {
	switch period {
	case model.Period1mo:
		return now.AddDate(0, -1, 0)
	case model.Period3mo:
		return now.AddDate(0, -3, 0)
	case model.Period6mo:
		return now.AddDate(0, -6, 0)
	case model.Period1y:
		return now.AddDate(-1, 0, 0)
	case model.Period2y:
		return now.AddDate(-2, 0, 0)
	case model.Period5y:
		return now.AddDate(-5, 0, 0)
	case model.PeriodYTD:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// FetchHistory fetches daily bars via the finance-go chart iterator.
func (f *FinanceGoFetcher) FetchHistory(ticker string, period model.Period) ([]model.OHLCV, error) {
	now := time.Now()
	start := periodStart(now, period)

	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	var bars []model.OHLCV
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, model.OHLCV{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("finance-go chart for %s: %w", ticker, err)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
