// Package cache provides TTL-bounded memoization of fetched price
// series, keyed by (ticker, period). Caching is best-effort: lookups
// treat corruption and expiry as misses, and saves never fail the
// caller.
package cache

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"FinanceLab/internal/model"
)

// Store is the narrow cache interface the data loader depends on.
// Backing implementations: SQLite (production), memory (tests/embedding),
// noop (degraded mode).
type Store interface {
	// Get returns the cached series, or ok=false on miss, expiry, or an
	// unreadable entry.
	Get(ticker string, period model.Period) (*model.PriceSeries, bool)
	// Save upserts the series under (ticker, period) with the current
	// time. Persistence failures are swallowed.
	Save(ticker string, period model.Period, series *model.PriceSeries)
	Close() error
}

// columnarTable is the serialized blob layout: parallel arrays, one per
// OHLCV column, with bar times as unix seconds.
type columnarTable struct {
	Times  []int64   `msgpack:"t"`
	Open   []float64 `msgpack:"o"`
	High   []float64 `msgpack:"h"`
	Low    []float64 `msgpack:"l"`
	Close  []float64 `msgpack:"c"`
	Volume []float64 `msgpack:"v"`
}

func encodeBars(bars []model.OHLCV) ([]byte, error) {
	tbl := columnarTable{
		Times:  make([]int64, len(bars)),
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]float64, len(bars)),
	}
	for i, b := range bars {
		tbl.Times[i] = b.Time.Unix()
		tbl.Open[i] = b.Open
		tbl.High[i] = b.High
		tbl.Low[i] = b.Low
		tbl.Close[i] = b.Close
		tbl.Volume[i] = b.Volume
	}
	return msgpack.Marshal(&tbl)
}

func decodeBars(blob []byte) ([]model.OHLCV, error) {
	var tbl columnarTable
	if err := msgpack.Unmarshal(blob, &tbl); err != nil {
		return nil, fmt.Errorf("decode columnar blob: %w", err)
	}
	n := len(tbl.Times)
	if len(tbl.Open) != n || len(tbl.High) != n || len(tbl.Low) != n ||
		len(tbl.Close) != n || len(tbl.Volume) != n {
		return nil, fmt.Errorf("decode columnar blob: ragged columns")
	}
	bars := make([]model.OHLCV, n)
	for i := 0; i < n; i++ {
		bars[i] = model.OHLCV{
			Time:   time.Unix(tbl.Times[i], 0).UTC(),
			Open:   tbl.Open[i],
			High:   tbl.High[i],
			Low:    tbl.Low[i],
			Close:  tbl.Close[i],
			Volume: tbl.Volume[i],
		}
	}
	return bars, nil
}
