// Package metrics provides risk/return statistics over price series.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization base for daily volatility.
const TradingDaysPerYear = 252

// DailyReturns computes the pointwise percent change of a price series.
// The first point is NaN (no prior price). A zero previous price yields
// 0.0 instead of an infinity.
func DailyReturns(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) > 0 {
		out[0] = math.NaN()
	}
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			out[i] = 0.0
			continue
		}
		out[i] = (values[i] - prev) / prev
	}
	return out
}

// CumulativeReturn computes (last-first)/first over the whole series.
// Empty series or a zero first value yields 0.0.
func CumulativeReturn(values []float64) float64 {
	if len(values) < 1 {
		return 0.0
	}
	first := values[0]
	if first == 0 {
		return 0.0
	}
	last := values[len(values)-1]
	return (last - first) / first
}

// Volatility computes the sample standard deviation of daily returns,
// scaled by sqrt(252) when annualize is set. NaN entries (the warmup
// point of DailyReturns) are skipped. Fewer than two valid returns yield
// 0.0.
func Volatility(dailyReturns []float64, annualize bool) float64 {
	valid := make([]float64, 0, len(dailyReturns))
	for _, r := range dailyReturns {
		if !math.IsNaN(r) {
			valid = append(valid, r)
		}
	}
	if len(valid) < 2 {
		return 0.0
	}
	vol := stat.StdDev(valid, nil)
	if annualize {
		vol *= math.Sqrt(TradingDaysPerYear)
	}
	return vol
}

// MaxDrawdown computes the worst peak-to-trough decline as a negative
// fraction (e.g. -0.25 for a 25% fall from the running maximum). Points
// where the running maximum is zero are skipped to avoid dividing by
// zero. An empty series yields 0.0.
func MaxDrawdown(values []float64) float64 {
	worst := 0.0
	peak := math.Inf(-1)
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak == 0 {
			continue
		}
		dd := (v - peak) / peak
		if dd < worst {
			worst = dd
		}
	}
	return worst
}
