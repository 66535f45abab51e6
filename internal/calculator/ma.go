package calculator

import "math"

// CalculateSMA computes the trailing simple moving average over the given
// window. The first window-1 points are NaN (insufficient history).
func CalculateSMA(values []float64, window int) []float64 {
	out := nanSeries(len(values))
	if window <= 0 || len(values) < window {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// Latest returns the last point of a series, or fallback when the series
// is empty or the last point is NaN.
func Latest(series []float64, fallback float64) float64 {
	if len(series) == 0 {
		return fallback
	}
	v := series[len(series)-1]
	if math.IsNaN(v) {
		return fallback
	}
	return v
}

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
