package calculator

import "gonum.org/v1/gonum/stat"

// Bands holds the three Bollinger band series.
type Bands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// CalculateBollingerBands computes Bollinger Bands: middle is the SMA over
// the window, upper/lower are middle ± k times the trailing sample
// standard deviation. The first window-1 points are NaN.
func CalculateBollingerBands(values []float64, window int, k float64) Bands {
	middle := CalculateSMA(values, window)
	upper := nanSeries(len(values))
	lower := nanSeries(len(values))

	if window > 1 && len(values) >= window {
		for i := window - 1; i < len(values); i++ {
			sd := stat.StdDev(values[i-window+1:i+1], nil)
			upper[i] = middle[i] + k*sd
			lower[i] = middle[i] - k*sd
		}
	}
	return Bands{Upper: upper, Middle: middle, Lower: lower}
}
