package calculator

// CalculateRSI computes the RSI using simple rolling means of gains and
// losses over a trailing window of `period` price changes (not Wilder
// exponential smoothing). The first `period` points are NaN.
//
// When the average loss over the window is zero the ratio is undefined;
// the value resolves to 100 (maximal bullish) rather than NaN, including
// the flat case where average gain is zero too.
func CalculateRSI(values []float64, period int) []float64 {
	out := nanSeries(len(values))
	if period <= 0 || len(values) <= period {
		return out
	}

	gains := make([]float64, len(values))
	losses := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(values); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgLoss := lossSum / float64(period)
		if avgLoss == 0 {
			out[i] = 100.0
			continue
		}
		avgGain := gainSum / float64(period)
		rs := avgGain / avgLoss
		out[i] = 100.0 - 100.0/(1.0+rs)
	}
	return out
}
