package calculator

// WilderRSI computes the Wilder-smoothed RSI series over the given period.
// Returns nil when fewer than period+1 prices are available. The seed
// average gain/loss are plain means of the first period deltas; every
// later step uses Wilder smoothing. The output has one entry per price
// beyond the seed window. When the average loss is zero the RSI is 100.
func WilderRSI(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period+1 {
		return nil
	}

	n := len(prices) - 1
	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < len(prices); i++ {
		d := prices[i] - prices[i-1]
		if d > 0 {
			gains[i-1] = d
		} else {
			losses[i-1] = -d
		}
	}

	var avgGain, avgLoss float64
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]float64, 0, n-period)
	for i := period; i < n; i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
		if avgLoss == 0 {
			out = append(out, 100)
			continue
		}
		rs := avgGain / avgLoss
		out = append(out, 100-100/(1+rs))
	}
	return out
}
