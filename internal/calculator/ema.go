package calculator

// EMA computes the exponential moving average series over the given period.
// Returns nil when the input is shorter than the period. The first output
// value is seeded with the SMA of the first period inputs, so the output
// length is len(series)-period+1.
func EMA(series []float64, period int) []float64 {
	if period <= 0 || len(series) < period {
		return nil
	}
	k := 2.0 / float64(period+1)
	out := make([]float64, 0, len(series)-period+1)

	sum := 0.0
	for _, v := range series[:period] {
		sum += v
	}
	out = append(out, sum/float64(period))

	for _, price := range series[period:] {
		out = append(out, price*k+out[len(out)-1]*(1-k))
	}
	return out
}
