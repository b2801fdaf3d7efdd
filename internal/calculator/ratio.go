package calculator

// RatioSeries divides base closes by quote closes index-by-index, trimmed
// to the shorter tail of the two inputs. Returns nil when either input is
// empty.
func RatioSeries(base, quote []float64) []float64 {
	n := min(len(base), len(quote))
	if n == 0 {
		return nil
	}
	b := base[len(base)-n:]
	q := quote[len(quote)-n:]
	out := make([]float64, n)
	for i := range out {
		out[i] = b[i] / q[i]
	}
	return out
}
