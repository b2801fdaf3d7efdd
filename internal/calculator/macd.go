package calculator

// MACDHistogram derives the MACD histogram series from close prices using
// the standard 12/26/9 EMA composition. The MACD line pairs ema12[i] with
// ema26[i] over the 26-period output length; the histogram aligns the MACD
// line against its signal line by right-truncating the longer series.
// Returns nil when any stage lacks history.
func MACDHistogram(closes []float64) []float64 {
	ema12 := EMA(closes, 12)
	ema26 := EMA(closes, 26)
	if ema12 == nil || ema26 == nil {
		return nil
	}

	macd := make([]float64, len(ema26))
	for i := range macd {
		macd[i] = ema12[i] - ema26[i]
	}

	signal := EMA(macd, 9)
	if signal == nil {
		return nil
	}

	offset := len(macd) - len(signal)
	hist := make([]float64, len(signal))
	for i, s := range signal {
		hist[i] = macd[i+offset] - s
	}
	return hist
}
