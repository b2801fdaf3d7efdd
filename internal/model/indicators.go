package model

// Snapshot holds the per-symbol indicator state derived for one cycle.
// Pointer fields are nil when the underlying series is too short to
// compute the indicator; that propagates to "数据不足" text downstream
// instead of an error.
type Snapshot struct {
	LastClose    float64
	EMA50        *float64
	EMA200       *float64
	RSI14        *float64
	MACDHist     *float64
	MACDHistPrev *float64
	Support      *float64
	Resistance   *float64
}

// WindowStats aggregates traded value and realized volatility over a
// trailing window of bars. Zero values mean the history was shorter than
// the window; that is a documented degraded mode, not an error.
type WindowStats struct {
	Volume     float64
	Volatility float64 // percent
}
