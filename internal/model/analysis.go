package model

import "time"

// Tone selects the wording register of the judgment phrases.
type Tone string

const (
	ToneConservative Tone = "conservative"
	ToneBalanced     Tone = "balanced"
	ToneAggressive   Tone = "aggressive"
)

// ParseTone maps a raw string to a Tone. Unrecognized values fall back
// to balanced.
func ParseTone(s string) Tone {
	switch Tone(s) {
	case ToneConservative, ToneBalanced, ToneAggressive:
		return Tone(s)
	default:
		return ToneBalanced
	}
}

// Analysis is the rendered indicator commentary for one symbol.
type Analysis struct {
	Symbol    string
	Snapshot  Snapshot
	TrendText string
	RSIText   string
	MACDText  string
	Judgment  string
}

// RelativeStrength describes how the base asset performs against the
// quote asset on the ratio of their close prices. Base and Quote carry
// display names (BTC, not BTCUSDT).
type RelativeStrength struct {
	Base      string
	Quote     string
	Ratio     float64
	ChangePct float64
	TrendText string
	OK        bool // false when the pair had fewer than two aligned bars
}

// SentimentIndex is one crypto fear & greed reading.
type SentimentIndex struct {
	Value          int // 0-100
	Classification string
	UpdatedAt      time.Time
}
