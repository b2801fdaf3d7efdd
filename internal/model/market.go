package model

import (
	"strings"
	"time"
)

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	OpenTime    time.Time
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      float64
	QuoteVolume float64
}

// Series holds the candlestick history for one symbol, oldest bar first.
// It is built once per broadcast cycle and never mutated or cached.
type Series struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

func (s Series) Len() int { return len(s.Bars) }

// Closes returns the close prices in chronological order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high prices in chronological order.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

// Lows returns the low prices in chronological order.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

// LastClose returns the most recent close, or false for an empty series.
func (s Series) LastClose() (float64, bool) {
	if len(s.Bars) == 0 {
		return 0, false
	}
	return s.Bars[len(s.Bars)-1].Close, true
}

// DisplayName strips the USDT quote suffix for report headings,
// e.g. BTCUSDT -> BTC.
func DisplayName(symbol string) string {
	return strings.TrimSuffix(symbol, "USDT")
}
