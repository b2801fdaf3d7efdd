package calculator

import (
	"math"
	"testing"

	"MarketPulse/internal/model"
)

func seriesFromCloses(closes []float64, volume, quoteVolume float64) model.Series {
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Close: c, Volume: volume, QuoteVolume: quoteVolume}
	}
	return model.Series{Symbol: "BTCUSDT", Bars: bars}
}

func TestWindowStats_ConstantCloses(t *testing.T) {
	s := seriesFromCloses([]float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100}, 10, 1000)
	got := WindowStats(s, 12)
	if got.Volatility != 0 {
		t.Errorf("expected zero volatility for constant closes, got %v", got.Volatility)
	}
	if got.Volume != 12*1000 {
		t.Errorf("expected quote volume sum 12000, got %v", got.Volume)
	}
}

func TestWindowStats_PositiveVolatility(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 98, 103, 97, 104, 96, 105, 95, 106}
	got := WindowStats(seriesFromCloses(closes, 10, 1000), 12)
	if got.Volatility <= 0 {
		t.Fatalf("expected positive volatility, got %v", got.Volatility)
	}

	// Cross-check against a direct stddev of the percent returns.
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		rets = append(rets, closes[i]/closes[i-1]-1)
	}
	var mean float64
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))
	var ss float64
	for _, r := range rets {
		d := r - mean
		ss += d * d
	}
	want := math.Sqrt(ss/float64(len(rets))) * 100
	if math.Abs(got.Volatility-want) > 1e-9 {
		t.Errorf("expected volatility %v, got %v", want, got.Volatility)
	}
}

func TestWindowStats_QuoteVolumeFallback(t *testing.T) {
	closes := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 200}
	got := WindowStats(seriesFromCloses(closes, 5, 0), 12)
	// No quote volume on the feed: estimate from base volume at last close.
	if got.Volume != 12*5*200 {
		t.Errorf("expected fallback volume 12000, got %v", got.Volume)
	}
}

func TestWindowStats_ShortHistory(t *testing.T) {
	got := WindowStats(seriesFromCloses([]float64{100, 101}, 10, 1000), 12)
	if got.Volume != 0 || got.Volatility != 0 {
		t.Errorf("expected degraded zeros, got %+v", got)
	}
}
