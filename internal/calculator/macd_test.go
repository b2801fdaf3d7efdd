package calculator

import (
	"math"
	"testing"
)

func TestMACDHistogram_InsufficientData(t *testing.T) {
	closes := make([]float64, 33)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	if got := MACDHistogram(closes); got != nil {
		t.Fatalf("expected nil for 33 closes, got %d values", len(got))
	}
}

func TestMACDHistogram_MinimumLength(t *testing.T) {
	// 34 bars is the first length that yields a 9-period signal line.
	closes := make([]float64, 34)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	got := MACDHistogram(closes)
	if len(got) != 1 {
		t.Fatalf("expected 1 histogram value, got %d", len(got))
	}
}

func TestMACDHistogram_ConstantSeries(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 250
	}
	got := MACDHistogram(closes)
	if len(got) == 0 {
		t.Fatal("expected histogram values")
	}
	for i, h := range got {
		if math.Abs(h) > 1e-9 {
			t.Errorf("expected zero histogram on flat prices at %d, got %v", i, h)
		}
	}
}

func TestMACDHistogram_TrendingSeries(t *testing.T) {
	// Accelerating uptrend keeps the fast EMA above the slow one, so the
	// last histogram values should be positive.
	closes := make([]float64, 120)
	for i := range closes {
		closes[i] = 100 * math.Pow(1.01, float64(i))
	}
	got := MACDHistogram(closes)
	if len(got) == 0 {
		t.Fatal("expected histogram values")
	}
	if last := got[len(got)-1]; last <= 0 {
		t.Errorf("expected positive histogram in an uptrend, got %v", last)
	}
}
