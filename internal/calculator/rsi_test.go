package calculator

import "testing"

func TestWilderRSI_InsufficientData(t *testing.T) {
	prices := make([]float64, 14)
	if got := WilderRSI(prices, 14); got != nil {
		t.Fatalf("expected nil for %d prices with period 14, got %v", len(prices), got)
	}
}

func TestWilderRSI_MonotonicIncrease(t *testing.T) {
	prices := make([]float64, 60)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	rsis := WilderRSI(prices, 14)
	if len(rsis) == 0 {
		t.Fatal("expected RSI values for a 60-bar series")
	}
	for i, r := range rsis {
		if r < 0 || r > 100 {
			t.Fatalf("RSI out of bounds at %d: %v", i, r)
		}
	}
	// No losses at all, so every value sits at the 100 ceiling.
	if last := rsis[len(rsis)-1]; last != 100 {
		t.Errorf("expected RSI 100 for strictly rising prices, got %v", last)
	}
}

func TestWilderRSI_ConstantPrices(t *testing.T) {
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 5000
	}
	rsis := WilderRSI(prices, 14)
	if len(rsis) == 0 {
		t.Fatal("expected RSI values for a constant series")
	}
	// avgLoss == 0 branch must not divide by zero.
	for _, r := range rsis {
		if r != 100 {
			t.Errorf("expected sentinel 100 on zero-loss series, got %v", r)
		}
	}
}

func TestWilderRSI_Bounds(t *testing.T) {
	prices := []float64{44, 44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10,
		45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.00, 46.03,
		46.41, 46.22, 45.64, 46.21, 46.25, 45.71, 46.45, 45.78, 45.35, 44.03,
		44.18, 44.22, 44.57, 43.42, 42.66, 43.13}
	rsis := WilderRSI(prices, 14)
	if len(rsis) != len(prices)-15 {
		t.Fatalf("expected %d values, got %d", len(prices)-15, len(rsis))
	}
	for i, r := range rsis {
		if r <= 0 || r >= 100 {
			t.Errorf("RSI out of open bounds at %d: %v", i, r)
		}
	}
}
