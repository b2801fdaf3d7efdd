package collector

import (
	"context"
	"fmt"
	"time"

	"MarketPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]model.Series
	Price  float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchKlines(_ context.Context, symbol, _ string, limit int) (model.Series, error) {
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	if m.Price > 0 {
		return generateMockSeries(symbol, m.Price, limit), nil
	}
	return model.Series{}, fmt.Errorf("mock: no data for %s", symbol)
}

func generateMockSeries(symbol string, basePrice float64, count int) model.Series {
	bars := make([]model.OHLCV, count)
	start := time.Now().Add(-time.Duration(count) * time.Hour)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			OpenTime:    start.Add(time.Duration(i) * time.Hour),
			Open:        p * 0.999,
			High:        p * 1.005,
			Low:         p * 0.995,
			Close:       p,
			Volume:      1000,
			QuoteVolume: 1000 * p,
		}
	}
	return model.Series{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}
}
