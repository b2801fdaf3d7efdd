package collector

import (
	"context"

	"MarketPulse/internal/model"
)

// Fetcher retrieves candlestick history for one symbol.
type Fetcher interface {
	FetchKlines(ctx context.Context, symbol, interval string, limit int) (model.Series, error)
	Name() string
}
