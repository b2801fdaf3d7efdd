package collector

import (
	"context"

	"github.com/rs/zerolog/log"

	"MarketPulse/internal/model"
)

// Collector fetches spot (and optionally futures) series for every
// tracked symbol once per broadcast cycle.
type Collector struct {
	Spot     Fetcher
	Futures  Fetcher // nil disables the futures leg
	Symbols  []string
	Interval string
	Limit    int
}

// NewCollector creates a new Collector.
func NewCollector(spot, futures Fetcher, symbols []string, interval string, limit int) *Collector {
	return &Collector{
		Spot:     spot,
		Futures:  futures,
		Symbols:  symbols,
		Interval: interval,
		Limit:    limit,
	}
}

// CycleData holds everything fetched for one analysis cycle. Maps only
// contain the symbols that fetched successfully.
type CycleData struct {
	Spot    map[string]model.Series
	Futures map[string]model.Series
}

// CollectAll fetches every symbol. A failed symbol is logged and skipped
// so the rest of the cycle proceeds; the error never propagates.
func (c *Collector) CollectAll(ctx context.Context) *CycleData {
	data := &CycleData{
		Spot:    make(map[string]model.Series, len(c.Symbols)),
		Futures: make(map[string]model.Series, len(c.Symbols)),
	}
	for _, sym := range c.Symbols {
		s, err := c.Spot.FetchKlines(ctx, sym, c.Interval, c.Limit)
		if err != nil {
			log.Error().Err(err).Str("symbol", sym).Msg("spot fetch failed, skipping symbol")
		} else {
			data.Spot[sym] = s
		}

		if c.Futures == nil {
			continue
		}
		f, err := c.Futures.FetchKlines(ctx, sym, c.Interval, c.Limit)
		if err != nil {
			// Futures only feed the hemisphere volume stat; spot covers it.
			log.Warn().Err(err).Str("symbol", sym).Msg("futures fetch failed")
		} else {
			data.Futures[sym] = f
		}
	}
	return data
}
