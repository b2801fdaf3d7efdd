package calculator

import (
	"math"

	"MarketPulse/internal/model"
)

// DonchianChannel scans the trailing lookback bars and returns the lowest
// low as support and the highest high as resistance. With fewer bars than
// the lookback all available bars are used; an empty series reports !ok.
func DonchianChannel(bars []model.OHLCV, lookback int) (support, resistance float64, ok bool) {
	if len(bars) == 0 || lookback <= 0 {
		return 0, 0, false
	}
	start := len(bars) - lookback
	if start < 0 {
		start = 0
	}
	support = math.Inf(1)
	resistance = math.Inf(-1)
	for _, b := range bars[start:] {
		if b.High > resistance {
			resistance = b.High
		}
		if b.Low < support {
			support = b.Low
		}
	}
	return support, resistance, true
}
