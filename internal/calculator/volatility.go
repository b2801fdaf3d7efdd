package calculator

import (
	"math"

	"MarketPulse/internal/model"
)

// WindowStats sums the traded value and computes the realized volatility
// over the trailing hours bars of the series. Volume prefers quote volume
// (already denominated in USDT); when the feed carried none it falls back
// to base volume times the latest close. Volatility is the population
// standard deviation of the percent returns inside the window, in percent.
// A series shorter than the window degrades to zeros.
func WindowStats(s model.Series, hours int) model.WindowStats {
	if hours <= 0 || len(s.Bars) < hours {
		return model.WindowStats{}
	}
	win := s.Bars[len(s.Bars)-hours:]

	var quoteSum, volSum float64
	for _, b := range win {
		quoteSum += b.QuoteVolume
		volSum += b.Volume
	}
	volume := quoteSum
	if volume == 0 {
		volume = volSum * win[len(win)-1].Close
	}

	rets := make([]float64, 0, hours-1)
	for i := 1; i < len(win); i++ {
		if win[i-1].Close == 0 {
			continue
		}
		rets = append(rets, win[i].Close/win[i-1].Close-1)
	}

	var volatility float64
	if len(rets) > 0 {
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
		volatility = math.Sqrt(ss/float64(len(rets))) * 100
	}

	return model.WindowStats{Volume: volume, Volatility: volatility}
}
