package analyzer

import (
	"fmt"

	"MarketPulse/internal/calculator"
	"MarketPulse/internal/model"
)

// Analyze derives the full indicator commentary for one symbol's series:
// the raw snapshot (EMA 50/200, RSI 14, MACD histogram, Donchian channel)
// plus the rendered trend/RSI/MACD descriptions and the judgment phrase.
func Analyze(s model.Series, tone model.Tone, srLookback int) *model.Analysis {
	closes := s.Closes()

	var snap model.Snapshot
	if c, ok := s.LastClose(); ok {
		snap.LastClose = c
	}
	snap.EMA50 = lastOf(calculator.EMA(closes, 50))
	snap.EMA200 = lastOf(calculator.EMA(closes, 200))
	snap.RSI14 = lastOf(calculator.WilderRSI(closes, 14))

	hist := calculator.MACDHistogram(closes)
	snap.MACDHist = lastOf(hist)
	if len(hist) >= 2 {
		snap.MACDHistPrev = &hist[len(hist)-2]
	}

	if sup, res, ok := calculator.DonchianChannel(s.Bars, srLookback); ok {
		snap.Support = &sup
		snap.Resistance = &res
	}

	return &model.Analysis{
		Symbol:    s.Symbol,
		Snapshot:  snap,
		TrendText: trendText(snap),
		RSIText:   rsiText(snap.RSI14),
		MACDText:  macdText(snap.MACDHist, snap.MACDHistPrev),
		Judgment:  Judge(snap, tone),
	}
}

func lastOf(series []float64) *float64 {
	if len(series) == 0 {
		return nil
	}
	return &series[len(series)-1]
}

func trendText(snap model.Snapshot) string {
	if snap.EMA50 == nil || snap.EMA200 == nil {
		return "数据不足，无法计算EMA趋势。"
	}
	switch {
	case *snap.EMA50 > *snap.EMA200:
		return "EMA(50)>EMA(200)，趋势向上。"
	case *snap.EMA50 < *snap.EMA200:
		return "EMA(50)<EMA(200)，趋势向下。"
	default:
		return "EMA(50)≈EMA(200)，趋势震荡。"
	}
}

// rsiText buckets the RSI reading; the near-overbought/oversold bands sit
// just inside the classic 70/30 thresholds.
func rsiText(rsi *float64) string {
	if rsi == nil {
		return "—"
	}
	v := *rsi
	switch {
	case v >= 70:
		return fmt.Sprintf("%.2f（超买）", v)
	case v >= 65:
		return fmt.Sprintf("%.2f（接近超买）", v)
	case v <= 30:
		return fmt.Sprintf("%.2f（超卖）", v)
	case v <= 35:
		return fmt.Sprintf("%.2f（接近超卖）", v)
	default:
		return fmt.Sprintf("%.2f（中性）", v)
	}
}

func macdText(hist, prev *float64) string {
	if hist == nil || prev == nil {
		return "—"
	}
	if *hist >= 0 {
		if *hist > *prev {
			return "正向动能增强"
		}
		return "正向动能减弱"
	}
	if *hist < *prev {
		return "负向动能增强"
	}
	return "负向动能减弱"
}
