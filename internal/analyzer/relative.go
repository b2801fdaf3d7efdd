package analyzer

import (
	"fmt"

	"MarketPulse/internal/calculator"
	"MarketPulse/internal/model"
)

// RelativeStrength compares the base asset against the quote asset on the
// ratio of their close prices, aligned on the shorter series. The hourly
// change drives the short-term wording; EMA(50) vs EMA(200) of the ratio
// series drives the long-term bias, with a short-term-only fallback when
// the ratio history is too thin for the EMAs.
func RelativeStrength(base, quote model.Series) model.RelativeStrength {
	rs := model.RelativeStrength{
		Base:  model.DisplayName(base.Symbol),
		Quote: model.DisplayName(quote.Symbol),
	}

	ratio := calculator.RatioSeries(base.Closes(), quote.Closes())
	if len(ratio) < 2 {
		return rs
	}

	last := ratio[len(ratio)-1]
	prev := ratio[len(ratio)-2]
	changePct := 0.0
	if prev != 0 {
		changePct = (last - prev) / prev * 100
	}

	rs.Ratio = last
	rs.ChangePct = changePct
	rs.OK = true
	rs.TrendText = relativeTrendText(rs, ratio)
	return rs
}

func relativeTrendText(rs model.RelativeStrength, ratio []float64) string {
	var shortTerm string
	switch {
	case rs.ChangePct > 0:
		shortTerm = "走强"
	case rs.ChangePct < 0:
		shortTerm = "走弱"
	default:
		shortTerm = "持平"
	}

	ema50 := calculator.EMA(ratio, 50)
	ema200 := calculator.EMA(ratio, 200)
	if ema50 == nil || ema200 == nil {
		switch {
		case rs.ChangePct > 0:
			return fmt.Sprintf("%s短期%s", rs.Base, shortTerm)
		case rs.ChangePct < 0:
			return fmt.Sprintf("%s短期%s", rs.Quote, shortTerm)
		default:
			return "短期持平，数据不足判断长期趋势"
		}
	}

	var longTerm string
	switch {
	case ema50[len(ema50)-1] > ema200[len(ema200)-1]:
		longTerm = fmt.Sprintf("%s长期占优", rs.Base)
	case ema50[len(ema50)-1] < ema200[len(ema200)-1]:
		longTerm = fmt.Sprintf("%s长期占优", rs.Quote)
	default:
		longTerm = "长期均衡"
	}

	switch {
	case rs.ChangePct > 0:
		return fmt.Sprintf("%s短期%s，%s", rs.Base, shortTerm, longTerm)
	case rs.ChangePct < 0:
		return fmt.Sprintf("%s短期%s，%s", rs.Quote, shortTerm, longTerm)
	default:
		return fmt.Sprintf("短期%s，%s", shortTerm, longTerm)
	}
}
