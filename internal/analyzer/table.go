package analyzer

import "MarketPulse/internal/model"

type trendDir int

const (
	trendUp trendDir = iota
	trendDown
	trendFlat
)

type momentumDir int

const (
	momentumImproving momentumDir = iota
	momentumWeakening
	momentumSteady
)

type rsiZone int

const (
	rsiMid rsiZone = iota
	rsiHigh // RSI >= 60
	rsiLow  // RSI <= 40
)

type judgmentKey struct {
	trend    trendDir
	momentum momentumDir
	rsi      rsiZone
	tone     model.Tone
}

// judgmentInsufficient is the sentinel used whenever any required
// indicator is unavailable.
const judgmentInsufficient = "数据不足，无法判断"

// judgments maps every trend × momentum × RSI zone × tone combination to
// its canned phrase. Totality over the full key space is test-asserted.
var judgments = buildJudgments()

type phraseSet struct {
	aggressive   string
	conservative string
	balanced     string
}

var (
	uptrendPullback = phraseSet{
		aggressive:   "顺势逢回踩轻仓做多，若失守支撑及时止损。",
		conservative: "保持观望或逢高减仓，等待动能恢复/关键位企稳后再介入。",
		balanced:     "短期可能回调，但中期趋势仍偏强。",
	}
	uptrendFollow = phraseSet{
		aggressive:   "顺势跟随，可分批做多；若有效突破压力，尝试追随。",
		conservative: "不追涨，等待回踩确认再考虑；严格执行止盈/止损纪律。",
		balanced:     "中期趋势偏强，短线关注回踩/震荡机会。",
	}
	downtrendBounce = phraseSet{
		aggressive:   "反弹博短，轻仓快进快出；压力位附近考虑做空。",
		conservative: "反弹以减仓为主，谨慎抄底，等待明确反转信号。",
		balanced:     "短期或有反弹，中期趋势仍偏弱。",
	}
	downtrendFollow = phraseSet{
		aggressive:   "顺势做空为主，跌破支撑可跟随加空。",
		conservative: "以风险控制为先，反弹不接力；耐心等待底部结构成形。",
		balanced:     "中期趋势偏弱，反弹以减仓为主。",
	}
	ranging = phraseSet{
		aggressive:   "区间内高抛低吸，若出现明确突破则快速跟随。",
		conservative: "减少交易频次，等待趋势明朗后再参与。",
		balanced:     "趋势震荡，区间交易为主。",
	}
)

func buildJudgments() map[judgmentKey]string {
	m := make(map[judgmentKey]string)
	set := func(t trendDir, mo momentumDir, r rsiZone, p phraseSet) {
		m[judgmentKey{t, mo, r, model.ToneAggressive}] = p.aggressive
		m[judgmentKey{t, mo, r, model.ToneConservative}] = p.conservative
		m[judgmentKey{t, mo, r, model.ToneBalanced}] = p.balanced
	}

	for _, mo := range []momentumDir{momentumImproving, momentumWeakening, momentumSteady} {
		for _, r := range []rsiZone{rsiMid, rsiHigh, rsiLow} {
			// Uptrend: the pullback wording applies only when momentum is
			// fading into a stretched RSI.
			up := uptrendFollow
			if mo == momentumWeakening && r == rsiHigh {
				up = uptrendPullback
			}
			set(trendUp, mo, r, up)

			// Downtrend: symmetric, bounce wording on improving momentum
			// out of a washed-out RSI.
			down := downtrendFollow
			if mo == momentumImproving && r == rsiLow {
				down = downtrendBounce
			}
			set(trendDown, mo, r, down)

			set(trendFlat, mo, r, ranging)
		}
	}
	return m
}

// Judge selects the judgment phrase for a snapshot. Every required
// indicator must be present, otherwise the insufficient-data sentinel is
// returned.
func Judge(snap model.Snapshot, tone model.Tone) string {
	if snap.EMA50 == nil || snap.EMA200 == nil || snap.RSI14 == nil ||
		snap.MACDHist == nil || snap.MACDHistPrev == nil {
		return judgmentInsufficient
	}

	var trend trendDir
	switch {
	case *snap.EMA50 > *snap.EMA200:
		trend = trendUp
	case *snap.EMA50 < *snap.EMA200:
		trend = trendDown
	default:
		trend = trendFlat
	}

	var momentum momentumDir
	switch {
	case *snap.MACDHist > *snap.MACDHistPrev:
		momentum = momentumImproving
	case *snap.MACDHist < *snap.MACDHistPrev:
		momentum = momentumWeakening
	default:
		momentum = momentumSteady
	}

	var zone rsiZone
	switch {
	case *snap.RSI14 >= 60:
		zone = rsiHigh
	case *snap.RSI14 <= 40:
		zone = rsiLow
	default:
		zone = rsiMid
	}

	return judgments[judgmentKey{trend, momentum, zone, tone}]
}
