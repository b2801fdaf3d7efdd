package analyzer

import (
	"testing"

	"MarketPulse/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestJudgments_TableIsTotal(t *testing.T) {
	trends := []trendDir{trendUp, trendDown, trendFlat}
	momenta := []momentumDir{momentumImproving, momentumWeakening, momentumSteady}
	zones := []rsiZone{rsiMid, rsiHigh, rsiLow}
	tones := []model.Tone{model.ToneConservative, model.ToneBalanced, model.ToneAggressive}

	for _, tr := range trends {
		for _, mo := range momenta {
			for _, z := range zones {
				for _, to := range tones {
					phrase, ok := judgments[judgmentKey{tr, mo, z, to}]
					if !ok || phrase == "" {
						t.Errorf("missing phrase for trend=%d momentum=%d rsi=%d tone=%s", tr, mo, z, to)
					}
				}
			}
		}
	}
	if len(judgments) != 3*3*3*3 {
		t.Errorf("expected %d entries, got %d", 3*3*3*3, len(judgments))
	}
}

func TestJudge_UptrendHighRSI(t *testing.T) {
	// ema50 > ema200, RSI 65, histogram rising: continuation phrase.
	snap := model.Snapshot{
		EMA50:        fp(110),
		EMA200:       fp(100),
		RSI14:        fp(65),
		MACDHist:     fp(1.5),
		MACDHistPrev: fp(1.0),
	}
	balanced := Judge(snap, model.ToneBalanced)
	if balanced != uptrendFollow.balanced {
		t.Errorf("expected continuation phrase, got %q", balanced)
	}

	// Same indicators, different tone: must pick a different phrase from
	// the same branch of the table.
	aggressive := Judge(snap, model.ToneAggressive)
	if aggressive != uptrendFollow.aggressive {
		t.Errorf("expected aggressive continuation phrase, got %q", aggressive)
	}
	if aggressive == balanced {
		t.Error("tone switch must change the phrase")
	}
}

func TestJudge_UptrendWeakeningHighRSI(t *testing.T) {
	snap := model.Snapshot{
		EMA50:        fp(110),
		EMA200:       fp(100),
		RSI14:        fp(72),
		MACDHist:     fp(1.0),
		MACDHistPrev: fp(1.5),
	}
	if got := Judge(snap, model.ToneBalanced); got != uptrendPullback.balanced {
		t.Errorf("expected pullback phrase, got %q", got)
	}
}

func TestJudge_DowntrendBounce(t *testing.T) {
	snap := model.Snapshot{
		EMA50:        fp(90),
		EMA200:       fp(100),
		RSI14:        fp(28),
		MACDHist:     fp(-1.0),
		MACDHistPrev: fp(-1.5),
	}
	if got := Judge(snap, model.ToneConservative); got != downtrendBounce.conservative {
		t.Errorf("expected bounce phrase, got %q", got)
	}
}

func TestJudge_FlatTrend(t *testing.T) {
	snap := model.Snapshot{
		EMA50:        fp(100),
		EMA200:       fp(100),
		RSI14:        fp(50),
		MACDHist:     fp(0.1),
		MACDHistPrev: fp(0.2),
	}
	if got := Judge(snap, model.ToneBalanced); got != ranging.balanced {
		t.Errorf("expected ranging phrase, got %q", got)
	}
}

func TestJudge_InsufficientData(t *testing.T) {
	cases := []model.Snapshot{
		{},
		{EMA50: fp(1), EMA200: fp(1), RSI14: fp(50), MACDHist: fp(0)}, // no prev histogram
		{EMA50: fp(1), RSI14: fp(50), MACDHist: fp(0), MACDHistPrev: fp(0)},
	}
	for i, snap := range cases {
		if got := Judge(snap, model.ToneBalanced); got != judgmentInsufficient {
			t.Errorf("case %d: expected sentinel, got %q", i, got)
		}
	}
}
