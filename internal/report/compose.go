// Package report assembles the per-cycle broadcast text from the
// collected series, the derived indicators and the sentiment index.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"MarketPulse/internal/analyzer"
	"MarketPulse/internal/calculator"
	"MarketPulse/internal/collector"
	"MarketPulse/internal/model"
)

// CN is the UTC+8 zone every broadcast time is rendered in.
var CN = time.FixedZone("UTC+8", 8*3600)

// Pair names one relative-strength base/quote pairing by raw symbol.
type Pair struct {
	Base  string
	Quote string
}

// Composer renders one broadcast per cycle. The enhanced sections are
// appended only on the two hemisphere cycles (00:00 and 12:00 UTC+8).
type Composer struct {
	Tone       model.Tone
	Symbols    []string
	Pairs      []Pair
	SRLookback int // Donchian window, bars
	Window     int // hemisphere stats window, bars
}

// IsEnhancedHour reports whether the given wall-clock time (already in
// UTC+8) falls on a hemisphere cycle.
func IsEnhancedHour(t time.Time) bool {
	h := t.Hour()
	return h == 0 || h == 12
}

// Compose renders the full broadcast as ordered message blocks:
// title, then (enhanced cycles only) hemisphere stats, sentiment and
// relative strength, then one standard block per symbol. Symbols whose
// fetch failed are omitted. The sentiment index may be nil; on an
// enhanced cycle that renders the unavailable line.
func (c *Composer) Compose(now time.Time, data *collector.CycleData, fgi *model.SentimentIndex) []string {
	nowCN := now.In(CN)
	blocks := []string{
		fmt.Sprintf("🕐 市场播报 (%s UTC+8)", nowCN.Format("2006-01-02 15:04")),
	}

	if IsEnhancedHour(nowCN) {
		blocks = append(blocks, c.periodHeader(nowCN))
		blocks = append(blocks, c.hemisphereBlock(data))
		blocks = append(blocks, sentimentLine(fgi))
		blocks = append(blocks, c.relativeStrengthBlock(data))
	}

	for _, sym := range c.Symbols {
		s, ok := data.Spot[sym]
		if !ok {
			continue
		}
		blocks = append(blocks, c.symbolBlock(nowCN, s))
	}
	return blocks
}

// Text joins composed blocks into the delivery payload.
func Text(blocks []string) string {
	return strings.Join(blocks, "\n\n")
}

func (c *Composer) periodHeader(nowCN time.Time) string {
	if nowCN.Hour() == 12 {
		return "🌍 东半球时段数据播报 (00:00-12:00 UTC+8)"
	}
	return "🌍 西半球时段数据播报 (12:00-24:00 UTC+8)"
}

func (c *Composer) symbolBlock(nowCN time.Time, s model.Series) string {
	a := analyzer.Analyze(s, c.Tone, c.SRLookback)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("➡️【%s/USDT - 1小时级别】\n", model.DisplayName(s.Symbol)))
	b.WriteString(fmt.Sprintf("时间：%s (UTC+8)\n", nowCN.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("最新价格：%s\n", fmtPrice(&a.Snapshot.LastClose)))
	b.WriteString(fmt.Sprintf("关键支撑：%s；压力：%s。\n", fmtPrice(a.Snapshot.Support), fmtPrice(a.Snapshot.Resistance)))
	b.WriteString(fmt.Sprintf("趋势指标：%s\n", a.TrendText))
	b.WriteString(fmt.Sprintf("RSI：%s\n", a.RSIText))
	b.WriteString(fmt.Sprintf("MACD：%s\n", a.MACDText))
	b.WriteString(fmt.Sprintf("判断：%s", a.Judgment))
	return b.String()
}

// hemisphereBlock renders the trailing-window volume/volatility line for
// every tracked symbol. Volume prefers the futures series when it was
// fetched, since contract turnover is what the session stat is about.
func (c *Composer) hemisphereBlock(data *collector.CycleData) string {
	lines := []string{fmt.Sprintf("📊 过去%d小时统计：", c.Window)}
	for _, sym := range c.Symbols {
		name := model.DisplayName(sym)
		spot, ok := data.Spot[sym]
		if !ok {
			lines = append(lines, fmt.Sprintf("- %s 交易量：数据缺失 USDT，波动率：数据缺失", name))
			continue
		}

		stats := calculatorStats(spot, data.Futures[sym], c.Window)
		volumeStr := "数据缺失"
		if stats.Volume > 0 {
			volumeStr = humanize.FormatFloat("#,###.", stats.Volume)
		}
		volatilityStr := "数据缺失"
		if stats.Volatility > 0 {
			volatilityStr = fmt.Sprintf("%.2f%%", stats.Volatility)
		}
		lines = append(lines, fmt.Sprintf("- %s 交易量：%s USDT，波动率：%s", name, volumeStr, volatilityStr))
	}
	return strings.Join(lines, "\n")
}

func sentimentLine(fgi *model.SentimentIndex) string {
	if fgi == nil {
		return "😨 恐惧贪婪指数：数据源不可用"
	}
	return fmt.Sprintf("😨 恐惧贪婪指数：%d（%s，更新于 %s）",
		fgi.Value, fgi.Classification, fgi.UpdatedAt.In(CN).Format("2006-01-02 15:04"))
}

func (c *Composer) relativeStrengthBlock(data *collector.CycleData) string {
	lines := []string{"💪 相对强弱："}
	for _, p := range c.Pairs {
		baseName := model.DisplayName(p.Base)
		quoteName := model.DisplayName(p.Quote)

		base, baseOK := data.Spot[p.Base]
		quote, quoteOK := data.Spot[p.Quote]
		if !baseOK || !quoteOK {
			lines = append(lines, fmt.Sprintf("- %s/%s：数据缺失", baseName, quoteName))
			continue
		}

		rs := analyzer.RelativeStrength(base, quote)
		if !rs.OK {
			lines = append(lines, fmt.Sprintf("- %s/%s：数据不足", baseName, quoteName))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s/%s：比值 %.4f（1小时变动 %+.2f%%），趋势：%s",
			rs.Base, rs.Quote, rs.Ratio, rs.ChangePct, rs.TrendText))
	}
	return strings.Join(lines, "\n")
}

// calculatorStats computes the trailing-window stats. Volatility always
// comes from the spot series; volume comes from the futures series when
// available, falling back to spot.
func calculatorStats(spot, futures model.Series, window int) model.WindowStats {
	stats := calculator.WindowStats(spot, window)
	if futures.Len() >= window {
		if fs := calculator.WindowStats(futures, window); fs.Volume > 0 {
			stats.Volume = fs.Volume
		}
	}
	return stats
}

// fmtPrice renders a price as $1,234.56; nil renders an em dash.
func fmtPrice(v *float64) string {
	if v == nil {
		return "—"
	}
	return "$" + humanize.FormatFloat("#,###.##", *v)
}
