package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"MarketPulse/internal/model"
)

const (
	spotKlinesURL    = "https://api.binance.com/api/v3/klines"
	futuresKlinesURL = "https://fapi.binance.com/fapi/v1/klines"
)

// BinanceFetcher pulls klines from the Binance REST API. The same type
// serves both the spot and the USDT-M futures endpoint.
type BinanceFetcher struct {
	BaseURL string
	Client  *http.Client

	name    string
	limiter *rate.Limiter
}

// NewSpotFetcher creates a fetcher for the Binance spot klines endpoint,
// with optional proxy support.
func NewSpotFetcher(proxyURL string) *BinanceFetcher {
	return newBinanceFetcher("binance-spot", spotKlinesURL, proxyURL)
}

// NewFuturesFetcher creates a fetcher for the USDT-M futures klines
// endpoint.
func NewFuturesFetcher(proxyURL string) *BinanceFetcher {
	return newBinanceFetcher("binance-futures", futuresKlinesURL, proxyURL)
}

func newBinanceFetcher(name, baseURL, proxyURL string) *BinanceFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BinanceFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   20 * time.Second,
			Transport: transport,
		},
		name: name,
		// 5 req/s keeps a multi-symbol cycle far below Binance limits.
		limiter: rate.NewLimiter(rate.Every(time.Second/5), 5),
	}
}

func (f *BinanceFetcher) Name() string { return f.name }

// FetchKlines fetches up to limit bars for the symbol. Binance returns
// each kline as a mixed-type JSON array; only open time, OHLC, volume and
// quote volume are consumed, and every bar is validated and converted to
// model.OHLCV at this boundary.
func (f *BinanceFetcher) FetchKlines(ctx context.Context, symbol, interval string, limit int) (model.Series, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return model.Series{}, err
	}

	endpoint := fmt.Sprintf("%s?symbol=%s&interval=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(interval), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Series{}, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Series{}, fmt.Errorf("fetch klines: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.Series{}, fmt.Errorf("fetch klines: status %d, body: %s", resp.StatusCode, string(body))
	}

	var rows [][]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return model.Series{}, fmt.Errorf("decode klines: %w", err)
	}

	bars := make([]model.OHLCV, 0, len(rows))
	for _, row := range rows {
		if len(row) < 8 {
			continue
		}
		bars = append(bars, model.OHLCV{
			OpenTime:    time.UnixMilli(int64(toFloat(row[0]))),
			Open:        toFloat(row[1]),
			High:        toFloat(row[2]),
			Low:         toFloat(row[3]),
			Close:       toFloat(row[4]),
			Volume:      toFloat(row[5]),
			QuoteVolume: toFloat(row[7]),
		})
	}
	if len(bars) == 0 {
		return model.Series{}, fmt.Errorf("%s: no klines for %s", f.name, symbol)
	}

	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].OpenTime.Before(bars[j].OpenTime) })

	return model.Series{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}

// toFloat converts the mixed number/string fields of a Binance kline row.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
