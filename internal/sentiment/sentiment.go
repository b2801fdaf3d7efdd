// Package sentiment fetches the crypto fear & greed index from
// alternative.me.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"MarketPulse/internal/model"
)

const defaultEndpoint = "https://api.alternative.me/fng/?limit=1&format=json"

// Client fetches the latest fear & greed reading.
type Client struct {
	Endpoint string
	Client   *http.Client

	now func() time.Time // overridable for tests
}

// NewClient creates a client with optional proxy support.
func NewClient(proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		Endpoint: defaultEndpoint,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		now: time.Now,
	}
}

type fngResponse struct {
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
		Timestamp           string `json:"timestamp"`
	} `json:"data"`
}

// Fetch returns the latest index reading. The classification is derived
// locally so the wording stays in the report's language regardless of the
// source's value_classification field. The feed occasionally reports an
// update timestamp in the future; such a timestamp is clamped to the
// current time here, at the ingestion boundary.
func (c *Client) Fetch(ctx context.Context) (*model.SentimentIndex, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch fear greed index: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fear greed index: status %d", resp.StatusCode)
	}

	var payload fngResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode fear greed index: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("fear greed index: empty data")
	}

	item := payload.Data[0]
	raw, err := strconv.ParseFloat(item.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("fear greed index: bad value %q: %w", item.Value, err)
	}
	value := int(raw)

	classification := Classify(value)

	updated := c.now()
	if ts, err := strconv.ParseInt(item.Timestamp, 10, 64); err == nil && ts > 0 {
		t := time.Unix(ts, 0)
		if t.After(c.now()) {
			log.Warn().Time("reported", t).Msg("fear greed index timestamp in the future, using current time")
		} else {
			updated = t
		}
	}

	return &model.SentimentIndex{
		Value:          value,
		Classification: classification,
		UpdatedAt:      updated,
	}, nil
}

// Classify buckets an index value with the fixed reference thresholds.
func Classify(v int) string {
	switch {
	case v <= 24:
		return "极度恐惧"
	case v <= 44:
		return "恐惧"
	case v <= 55:
		return "中性"
	case v <= 74:
		return "贪婪"
	default:
		return "极度贪婪"
	}
}
