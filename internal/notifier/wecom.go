package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// WeComNotifier posts markdown messages to a WeCom (企业微信) group bot
// webhook.
type WeComNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewWeComNotifier creates a notifier with optional proxy support.
func NewWeComNotifier(webhookURL, proxyURL string) *WeComNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &WeComNotifier{
		WebhookURL: webhookURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (w *WeComNotifier) Name() string { return "wecom" }

// Send posts one markdown message. WeCom reports failures with a
// non-zero errcode in the response body.
func (w *WeComNotifier) Send(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"msgtype":  "markdown",
		"markdown": map[string]string{"content": text},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal wecom payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create wecom request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post wecom webhook: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read wecom response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wecom webhook returned %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("decode wecom response: %w", err)
	}
	if result.ErrCode != 0 {
		return fmt.Errorf("wecom webhook error %d: %s", result.ErrCode, result.ErrMsg)
	}
	return nil
}
