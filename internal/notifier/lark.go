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

// LarkNotifier posts plain-text messages to a Lark (Feishu) custom bot
// webhook.
type LarkNotifier struct {
	WebhookURL string
	Client     *http.Client
}

// NewLarkNotifier creates a notifier with optional proxy support.
func NewLarkNotifier(webhookURL, proxyURL string) *LarkNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &LarkNotifier{
		WebhookURL: webhookURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (l *LarkNotifier) Name() string { return "lark" }

// Send posts one text message. Lark reports failures with a non-zero
// code in the response body, not an HTTP status.
func (l *LarkNotifier) Send(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"msg_type": "text",
		"content":  map[string]string{"text": text},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lark payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create lark request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post lark webhook: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read lark response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lark webhook returned %d: %s", resp.StatusCode, respBody)
	}

	var result struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("decode lark response: %w", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("lark webhook error %d: %s", result.Code, result.Msg)
	}
	return nil
}
