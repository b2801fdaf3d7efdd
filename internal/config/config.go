// Package config loads application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"MarketPulse/internal/model"
)

// Pair names one relative-strength base/quote pairing by raw symbol.
type Pair struct {
	Base  string `yaml:"base"`
	Quote string `yaml:"quote"`
}

// Config holds all application configuration.
type Config struct {
	Market struct {
		Symbols    []string `yaml:"symbols"`
		Interval   string   `yaml:"interval"`
		Limit      int      `yaml:"limit"`
		Pairs      []Pair   `yaml:"pairs"`
		SRLookback int      `yaml:"sr_lookback"`
		Window     int      `yaml:"window"`
	} `yaml:"market"`
	Report struct {
		Tone string `yaml:"tone"`
	} `yaml:"report"`
	Notify struct {
		LarkWebhookURL   string `yaml:"lark_webhook_url"`
		WeComWebhookURL  string `yaml:"wecom_webhook_url"`
		TelegramBotToken string `yaml:"telegram_bot_token"`
		TelegramChatID   int64  `yaml:"telegram_chat_id"`
		HTMLOut          string `yaml:"html_out"`
	} `yaml:"notify"`
	Schedule struct {
		BroadcastCron string `yaml:"broadcast_cron"`
		RunOnStart    bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults
// carry the run.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// The first broadcast fires at startup unless explicitly disabled;
	// seeded before unmarshal so only an explicit false overrides it.
	cfg.Schedule.RunOnStart = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Market.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("TONE"); v != "" {
		cfg.Report.Tone = v
	}
	if v := os.Getenv("LARK_WEBHOOK_URL"); v != "" {
		cfg.Notify.LarkWebhookURL = v
	}
	if v := os.Getenv("WECHAT_WEBHOOK_URL"); v != "" {
		cfg.Notify.WeComWebhookURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Notify.TelegramBotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Notify.TelegramChatID = id
		}
	}
	if v := os.Getenv("HTML_OUT"); v != "" {
		cfg.Notify.HTMLOut = v
	}
	if v := os.Getenv("BROADCAST_CRON"); v != "" {
		cfg.Schedule.BroadcastCron = v
	}
	if v := os.Getenv("RUN_ON_START"); v != "" {
		cfg.Schedule.RunOnStart = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if len(cfg.Market.Symbols) == 0 {
		cfg.Market.Symbols = []string{"BTCUSDT", "ETHUSDT", "BNBUSDT"}
	}
	if cfg.Market.Interval == "" {
		cfg.Market.Interval = "1h"
	}
	if cfg.Market.Limit == 0 {
		cfg.Market.Limit = 300
	}
	if len(cfg.Market.Pairs) == 0 {
		cfg.Market.Pairs = []Pair{
			{Base: "ETHUSDT", Quote: "BTCUSDT"},
			{Base: "BNBUSDT", Quote: "ETHUSDT"},
		}
	}
	if cfg.Market.SRLookback == 0 {
		cfg.Market.SRLookback = 20
	}
	if cfg.Market.Window == 0 {
		cfg.Market.Window = 12
	}
	if cfg.Report.Tone == "" {
		cfg.Report.Tone = string(model.ToneBalanced)
	}
	if cfg.Schedule.BroadcastCron == "" {
		cfg.Schedule.BroadcastCron = "0 0 * * * *"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks field consistency. Webhook channels are all optional;
// console output always works.
func (c *Config) Validate() error {
	if len(c.Market.Symbols) == 0 {
		return fmt.Errorf("market.symbols must not be empty")
	}
	if c.Market.Limit < 2 {
		return fmt.Errorf("market.limit must be at least 2")
	}
	if c.Market.SRLookback < 1 {
		return fmt.Errorf("market.sr_lookback must be positive")
	}
	if c.Market.Window < 2 {
		return fmt.Errorf("market.window must be at least 2")
	}
	if (c.Notify.TelegramBotToken == "") != (c.Notify.TelegramChatID == 0) {
		return fmt.Errorf("telegram bot token and chat id must be set together")
	}
	for _, p := range c.Market.Pairs {
		if p.Base == "" || p.Quote == "" {
			return fmt.Errorf("relative strength pairs need both base and quote")
		}
	}
	return nil
}

// Tone returns the configured tone, falling back to balanced.
func (c *Config) Tone() model.Tone {
	return model.ParseTone(c.Report.Tone)
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.ToUpper(strings.TrimSpace(p)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
