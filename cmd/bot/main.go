package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"MarketPulse/internal/collector"
	"MarketPulse/internal/config"
	"MarketPulse/internal/notifier"
	"MarketPulse/internal/report"
	"MarketPulse/internal/scheduler"
	"MarketPulse/internal/sentiment"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	log.Info().Msg("MarketPulse starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	col := collector.NewCollector(
		collector.NewSpotFetcher(cfg.Proxy),
		collector.NewFuturesFetcher(cfg.Proxy),
		cfg.Market.Symbols,
		cfg.Market.Interval,
		cfg.Market.Limit,
	)

	pairs := make([]report.Pair, 0, len(cfg.Market.Pairs))
	for _, p := range cfg.Market.Pairs {
		pairs = append(pairs, report.Pair{Base: p.Base, Quote: p.Quote})
	}
	comp := &report.Composer{
		Tone:       cfg.Tone(),
		Symbols:    cfg.Market.Symbols,
		Pairs:      pairs,
		SRLookback: cfg.Market.SRLookback,
		Window:     cfg.Market.Window,
	}

	notifiers := []notifier.Notifier{notifier.NewConsoleNotifier()}
	if cfg.Notify.LarkWebhookURL != "" {
		notifiers = append(notifiers, notifier.NewLarkNotifier(cfg.Notify.LarkWebhookURL, cfg.Proxy))
		log.Info().Msg("lark channel enabled")
	}
	if cfg.Notify.WeComWebhookURL != "" {
		notifiers = append(notifiers, notifier.NewWeComNotifier(cfg.Notify.WeComWebhookURL, cfg.Proxy))
		log.Info().Msg("wecom channel enabled")
	}
	if cfg.Notify.TelegramBotToken != "" {
		tn, err := notifier.NewTelegramNotifier(cfg.Notify.TelegramBotToken, cfg.Notify.TelegramChatID, cfg.Proxy)
		if err != nil {
			log.Error().Err(err).Msg("init telegram channel failed, continuing without it")
		} else {
			notifiers = append(notifiers, tn)
			log.Info().Msg("telegram channel enabled")
		}
	}
	if cfg.Notify.HTMLOut != "" {
		notifiers = append(notifiers, notifier.NewHTMLWriter(cfg.Notify.HTMLOut))
		log.Info().Str("path", cfg.Notify.HTMLOut).Msg("html output enabled")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, sentiment.NewClient(cfg.Proxy), comp, notifiers)
	if err := sched.Register(cfg.Schedule.BroadcastCron); err != nil {
		log.Fatal().Err(err).Msg("register broadcast cycle")
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Schedule.RunOnStart {
		log.Info().Msg("run_on_start enabled, broadcasting now")
		go sched.RunNow()
	}

	log.Info().
		Strs("symbols", cfg.Market.Symbols).
		Str("cron", cfg.Schedule.BroadcastCron).
		Msg("MarketPulse is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("MarketPulse stopped")
}
