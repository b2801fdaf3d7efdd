package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"MarketPulse/internal/collector"
	"MarketPulse/internal/model"
	"MarketPulse/internal/report"
)

type stubSentiment struct {
	idx   *model.SentimentIndex
	err   error
	calls int
}

func (s *stubSentiment) Fetch(ctx context.Context) (*model.SentimentIndex, error) {
	s.calls++
	return s.idx, s.err
}

type recordingNotifier struct {
	mu    sync.Mutex
	name  string
	err   error
	texts []string
}

func (r *recordingNotifier) Name() string { return r.name }

func (r *recordingNotifier) Send(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.texts = append(r.texts, text)
	return nil
}

func newTestScheduler(t *testing.T, sf *stubSentiment, notifiers []*recordingNotifier, at time.Time) *Scheduler {
	t.Helper()
	mock := &collector.MockFetcher{Price: 50000}
	col := collector.NewCollector(mock, mock, []string{"BTCUSDT", "ETHUSDT"}, "1h", 300)
	comp := &report.Composer{
		Tone:       model.ToneBalanced,
		Symbols:    []string{"BTCUSDT", "ETHUSDT"},
		Pairs:      []report.Pair{{Base: "ETHUSDT", Quote: "BTCUSDT"}},
		SRLookback: 20,
		Window:     12,
	}

	s := NewScheduler(context.Background(), col, sf, comp, nil)
	for _, n := range notifiers {
		s.Notifiers = append(s.Notifiers, n)
	}
	s.now = func() time.Time { return at }
	return s
}

func TestRunNow_StandardCycle(t *testing.T) {
	sf := &stubSentiment{idx: &model.SentimentIndex{Value: 30, Classification: "恐惧", UpdatedAt: time.Now()}}
	n := &recordingNotifier{name: "console"}
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, report.CN)

	newTestScheduler(t, sf, []*recordingNotifier{n}, at).RunNow()

	if sf.calls != 0 {
		t.Errorf("sentiment fetched %d times on a standard cycle, want 0", sf.calls)
	}
	if len(n.texts) != 1 {
		t.Fatalf("got %d deliveries, want 1", len(n.texts))
	}
	if !strings.Contains(n.texts[0], "➡️【BTC/USDT") {
		t.Errorf("broadcast missing symbol block:\n%s", n.texts[0])
	}
}

func TestRunNow_EnhancedCycleFetchesSentiment(t *testing.T) {
	sf := &stubSentiment{idx: &model.SentimentIndex{Value: 70, Classification: "贪婪", UpdatedAt: time.Now()}}
	n := &recordingNotifier{name: "console"}
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, report.CN)

	newTestScheduler(t, sf, []*recordingNotifier{n}, at).RunNow()

	if sf.calls != 1 {
		t.Errorf("sentiment fetched %d times on an enhanced cycle, want 1", sf.calls)
	}
	if len(n.texts) != 1 {
		t.Fatalf("got %d deliveries, want 1", len(n.texts))
	}
	if !strings.Contains(n.texts[0], "恐惧贪婪指数：70") {
		t.Errorf("broadcast missing sentiment line:\n%s", n.texts[0])
	}
}

func TestRunNow_SentimentFailureStillBroadcasts(t *testing.T) {
	sf := &stubSentiment{err: errors.New("timeout")}
	n := &recordingNotifier{name: "console"}
	at := time.Date(2026, 3, 10, 0, 0, 0, 0, report.CN)

	newTestScheduler(t, sf, []*recordingNotifier{n}, at).RunNow()

	if len(n.texts) != 1 {
		t.Fatalf("got %d deliveries, want 1", len(n.texts))
	}
	if !strings.Contains(n.texts[0], "恐惧贪婪指数：数据源不可用") {
		t.Errorf("broadcast missing unavailable line:\n%s", n.texts[0])
	}
}

func TestDeliver_FailureIsolated(t *testing.T) {
	sf := &stubSentiment{}
	broken := &recordingNotifier{name: "lark", err: errors.New("webhook down")}
	healthy := &recordingNotifier{name: "wecom"}
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, report.CN)

	newTestScheduler(t, sf, []*recordingNotifier{broken, healthy}, at).RunNow()

	if len(healthy.texts) != 1 {
		t.Errorf("healthy channel got %d deliveries, want 1", len(healthy.texts))
	}
}

func TestRegister_InvalidCron(t *testing.T) {
	s := newTestScheduler(t, &stubSentiment{}, nil, time.Now())
	if err := s.Register("not a cron expr"); err == nil {
		t.Error("want error for invalid cron expression")
	}
	if err := s.Register("0 0 * * * *"); err != nil {
		t.Errorf("hourly expression rejected: %v", err)
	}
}
