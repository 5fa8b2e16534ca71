package worker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"rtanksbot/pkg/contextx"
	"rtanksbot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Pinger interface {
	Ping(ctx context.Context) (time.Duration, int, error)
}

type SiteState string

const (
	SiteOnline  SiteState = "online"
	SitePartial SiteState = "partial"
	SiteOffline SiteState = "offline"
)

type SiteStatus struct {
	State      SiteState
	StatusCode int
	Latency    time.Duration
	CheckedAt  time.Time
}

// SiteWatcher polls the ratings website and keeps the latest
// availability result for /botstats.
type SiteWatcher struct {
	pinger   Pinger
	interval time.Duration

	// Control fields
	mu         sync.Mutex
	status     SiteStatus
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewSiteWatcher(pinger Pinger, interval time.Duration) *SiteWatcher {
	return &SiteWatcher{
		pinger:   pinger,
		interval: interval,
		status:   SiteStatus{State: SiteOffline},
	}
}

func (w *SiteWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("site watcher is already running")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(watchCtx).Error("site watcher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *SiteWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *SiteWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *SiteWatcher) Run(ctx context.Context) error {
	w.checkOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.checkOnce(ctx)
		}
	}
}

// Status returns the latest check result.
func (w *SiteWatcher) Status() SiteStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *SiteWatcher) checkOnce(ctx context.Context) {
	latency, code, err := w.pinger.Ping(ctx)

	status := SiteStatus{
		StatusCode: code,
		Latency:    latency,
		CheckedAt:  time.Now(),
	}

	switch {
	case err != nil:
		status.State = SiteOffline
		logger(ctx).Warn("site check failed", logx.Error(err))
	case code == http.StatusOK:
		status.State = SiteOnline
	default:
		status.State = SitePartial
	}

	logger(ctx).Debug("site checked",
		slog.String("state", string(status.State)),
		slog.Int64(logx.FieldDurationMs, latency.Milliseconds()),
	)

	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
}
