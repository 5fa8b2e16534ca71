// Package stats is the lookup statistics sink. It is owned by the
// application and injected into the lookup service, never reached as
// process-wide ambient state.
package stats

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeNotFound Outcome = "not_found"
)

// Recorder receives one event per processed command and per finished
// lookup.
type Recorder interface {
	RecordCommand()
	RecordLookup(outcome Outcome, elapsed time.Duration)
}

// Snapshot is a point-in-time copy of the counters for /botstats.
type Snapshot struct {
	StartedAt       time.Time
	Commands        int64
	Successes       int64
	Failures        int64
	TotalLookupTime time.Duration
}

// SuccessRate is the share of successful lookups, in percent.
func (s Snapshot) SuccessRate() float64 {
	total := s.Successes + s.Failures
	if total == 0 {
		return 0
	}
	return float64(s.Successes) / float64(total) * 100
}

// AvgLookupTime is zero until the first successful lookup.
func (s Snapshot) AvgLookupTime() time.Duration {
	if s.Successes == 0 {
		return 0
	}
	return s.TotalLookupTime / time.Duration(s.Successes)
}

// Tracker implements Recorder with an in-memory snapshot for /botstats
// and prometheus collectors for /metrics.
type Tracker struct {
	mu   sync.Mutex
	snap Snapshot

	commandsTotal  prometheus.Counter
	lookupsTotal   *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

func NewTracker(reg prometheus.Registerer) *Tracker {
	factory := promauto.With(reg)

	return &Tracker{
		snap: Snapshot{StartedAt: time.Now()},
		commandsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bot_commands_total",
			Help: "Commands processed by the bot.",
		}),
		lookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_lookups_total",
			Help: "Player lookups by outcome.",
		}, []string{"outcome"}),
		lookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bot_lookup_duration_seconds",
			Help:    "Wall time of a full player lookup.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (t *Tracker) RecordCommand() {
	t.commandsTotal.Inc()

	t.mu.Lock()
	t.snap.Commands++
	t.mu.Unlock()
}

func (t *Tracker) RecordLookup(outcome Outcome, elapsed time.Duration) {
	t.lookupsTotal.WithLabelValues(string(outcome)).Inc()
	t.lookupDuration.Observe(elapsed.Seconds())

	t.mu.Lock()
	defer t.mu.Unlock()

	if outcome == OutcomeSuccess {
		t.snap.Successes++
		t.snap.TotalLookupTime += elapsed
	} else {
		t.snap.Failures++
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snap
}
