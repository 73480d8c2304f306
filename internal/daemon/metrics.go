package daemon

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cryptopilot/droptrack/internal/store"
)

// Metrics tracks refresh activity while the daemon runs.
type Metrics struct {
	ticksTotal        atomic.Int64
	passesRun         atomic.Int64
	airdropsCompleted atomic.Int64
	testnetsAdvanced  atomic.Int64

	mu         sync.RWMutex
	lastPassAt time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record accounts for one scheduler tick and its result.
func (m *Metrics) Record(res store.RefreshResult) {
	m.ticksTotal.Add(1)
	if !res.Ran {
		return
	}
	m.passesRun.Add(1)
	m.airdropsCompleted.Add(int64(res.AirdropsCompleted))
	m.testnetsAdvanced.Add(int64(res.TestnetsAdvanced))

	m.mu.Lock()
	m.lastPassAt = time.Now()
	m.mu.Unlock()
}

// MetricsSnapshot is a point-in-time view of the counters.
type MetricsSnapshot struct {
	TicksTotal             int64     `json:"ticks_total"`
	PassesRun              int64     `json:"passes_run"`
	AirdropsCompletedTotal int64     `json:"airdrops_completed_total"`
	TestnetsAdvancedTotal  int64     `json:"testnets_advanced_total"`
	LastPassAt             time.Time `json:"last_pass_at,omitempty"`
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	lastPass := m.lastPassAt
	m.mu.RUnlock()

	return MetricsSnapshot{
		TicksTotal:             m.ticksTotal.Load(),
		PassesRun:              m.passesRun.Load(),
		AirdropsCompletedTotal: m.airdropsCompleted.Load(),
		TestnetsAdvancedTotal:  m.testnetsAdvanced.Load(),
		LastPassAt:             lastPass,
	}
}

// JSON renders the snapshot as JSON.
func (m *Metrics) JSON() ([]byte, error) {
	return json.MarshalIndent(m.Snapshot(), "", "  ")
}
