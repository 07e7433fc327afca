package observability

import (
	"sync"
	"time"
)

// Metrics keeps in-process request and error counters keyed by route,
// method and outcome. Counters only; nothing is shipped to an external
// system.
type Metrics struct {
	mu       sync.Mutex
	requests map[requestKey]*requestStats
	errors   map[errorKey]int64
}

type requestKey struct {
	route  string
	method string
	status int
}

type errorKey struct {
	route  string
	method string
	code   string
}

type requestStats struct {
	count         int64
	totalDuration time.Duration
}

// NewMetrics initializes counter storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[requestKey]*requestStats),
		errors:   make(map[errorKey]int64),
	}
}

// RecordRequest counts a completed request and accumulates its latency.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey{route: route, method: method, status: status}
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.requests[key]
	if stats == nil {
		stats = &requestStats{}
		m.requests[key] = stats
	}
	stats.count++
	stats.totalDuration += duration
}

// RecordError counts a request that ended in an application error code.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[errorKey{route: route, method: method, code: code}]++
}
