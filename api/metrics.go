package api

import (
	"net/http"
	"sort"
	"sync"
	"time"
)

// RouteMetrics aggregates request counts and latency for one route.
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects and aggregates request metrics
type MetricsCollector struct {
	mu     sync.RWMutex
	routes map[string]*RouteMetrics
}

// Metrics is the process-wide collector used by the middleware and the
// metrics endpoint.
var Metrics = NewMetricsCollector()

// NewMetricsCollector returns an empty collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{routes: make(map[string]*RouteMetrics)}
}

// Record adds one completed request to the per-route aggregate
func (c *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := method + " " + path
	m, ok := c.routes[key]
	if !ok {
		m = &RouteMetrics{Method: method, Path: path, MinTime: duration}
		c.routes[key] = m
	}
	m.Count++
	if status >= http.StatusBadRequest {
		m.ErrorCount++
	}
	m.TotalTime += duration
	m.AvgTime = m.TotalTime / time.Duration(m.Count)
	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
	m.LastRequest = time.Now()
}

// Snapshot returns the per-route aggregates sorted by path
func (c *MetricsCollector) Snapshot() []RouteMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]RouteMetrics, 0, len(c.routes))
	for _, m := range c.routes {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path == out[j].Path {
			return out[i].Method < out[j].Method
		}
		return out[i].Path < out[j].Path
	})
	return out
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware tracks request timing and status per route
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		Metrics.Record(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
