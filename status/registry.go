// Package status holds lock-free process counters for hosts to report
package status

import "sync/atomic"

// Metric names written by the network server
const (
	SessionsStarted = "sessions_started"
	SessionsFailed  = "sessions_failed"
	SessionsActive  = "sessions_active"
	FramesSent      = "frames_sent"
	FramesDropped   = "frames_dropped"
	MessagesBad     = "messages_bad"
	SessionSeconds  = "session_seconds"
)

// Registry groups counters and float gauges.
// Writers cache the metric pointer once and update the atomic directly
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Counter is shorthand for Counters.Get
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge is shorthand for Gauges.Get
func (r *Registry) Gauge(name string) *AtomicFloat {
	return r.Gauges.Get(name)
}

// Snapshot copies every metric into a plain map, suitable for JSON
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Range(func(k string, v *atomic.Int64) { out[k] = float64(v.Load()) })
	r.Gauges.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}
