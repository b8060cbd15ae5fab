package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
	Labels   *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
		Labels:   NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Labels.Count()
}

// Lines formats every metric as "key value", counters first, each group in key order
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", key, v.Load()))
	})
	r.Gauges.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.2f", key, v.Get()))
	})
	r.Labels.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s %s", key, v.Load()))
	})
	return lines
}

// Reset zeroes every counter and gauge; labels are kept
func (r *Registry) Reset() {
	r.Counters.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Gauges.Range(func(_ string, v *AtomicFloat) { v.Set(0) })
}
