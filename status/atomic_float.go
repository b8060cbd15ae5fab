package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its IEEE-754 bits
// The zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set publishes v
func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Get returns the last published value
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
