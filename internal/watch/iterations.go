package watch

import "sync/atomic"

// Iterations is a concurrency-safe iteration count shared between the
// watcher, which stores reloaded values, and the menu, which reads them.
type Iterations struct {
	v atomic.Int64
}

// NewIterations returns a holder initialised to n.
func NewIterations(n int) *Iterations {
	i := &Iterations{}
	i.v.Store(int64(n))
	return i
}

// Iterations returns the current value.
func (i *Iterations) Iterations() int {
	return int(i.v.Load())
}

// Set replaces the current value.
func (i *Iterations) Set(n int) {
	i.v.Store(int64(n))
}
