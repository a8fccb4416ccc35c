// Package pool provides object pools for zero-allocation batch hashing.
// Uses sync.Pool for automatic memory reuse across HashMany calls.
package pool

import (
	"sync"

	"github.com/kobigurk/blake2-simd/internal/cohort"
)

const (
	// DefaultBatchSize is the initial capacity of the job index and span
	// buffers.
	DefaultBatchSize = 64

	// MaxRetainedBatchSize bounds the buffers returned to the pool so one
	// huge batch does not pin memory.
	MaxRetainedBatchSize = 1 << 16
)

// Batch contains the reusable buffers of one HashMany call.
type Batch struct {
	// Index lists the positions of the jobs routed to the accelerated path.
	Index []int
	// Spans is the cohort plan over Index.
	Spans []cohort.Span
}

var batchPool = sync.Pool{
	New: func() any {
		return &Batch{
			Index: make([]int, 0, DefaultBatchSize),
			Spans: make([]cohort.Span, 0, DefaultBatchSize),
		}
	},
}

// Get retrieves a Batch from the pool.
func Get() *Batch {
	b := batchPool.Get().(*Batch)
	b.Reset()
	return b
}

// Put returns a Batch to the pool for reuse.
func Put(b *Batch) {
	if cap(b.Index) > MaxRetainedBatchSize || cap(b.Spans) > MaxRetainedBatchSize {
		return
	}
	batchPool.Put(b)
}

// Reset clears the Batch for reuse.
func (b *Batch) Reset() {
	b.Index = b.Index[:0]
	b.Spans = b.Spans[:0]
}

// Plan fills Spans with the cohort plan over Index.
func (b *Batch) Plan(tiers []int) []cohort.Span {
	b.Spans = cohort.AppendPlan(b.Spans[:0], len(b.Index), tiers)
	return b.Spans
}
