package testutil

import (
	"math/rand"
	"os"
	"sync"
	"testing"

	"lukechampine.com/frand"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Fill fills b with pseudo-random bytes.
func (r *RNG) Fill(b []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(b)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.Fill(b)
	return b
}

// Lengths returns count pseudo-random lengths in [0, maxLen].
func (r *RNG) Lengths(count, maxLen int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = r.Intn(maxLen + 1)
	}
	return out
}

// RandomInput serves benchmark inputs of a fixed length. Both the bytes
// and the page offset each slice starts at are random, so a benchmark does
// not measure one lucky alignment.
type RandomInput struct {
	buf     []byte
	n       int
	offsets []int
	next    int
}

// NewRandomInput returns inputs of n bytes and records n as the bytes
// processed per benchmark iteration.
func NewRandomInput(b *testing.B, n int) *RandomInput {
	b.Helper()
	b.SetBytes(int64(n))

	page := os.Getpagesize()
	buf := make([]byte, n+page)
	frand.Read(buf)

	return &RandomInput{
		buf:     buf,
		n:       n,
		offsets: frand.Perm(page),
	}
}

// Get returns the next input, cycling through the shuffled page offsets.
func (in *RandomInput) Get() []byte {
	off := in.offsets[in.next]
	in.next++
	if in.next == len(in.offsets) {
		in.next = 0
	}
	return in.buf[off : off+in.n]
}

// Len returns the length of every input.
func (in *RandomInput) Len() int {
	return in.n
}
