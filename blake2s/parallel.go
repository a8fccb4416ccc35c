package blake2s

import (
	"hash"

	blake2simd "github.com/kobigurk/blake2-simd"
)

// ParallelDegree is the number of leaves of BLAKE2sp.
const ParallelDegree = 8

// ParallelBuilder configures BLAKE2sp. Like Builder it is an immutable
// value; each setter returns an updated copy.
type ParallelBuilder struct {
	hashLength int
	key        []byte
	portable   bool
}

// NewParallelParams returns a builder for unkeyed 32-byte BLAKE2sp.
func NewParallelParams() ParallelBuilder {
	return ParallelBuilder{hashLength: OutBytes}
}

// HashLength sets the digest length in bytes (1..=OutBytes).
func (b ParallelBuilder) HashLength(n int) ParallelBuilder {
	b.hashLength = n
	return b
}

// Key sets the MAC key (0..=KeyBytes). The key is copied.
func (b ParallelBuilder) Key(key []byte) ParallelBuilder {
	b.key = append([]byte(nil), key...)
	return b
}

// ForcePortable pins the leaves and root to the portable implementation.
func (b ParallelBuilder) ForcePortable() ParallelBuilder {
	b.portable = true
	return b
}

// Build validates the configuration and derives the leaf and root
// parameters.
func (b ParallelBuilder) Build() (*ParallelParams, error) {
	base := NewParams().
		HashLength(b.hashLength).
		Key(b.key).
		Fanout(ParallelDegree).
		MaxDepth(2).
		InnerHashLength(OutBytes)
	if b.portable {
		base = base.ForcePortable()
	}

	leaf, err := base.Build()
	if err != nil {
		return nil, err
	}
	root, err := base.NodeDepth(1).LastNode(true).Build()
	if err != nil {
		return nil, err
	}
	// The root records the key length but never absorbs the key.
	root.hasKeyBlock = false
	clear(root.keyBlock[:])

	pp := &ParallelParams{hashLength: leaf.hashLength, root: root}
	for i := range pp.leaves {
		pp.leaves[i] = leaf.derive(func(q *Params) {
			q.nodeOffset = uint64(i)
			q.lastNode = i == ParallelDegree-1
		})
	}
	return pp, nil
}

// ParallelParams holds the derived BLAKE2sp node parameters. Immutable and
// safe to share.
type ParallelParams struct {
	hashLength uint8
	leaves     [ParallelDegree]*Params
	root       *Params
}

var defaultParallelParams = mustDefaultParallel()

func mustDefaultParallel() *ParallelParams {
	pp, err := NewParallelParams().Build()
	if err != nil {
		panic(err)
	}
	return pp
}

// SumParallel returns the unkeyed 32-byte BLAKE2sp digest of data.
func SumParallel(data []byte) Hash {
	return defaultParallelParams.Hash(data)
}

// HashLength returns the digest length in bytes.
func (pp *ParallelParams) HashLength() int { return int(pp.hashLength) }

// Hash computes the BLAKE2sp digest of data. Block k of the input belongs to
// leaf k mod ParallelDegree; the leaves are hashed together with HashMany.
func (pp *ParallelParams) Hash(data []byte) Hash {
	var jobs [ParallelDegree]Job
	ptrs := make([]*Job, ParallelDegree)
	for i := range jobs {
		jobs[i] = Job{
			params: pp.leaves[i],
			src: source{
				data:   data,
				first:  i,
				stride: ParallelDegree,
				length: stridedLength(len(data), i),
			},
		}
		ptrs[i] = &jobs[i]
	}
	HashMany(ptrs)

	var s State
	s.init(pp.root)
	for i := range jobs {
		out := wordsToBytes(&jobs[i].words)
		s.update(out[:])
	}
	return s.finalize()
}

// stridedLength returns how many of n input bytes land in leaf i.
func stridedLength(n, i int) int {
	blocks := (n + BlockBytes - 1) / BlockBytes
	if i >= blocks {
		return 0
	}
	count := (blocks - i + ParallelDegree - 1) / ParallelDegree
	length := count * BlockBytes
	if tail := n % BlockBytes; tail != 0 && (blocks-1)%ParallelDegree == i {
		length -= BlockBytes - tail
	}
	return length
}

// NewState returns an incremental BLAKE2sp state.
func (pp *ParallelParams) NewState() *ParallelState {
	return NewParallelState(pp)
}

var _ hash.Hash = (*ParallelState)(nil)

// ParallelState is an incremental BLAKE2sp state. Input is buffered in
// groups of ParallelDegree blocks and dealt to the leaves round-robin. The
// zero ParallelState uses the unkeyed default configuration.
type ParallelState struct {
	params    *ParallelParams
	leaves    [ParallelDegree]State
	buf       [ParallelDegree * BlockBytes]byte
	buflen    int
	finalized bool
}

// NewParallelState returns a BLAKE2sp state for pp. A nil pp selects the
// unkeyed 32-byte configuration.
func NewParallelState(pp *ParallelParams) *ParallelState {
	if pp == nil {
		pp = defaultParallelParams
	}
	s := &ParallelState{params: pp}
	s.Reset()
	return s
}

// Reset returns the state to its initial configuration.
func (s *ParallelState) Reset() {
	if s.params == nil {
		s.params = defaultParallelParams
	}
	for i := range s.leaves {
		s.leaves[i].init(s.params.leaves[i])
	}
	s.buflen = 0
	s.finalized = false
}

// Update absorbs data.
func (s *ParallelState) Update(data []byte) error {
	if s.finalized {
		return blake2simd.StateError("update after finalize")
	}
	s.ready()

	if s.buflen > 0 {
		n := copy(s.buf[s.buflen:], data)
		s.buflen += n
		data = data[n:]
		if s.buflen < len(s.buf) {
			return nil
		}
		s.deal(s.buf[:])
		s.buflen = 0
	}
	for len(data) >= len(s.buf) {
		s.deal(data[:len(s.buf)])
		data = data[len(s.buf):]
	}
	s.buflen = copy(s.buf[:], data)
	return nil
}

// ready gives a zero ParallelState the default configuration.
func (s *ParallelState) ready() {
	if s.params == nil {
		s.Reset()
	}
}

// deal gives one block of group to each leaf.
func (s *ParallelState) deal(group []byte) {
	for i := range s.leaves {
		s.leaves[i].update(group[i*BlockBytes : (i+1)*BlockBytes])
	}
}

// Write implements io.Writer.
func (s *ParallelState) Write(data []byte) (int, error) {
	if err := s.Update(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Finalize returns the digest. The state is consumed.
func (s *ParallelState) Finalize() (Hash, error) {
	if s.finalized {
		return Hash{}, blake2simd.StateError("finalize called twice")
	}
	s.ready()
	s.finalized = true
	return s.finalize(), nil
}

func (s *ParallelState) finalize() Hash {
	var root State
	root.init(s.params.root)
	for i := range s.leaves {
		leaf := s.leaves[i]
		if start := i * BlockBytes; s.buflen > start {
			leaf.update(s.buf[start:min(s.buflen, start+BlockBytes)])
		}
		h := leaf.finalizeWords()
		out := wordsToBytes(&h)
		root.update(out[:])
	}
	return root.finalize()
}

// Sum appends the digest of the input absorbed so far to b without
// consuming the state.
func (s *ParallelState) Sum(b []byte) []byte {
	s.ready()
	digest := s.finalize()
	return append(b, digest.Bytes()...)
}

// Size returns the digest length in bytes.
func (s *ParallelState) Size() int {
	s.ready()
	return int(s.params.hashLength)
}

// BlockSize returns the size of one round-robin group.
func (s *ParallelState) BlockSize() int { return len(s.buf) }
