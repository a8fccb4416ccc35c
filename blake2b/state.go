package blake2b

import (
	"hash"

	blake2simd "github.com/kobigurk/blake2-simd"
)

var _ hash.Hash = (*State)(nil)

// State is an incremental BLAKE2b hash state.
//
// A State accepts input through Update or Write until Finalize, after which
// it is terminal: further updates and a second Finalize fail with
// blake2simd.ErrInvalidState. Reset returns it to the initial state. The
// zero State hashes with DefaultParams.
//
// A State must not be used from multiple goroutines concurrently; distinct
// States share nothing.
type State struct {
	params     *Params
	h          [8]uint64
	buf        [BlockBytes]byte
	buflen     int
	t0, t1     uint64
	lastNode   bool
	hashLength uint8
	finalized  bool
}

// NewState returns a State for p. A nil p selects DefaultParams.
func NewState(p *Params) *State {
	if p == nil {
		p = defaultParams
	}
	s := &State{}
	s.init(p)
	return s
}

// ready gives a zero State DefaultParams.
func (s *State) ready() {
	if s.params == nil {
		s.init(defaultParams)
	}
}

func (s *State) init(p *Params) {
	s.params = p
	s.h = p.h0
	s.t0, s.t1 = 0, 0
	s.buflen = 0
	if p.hasKeyBlock {
		s.buf = p.keyBlock
		s.buflen = BlockBytes
	}
	s.lastNode = p.lastNode
	s.hashLength = p.hashLength
	s.finalized = false
}

// Update absorbs data. It accepts any length, including zero.
func (s *State) Update(data []byte) error {
	if s.finalized {
		return blake2simd.StateError("update after finalize")
	}
	s.ready()
	s.update(data)
	return nil
}

// Write implements io.Writer. It fails only after Finalize.
func (s *State) Write(data []byte) (int, error) {
	if err := s.Update(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (s *State) update(data []byte) {
	if len(data) == 0 {
		return
	}
	// A full buffer stays buffered until more input shows it is not the
	// last block.
	if s.buflen > 0 {
		n := copy(s.buf[s.buflen:], data)
		s.buflen += n
		data = data[n:]
		if len(data) == 0 {
			return
		}
		s.compressBlock(&s.buf)
		s.buflen = 0
	}
	for len(data) > BlockBytes {
		s.compressBlock((*[BlockBytes]byte)(data[:BlockBytes]))
		data = data[BlockBytes:]
	}
	s.buflen = copy(s.buf[:], data)
}

func (s *State) compressBlock(block *[BlockBytes]byte) {
	s.t0 += BlockBytes
	if s.t0 < BlockBytes {
		s.t1++
	}
	compressPortable(&s.h, block, s.t0, s.t1, 0, 0)
}

// Finalize pads the buffered input, compresses the last block, and returns
// the digest. The State is consumed: calling Finalize again fails.
func (s *State) Finalize() (Hash, error) {
	if s.finalized {
		return Hash{}, blake2simd.StateError("finalize called twice")
	}
	s.ready()
	s.finalized = true
	return s.finalize(), nil
}

func (s *State) finalize() Hash {
	h := s.finalizeWords()
	return newHash(&h, s.hashLength)
}

// finalizeWords returns the final chaining state without modifying s.
func (s *State) finalizeWords() [8]uint64 {
	t0 := s.t0 + uint64(s.buflen)
	t1 := s.t1
	if t0 < s.t0 {
		t1++
	}

	var block [BlockBytes]byte
	copy(block[:], s.buf[:s.buflen])

	var f1 uint64
	if s.lastNode {
		f1 = lastFlag
	}

	h := s.h
	compressPortable(&h, &block, t0, t1, lastFlag, f1)
	return h
}

// SetLastNode sets or clears the last-node flag used at finalization.
func (s *State) SetLastNode(last bool) error {
	if s.finalized {
		return blake2simd.StateError("set last node after finalize")
	}
	s.ready()
	s.lastNode = last
	return nil
}

// Count returns the number of input bytes absorbed so far, excluding the
// key block (low 64 bits of the counter).
func (s *State) Count() uint64 {
	s.ready()
	n := s.t0 + uint64(s.buflen)
	if s.params.hasKeyBlock {
		n -= BlockBytes
	}
	return n
}

// Sum appends the digest of the input absorbed so far to b. Unlike
// Finalize it does not consume the State.
func (s *State) Sum(b []byte) []byte {
	s.ready()
	digest := s.finalize()
	return append(b, digest.Bytes()...)
}

// Reset returns the State to its initial configuration.
func (s *State) Reset() {
	if s.params == nil {
		s.params = defaultParams
	}
	s.init(s.params)
}

// Size returns the digest length in bytes.
func (s *State) Size() int {
	s.ready()
	return int(s.hashLength)
}

// BlockSize returns the compression block size.
func (s *State) BlockSize() int { return BlockBytes }

// IsFinalized reports whether Finalize has been called.
func (s *State) IsFinalized() bool { return s.finalized }
