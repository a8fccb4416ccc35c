package blake2s

import (
	"encoding/binary"
	"math"

	blake2simd "github.com/kobigurk/blake2-simd"
	"github.com/kobigurk/blake2-simd/internal/conv"
)

// Builder is an immutable fluent builder for Params.
// Each method returns a new builder with the updated configuration;
// nothing is validated until Build.
//
// Example:
//
//	params, err := blake2s.NewParams().
//	    HashLength(32).
//	    Key(key).
//	    Personal([]byte("my-app")).
//	    Build()
type Builder struct {
	hashLength      int
	key             []byte
	salt            []byte
	personal        []byte
	fanout          uint8
	maxDepth        uint8
	maxLeafLength   int
	nodeOffset      uint64
	nodeDepth       uint8
	innerHashLength int
	lastNode        bool
	portable        bool
}

// NewParams returns a builder for the default sequential configuration:
// a 32-byte unkeyed digest with fanout 1 and depth 1.
func NewParams() Builder {
	return Builder{
		hashLength: OutBytes,
		fanout:     1,
		maxDepth:   1,
	}
}

// HashLength sets the digest length in bytes (1..=OutBytes).
func (b Builder) HashLength(n int) Builder {
	b.hashLength = n
	return b
}

// Key sets the MAC key (0..=KeyBytes). An empty key means unkeyed.
// The key is copied.
func (b Builder) Key(key []byte) Builder {
	b.key = append([]byte(nil), key...)
	return b
}

// Salt sets the salt (0..=SaltBytes), zero-padded. The salt is copied.
func (b Builder) Salt(salt []byte) Builder {
	b.salt = append([]byte(nil), salt...)
	return b
}

// Personal sets the personalization string (0..=PersonalBytes),
// zero-padded. The string is copied.
func (b Builder) Personal(personal []byte) Builder {
	b.personal = append([]byte(nil), personal...)
	return b
}

// Fanout sets the tree fanout. 0 means unlimited, 1 means sequential.
func (b Builder) Fanout(fanout uint8) Builder {
	b.fanout = fanout
	return b
}

// MaxDepth sets the maximal tree depth (1..=255).
func (b Builder) MaxDepth(depth uint8) Builder {
	b.maxDepth = depth
	return b
}

// MaxLeafLength sets the leaf length in bytes. 0 means unlimited.
func (b Builder) MaxLeafLength(n int) Builder {
	b.maxLeafLength = n
	return b
}

// NodeOffset sets the position of the node within its tree level
// (0..=MaxNodeOffset).
func (b Builder) NodeOffset(offset uint64) Builder {
	b.nodeOffset = offset
	return b
}

// NodeDepth sets the depth of the node; leaves are at depth 0.
func (b Builder) NodeDepth(depth uint8) Builder {
	b.nodeDepth = depth
	return b
}

// InnerHashLength sets the length of the digests passed from leaves to
// their parents (0..=OutBytes).
func (b Builder) InnerHashLength(n int) Builder {
	b.innerHashLength = n
	return b
}

// LastNode marks the node as the last one of its level.
func (b Builder) LastNode(last bool) Builder {
	b.lastNode = last
	return b
}

// ForcePortable pins every state, job, and tree built from these Params to
// the portable compression function regardless of the detected CPU. It
// exists for differential testing and benchmarking.
func (b Builder) ForcePortable() Builder {
	b.portable = true
	return b
}

// Build validates the configuration and returns immutable Params.
// Out-of-range fields fail with an error matching
// blake2simd.ErrInvalidParameter.
func (b Builder) Build() (*Params, error) {
	hashLength, err := conv.IntToUint8(b.hashLength)
	if err != nil || hashLength < 1 || hashLength > OutBytes {
		return nil, blake2simd.NewParameterRangeError("hash_length", int64(b.hashLength), 1, OutBytes, err)
	}
	if len(b.key) > KeyBytes {
		return nil, blake2simd.NewParameterRangeError("key_length", int64(len(b.key)), 0, KeyBytes, nil)
	}
	if len(b.salt) > SaltBytes {
		return nil, blake2simd.NewParameterRangeError("salt_length", int64(len(b.salt)), 0, SaltBytes, nil)
	}
	if len(b.personal) > PersonalBytes {
		return nil, blake2simd.NewParameterRangeError("personal_length", int64(len(b.personal)), 0, PersonalBytes, nil)
	}
	if b.maxDepth == 0 {
		return nil, blake2simd.NewParameterRangeError("max_depth", 0, 1, math.MaxUint8, nil)
	}
	if b.innerHashLength < 0 || b.innerHashLength > OutBytes {
		return nil, blake2simd.NewParameterRangeError("inner_hash_length", int64(b.innerHashLength), 0, OutBytes, nil)
	}
	if b.nodeOffset > MaxNodeOffset {
		value, err := conv.Uint64ToInt64(b.nodeOffset)
		return nil, blake2simd.NewParameterRangeError("node_offset", value, 0, MaxNodeOffset, err)
	}
	leafLength, err := conv.IntToUint32(b.maxLeafLength)
	if err != nil {
		return nil, blake2simd.NewParameterRangeError("max_leaf_length", int64(b.maxLeafLength), 0, math.MaxUint32, err)
	}

	p := &Params{
		hashLength:      hashLength,
		keyLength:       uint8(len(b.key)),
		hasKeyBlock:     len(b.key) > 0,
		fanout:          b.fanout,
		maxDepth:        b.maxDepth,
		maxLeafLength:   leafLength,
		nodeOffset:      b.nodeOffset,
		nodeDepth:       b.nodeDepth,
		innerHashLength: uint8(b.innerHashLength),
		lastNode:        b.lastNode,
		portable:        b.portable,
	}
	copy(p.keyBlock[:], b.key)
	copy(p.salt[:], b.salt)
	copy(p.personal[:], b.personal)
	p.initWords()
	return p, nil
}

// Params is an immutable BLAKE2s parameter block. It is safe to share
// between goroutines and to reuse for any number of states and jobs.
type Params struct {
	hashLength      uint8
	keyLength       uint8
	hasKeyBlock     bool
	keyBlock        [BlockBytes]byte
	salt            [SaltBytes]byte
	personal        [PersonalBytes]byte
	fanout          uint8
	maxDepth        uint8
	maxLeafLength   uint32
	nodeOffset      uint64
	nodeDepth       uint8
	innerHashLength uint8
	lastNode        bool
	portable        bool

	// h0 is the IV XOR the parameter block words.
	h0 [8]uint32
}

var defaultParams = mustDefault(NewParams())

func mustDefault(b Builder) *Params {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultParams returns the default sequential Params (32-byte digest,
// unkeyed).
func DefaultParams() *Params {
	return defaultParams
}

func (p *Params) initWords() {
	var block [32]byte
	block[0] = p.hashLength
	block[1] = p.keyLength
	block[2] = p.fanout
	block[3] = p.maxDepth
	binary.LittleEndian.PutUint32(block[4:], p.maxLeafLength)
	// 48-bit node offset
	binary.LittleEndian.PutUint32(block[8:], uint32(p.nodeOffset))
	binary.LittleEndian.PutUint16(block[12:], uint16(p.nodeOffset>>32))
	block[14] = p.nodeDepth
	block[15] = p.innerHashLength
	copy(block[16:], p.salt[:])
	copy(block[24:], p.personal[:])

	for i := range p.h0 {
		p.h0[i] = iv[i] ^ binary.LittleEndian.Uint32(block[i*4:])
	}
}

// derive returns a copy of p modified by fn with its initial state
// recomputed. Used for the per-node parameters of tree hashing.
func (p *Params) derive(fn func(q *Params)) *Params {
	q := *p
	fn(&q)
	q.initWords()
	return &q
}

// Hash computes the digest of data with these parameters.
func (p *Params) Hash(data []byte) Hash {
	var s State
	s.init(p)
	s.update(data)
	return s.finalize()
}

// NewState returns an incremental state for these parameters.
func (p *Params) NewState() *State {
	return NewState(p)
}

// HashLength returns the digest length in bytes.
func (p *Params) HashLength() int { return int(p.hashLength) }

// KeyLength returns the key length in bytes.
func (p *Params) KeyLength() int { return int(p.keyLength) }

// Fanout returns the tree fanout.
func (p *Params) Fanout() uint8 { return p.fanout }

// MaxDepth returns the maximal tree depth.
func (p *Params) MaxDepth() uint8 { return p.maxDepth }

// MaxLeafLength returns the leaf length in bytes.
func (p *Params) MaxLeafLength() uint32 { return p.maxLeafLength }

// NodeOffset returns the node offset.
func (p *Params) NodeOffset() uint64 { return p.nodeOffset }

// NodeDepth returns the node depth.
func (p *Params) NodeDepth() uint8 { return p.nodeDepth }

// InnerHashLength returns the inner digest length.
func (p *Params) InnerHashLength() int { return int(p.innerHashLength) }

// IsLastNode reports whether the last-node flag is set.
func (p *Params) IsLastNode() bool { return p.lastNode }

// IsPortable reports whether the portable implementation is forced.
func (p *Params) IsPortable() bool { return p.portable }
