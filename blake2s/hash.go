package blake2s

import (
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
)

// Hash is a BLAKE2s digest of 1..=OutBytes bytes.
// The zero value is an empty digest.
type Hash struct {
	bytes [OutBytes]byte
	len   uint8
}

func newHash(h *[8]uint32, length uint8) Hash {
	out := Hash{len: length}
	out.bytes = wordsToBytes(h)
	clear(out.bytes[length:])
	return out
}

// wordsToBytes serializes a chaining state little-endian.
func wordsToBytes(h *[8]uint32) [OutBytes]byte {
	var out [OutBytes]byte
	for i, w := range h {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

func (h Hash) Bytes() []byte {
	return h.bytes[:h.len]
}

func (h Hash) Len() int {
	return int(h.len)
}

// Hex returns the lowercase hexadecimal encoding of the digest.
func (h Hash) Hex() string {
	return hex.EncodeToString(h.bytes[:h.len])
}

func (h Hash) String() string {
	return h.Hex()
}

// Equal compares two digests in constant time.
func (h Hash) Equal(other Hash) bool {
	return h.EqualBytes(other.bytes[:other.len])
}

// EqualBytes compares the digest with b in constant time.
func (h Hash) EqualBytes(b []byte) bool {
	return subtle.ConstantTimeCompare(h.bytes[:h.len], b) == 1
}
