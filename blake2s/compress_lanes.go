package blake2s

import (
	"encoding/binary"
	"math/bits"

	"github.com/kobigurk/blake2-simd/internal/simd"
)

const maxLanes = simd.MaxLanes32

// laneWords holds the same state word for every lane.
type laneWords [maxLanes]uint32

// lanes carries up to maxLanes independent chaining states in transposed
// layout (word-major, lane-minor) so one step advances all of them.
type lanes struct {
	width  int
	h      [8]laneWords
	t0, t1 laneWords
	f0, f1 laneWords
	blocks [maxLanes]*[BlockBytes]byte
}

// compressLanes compresses one block for each of the first width lanes.
// Every lane must have a non-nil block.
func compressLanes(l *lanes) {
	n := l.width

	var m [16]laneWords
	for lane := 0; lane < n; lane++ {
		block := l.blocks[lane]
		for i := 0; i < 16; i++ {
			m[i][lane] = binary.LittleEndian.Uint32(block[i*4:])
		}
	}

	var v [16]laneWords
	copy(v[:8], l.h[:])
	for lane := 0; lane < n; lane++ {
		v[8][lane] = iv[0]
		v[9][lane] = iv[1]
		v[10][lane] = iv[2]
		v[11][lane] = iv[3]
		v[12][lane] = iv[4] ^ l.t0[lane]
		v[13][lane] = iv[5] ^ l.t1[lane]
		v[14][lane] = iv[6] ^ l.f0[lane]
		v[15][lane] = iv[7] ^ l.f1[lane]
	}

	for r := 0; r < rounds; r++ {
		s := &sigma[r]
		gLanes(&v, 0, 4, 8, 12, &m[s[0]], &m[s[1]], n)
		gLanes(&v, 1, 5, 9, 13, &m[s[2]], &m[s[3]], n)
		gLanes(&v, 2, 6, 10, 14, &m[s[4]], &m[s[5]], n)
		gLanes(&v, 3, 7, 11, 15, &m[s[6]], &m[s[7]], n)
		gLanes(&v, 0, 5, 10, 15, &m[s[8]], &m[s[9]], n)
		gLanes(&v, 1, 6, 11, 12, &m[s[10]], &m[s[11]], n)
		gLanes(&v, 2, 7, 8, 13, &m[s[12]], &m[s[13]], n)
		gLanes(&v, 3, 4, 9, 14, &m[s[14]], &m[s[15]], n)
	}

	for i := 0; i < 8; i++ {
		for lane := 0; lane < n; lane++ {
			l.h[i][lane] ^= v[i][lane] ^ v[i+8][lane]
		}
	}
}

func gLanes(v *[16]laneWords, a, b, c, d int, x, y *laneWords, n int) {
	va, vb, vc, vd := &v[a], &v[b], &v[c], &v[d]
	for i := 0; i < n; i++ {
		va[i] += vb[i] + x[i]
		vd[i] = bits.RotateLeft32(vd[i]^va[i], -16)
		vc[i] += vd[i]
		vb[i] = bits.RotateLeft32(vb[i]^vc[i], -12)
		va[i] += vb[i] + y[i]
		vd[i] = bits.RotateLeft32(vd[i]^va[i], -8)
		vc[i] += vd[i]
		vb[i] = bits.RotateLeft32(vb[i]^vc[i], -7)
	}
}

// lane extracts the chaining state of one lane.
func (l *lanes) lane(i int) [8]uint32 {
	var h [8]uint32
	for w := range h {
		h[w] = l.h[w][i]
	}
	return h
}

// setLane loads a chaining state into one lane.
func (l *lanes) setLane(i int, h *[8]uint32) {
	for w := range h {
		l.h[w][i] = h[w]
	}
}
