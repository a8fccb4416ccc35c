package blake2b

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kobigurk/blake2-simd/testutil"
)

type compressCase struct {
	h              [8]uint64
	block          [BlockBytes]byte
	t0, t1, f0, f1 uint64
}

func randomCompressCase(rng *testutil.RNG) compressCase {
	var c compressCase
	for i := range c.h {
		c.h[i] = rng.Uint64()
	}
	rng.Fill(c.block[:])
	c.t0 = rng.Uint64()
	c.t1 = rng.Uint64()
	if rng.Intn(2) == 1 {
		c.f0 = lastFlag
		if rng.Intn(2) == 1 {
			c.f1 = lastFlag
		}
	}
	return c
}

func TestCompressLanesMatchesPortable(t *testing.T) {
	rng := testutil.NewRNG(2)
	for width := 1; width <= maxLanes; width++ {
		cases := make([]compressCase, width)
		var l lanes
		l.width = width
		for i := range cases {
			cases[i] = randomCompressCase(rng)
			c := &cases[i]
			l.setLane(i, &c.h)
			l.blocks[i] = &c.block
			l.t0[i], l.t1[i], l.f0[i], l.f1[i] = c.t0, c.t1, c.f0, c.f1
		}

		compressLanes(&l)

		for i := range cases {
			c := &cases[i]
			want := c.h
			compressPortable(&want, &c.block, c.t0, c.t1, c.f0, c.f1)
			assert.Equal(t, want, l.lane(i), "width %d lane %d", width, i)
		}
	}
}

func TestCompressZeroBlockKnownState(t *testing.T) {
	// The empty-input digest is one compression of a zero block from the
	// default initial state.
	want := Sum(nil).Bytes()

	t.Run("portable", func(t *testing.T) {
		h := defaultParams.h0
		compressPortable(&h, &zeroBlock, 0, 0, lastFlag, 0)
		assert.Equal(t, want, newHash(&h, OutBytes).Bytes())
	})

	t.Run("lanes", func(t *testing.T) {
		var l lanes
		l.width = maxLanes
		for i := 0; i < maxLanes; i++ {
			l.setLane(i, &defaultParams.h0)
			l.blocks[i] = &zeroBlock
			l.f0[i] = lastFlag
		}
		compressLanes(&l)
		for i := 0; i < maxLanes; i++ {
			h := l.lane(i)
			assert.Equal(t, want, newHash(&h, OutBytes).Bytes(), "lane %d", i)
		}
	})
}
