package blake2s

import (
	blake2simd "github.com/kobigurk/blake2-simd"
)

// TreeHash hashes input as a two-level tree.
//
// The input is split into consecutive leaves of MaxLeafLength bytes (a
// length of 0 makes the whole input a single leaf, and an empty input is one
// empty leaf). Leaf i is hashed with node offset i, node depth 0, and a
// digest of InnerHashLength bytes (OutBytes when unset); the final leaf
// carries the last-node flag. The leaf digests, concatenated in order, are
// hashed as the root at node depth 1 with the last-node flag and the
// configured digest length. Leaves are computed with HashMany.
func (p *Params) TreeHash(input []byte) Hash {
	inner := p.innerHashLength
	if inner == 0 {
		inner = OutBytes
	}

	leafLength := int(p.maxLeafLength)
	count := 1
	if leafLength > 0 && len(input) > 0 {
		count = (len(input) + leafLength - 1) / leafLength
	} else {
		leafLength = len(input)
	}

	jobs := make([]*Job, count)
	for i := range jobs {
		start := i * leafLength
		end := min(start+leafLength, len(input))
		leaf := p.derive(func(q *Params) {
			q.hashLength = inner
			q.innerHashLength = inner
			q.nodeOffset = uint64(i)
			q.nodeDepth = 0
			q.lastNode = i == count-1
		})
		jobs[i] = NewJob(leaf, input[start:end])
	}
	HashMany(jobs)

	root := p.derive(func(q *Params) {
		q.innerHashLength = inner
		q.nodeOffset = 0
		q.nodeDepth = 1
		q.lastNode = true
	})
	var s State
	s.init(root)
	for _, j := range jobs {
		s.update(j.hash.Bytes())
	}

	if log := blake2simd.DefaultLogger(); log.DebugEnabled() {
		log.WithFamily(family).LogTree(len(input), count, leafLength)
	}
	return s.finalize()
}
