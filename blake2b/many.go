package blake2b

import (
	blake2simd "github.com/kobigurk/blake2-simd"
	"github.com/kobigurk/blake2-simd/internal/pool"
)

// Job is one independent hash computation submitted to HashMany.
//
// The job borrows its input; the caller must keep it unchanged until
// HashMany returns. A Job may be hashed again by a later HashMany call.
type Job struct {
	params *Params
	src    source
	done   bool
	words  [8]uint64
	hash   Hash
}

// NewJob returns a job hashing input with p. A nil p selects DefaultParams.
func NewJob(p *Params, input []byte) *Job {
	if p == nil {
		p = defaultParams
	}
	return &Job{
		params: p,
		src:    contiguous(input),
	}
}

// Hash returns the digest computed by HashMany.
func (j *Job) Hash() (Hash, error) {
	if !j.done {
		return Hash{}, blake2simd.StateError("job read before hash many")
	}
	return j.hash, nil
}

// Params returns the parameters of the job.
func (j *Job) Params() *Params { return j.params }

func (j *Job) finish(h *[8]uint64) {
	j.words = *h
	j.hash = newHash(h, j.params.hashLength)
	j.done = true
}

// source is the byte stream of a job. Block k of the stream starts at
// byte (first + k*stride) * BlockBytes of data. A contiguous input has
// first 0 and stride 1; BLAKE2bp leaves read every fourth block.
type source struct {
	data   []byte
	first  int
	stride int
	length int
}

func contiguous(data []byte) source {
	return source{data: data, stride: 1, length: len(data)}
}

// cursor walks the blocks of one job, key block first.
type cursor struct {
	job    *Job
	next   int
	blocks int
	t0, t1 uint64
}

func newCursor(j *Job) cursor {
	n := (j.src.length + BlockBytes - 1) / BlockBytes
	if j.params.hasKeyBlock {
		n++
	}
	if n == 0 {
		n = 1
	}
	return cursor{job: j, blocks: n}
}

// advance returns the next block, padding a short tail into scratch, and
// adds its byte count to the counter.
func (c *cursor) advance(scratch *[BlockBytes]byte) *[BlockBytes]byte {
	i := c.next
	c.next++

	block, n := c.block(i, scratch)
	c.t0 += uint64(n)
	if c.t0 < uint64(n) {
		c.t1++
	}
	return block
}

func (c *cursor) block(i int, scratch *[BlockBytes]byte) (*[BlockBytes]byte, int) {
	p := c.job.params
	if p.hasKeyBlock {
		if i == 0 {
			return &p.keyBlock, BlockBytes
		}
		i--
	}

	src := &c.job.src
	rem := src.length - i*BlockBytes
	if rem <= 0 {
		clear(scratch[:])
		return scratch, 0
	}
	pos := (src.first + i*src.stride) * BlockBytes
	if rem >= BlockBytes {
		return (*[BlockBytes]byte)(src.data[pos : pos+BlockBytes]), BlockBytes
	}
	clear(scratch[:])
	copy(scratch[:], src.data[pos:pos+rem])
	return scratch, rem
}

func (c *cursor) last() bool {
	return c.next == c.blocks
}

func (c *cursor) flags() (f0, f1 uint64) {
	if !c.last() {
		return 0, 0
	}
	if c.job.params.lastNode {
		return lastFlag, lastFlag
	}
	return lastFlag, 0
}

// runSingle hashes one job with the portable kernel.
func runSingle(j *Job) {
	var scratch [BlockBytes]byte
	h := j.params.h0
	c := newCursor(j)
	for c.next < c.blocks {
		block := c.advance(&scratch)
		f0, f1 := c.flags()
		compressPortable(&h, block, c.t0, c.t1, f0, f1)
	}
	j.finish(&h)
}

var zeroBlock [BlockBytes]byte

// hashCohort advances len(jobs) jobs together, one block per lane per step.
// Lanes whose job has finished compress a zero block until the longest job
// in the cohort is done.
func hashCohort(jobs []*Job) {
	var (
		l       lanes
		scratch [maxLanes][BlockBytes]byte
		cursors [maxLanes]cursor
	)
	l.width = len(jobs)

	steps := 0
	for i, j := range jobs {
		cursors[i] = newCursor(j)
		l.setLane(i, &j.params.h0)
		steps = max(steps, cursors[i].blocks)
	}

	for step := 0; step < steps; step++ {
		for i := range jobs {
			c := &cursors[i]
			if c.next >= c.blocks {
				l.blocks[i] = &zeroBlock
				continue
			}
			l.blocks[i] = c.advance(&scratch[i])
			l.t0[i], l.t1[i] = c.t0, c.t1
			l.f0[i], l.f1[i] = c.flags()
		}

		compressLanes(&l)

		for i, j := range jobs {
			c := &cursors[i]
			if c.last() && !j.done {
				h := l.lane(i)
				j.finish(&h)
			}
		}
	}
}

// HashMany computes every job's digest. Jobs are grouped into cohorts as
// wide as the CPU's lane-parallel kernel allows and stepped together;
// leftovers and jobs pinned to the portable implementation run one at a
// time. Each job's result equals the one-shot hash of its input. Nil
// entries are skipped; a zero Job hashes empty input with DefaultParams.
func HashMany(jobs []*Job) {
	hashMany(jobs, laneTiers)
}

func hashMany(jobs []*Job, tiers []int) {
	batch := pool.Get()
	defer pool.Put(batch)

	portable := 0
	for i, j := range jobs {
		if j == nil {
			continue
		}
		if j.params == nil {
			j.params = defaultParams
		}
		j.done = false
		if j.params.portable {
			runSingle(j)
			portable++
			continue
		}
		batch.Index = append(batch.Index, i)
	}
	if len(batch.Index) == 0 {
		return
	}

	logDispatch()
	plan := batch.Plan(tiers)
	single := 0
	var cohortJobs [maxLanes]*Job
	for _, span := range plan {
		if !span.Lanes() {
			runSingle(jobs[batch.Index[span.Start]])
			single++
			continue
		}
		members := cohortJobs[:span.Width]
		for k := range members {
			members[k] = jobs[batch.Index[span.Start+k]]
		}
		hashCohort(members)
	}

	if log := blake2simd.DefaultLogger(); log.DebugEnabled() {
		log.WithFamily(family).LogBatch(len(batch.Index)+portable, len(plan)-single, single, portable)
	}
}
