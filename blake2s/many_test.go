package blake2s

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	blake2simd "github.com/kobigurk/blake2-simd"
	"github.com/kobigurk/blake2-simd/testutil"
)

// mixedJobs returns n jobs with varied parameters and input lengths,
// including empty inputs and inputs ending exactly on a block boundary.
func mixedJobs(t testing.TB, rng *testutil.RNG, n int) []*Job {
	t.Helper()
	lengths := []int{0, 1, BlockBytes - 1, BlockBytes, BlockBytes + 1, 2 * BlockBytes, 1000}
	builders := []Builder{
		NewParams(),
		NewParams().HashLength(32),
		NewParams().Key([]byte("batch key")),
		NewParams().Key(rng.Bytes(KeyBytes)).HashLength(20).Salt([]byte("salt")),
		NewParams().Personal([]byte("person")).LastNode(true),
		NewParams().Fanout(0).MaxDepth(3).NodeOffset(9).NodeDepth(2).InnerHashLength(16),
	}

	jobs := make([]*Job, n)
	for i := range jobs {
		length := lengths[rng.Intn(len(lengths))]
		if rng.Intn(3) == 0 {
			length = rng.Intn(5 * BlockBytes)
		}
		p := mustBuild(t, builders[rng.Intn(len(builders))])
		jobs[i] = NewJob(p, rng.Bytes(length))
	}
	return jobs
}

func assertJobsMatchOneShot(t *testing.T, jobs []*Job) {
	t.Helper()
	for i, j := range jobs {
		got, err := j.Hash()
		require.NoError(t, err, "job %d", i)
		assert.Equal(t, j.params.Hash(j.src.data), got, "job %d len %d", i, len(j.src.data))
	}
}

func TestHashManyMatchesOneShot(t *testing.T) {
	rng := testutil.NewRNG(5)
	for n := 0; n <= 20; n++ {
		t.Run(fmt.Sprintf("jobs=%d", n), func(t *testing.T) {
			jobs := mixedJobs(t, rng, n)
			HashMany(jobs)
			assertJobsMatchOneShot(t, jobs)
		})
	}
}

func TestHashManyEveryTierSet(t *testing.T) {
	tierSets := [][]int{
		nil,
		{2},
		{4, 2},
		{16, 8, 4},
		{8, 4, 2},
		{8},
		{3},
		{7, 5},
	}

	rng := testutil.NewRNG(6)
	for _, tiers := range tierSets {
		for _, n := range []int{1, 2, 3, 5, 8, 9, 15, 17} {
			t.Run(fmt.Sprintf("tiers=%v/jobs=%d", tiers, n), func(t *testing.T) {
				jobs := mixedJobs(t, rng, n)
				hashMany(jobs, tiers)
				assertJobsMatchOneShot(t, jobs)
			})
		}
	}
}

func TestHashManyLongAndShortInOneCohort(t *testing.T) {
	rng := testutil.NewRNG(7)
	jobs := []*Job{
		NewJob(nil, rng.Bytes(10*BlockBytes)),
		NewJob(nil, nil),
		NewJob(mustBuild(t, NewParams().Key([]byte("k"))), nil),
		NewJob(nil, rng.Bytes(BlockBytes)),
	}
	hashMany(jobs, []int{4})
	assertJobsMatchOneShot(t, jobs)
}

func TestHashManyPortableJobs(t *testing.T) {
	rng := testutil.NewRNG(8)
	portable := mustBuild(t, NewParams().ForcePortable())
	jobs := []*Job{
		NewJob(portable, rng.Bytes(300)),
		NewJob(nil, rng.Bytes(300)),
		NewJob(portable, nil),
		NewJob(nil, rng.Bytes(1)),
		NewJob(nil, rng.Bytes(129)),
	}
	hashMany(jobs, []int{2})
	assertJobsMatchOneShot(t, jobs)
}

func TestHashManySkipsNil(t *testing.T) {
	job := NewJob(nil, []byte("abc"))
	HashMany([]*Job{nil, job, nil})

	got, err := job.Hash()
	require.NoError(t, err)
	assert.Equal(t, Sum([]byte("abc")), got)

	HashMany(nil)
}

func TestJobHashBeforeHashMany(t *testing.T) {
	job := NewJob(nil, []byte("abc"))
	_, err := job.Hash()
	assert.ErrorIs(t, err, blake2simd.ErrInvalidState)
	assert.Same(t, DefaultParams(), job.Params())
}

func TestJobRehash(t *testing.T) {
	data := []byte("first")
	job := NewJob(nil, data)
	HashMany([]*Job{job})
	first, err := job.Hash()
	require.NoError(t, err)

	copy(data, "other")
	HashMany([]*Job{job})
	second, err := job.Hash()
	require.NoError(t, err)

	assert.Equal(t, Sum([]byte("first")), first)
	assert.Equal(t, Sum([]byte("other")), second)
}

func TestDegree(t *testing.T) {
	d := Degree()
	assert.GreaterOrEqual(t, d, 1)
	assert.LessOrEqual(t, d, maxLanes)
	if len(laneTiers) > 0 {
		assert.Equal(t, laneTiers[0], d)
	}
}

func TestIndependentStatesConcurrently(t *testing.T) {
	rng := testutil.NewRNG(9)
	inputs := make([][]byte, 16)
	want := make([]Hash, len(inputs))
	for i := range inputs {
		inputs[i] = rng.Bytes(rng.Intn(4000))
		want[i] = Sum(inputs[i])
	}

	got := make([]Hash, len(inputs))
	batches := make([][]Hash, 4)

	var g errgroup.Group
	for i := range inputs {
		g.Go(func() error {
			s := NewState(nil)
			for off := 0; off < len(inputs[i]); off += 100 {
				if err := s.Update(inputs[i][off:min(off+100, len(inputs[i]))]); err != nil {
					return err
				}
			}
			h, err := s.Finalize()
			got[i] = h
			return err
		})
	}
	for b := range batches {
		g.Go(func() error {
			jobs := make([]*Job, len(inputs))
			for i, in := range inputs {
				jobs[i] = NewJob(nil, in)
			}
			HashMany(jobs)
			batches[b] = make([]Hash, len(jobs))
			for i, j := range jobs {
				h, err := j.Hash()
				if err != nil {
					return err
				}
				batches[b][i] = h
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, want, got)
	for _, batch := range batches {
		assert.Equal(t, want, batch)
	}
}

func TestHashManyZeroJob(t *testing.T) {
	zero := &Job{}
	other := NewJob(nil, []byte("beside a zero job"))

	HashMany([]*Job{zero, other})

	got, err := zero.Hash()
	require.NoError(t, err)
	assert.Equal(t, Sum(nil), got)
	assert.Same(t, DefaultParams(), zero.Params())

	got, err = other.Hash()
	require.NoError(t, err)
	assert.Equal(t, Sum([]byte("beside a zero job")), got)
}
