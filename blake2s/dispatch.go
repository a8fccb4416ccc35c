package blake2s

import (
	"sync"

	blake2simd "github.com/kobigurk/blake2-simd"
	"github.com/kobigurk/blake2-simd/internal/simd"
)

const family = "blake2s"

// singleKernel names the compression function State and single-job spans
// run. Only HashMany cohorts reach the lane kernel.
const singleKernel = "portable"

// Lane tiers - set once at init from the detected ISA.
// A generic CPU has none and HashMany runs every job single-stream.
var (
	laneTiers []int

	dispatchLogged sync.Once
)

func init() {
	laneTiers = simd.LaneTiers(simd.ActiveISA(), 32)
}

// logDispatch reports the kernel selection the first time HashMany runs.
func logDispatch() {
	dispatchLogged.Do(func() {
		blake2simd.DefaultLogger().WithFamily(family).
			LogDispatch(simd.ActiveISA().String(), singleKernel, laneTiers, simd.IsOverridden())
	})
}

// Degree returns the widest number of jobs HashMany advances together on
// this CPU, or 1 when no lane-parallel kernel is available.
func Degree() int {
	if len(laneTiers) == 0 {
		return 1
	}
	return laneTiers[0]
}
