package blake2simd

import "github.com/kobigurk/blake2-simd/internal/simd"

// Capabilities describes the CPU and the implementation the hash packages
// dispatch to.
type Capabilities struct {
	ISA        string
	Overridden bool
	Lanes64    []int
	Lanes32    []int
	Brand      string
	Vendor     string
	CacheLine  int
	Features   []string
}

// DetectedCapabilities returns the process-wide capability snapshot. The
// result never changes during the life of the process.
func DetectedCapabilities() Capabilities {
	r := simd.Describe()
	return Capabilities{
		ISA:        r.ISA.String(),
		Overridden: r.Overridden,
		Lanes64:    simd.LaneTiers(r.ISA, 64),
		Lanes32:    simd.LaneTiers(r.ISA, 32),
		Brand:      r.Brand,
		Vendor:     r.Vendor,
		CacheLine:  r.CacheLine,
		Features:   r.Features,
	}
}
