package simd

// MaxLanes64 and MaxLanes32 bound the lane widths any ISA may report.
const (
	MaxLanes64 = 8
	MaxLanes32 = 16
)

// LaneTiers returns the lane widths usable for wordBits-wide words on isa,
// widest first. Generic returns nil: batching degrades to one job at a time.
//
//	isa       64-bit     32-bit
//	sse41     2          4
//	neon      2          4
//	avx2      4 2        8 4
//	avx512    8 4 2      16 8 4
func LaneTiers(isa ISA, wordBits int) []int {
	var vectorBits int
	switch isa {
	case SSE41, NEON:
		vectorBits = 128
	case AVX2:
		vectorBits = 256
	case AVX512:
		vectorBits = 512
	default:
		return nil
	}

	widest := vectorBits / wordBits
	var tiers []int
	for w := widest; w >= 2 && w*wordBits >= 128; w /= 2 {
		tiers = append(tiers, w)
	}
	return tiers
}

// Degree returns the widest lane width for wordBits-wide words on isa,
// or 1 when the ISA has no lanes.
func Degree(isa ISA, wordBits int) int {
	tiers := LaneTiers(isa, wordBits)
	if len(tiers) == 0 {
		return 1
	}
	return tiers[0]
}
