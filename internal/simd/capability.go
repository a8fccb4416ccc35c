package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride names the environment variable that pins the active ISA.
const EnvOverride = "BLAKE2_SIMD"

// ISA identifies the vector extension the lane tiers are sized for.
type ISA uint8

const (
	Generic ISA = iota // no lane kernel; HashMany runs jobs one at a time
	SSE41              // 128-bit
	AVX2               // 256-bit
	AVX512             // 512-bit, F+VL
	NEON               // 128-bit ARM64 ASIMD
)

// String returns the name BLAKE2_SIMD accepts for i.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE41:
		return "sse41"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseISA parses a BLAKE2_SIMD value. Case and surrounding space are
// ignored, and "portable" is an alias for generic.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "portable":
		return Generic, true
	case "sse41", "sse4.1":
		return SSE41, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	case "neon":
		return NEON, true
	default:
		return Generic, false
	}
}

// Detection runs once from the per-arch init; everything below is read-only
// afterwards.
var (
	activeISA   ISA
	hasOverride bool

	hasSSE41    bool
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512VL bool // the 64-bit lane rotations need VL as well as F
	hasASIMD    bool
)

// initCapabilities settles the ISA once the feature flags are known.
func initCapabilities() {
	activeISA, hasOverride = resolveISA(os.Getenv(EnvOverride))
}

// resolveISA applies an override string on top of auto-detection.
// An unknown or unavailable override falls back to the best detected ISA.
func resolveISA(override string) (ISA, bool) {
	if override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			return isa, true
		}
	}
	return selectBestISA(), false
}

// isISAAvailable reports whether the lane kernels for isa can run here.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE41:
		return hasSSE41
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512VL
	case NEON:
		return hasASIMD
	default:
		return false
	}
}

// selectBestISA picks the ISA with the widest lane tiers.
func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasASIMD {
			return NEON
		}
		return Generic
	case "amd64":
		return selectBestAMD64()
	default:
		return Generic
	}
}

func selectBestAMD64() ISA {
	if hasAVX512F && hasAVX512VL {
		return AVX512
	}
	if hasAVX2 {
		return AVX2
	}
	if hasSSE41 {
		return SSE41
	}
	return Generic
}

// ActiveISA returns the ISA the hash packages size their lane tiers for.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether BLAKE2_SIMD chose ActiveISA.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE41, HasAVX2, HasAVX512 and HasASIMD expose the raw detection
// result, independent of any BLAKE2_SIMD override.
func HasSSE41() bool { return hasSSE41 }

func HasAVX2() bool { return hasAVX2 }

// HasAVX512 requires both AVX-512 F and VL.
func HasAVX512() bool { return hasAVX512F && hasAVX512VL }

func HasASIMD() bool { return hasASIMD }
