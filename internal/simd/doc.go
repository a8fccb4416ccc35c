// Package simd detects the vector capabilities of the running CPU.
//
// # Supported Platforms
//
//   - x86-64: AVX-512 (F+VL), AVX2, SSE4.1
//   - ARM64: NEON
//
// Detection runs once in a platform-specific init and is read-only
// afterwards. Set BLAKE2_SIMD=generic (or sse41, avx2, avx512, neon) to pin
// the active ISA; an override the CPU cannot honor is ignored.
//
// # Lanes
//
// LaneTiers reports how many independent hash states fit side by side in
// one vector register for a given word size. The batch scheduler groups
// jobs into cohorts of those widths.
package simd
