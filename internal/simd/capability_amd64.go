//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasSSE41 = cpu.X86.HasSSE41
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512F = cpu.X86.HasAVX512F
	hasAVX512VL = cpu.X86.HasAVX512VL
	initCapabilities()
}
