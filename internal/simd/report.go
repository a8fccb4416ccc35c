package simd

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Report describes the detected CPU and the dispatch decision.
type Report struct {
	GOOS       string
	GOARCH     string
	ISA        ISA
	Overridden bool
	Brand      string
	Vendor     string
	CacheLine  int
	Features   []string
}

// Describe returns a Report for the running process.
func Describe() Report {
	return Report{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		ISA:        activeISA,
		Overridden: hasOverride,
		Brand:      cpuid.CPU.BrandName,
		Vendor:     cpuid.CPU.VendorString,
		CacheLine:  cpuid.CPU.CacheLine,
		Features:   cpuid.CPU.FeatureSet(),
	}
}
