// Package testutil provides testing utilities for the BLAKE2 packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for reproducible inputs and a
// benchmark input generator that varies the page offset of every call.
//
// # Deterministic Inputs
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(1000)
//
// # Benchmark Inputs
//
//	input := testutil.NewRandomInput(b, 1<<20)
//	for b.Loop() {
//	    blake2b.Sum(input.Get())
//	}
package testutil
