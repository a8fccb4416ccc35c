// Package blake2b implements the BLAKE2b hash function and its tree modes.
//
// BLAKE2b works on 64-bit words and 128-byte blocks and produces digests of
// 1 to 64 bytes. The package offers:
//
//   - one-shot hashing with Sum or Params.Hash
//   - incremental hashing with State (also a hash.Hash)
//   - batched hashing of independent inputs with HashMany
//   - BLAKE2bp with SumParallel and ParallelParams
//   - generic two-level trees with Params.TreeHash
//
// # Dispatch
//
// State, Sum and Params.Hash hash one stream and always run the portable
// compression function. Lane widths are selected once per process from the
// CPU features detected by internal/simd: HashMany groups jobs into cohorts
// as wide as the vector unit allows (Degree reports the widest) and
// advances each cohort one block per lane per step. SumParallel and
// Params.TreeHash hash their leaves this way.
//
// Set BLAKE2_SIMD=generic to disable the lane kernel process-wide, or call
// Builder.ForcePortable to keep a single Params out of cohorts.
//
// All results are bit-identical regardless of the kernel that produced
// them.
package blake2b
