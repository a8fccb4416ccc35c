// Package blake2simd is the shared runtime of a BLAKE2 engine with
// CPU-dispatched compression and batched multi-lane hashing.
//
// The hash functions live in two sub-packages:
//
//   - blake2b: 64-bit words, 128-byte blocks, digests up to 64 bytes,
//     BLAKE2bp with 4 leaves.
//   - blake2s: 32-bit words, 64-byte blocks, digests up to 32 bytes,
//     BLAKE2sp with 8 leaves.
//
// This package holds what both families share: the error values, the
// process-wide logger, and the capability report.
//
// # Quick Start
//
//	sum := blake2b.Sum(data)
//	fmt.Println(sum.Hex())
//
//	params, err := blake2b.NewParams().HashLength(32).Key(key).Build()
//	if err != nil {
//	    return err
//	}
//	mac := params.Hash(msg)
//
// # Batching
//
// HashMany hashes many independent inputs at once. Jobs are grouped into
// cohorts as wide as the vector unit allows and every lane of a cohort
// advances one block per step:
//
//	jobs := make([]*blake2b.Job, len(inputs))
//	for i, in := range inputs {
//	    jobs[i] = blake2b.NewJob(params, in)
//	}
//	blake2b.HashMany(jobs)
//
// # Dispatch
//
// CPU features are detected once per process. The selection can be pinned
// with the BLAKE2_SIMD environment variable (generic, sse41, avx2, avx512,
// neon); an unknown or unsupported value falls back to auto-detection.
// DetectedCapabilities reports the result.
//
// # Errors
//
// Invalid parameters fail Build with an error matching ErrInvalidParameter;
// misuse of a finalized state or an unprocessed job fails with
// ErrInvalidState. Use errors.Is:
//
//	if errors.Is(err, blake2simd.ErrInvalidParameter) {
//	    // ...
//	}
//
// # Logging
//
// Logging is off by default. Install a logger to see dispatch decisions
// and, at debug level, batch plans and tree shapes:
//
//	blake2simd.SetLogger(blake2simd.NewTextLogger(slog.LevelDebug))
package blake2simd
