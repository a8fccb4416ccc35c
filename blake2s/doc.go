// Package blake2s implements the BLAKE2s hash function and its tree modes.
//
// BLAKE2s works on 32-bit words and 64-byte blocks and produces digests of
// 1 to 32 bytes. It is the member of the family suited to 32-bit platforms
// and short messages. The API mirrors package blake2b: Sum, Params, State,
// HashMany, BLAKE2sp through SumParallel, and Params.TreeHash.
//
// Lane-parallel batching packs twice as many BLAKE2s jobs into a vector as
// BLAKE2b jobs, up to 16 on AVX-512.
package blake2s
