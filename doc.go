// Package qcmdpc implements the iterative bit-flipping decoder for
// Quasi-Cyclic Moderate Density Parity Check (QC-MDPC) codes used by
// code-based post-quantum key-encapsulation schemes.
//
// Given a random sparse parity-check matrix H (two circulant blocks) and a
// random low-weight error vector e, Decoder recovers e from its syndrome
// s = H·eᵀ over GF(2) by repeatedly computing per-bit counters, picking a
// threshold from a binomial model of the syndrome (see ComputeThreshold),
// flipping bits whose counter clears the threshold, and revoking weak
// flips once their time-to-live expires (see FlipList).
//
// The package is oblivious to how H and e are produced or consumed: callers
// supply both (see RandomParityCheck/RandomError for PRNG-backed helpers)
// and read back only success/failure and the iteration count. It keeps no
// persisted state; its only I/O is Recorder, which logs reports to the
// io.Writer it is given.
package qcmdpc
