package qcmdpc

import (
	"errors"
	"fmt"
)

// ErrDecodeFailed is returned by DecodeTTL when maxIter iterations pass
// without the syndrome weight reaching Params.SyndromeStop().
var ErrDecodeFailed = errors.New("qcmdpc: decode failed to converge")

// Decoder holds one decoding instance's mutable state: the parity-check
// support (columns and their row reflections), the current error guess and
// its syndrome, the per-bit counters scratch space, and the flip list that
// tracks which bits are provisionally flipped and when each one's
// hypothesis expires. It performs no I/O and is not safe for concurrent use
// by multiple goroutines; run one Decoder per worker (see SPEC_FULL.md's
// concurrency model) and let each own its PRNG substream independently.
type Decoder struct {
	params Params
	n      int32 // Params.BlockLength, kept unexported to avoid aliasing drift

	columns [Index]SparseBlock
	rows    [Index]SparseBlock

	bits     DenseVector // Index*n, the current error-vector guess e
	syndrome DenseVector // n
	counters DenseVector // Index*n

	fl *FlipList // capacity Index*n, positions addressed as i*n+pos

	syndromeWeight int32
	iter           int

	recomputeThreshold bool
	threshold          int32
}

// NewDecoder allocates a Decoder for the given parameters. It does not yet
// hold a parity-check support; call SetSupport before InitError or
// DecodeTTL.
func NewDecoder(params Params) (*Decoder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	n := params.BlockLength
	d := &Decoder{
		params:   params,
		n:        n,
		bits:     NewDenseVector(int(Index * n)),
		syndrome: NewDenseVector(int(n)),
		counters: NewDenseVector(int(Index * n)),
		fl:       NewFlipList(Index * n),
	}
	return d, nil
}

// SetSupport installs the parity-check column support (one SparseBlock per
// circulant block, each of length Params.BlockWeight) and derives the
// corresponding row supports via ColumnsToRows. It resets any in-progress
// decode.
func (d *Decoder) SetSupport(columns [Index]SparseBlock) {
	var rows [Index]SparseBlock
	for i := 0; i < Index; i++ {
		if int32(len(columns[i])) != d.params.BlockWeight {
			panic(fmt.Sprintf("qcmdpc: column %d has weight %d, want %d", i, len(columns[i]), d.params.BlockWeight))
		}
		rows[i] = make(SparseBlock, d.params.BlockWeight)
	}
	ColumnsToRows(d.n, columns, rows)
	d.columns = columns
	d.rows = rows
	d.Reset()
}

// Reset clears the error guess, syndrome, counters and flip list, leaving
// the installed parity-check support untouched. InitError calls this
// itself, so callers only need it to discard an in-progress decode and
// retry with a fresh error vector under the same support.
func (d *Decoder) Reset() {
	d.bits.Zero(int(Index * d.n))
	d.syndrome.Zero(int(d.n))
	d.counters.Zero(int(Index * d.n))
	d.fl.Reset()
	d.syndromeWeight = 0
	d.iter = 0
	d.recomputeThreshold = true
	d.threshold = 0
}

// InitError computes the syndrome of an explicit error pattern
// (errorBlocks[i] lists the set-bit positions within block i, not
// necessarily sorted) and leaves the error guess all zero, so that DecodeTTL
// flips the guess towards the error pattern. The Decoder never generates
// its own error vector or parity-check support; see
// RandomError/RandomParityCheck for PRNG-backed construction of both.
func (d *Decoder) InitError(errorBlocks [Index]SparseBlock) {
	d.Reset()
	for i := 0; i < Index; i++ {
		block := d.bits[int32(i)*d.n : int32(i+1)*d.n]
		for _, pos := range errorBlocks[i] {
			block[pos] = 1
		}
	}
	d.computeSyndrome()
	d.bits.Zero(int(Index * d.n))
}

// InjectSyndromeError XORs an additional sparse pattern directly into the
// syndrome and re-derives its weight, implementing the Ouroboros variant's
// extra syndrome-side error (see Params.Ouroboros and Params.SyndromeStop).
// Callers are responsible for sampling extra at the weight their variant
// calls for (typically ErrorWeight/2); it does not have to be sorted.
func (d *Decoder) InjectSyndromeError(extra SparseBlock) {
	for _, pos := range extra {
		d.syndrome[pos] ^= 1
	}
	d.syndromeWeight = d.syndrome.PopCount(int(d.n))
	d.recomputeThreshold = true
}

// SyndromeWeight returns the current syndrome's Hamming weight.
func (d *Decoder) SyndromeWeight() int32 {
	return d.syndromeWeight
}

// Iterations returns the number of bit-flipping rounds run by the most
// recent DecodeTTL call.
func (d *Decoder) Iterations() int {
	return d.iter
}

// Error copies the current error guess for block i into dst, returning the
// number of bits written (Params.BlockLength). dst must have length >=
// Params.BlockLength.
func (d *Decoder) Error(i int, dst DenseVector) int {
	copy(dst, d.bits[int32(i)*d.n:int32(i+1)*d.n])
	return int(d.n)
}

func (d *Decoder) computeSyndrome() {
	d.syndrome.Zero(int(d.n))
	for i := 0; i < Index; i++ {
		MultiplyMod2(d.n, d.columns[i], d.bits[int32(i)*d.n:int32(i+1)*d.n], d.syndrome)
	}
	d.syndromeWeight = d.syndrome.PopCount(int(d.n))
}

func (d *Decoder) computeCounters() {
	for i := 0; i < Index; i++ {
		block := d.counters[int32(i)*d.n : int32(i+1)*d.n]
		block.Zero(int(d.n))
		Multiply(d.n, d.columns[i], d.syndrome, block)
	}
}

// computeTTL turns a bit's counter and the iteration's threshold into a
// time-to-live, matching the original's compute_ttl: a linear function of
// how far the counter cleared the threshold, clamped to [1, TTLSaturate].
func (d *Decoder) computeTTL(counter byte, threshold int32) int {
	delta := float64(int32(counter) - threshold)
	ttl := d.params.TTLCoeff0*delta + d.params.TTLCoeff1
	rounded := int(ttl + 0.5)
	if rounded < 1 {
		rounded = 1
	}
	if rounded > d.params.TTLSaturate {
		rounded = d.params.TTLSaturate
	}
	return rounded
}

// ringSize is the TTL ring buffer's modulus, one slot per possible TTL
// value plus the "just added" slot, matching the original's
// TTL_SATURATE+1 ring.
func (d *Decoder) ringSize() int {
	return d.params.TTLSaturate + 1
}

// flipBit toggles bit pos of block i in both the error guess and the
// syndrome, updates the syndrome weight incrementally from the pre-flip
// counter (matching the original's "weight += block_weight - 2*counter"
// update, cheaper than a full popcount per flip), and returns the
// position's flat index into the flip list (i*n+pos).
func (d *Decoder) flipBit(i int, pos int32) int32 {
	counter := SingleCounter(d.n, d.columns[i], pos, d.syndrome)
	d.bits[int32(i)*d.n+pos] ^= 1
	SingleFlip(d.n, d.columns[i], pos, d.syndrome)
	d.syndromeWeight += d.params.BlockWeight - 2*int32(counter)
	return int32(i)*d.n + pos
}

// DecodeTTL runs up to maxIter bit-flipping rounds: each round recomputes
// counters from the current syndrome, flips every bit whose counter meets
// or exceeds the current threshold (scheduling its revocation via the TTL
// ring, or immediately flipping it back if it was already flipped), and
// then expires any previously flipped bit whose time-of-death has arrived.
// It stops as soon as the syndrome weight reaches Params.SyndromeStop(), or
// after maxIter rounds without convergence.
//
// The threshold is only recomputed when the previous round actually
// flipped something (d.recomputeThreshold), matching the original's
// recompute_threshold flag: the binomial model only depends on the
// syndrome weight and the remaining-error estimate, neither of which moves
// on a round that changed nothing. The syndrome weight itself is maintained
// incrementally by flipBit rather than recomputed by popcount each round.
func (d *Decoder) DecodeTTL(maxIter int) (success bool, iterations int, err error) {
	if maxIter <= 0 {
		return false, 0, fmt.Errorf("qcmdpc: maxIter must be positive, got %d", maxIter)
	}

	stop := d.params.SyndromeStop()
	ring := d.ringSize()

	for d.iter < maxIter && d.syndromeWeight != stop {
		d.iter++

		if d.recomputeThreshold {
			remaining := d.params.ErrorWeight - int32(d.fl.Len())
			if remaining < 1 {
				remaining = 1
			}
			d.threshold = ComputeThreshold(d.params.BlockWeight, d.params.BlockLength, d.syndromeWeight, remaining)
			d.recomputeThreshold = false
		}
		threshold := d.threshold

		d.computeCounters()

		for i := 0; i < Index; i++ {
			block := d.counters[int32(i)*d.n : int32(i+1)*d.n]
			for pos := int32(0); pos < d.n; pos++ {
				if int32(block[pos]) < threshold {
					continue
				}
				d.recomputeThreshold = true

				if d.bits[int32(i)*d.n+pos] == 1 {
					d.fl.Remove(int32(i)*d.n + pos)
				} else {
					ttl := d.computeTTL(block[pos], threshold)
					tod := uint8((d.iter + ttl) % ring)
					d.fl.Add(int32(i)*d.n+pos, tod)
				}
				d.flipBit(i, pos)
			}
		}

		if d.syndromeWeight != stop && d.fl.Len() > 0 {
			currentSlot := uint8(d.iter % ring)
			for p := d.fl.First(); p != noPosition; {
				next := d.fl.Next(p)
				if d.fl.TOD(p) == currentSlot {
					d.recomputeThreshold = true
					d.fl.Remove(p)
					i := int(p / d.n)
					pos := p % d.n
					d.flipBit(i, pos)
				}
				p = next
			}
		}
	}

	if d.syndromeWeight == stop {
		return true, d.iter, nil
	}
	return false, d.iter, ErrDecodeFailed
}
