package qcmdpc

import "github.com/vvasseur/qcmdpc-go/prng"

// RandomParityCheck samples a fresh column support for each of the Index
// circulant blocks, each an ascending SparseBlock of weight
// Params.BlockWeight over [0, Params.BlockLength). It takes any Source, and
// decoder.go itself does not import prng; this file, in the same package,
// does, so that CLI/test callers get a ready xoroshiro128+-backed helper.
func RandomParityCheck(source Source, p Params) [Index]SparseBlock {
	var columns [Index]SparseBlock
	for i := 0; i < Index; i++ {
		columns[i] = RandomSparseBlock(source, p.BlockLength, p.BlockWeight, make(SparseBlock, p.BlockWeight))
	}
	return columns
}

// RandomError samples a fresh error support of total weight
// Params.ErrorWeight, mirroring the original's init_decoder_error: one
// combined ascending SparseBlock is drawn over the whole
// [0, Index*Params.BlockLength) range, then split at the BlockLength
// boundary into one SparseBlock per circulant block. The per-block weight
// is therefore itself a random variable (hypergeometric around half of
// ErrorWeight), not a fixed split — splitting the draw after the fact
// instead of sampling each block's weight independently is what keeps the
// joint distribution over (block 0 weight, block 1 weight) matching the
// original's single sparse_rand(INDEX*BLOCK_LENGTH, ERROR_WEIGHT, ...) call.
func RandomError(source Source, p Params) [Index]SparseBlock {
	combined := RandomSparseBlock(source, int32(Index)*p.BlockLength, p.ErrorWeight, make(SparseBlock, p.ErrorWeight))

	var errorBlocks [Index]SparseBlock
	split := 0
	for split < len(combined) && combined[split] < p.BlockLength {
		split++
	}
	errorBlocks[0] = combined[:split]
	errorBlocks[1] = make(SparseBlock, len(combined)-split)
	for k, pos := range combined[split:] {
		errorBlocks[1][k] = pos - p.BlockLength
	}
	return errorBlocks
}

// RandomSyndromeError samples the extra syndrome-side error pattern the
// Ouroboros variant injects via Decoder.InjectSyndromeError, an ascending
// SparseBlock of weight Params.ErrorWeight/2 over [0, Params.BlockLength).
func RandomSyndromeError(source Source, p Params) SparseBlock {
	weight := p.ErrorWeight / 2
	return RandomSparseBlock(source, p.BlockLength, weight, make(SparseBlock, weight))
}

// NewSeededSource builds a *prng.Xoroshiro128Plus from two seed words and
// returns it as a Source, the PRNG this package's sampling helpers are
// written against.
func NewSeededSource(s0, s1 uint64) Source {
	return prng.NewXoroshiro128Plus(s0, s1)
}

// WorkerSource derives the n-th independent substream from seed by jumping
// the generator n times, one 2^64-step jump per worker, so that concurrent
// decoding workers (see SPEC_FULL.md's concurrency model) never share PRNG
// state.
func WorkerSource(s0, s1 uint64, n int) Source {
	src := prng.NewXoroshiro128Plus(s0, s1)
	for i := 0; i < n; i++ {
		src.Jump()
	}
	return src
}
