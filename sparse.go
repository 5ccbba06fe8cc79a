package qcmdpc

// SparseBlock is the ascending-sorted list of set-bit positions within one
// circulant column, in [0, BlockLength). Columns of H are stored this way;
// row supports are derived from them by ColumnsToRows.
type SparseBlock []int32

// insertSorted inserts value into array[:maxI] (which must already be
// ascending) keeping it ascending, mirroring the original's insert_sorted:
// it walks forward past every existing entry <= value, bumping value along
// the way by one for each entry skipped (the Fisher-Yates-style trick that
// turns "pick weight distinct positions out of a shrinking range" into "pick
// weight positions independently and then re-spread them").
func insertSorted(value int32, maxI int, array []int32) {
	i := 0
	for i < maxI && array[i] <= value {
		i++
		value++
	}
	for j := maxI; j > i; j-- {
		array[j] = array[j-1]
	}
	array[i] = value
}

// Source is the minimal PRNG boundary the sampling helpers in this package
// need: a uniform integer generator over [0, n). It is satisfied by
// *prng.Xoroshiro128Plus (and by anything else with the same two methods),
// kept here rather than in the prng package so the core decoder types never
// import prng.
type Source interface {
	// Bounded returns a uniform integer in [0, n).
	Bounded(n int32) int32
}

// RandomSparseBlock picks a random weight-many ascending SparseBlock over
// [0, length), writing into (and returning) h, which must have length >=
// weight. It mirrors the original's sparse_rand: draw `weight` candidates
// from a shrinking range and re-spread them via insertSorted so the result
// is a uniformly random weight-subset of [0, length) rather than a
// biased prefix.
func RandomSparseBlock(prng Source, length, weight int32, h SparseBlock) SparseBlock {
	remaining := length
	for i := int32(0); i < weight; i++ {
		r := prng.Bounded(remaining)
		remaining--
		insertSorted(r, int(i), h)
	}
	return h[:weight]
}

// ColumnsToRows derives the row support of each circulant block from its
// column support by cyclic reflection modulo BlockLength: if columns are
// (c0 < c1 < ... < c_{W-1}), rows are (N-c_{W-1}, N-c_{W-2}, ..., N-c0) with
// 0 mapped to 0, re-sorted ascending. This is the cyclic transpose used to
// turn "multiply by a column" into "multiply by the corresponding row".
func ColumnsToRows(blockLength int32, columns [Index]SparseBlock, rows [Index]SparseBlock) {
	for i := 0; i < Index; i++ {
		col := columns[i]
		row := rows[i]
		w := len(col)

		l := 0
		if col[0] == 0 {
			row[0] = 0
			l = 1
		} else {
			row[0] = blockLength - col[w-1]
		}
		for k := 1; k < w; k++ {
			row[k] = blockLength - col[w+l-1-k]
		}
	}
}
