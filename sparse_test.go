package qcmdpc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vvasseur/qcmdpc-go/prng"
)

func TestInsertSorted(t *testing.T) {
	array := make([]int32, 8)
	values := []int32{5, 2, 9, 0}
	for i, v := range values {
		insertSorted(v, i, array)
	}
	got := append([]int32(nil), array[:len(values)]...)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
	// Each value is bumped past the entries already <= it: 9 passes 2 and 5
	// and lands at 11.
	assert.ElementsMatch(t, []int32{0, 2, 5, 11}, got)
}

func TestRandomSparseBlockProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		length := rapid.Int32Range(10, 2000).Draw(rt, "length")
		weight := rapid.Int32Range(1, 50).Draw(rt, "weight")
		rapid.Assume(weight <= length)

		s0 := rapid.Uint64().Draw(rt, "s0")
		s1 := rapid.Uint64().Draw(rt, "s1")
		source := prng.NewXoroshiro128Plus(s0, s1)

		h := RandomSparseBlock(source, length, weight, make(SparseBlock, weight))
		require.Len(rt, h, int(weight))

		seen := make(map[int32]bool, weight)
		for i, v := range h {
			assert.GreaterOrEqual(rt, v, int32(0))
			assert.Less(rt, v, length)
			if i > 0 {
				assert.Less(rt, h[i-1], v, "positions must be strictly ascending")
			}
			assert.False(rt, seen[v], "positions must be distinct")
			seen[v] = true
		}
	})
}

func TestColumnsToRows(t *testing.T) {
	const n = int32(20)
	columns := [Index]SparseBlock{
		{0, 3, 7, 15},
		{2, 5, 9, 18},
	}
	var rows [Index]SparseBlock
	for i := range rows {
		rows[i] = make(SparseBlock, len(columns[i]))
	}
	ColumnsToRows(n, columns, rows)

	for i := 0; i < Index; i++ {
		assert.True(t, sort.SliceIsSorted(rows[i], func(a, b int) bool { return rows[i][a] < rows[i][b] }))
		// Reflecting twice returns the original support.
		cols := [Index]SparseBlock{rows[i], rows[i]}
		backArr := [Index]SparseBlock{make(SparseBlock, len(rows[i])), make(SparseBlock, len(rows[i]))}
		ColumnsToRows(n, cols, backArr)
		assert.Equal(t, columns[i], backArr[i])
	}
}
