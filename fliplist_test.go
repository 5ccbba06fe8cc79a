package qcmdpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipListAddRemove(t *testing.T) {
	fl := NewFlipList(10)
	require.Equal(t, int32(0), fl.Len())

	fl.Add(3, 1)
	fl.Add(7, 2)
	fl.Add(1, 3)
	assert.Equal(t, int32(3), fl.Len())
	assert.Equal(t, int32(1), fl.First())

	fl.Remove(7)
	assert.Equal(t, int32(2), fl.Len())

	var seen []int32
	for p := fl.First(); p != noPosition; p = fl.Next(p) {
		seen = append(seen, p)
	}
	assert.ElementsMatch(t, []int32{3, 1}, seen)
}

func TestFlipListRemoveDuringTraversal(t *testing.T) {
	fl := NewFlipList(10)
	fl.Add(0, 0)
	fl.Add(1, 1)
	fl.Add(2, 2)
	fl.Add(3, 1)

	var survivors []int32
	for p := fl.First(); p != noPosition; {
		next := fl.Next(p)
		if fl.TOD(p) == 1 {
			fl.Remove(p)
		} else {
			survivors = append(survivors, p)
		}
		p = next
	}

	assert.Equal(t, int32(2), fl.Len())
	assert.ElementsMatch(t, []int32{0, 2}, survivors)

	var remaining []int32
	for p := fl.First(); p != noPosition; p = fl.Next(p) {
		remaining = append(remaining, p)
	}
	assert.ElementsMatch(t, []int32{0, 2}, remaining)
}

func TestFlipListResetClearsState(t *testing.T) {
	fl := NewFlipList(5)
	fl.Add(0, 1)
	fl.Add(4, 2)
	fl.Reset()
	assert.Equal(t, int32(0), fl.Len())
	assert.Equal(t, noPosition, fl.First())
}
