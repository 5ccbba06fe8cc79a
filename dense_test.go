package qcmdpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAVXPadding(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, avxRegisterBits},
		{avxRegisterBits, avxRegisterBits},
		{avxRegisterBits + 1, 2 * avxRegisterBits},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AVXPadding(tc.n))
	}
}

func TestNewDenseVectorPadded(t *testing.T) {
	v := NewDenseVector(100)
	assert.GreaterOrEqual(t, len(v), 100)
	assert.Equal(t, 0, len(v)%avxRegisterBits)
}

func TestDenseVectorPopCount(t *testing.T) {
	v := NewDenseVector(8)
	v[0], v[2], v[5] = 1, 1, 1
	assert.Equal(t, int32(3), v.PopCount(8))
}

func TestDenseVectorExtend(t *testing.T) {
	v := NewDenseVector(2 * 4)
	v[0], v[1], v[2], v[3] = 1, 0, 1, 1
	v.Extend(4)
	assert.Equal(t, DenseVector{1, 0, 1, 1}, v[4:8])
}

func TestDenseVectorZero(t *testing.T) {
	v := NewDenseVector(4)
	for i := range v[:4] {
		v[i] = 1
	}
	v.Zero(4)
	assert.Equal(t, int32(0), v.PopCount(4))
}
