package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint64Deterministic(t *testing.T) {
	a := NewXoroshiro128Plus(1, 2)
	b := NewXoroshiro128Plus(1, 2)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestUint64VariesWithSeed(t *testing.T) {
	a := NewXoroshiro128Plus(1, 2)
	b := NewXoroshiro128Plus(3, 4)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestBoundedWithinRange(t *testing.T) {
	x := NewXoroshiro128Plus(42, 1337)
	for i := 0; i < 10000; i++ {
		v := x.Bounded(97)
		assert.GreaterOrEqual(t, v, int32(0))
		assert.Less(t, v, int32(97))
	}
}

func TestBoundedSingleOutcome(t *testing.T) {
	x := NewXoroshiro128Plus(7, 11)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int32(0), x.Bounded(1))
	}
}

func TestJumpProducesDifferentStream(t *testing.T) {
	x := NewXoroshiro128Plus(1, 1)
	before := x.Uint64()

	y := NewXoroshiro128Plus(1, 1)
	y.Jump()
	after := y.Uint64()

	assert.NotEqual(t, before, after)
}

func TestJumpIsDeterministic(t *testing.T) {
	a := NewXoroshiro128Plus(9, 9)
	b := NewXoroshiro128Plus(9, 9)
	a.Jump()
	b.Jump()
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewXoroshiro128PlusRejectsZeroState(t *testing.T) {
	x := NewXoroshiro128Plus(0, 0)
	assert.NotEqual(t, uint64(0), x.Uint64())
}
