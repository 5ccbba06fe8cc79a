package qcmdpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	cases := []struct {
		name        string
		level       int
		ouroboros   bool
		wantLength  int32
		wantWeight  int32
		wantErrorWt int32
	}{
		{"128", 128, false, 10163, 71, 134},
		{"128 ouroboros", 128, true, 11027, 67, 156},
		{"192", 192, false, 19853, 103, 199},
		{"192 ouroboros", 192, true, 21683, 99, 226},
		{"256", 256, false, 32749, 137, 264},
		{"256 ouroboros", 256, true, 36131, 133, 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Preset(tc.level, tc.ouroboros)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLength, p.BlockLength)
			assert.Equal(t, tc.wantWeight, p.BlockWeight)
			assert.Equal(t, tc.wantErrorWt, p.ErrorWeight)
			assert.Equal(t, tc.ouroboros, p.Ouroboros)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		_, err := Preset(512, false)
		assert.ErrorIs(t, err, ErrInvalidParams)
	})
}

func TestParamsValidate(t *testing.T) {
	base := Params{BlockLength: 100, BlockWeight: 10, ErrorWeight: 20, TTLSaturate: 5}
	require.NoError(t, base.Validate())

	t.Run("weight too large", func(t *testing.T) {
		p := base
		p.BlockWeight = maxBlockWeight + 1
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
	})

	t.Run("length too large", func(t *testing.T) {
		p := base
		p.BlockLength = maxBlockLength + 1
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
	})

	t.Run("zero error weight", func(t *testing.T) {
		p := base
		p.ErrorWeight = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
	})

	t.Run("zero ttl saturate", func(t *testing.T) {
		p := base
		p.TTLSaturate = 0
		assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
	})
}

func TestSyndromeStop(t *testing.T) {
	p := Params{ErrorWeight: 300, Ouroboros: true}
	assert.Equal(t, int32(150), p.SyndromeStop())

	p.Ouroboros = false
	assert.Equal(t, int32(0), p.SyndromeStop())
}
