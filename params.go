package qcmdpc

import (
	"errors"
	"fmt"
)

// Index is the number of circulant blocks making up H. The original C
// source threads this through every function as a runtime-checked
// constant and rejects anything but 2 at build time; here it is structural
// — every array in the package is declared [Index]T, so "Index != 2" is
// not a state the type system can express.
const Index = 2

// maxBlockWeight and maxBlockLength mirror the compile-time limits from the
// original param.h (#error above these).
const (
	maxBlockWeight = 255
	maxBlockLength = 65536
)

// Params holds the code parameters for one decoding instance: block
// length/weight, target error weight, the Ouroboros variant flag, and the
// TTL coefficients used by the decoder's revocation schedule.
type Params struct {
	// BlockLength (N) is the circulant size, prime, <= 65536.
	BlockLength int32
	// BlockWeight (W) is the number of set bits per column, <= 255.
	BlockWeight int32
	// ErrorWeight (T) is the target Hamming weight of the error vector.
	ErrorWeight int32
	// Ouroboros selects the variant where an additional syndrome-side
	// error of weight ErrorWeight/2 is injected, and decoding stops at
	// that weight instead of zero.
	Ouroboros bool

	// TTLCoeff0, TTLCoeff1, TTLSaturate parameterize the TTL schedule:
	// ttl = clamp(round(TTLCoeff0*(counter-threshold) + TTLCoeff1), 1, TTLSaturate).
	TTLCoeff0   float64
	TTLCoeff1   float64
	TTLSaturate int
}

// DefaultTTLCoeff0, DefaultTTLCoeff1 and DefaultTTLSaturate are the
// original's defaults, used by Preset.
const (
	DefaultTTLCoeff0   = 0.435
	DefaultTTLCoeff1   = 1.15
	DefaultTTLSaturate = 5
)

// ErrInvalidParams is returned by Validate and Preset when the requested
// parameters fall outside what this package implements.
var ErrInvalidParams = errors.New("qcmdpc: invalid parameters")

// presetRow is one entry of the original's PRESET x OUROBOROS table.
type presetRow struct {
	blockLength int32
	blockWeight int32
	errorWeight int32
}

var presetTable = map[[2]int]presetRow{
	{128, 0}: {10163, 71, 134},
	{128, 1}: {11027, 67, 156},
	{192, 0}: {19853, 103, 199},
	{192, 1}: {21683, 99, 226},
	{256, 0}: {32749, 137, 264},
	{256, 1}: {36131, 133, 300},
}

// Preset builds the Params for one of the six named security-level x
// Ouroboros combinations (level in {128, 192, 256}), exactly reproducing
// the (N, W, T) triples from the original's param.h. TTL coefficients are
// set to their defaults; override the returned value's fields directly if
// needed.
func Preset(level int, ouroboros bool) (Params, error) {
	key := [2]int{level, 0}
	if ouroboros {
		key[1] = 1
	}
	row, ok := presetTable[key]
	if !ok {
		return Params{}, fmt.Errorf("%w: unknown preset level %d", ErrInvalidParams, level)
	}
	p := Params{
		BlockLength: row.blockLength,
		BlockWeight: row.blockWeight,
		ErrorWeight: row.errorWeight,
		Ouroboros:   ouroboros,
		TTLCoeff0:   DefaultTTLCoeff0,
		TTLCoeff1:   DefaultTTLCoeff1,
		TTLSaturate: DefaultTTLSaturate,
	}
	return p, p.Validate()
}

// Validate rejects parameter combinations this package cannot decode:
// BlockWeight > 255 (counters are stored one byte per bit) and
// BlockLength > 65536 (the original's declared compile-time ceiling).
func (p Params) Validate() error {
	if p.BlockWeight <= 0 || p.BlockWeight > maxBlockWeight {
		return fmt.Errorf("%w: block weight %d out of range [1, %d]", ErrInvalidParams, p.BlockWeight, maxBlockWeight)
	}
	if p.BlockLength <= 0 || p.BlockLength > maxBlockLength {
		return fmt.Errorf("%w: block length %d out of range [1, %d]", ErrInvalidParams, p.BlockLength, maxBlockLength)
	}
	if p.ErrorWeight <= 0 || p.ErrorWeight > Index*p.BlockLength {
		return fmt.Errorf("%w: error weight %d out of range for block length %d", ErrInvalidParams, p.ErrorWeight, p.BlockLength)
	}
	if p.TTLSaturate <= 0 {
		return fmt.Errorf("%w: TTL saturate %d must be positive", ErrInvalidParams, p.TTLSaturate)
	}
	return nil
}

// SyndromeStop returns the syndrome weight at which decoding succeeds: 0
// normally, or ErrorWeight/2 under Ouroboros.
func (p Params) SyndromeStop() int32 {
	if p.Ouroboros {
		return p.ErrorWeight / 2
	}
	return 0
}
