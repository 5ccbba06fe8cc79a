//go:build amd64 && !noasm

package qcmdpc

import "golang.org/x/sys/cpu"

// init swaps xorRange/addRange for a 16-way unrolled variant when AVX2 is
// available, mirroring the original's multiply_avx2/multiply_mod2_avx2
// (16 interleaved ymm accumulators per loop). There is no hand-assembled
// kernel behind this build tag: the teacher repo's own simdpack.go declares
// go:noescape assembly entry points with no matching .s file anywhere in
// that module (see DESIGN.md), so this package does not fabricate one
// either. The loop below gets the same instruction-level parallelism
// opportunity the original's unroll was chasing, left to the compiler to
// vectorize. It is selected only when the CPU reports AVX2, so the tests
// exercise it only on such machines.
func init() {
	if cpu.X86.HasAVX2 {
		xorRange = xorRangeUnrolled16
		addRange = addRangeUnrolled16
	}
}

func xorRangeUnrolled16(z, y DenseVector) {
	n := len(z)
	i := 0
	for ; i+16 <= n; i += 16 {
		z[i+0] ^= y[i+0]
		z[i+1] ^= y[i+1]
		z[i+2] ^= y[i+2]
		z[i+3] ^= y[i+3]
		z[i+4] ^= y[i+4]
		z[i+5] ^= y[i+5]
		z[i+6] ^= y[i+6]
		z[i+7] ^= y[i+7]
		z[i+8] ^= y[i+8]
		z[i+9] ^= y[i+9]
		z[i+10] ^= y[i+10]
		z[i+11] ^= y[i+11]
		z[i+12] ^= y[i+12]
		z[i+13] ^= y[i+13]
		z[i+14] ^= y[i+14]
		z[i+15] ^= y[i+15]
	}
	for ; i < n; i++ {
		z[i] ^= y[i]
	}
}

func addRangeUnrolled16(z, y DenseVector) {
	n := len(z)
	i := 0
	for ; i+16 <= n; i += 16 {
		z[i+0] += y[i+0]
		z[i+1] += y[i+1]
		z[i+2] += y[i+2]
		z[i+3] += y[i+3]
		z[i+4] += y[i+4]
		z[i+5] += y[i+5]
		z[i+6] += y[i+6]
		z[i+7] += y[i+7]
		z[i+8] += y[i+8]
		z[i+9] += y[i+9]
		z[i+10] += y[i+10]
		z[i+11] += y[i+11]
		z[i+12] += y[i+12]
		z[i+13] += y[i+13]
		z[i+14] += y[i+14]
		z[i+15] += y[i+15]
	}
	for ; i < n; i++ {
		z[i] += y[i]
	}
}
