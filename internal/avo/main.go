//go:build avogen
// +build avogen

package main

import (
	"flag"
	"strings"

	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
)

var (
	component = flag.String("component", "all", "component to generate")
)

// main emits the segment kernels multiply_amd64.go's AVX2 path would call
// if it were backed by real assembly instead of the unrolled Go loop it
// uses today (see multiply_amd64.go and DESIGN.md for why that substitution
// hasn't happened: this generator was never wired into go:generate, the
// same state the teacher repo's own avo generator was left in).
func main() {
	flag.Parse()

	comp := strings.ToLower(*component)

	Package("github.com/vvasseur/qcmdpc-go")
	ConstraintExpr("amd64")
	ConstraintExpr("!noasm")

	if comp == "xor" || comp == "all" {
		genXorRangeKernel()
	}

	if comp == "add" || comp == "all" {
		genAddRangeKernel()
	}

	Generate()
}

// genXorRangeKernel emits xorRangeAVX2(z, y []byte), 32 bytes per ymm
// register in one vector op, twice the 16 bytes a single iteration of the
// unrolled Go fallback covers with 16 scalar ones.
func genXorRangeKernel() {
	TEXT("xorRangeAVX2", NOSPLIT, "func(z, y []byte)")
	Doc("xorRangeAVX2 XORs y into z in 32-byte lanes; len(y) must equal len(z) and be a multiple of 32.")
	zPtr := Load(Param("z").Base(), GP64())
	yPtr := Load(Param("y").Base(), GP64())
	n := Load(Param("z").Len(), GP64())

	i := GP64()
	XORQ(i, i)

	Label("loop")
	CMPQ(i, n)
	JGE(LabelRef("done"))

	zVec := YMM()
	yVec := YMM()
	VMOVDQU(Mem{Base: zPtr, Index: i, Scale: 1}, zVec)
	VMOVDQU(Mem{Base: yPtr, Index: i, Scale: 1}, yVec)
	VPXOR(zVec, yVec, zVec)
	VMOVDQU(zVec, Mem{Base: zPtr, Index: i, Scale: 1})

	ADDQ(Imm(32), i)
	JMP(LabelRef("loop"))

	Label("done")
	RET()
}

// genAddRangeKernel emits addRangeAVX2(z, y []byte), the counter-accumulate
// equivalent of genXorRangeKernel; since DenseVector counters are single
// bytes in [0, BlockWeight] they never overflow, so a packed byte add
// (VPADDB) is safe without widening.
func genAddRangeKernel() {
	TEXT("addRangeAVX2", NOSPLIT, "func(z, y []byte)")
	Doc("addRangeAVX2 adds y into z in 32-byte lanes; len(y) must equal len(z) and be a multiple of 32.")
	zPtr := Load(Param("z").Base(), GP64())
	yPtr := Load(Param("y").Base(), GP64())
	n := Load(Param("z").Len(), GP64())

	i := GP64()
	XORQ(i, i)

	Label("loop")
	CMPQ(i, n)
	JGE(LabelRef("done"))

	zVec := YMM()
	yVec := YMM()
	VMOVDQU(Mem{Base: zPtr, Index: i, Scale: 1}, zVec)
	VMOVDQU(Mem{Base: yPtr, Index: i, Scale: 1}, yVec)
	VPADDB(zVec, yVec, zVec)
	VMOVDQU(zVec, Mem{Base: zPtr, Index: i, Scale: 1})

	ADDQ(Imm(32), i)
	JMP(LabelRef("loop"))

	Label("done")
	RET()
}
