package long

import (
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBigIntResult   *big.Int
	BenchBoolResult     bool
	BenchFloatResult    float64
	BenchIntResult      int
	BenchInt64Result    int64
	BenchLongResult     Long
	BenchStringResult   string

	BenchInt641, BenchInt642 int64 = 12093749018, 18927348917
)

func BenchmarkInt64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 * BenchInt642
	}
}

func BenchmarkInt64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 + BenchInt642
	}
}

func BenchmarkInt64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 / BenchInt642
	}
}

func BenchmarkInt64Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchInt641 == BenchInt642
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetInt64(maxInt64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	var max big.Int
	max.SetInt64(maxInt64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(&dest, &max)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetInt64(maxInt64)
	by := new(big.Int).SetInt64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	var v1, v2 big.Int
	v1.SetInt64(maxInt64)
	v2.SetInt64(maxInt64)

	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(&v2)
	}
}
