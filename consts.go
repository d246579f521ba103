package long

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	minLongFloat  = float64(minInt64) // -(1<<63)
	wrapLongFloat = float64(1 << 63)  // 1 << 63
)

var (
	MaxLong = Long{hi: 0x7FFFFFFF, lo: -1}
	MinLong = Long{hi: -0x80000000, lo: 0}

	ZeroLong   Long
	OneLong    = Long{hi: 0, lo: 1}
	NegOneLong = Long{hi: -1, lo: -1}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
	maxBigLong   = new(big.Int).SetInt64(maxInt64)
	minBigLong   = new(big.Int).SetInt64(minInt64)

	// wrapBigU64 is 1 << 64, used to simulate over/underflow:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)

	// maxBigU64 is (1 << 64) - 1, used to mask a value down to its 64
	// two's complement bits:
	maxBigU64, _ = new(big.Int).SetString("18446744073709551615", 10)

	// This specifies the maximum error allowed between the float64 version of
	// a 64-bit int and the result of the same operation performed by
	// big.Float.
	//
	// Calculate like so:
	//	return math.Nextafter(1.0, 2.0) - 1.0
	//
	floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")
)
