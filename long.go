package long

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Long is a 64-bit two's complement integer held as a pair of 32-bit words.
// The lo word holds the least significant 32 bits; the hi word holds the
// most significant 32 bits and carries the sign.
type Long struct {
	hi, lo int32
}

var (
	// ErrFormat is returned when parsing or formatting is asked to work with
	// an empty string, a malformed string, or a radix outside [2, 36].
	ErrFormat = errors.New("long: invalid format")

	// ErrDivByZero is returned by Quo, Rem and QuoRem for a zero divisor.
	ErrDivByZero = errors.New("long: division by zero")
)

const (
	smallMin = -128
	smallMax = 128
)

// smallLongs holds the canonical Long for every value in [smallMin, smallMax).
// It is filled once at process start and read-only afterwards; only
// LongFrom32 and the sized constructors that delegate to it consult it.
var smallLongs [smallMax - smallMin]Long

func init() {
	for i := range smallLongs {
		smallLongs[i] = longFrom64(int64(i) + smallMin)
	}
}

func longFrom64(v int64) Long {
	return Long{hi: int32(v >> 32), lo: int32(v)}
}

func longFromBits(v uint64) Long {
	return Long{hi: int32(v >> 32), lo: int32(v)}
}

func (l Long) int64() int64 {
	return int64(l.hi)<<32 | int64(uint32(l.lo))
}

func (l Long) bits() uint64 {
	return uint64(uint32(l.hi))<<32 | uint64(uint32(l.lo))
}

// LongFromRaw is the complement to Long.Raw(); it creates a Long from two
// int32s representing the hi and lo words.
func LongFromRaw(hi, lo int32) Long {
	return Long{hi: hi, lo: lo}
}

func LongFrom64(v int64) Long {
	return longFrom64(v)
}

// LongFrom32 creates a Long from an int32. Values in [-128, 128) are served
// from a table of canonical instances built at process start.
func LongFrom32(v int32) Long {
	if v >= smallMin && v < smallMax {
		return smallLongs[v-smallMin]
	}
	var hi int32
	if v < 0 {
		hi = -1
	}
	return Long{hi: hi, lo: v}
}

func LongFrom16(v int16) Long   { return LongFrom32(int32(v)) }
func LongFrom8(v int8) Long     { return LongFrom32(int32(v)) }
func LongFromInt(v int) Long    { return LongFrom64(int64(v)) }
func LongFromU64(v uint64) Long { return longFromBits(v) }

// LongFromFloat64 creates a Long from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// NaN and ±Inf produce the zero value and set inRange to false. Finite
// floats outside the bounds of a Long are clamped to MinLong or MaxLong and
// inRange is set to false.
func LongFromFloat64(f float64) (out Long, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	} else if f < minLongFloat {
		return MinLong, false
	} else if f >= wrapLongFloat {
		return MaxLong, false
	}
	return longFrom64(int64(f)), true
}

func LongFromFloat32(f float32) (out Long, inRange bool) {
	return LongFromFloat64(float64(f))
}

// LongFromBigInt creates a Long from a big.Int. Overflow truncates to
// MaxLong/MinLong and sets accurate to 'false'.
func LongFromBigInt(v *big.Int) (out Long, accurate bool) {
	if v.IsInt64() {
		return longFrom64(v.Int64()), true
	}
	if v.Sign() < 0 {
		return MinLong, false
	}
	return MaxLong, false
}

// RandLong generates a positive signed 64-bit random integer from an
// external source.
func RandLong(source RandSource) (out Long) {
	return longFromBits(source.Uint64() & maxInt64)
}

func (l Long) IsZero() bool { return l == ZeroLong }
func (l Long) IsNeg() bool  { return l.hi < 0 }
func (l Long) IsOdd() bool  { return l.lo&1 == 1 }

// Raw returns access to the Long as a pair of int32 words. See LongFromRaw()
// for the counterpart.
func (l Long) Raw() (hi, lo int32) { return l.hi, l.lo }

// HighBits returns the most significant 32 bits of the value.
func (l Long) HighBits() int32 { return l.hi }

// LowBits returns the least significant 32 bits of the value as a signed
// word.
func (l Long) LowBits() int32 { return l.lo }

// LowBitsUnsigned returns the least significant 32 bits of the value,
// reinterpreting a negative low word as its two's complement bits.
func (l Long) LowBitsUnsigned() uint32 { return uint32(l.lo) }

// AsInt32 truncates the Long to its low word. Values outside the int32
// range will over/underflow.
func (l Long) AsInt32() int32 { return l.lo }

func (l Long) AsInt64() int64 { return l.int64() }

// AsUint64 reinterprets the Long's two's complement bits as a uint64.
// Negative numbers become values > math.MaxInt64.
func (l Long) AsUint64() uint64 { return l.bits() }

func (l Long) AsFloat64() float64 {
	return float64(l.hi)*(1<<32) + float64(uint32(l.lo))
}

// IntoBigInt copies this Long into a big.Int, allowing you to retain and
// recycle memory.
func (l Long) IntoBigInt(b *big.Int) {
	b.SetInt64(l.int64())
}

// AsBigInt allocates a new big.Int and copies this Long into it.
func (l Long) AsBigInt() (b *big.Int) {
	return new(big.Int).SetInt64(l.int64())
}

func (l Long) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(l.AsBigInt())
}

func (l Long) Sign() int {
	if l == ZeroLong {
		return 0
	} else if l.hi >= 0 {
		return 1
	}
	return -1
}

// BitLen returns the number of bits required to represent the absolute
// value of l. MinLong has no positive counterpart, so its length is exactly
// 64. BitLen returns 0 for the zero value.
func (l Long) BitLen() int {
	if l == MinLong {
		return 64
	}
	v := l.int64()
	if v < 0 {
		v = -v
	}
	return bits.Len64(uint64(v))
}

// Cmp compares l to n and returns:
//
//	< 0 if l <  n
//	  0 if l == n
//	> 0 if l >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
//
func (l Long) Cmp(n Long) int {
	a, b := l.int64(), n.int64()
	if a == b {
		return 0
	} else if a < b {
		return -1
	}
	return 1
}

func (l Long) Equal(n Long) bool {
	return l.hi == n.hi && l.lo == n.lo
}

func (l Long) GreaterThan(n Long) bool      { return l.int64() > n.int64() }
func (l Long) GreaterOrEqualTo(n Long) bool { return l.int64() >= n.int64() }
func (l Long) LessThan(n Long) bool         { return l.int64() < n.int64() }
func (l Long) LessOrEqualTo(n Long) bool    { return l.int64() <= n.int64() }

func (l Long) Inc() Long { return longFrom64(l.int64() + 1) }
func (l Long) Dec() Long { return longFrom64(l.int64() - 1) }

func (l Long) Add(n Long) Long { return longFrom64(l.int64() + n.int64()) }
func (l Long) Sub(n Long) Long { return longFrom64(l.int64() - n.int64()) }

// Neg returns -l. Negating MinLong overflows back to MinLong; it has no
// positive counterpart at this width.
func (l Long) Neg() Long {
	return longFrom64(-l.int64())
}

// Abs returns the absolute value of l. Abs(MinLong) overflows back to
// MinLong, same as Neg.
func (l Long) Abs() Long {
	if l.hi < 0 {
		return l.Neg()
	}
	return l
}

// Mul returns the product of two Longs.
//
// Overflow wraps around, the same way native int64 multiplication does.
// This preserves the MinLong identities: MinLong times an odd number is
// MinLong, MinLong times an even number is zero.
func (l Long) Mul(n Long) Long {
	return longFrom64(l.int64() * n.int64())
}

// QuoRem returns the quotient q and remainder r for by != 0. A zero divisor
// returns ErrDivByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// Long does not support big.Int.DivMod()-style Euclidean division.
//
// MinLong divided by NegOneLong wraps back to MinLong with a remainder of
// zero; MinLong divided by MinLong is one; any other value divided by
// MinLong is zero.
func (l Long) QuoRem(by Long) (q, r Long, err error) {
	if by == ZeroLong {
		return q, r, ErrDivByZero
	}
	a, b := l.int64(), by.int64()
	return longFrom64(a / b), longFrom64(a % b), nil
}

// Quo returns the quotient l/by. A zero divisor returns ErrDivByZero. Quo
// implements truncated division (like Go); see QuoRem for more details.
func (l Long) Quo(by Long) (q Long, err error) {
	if by == ZeroLong {
		return q, ErrDivByZero
	}
	return longFrom64(l.int64() / by.int64()), nil
}

// Rem returns the remainder of l%by. A zero divisor returns ErrDivByZero.
// Rem implements truncated modulus (like Go); see QuoRem for more details.
func (l Long) Rem(by Long) (r Long, err error) {
	if by == ZeroLong {
		return r, ErrDivByZero
	}
	return longFrom64(l.int64() % by.int64()), nil
}

func (l Long) Not() Long {
	return Long{hi: ^l.hi, lo: ^l.lo}
}

func (l Long) And(n Long) Long {
	return Long{hi: l.hi & n.hi, lo: l.lo & n.lo}
}

func (l Long) AndNot(n Long) Long {
	return Long{hi: l.hi &^ n.hi, lo: l.lo &^ n.lo}
}

func (l Long) Or(n Long) Long {
	return Long{hi: l.hi | n.hi, lo: l.lo | n.lo}
}

func (l Long) Xor(n Long) Long {
	return Long{hi: l.hi ^ n.hi, lo: l.lo ^ n.lo}
}

// Lsh shifts l left by n bits. The shift count is masked to the range 0-63.
func (l Long) Lsh(n uint) Long {
	return longFromBits(l.bits() << (n & 63))
}

// Rsh shifts l right by n bits, extending the sign into the vacated high
// bits. The shift count is masked to the range 0-63.
func (l Long) Rsh(n uint) Long {
	return longFrom64(l.int64() >> (n & 63))
}

// RshU shifts l right by n bits, filling the vacated high bits with zeroes.
// The shift count is masked to the range 0-63.
func (l Long) RshU(n uint) Long {
	return longFromBits(l.bits() >> (n & 63))
}

func (l Long) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Long) UnmarshalText(bts []byte) (err error) {
	v, err := LongFromString(string(bts))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l Long) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *Long) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("long: invalid JSON %q: %w", string(bts), ErrFormat)
		}
		bts = bts[1 : ln-1]
	}

	v, err := LongFromString(string(bts))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
