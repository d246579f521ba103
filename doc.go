/*
Package long provides a 64-bit two's complement integer type (Long) held as
a pair of 32-bit words, implementing most of the big.Int API.

The two-word layout exists for binary formats that represent a 64-bit field
as separate high and low words; Raw() and LongFromRaw() give direct access
to that wire representation. Overflow, sign and shift behaviour match a
native 64-bit integer exactly, including the MinLong asymmetry
(MinLong.Neg() == MinLong).

Long is a value type; all operations return new values.

Simple example:

	a := LongFrom32(100)
	b := LongFrom32(28)
	fmt.Println(a.Add(b))
	// Output: 128

Long can be created from a variety of sources:

	LongFromRaw(hi, lo int32) Long
	LongFrom64(v int64) Long
	LongFrom32(v int32) Long
	LongFrom16(v int16) Long
	LongFrom8(v int8) Long
	LongFromInt(v int) Long
	LongFromU64(v uint64) Long
	LongFromString(s string) (out Long, err error)
	LongFromStringRadix(s string, radix int) (out Long, err error)
	LongFromBigInt(v *big.Int) (out Long, accurate bool)
	LongFromFloat32(f float32) (out Long, inRange bool)
	LongFromFloat64(f float64) (out Long, inRange bool)

Long supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package long
