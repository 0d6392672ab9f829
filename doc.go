/*
Package num provides a fixed-width 1024-bit unsigned integer (U1024) for
modular arithmetic of the sort RSA needs, plus a 2048-bit type (U2048) that
holds full products.

U1024 and U2048 are value types; all operations return new values. Addition,
subtraction and Mul wrap modulo 2^1024 without error.

Simple example:

	b := U1024From64(4)
	r, err := b.ModExp(U1024From64(13), U1024From64(497))
	fmt.Println(r, err)
	// Output: 445 <nil>

U1024 can be created from a variety of sources:

	U1024From64(v uint64) U1024
	U1024From32(v uint32) U1024
	U1024From16(v uint16) U1024
	U1024From8(v uint8) U1024
	U1024FromRaw(words [16]uint64) U1024
	U1024FromBytes(b []byte) (out U1024, err error)
	U1024FromBytesArray(b *[128]byte) U1024
	U1024FromString(s string) (out U1024, accurate bool, err error)
	U1024FromBigInt(v *big.Int) (out U1024, accurate bool)
	ReadU1024(source io.Reader) (out U1024, err error)
	ReadOddU1024(source io.Reader) (out U1024, err error)

U1024 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
