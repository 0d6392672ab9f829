package num

import (
	"io"

	"github.com/shabbyrobe/go-num1024/entropy"
)

// RandU1024 generates an unsigned 1024-bit random integer from an external
// source.
func RandU1024(source RandSource) (out U1024) {
	for i := range out.n {
		out.n[i] = source.Uint64()
	}
	return out
}

// ReadU1024 reads 128 bytes from source and interprets them as a big-endian
// integer. A failing or short source returns an error wrapping
// entropy.ErrUnavailable.
func ReadU1024(source io.Reader) (out U1024, err error) {
	var buf [u1024Bytes]byte
	if err := entropy.Fill(source, buf[:]); err != nil {
		return out, err
	}
	return U1024FromBytesArray(&buf), nil
}

// ReadOddU1024 is ReadU1024 with SetOddBits applied to the raw bytes, so the
// result is odd and at least 2^1023.
func ReadOddU1024(source io.Reader) (out U1024, err error) {
	var buf [u1024Bytes]byte
	if err := entropy.Fill(source, buf[:]); err != nil {
		return out, err
	}
	SetOddBits(&buf)
	return U1024FromBytesArray(&buf), nil
}

// SetOddBits sets the lowest bit of the lowest-order byte and the highest
// bit of the highest-order byte of a big-endian 1024-bit buffer. All other
// bits are left alone.
func SetOddBits(b *[u1024Bytes]byte) {
	b[u1024Bytes-1] |= 0x01
	b[0] |= 0x80
}
