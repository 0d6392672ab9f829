package num

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// U2048 exists to hold the full product of two U1024s so it can be reduced
// by a 1024-bit modulus without losing the high half. It implements just
// enough arithmetic for that job.
type U2048 struct {
	// Thirty-two words in base 2^64, least significant first.
	n [u2048Words]uint64
}

func U2048From1024(in U1024) (out U2048) {
	copy(out.n[:u1024Words], in.n[:])
	return out
}

func U2048From64(in uint64) U2048 { return U2048{n: [u2048Words]uint64{in}} }

// U2048FromBigInt creates a U2048 from a big.Int. Overflow truncates to
// MaxU2048 and sets inRange to 'false'.
func U2048FromBigInt(v *big.Int) (out U2048, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > u2048Bits {
		return MaxU2048, false
	}
	var buf [u2048Bytes]byte
	v.FillBytes(buf[:])
	for i := 0; i < u2048Words; i++ {
		out.n[u2048Words-1-i] = binary.BigEndian.Uint64(buf[i*8:])
	}
	return out, true
}

// Hi returns the top 1024 bits of u.
func (u U2048) Hi() (out U1024) {
	copy(out.n[:], u.n[u1024Words:])
	return out
}

// Lo returns the bottom 1024 bits of u, i.e. u modulo 2^1024.
func (u U2048) Lo() (out U1024) {
	copy(out.n[:], u.n[:u1024Words])
	return out
}

func (u U2048) IsZero() bool { return u == U2048{} }

// IsU1024 reports whether u fits in a U1024 without truncation.
func (u U2048) IsU1024() bool { return wordLen(u.n[u1024Words:]) == 0 }

func (u U2048) Cmp(n U2048) int { return cmpVV(u.n[:], n.n[:]) }

func (u U2048) Equal(n U2048) bool { return u.n == n.n }

func (u U2048) Add(n U2048) (v U2048) {
	addVV(v.n[:], u.n[:], n.n[:])
	return v
}

// QuoRem divides u by a 1024-bit divisor. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U2048) QuoRem(by U1024) (q U2048, r U1024) {
	if by == zeroU1024 {
		panic(ErrDivisionByZero)
	}
	quorem(q.n[:], r.n[:], u.n[:], by.n[:])
	return q, r
}

// Rem returns u%by. If by == 0, a division-by-zero run-time panic occurs.
func (u U2048) Rem(by U1024) (r U1024) {
	if by == zeroU1024 {
		panic(ErrDivisionByZero)
	}
	if u.IsU1024() && u.Lo().LessThan(by) {
		return u.Lo()
	}
	var q U2048
	quorem(q.n[:], r.n[:], u.n[:], by.n[:])
	return r
}

// Mod is Rem that reports a zero modulus as ErrDivisionByZero.
func (u U2048) Mod(m U1024) (U1024, error) {
	if m == zeroU1024 {
		return U1024{}, ErrDivisionByZero
	}
	return u.Rem(m), nil
}

// Bytes returns u as 256 big-endian bytes.
func (u U2048) Bytes() (out [u2048Bytes]byte) {
	for i := 0; i < u2048Words; i++ {
		binary.BigEndian.PutUint64(out[i*8:], u.n[u2048Words-1-i])
	}
	return out
}

func (u U2048) IntoBigInt(b *big.Int) {
	buf := u.Bytes()
	b.SetBytes(buf[:])
}

func (u U2048) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U2048) String() string {
	if u.IsU1024() {
		return u.Lo().String()
	}
	return u.AsBigInt().String()
}

func (u U2048) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}
