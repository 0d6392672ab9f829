package num

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

var (
	// ErrInvalidLength is returned when a byte buffer is not exactly the
	// size of the integer being built from it.
	ErrInvalidLength = errors.New("num: invalid byte length")

	// ErrDivisionByZero is returned by Mod, ModMul and ModExp for a zero
	// modulus. Quo, Rem and QuoRem panic with it instead.
	ErrDivisionByZero = errors.New("num: division by zero")
)

// U1024 is a 1024-bit unsigned integer. It is a value type; all operations
// return new values and arithmetic wraps modulo 2^1024.
type U1024 struct {
	// Sixteen words in base 2^64, least significant first: n[0] holds bits
	// 0-63 and n[15] holds bits 960-1023.
	n [u1024Words]uint64
}

func U1024From64(v uint64) U1024 { return U1024{n: [u1024Words]uint64{v}} }
func U1024From32(v uint32) U1024 { return U1024{n: [u1024Words]uint64{uint64(v)}} }
func U1024From16(v uint16) U1024 { return U1024{n: [u1024Words]uint64{uint64(v)}} }
func U1024From8(v uint8) U1024   { return U1024{n: [u1024Words]uint64{uint64(v)}} }

// U1024FromRaw creates a U1024 from sixteen words, least significant first.
// See Raw() for the counterpart.
func U1024FromRaw(words [u1024Words]uint64) U1024 { return U1024{n: words} }

// U1024FromBytes interprets b as a big-endian 1024-bit integer. b must be
// exactly 128 bytes long; the first eight bytes become the most significant
// word.
func U1024FromBytes(b []byte) (out U1024, err error) {
	if len(b) != u1024Bytes {
		return out, fmt.Errorf("%w: u1024 needs %d bytes, found %d", ErrInvalidLength, u1024Bytes, len(b))
	}
	return U1024FromBytesArray((*[u1024Bytes]byte)(b)), nil
}

// U1024FromBytesArray is U1024FromBytes for callers that already hold an
// array of the right size.
func U1024FromBytesArray(b *[u1024Bytes]byte) (out U1024) {
	for i := 0; i < u1024Words; i++ {
		out.n[u1024Words-1-i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return out
}

// U1024FromString creates a U1024 from a string. Overflow truncates to
// MaxU1024 and sets accurate to 'false'. Only decimal strings are currently
// supported.
func U1024FromString(s string) (out U1024, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num: u1024 string %q invalid", s)
	}
	out, accurate = U1024FromBigInt(b)
	return out, accurate, nil
}

// U1024FromBigInt creates a U1024 from a big.Int. Overflow truncates to
// MaxU1024 and sets accurate to 'false'. Negative values return 0 and
// 'false'.
func U1024FromBigInt(v *big.Int) (out U1024, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > u1024Bits {
		return MaxU1024, false
	}

	switch intSize {
	case 64:
		for i, w := range v.Bits() {
			out.n[i] = uint64(w)
		}
	default:
		var buf [u1024Bytes]byte
		v.FillBytes(buf[:])
		out = U1024FromBytesArray(&buf)
	}
	return out, true
}

func (u U1024) IsZero() bool { return u == zeroU1024 }

func (u U1024) IsOdd() bool { return u.n[0]&1 == 1 }

// Raw returns the sixteen words of u, least significant first.
func (u U1024) Raw() [u1024Words]uint64 { return u.n }

// Bytes returns u as 128 big-endian bytes. It is the inverse of
// U1024FromBytes.
func (u U1024) Bytes() (out [u1024Bytes]byte) {
	u.PutBytes(out[:])
	return out
}

// PutBytes writes u into the first 128 bytes of b as a big-endian integer.
// It panics if b is too short.
func (u U1024) PutBytes(b []byte) {
	_ = b[u1024Bytes-1]
	for i := 0; i < u1024Words; i++ {
		binary.BigEndian.PutUint64(b[i*8:], u.n[u1024Words-1-i])
	}
}

// String renders u in base 10 by repeatedly dividing by ten.
func (u U1024) String() string {
	if u == zeroU1024 {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.n[0], 10)
	}

	var buf [u1024Digits]byte
	i := len(buf)
	for u != zeroU1024 {
		var d uint64
		u, d = u.QuoRem64(10)
		i--
		buf[i] = byte('0' + d)
	}
	return string(buf[i:])
}

// Format renders plain %d, %s and %v with String. Everything else, including
// padding and the other bases, goes through big.Int.
func (u U1024) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
		if isPlainVerb(s) {
			_, _ = s.Write([]byte(u.String()))
			return
		}
	}
	u.AsBigInt().Format(s, c)
}

func isPlainVerb(s fmt.State) bool {
	if _, ok := s.Width(); ok {
		return false
	}
	if _, ok := s.Precision(); ok {
		return false
	}
	return !s.Flag('+') && !s.Flag('-') && !s.Flag('0') && !s.Flag(' ')
}

func (u U1024) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < u1024Words {
			words = make([]big.Word, u1024Words)
		}
		words = words[:u1024Words]
		for i, w := range u.n {
			words[i] = big.Word(w)
		}
		b.SetBits(words)

	default:
		buf := u.Bytes()
		b.SetBytes(buf[:])
	}
}

func (u U1024) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates the U1024 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U1024) AsUint64() uint64 { return u.n[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U1024) IsUint64() bool { return wordLen(u.n[1:]) == 0 }

func (u U1024) Inc() (v U1024) {
	var c uint64 = 1
	for i, w := range u.n {
		v.n[i], c = bits.Add64(w, 0, c)
	}
	return v
}

func (u U1024) Dec() (v U1024) {
	var b uint64 = 1
	for i, w := range u.n {
		v.n[i], b = bits.Sub64(w, 0, b)
	}
	return v
}

// Add returns u+n. The carry out of the top word is discarded, so the
// result wraps modulo 2^1024.
func (u U1024) Add(n U1024) (v U1024) {
	addVV(v.n[:], u.n[:], n.n[:])
	return v
}

// AddCarry returns u+n along with the carry out of the top word.
func (u U1024) AddCarry(n U1024) (v U1024, carry uint64) {
	carry = addVV(v.n[:], u.n[:], n.n[:])
	return v, carry
}

// Sub returns u-n. If n > u the result wraps modulo 2^1024; U1024 has no
// sign, so callers that need a non-negative difference must check first.
func (u U1024) Sub(n U1024) (v U1024) {
	subVV(v.n[:], u.n[:], n.n[:])
	return v
}

// SubBorrow returns u-n along with the borrow out of the top word.
func (u U1024) SubBorrow(n U1024) (v U1024, borrow uint64) {
	borrow = subVV(v.n[:], u.n[:], n.n[:])
	return v, borrow
}

// Mul returns the low 1024 bits of u*n, i.e. the product modulo 2^1024. Use
// MulFull to keep the high half.
func (u U1024) Mul(n U1024) (v U1024) {
	mulVVTrunc(v.n[:], u.n[:], n.n[:])
	return v
}

// MulFull returns the full 2048-bit product of u and n.
func (u U1024) MulFull(n U1024) (v U2048) {
	mulVV(v.n[:], u.n[:], n.n[:])
	return v
}

// MulOverflow returns the low 1024 bits of u*n and reports whether any bits
// were lost.
func (u U1024) MulOverflow(n U1024) (v U1024, overflow bool) {
	full := u.MulFull(n)
	return full.Lo(), !full.IsU1024()
}

// Mul64 returns u*n modulo 2^1024.
func (u U1024) Mul64(n uint64) (v U1024) {
	mulAddVWW(v.n[:], u.n[:], n, 0)
	return v
}

func (u U1024) Cmp(n U1024) int { return cmpVV(u.n[:], n.n[:]) }

func (u U1024) Equal(n U1024) bool            { return u.n == n.n }
func (u U1024) GreaterThan(n U1024) bool      { return u.Cmp(n) > 0 }
func (u U1024) GreaterOrEqualTo(n U1024) bool { return u.Cmp(n) >= 0 }
func (u U1024) LessThan(n U1024) bool         { return u.Cmp(n) < 0 }
func (u U1024) LessOrEqualTo(n U1024) bool    { return u.Cmp(n) <= 0 }

func (u U1024) And(n U1024) (v U1024) {
	for i := range v.n {
		v.n[i] = u.n[i] & n.n[i]
	}
	return v
}

func (u U1024) AndNot(n U1024) (v U1024) {
	for i := range v.n {
		v.n[i] = u.n[i] &^ n.n[i]
	}
	return v
}

func (u U1024) Or(n U1024) (v U1024) {
	for i := range v.n {
		v.n[i] = u.n[i] | n.n[i]
	}
	return v
}

func (u U1024) Xor(n U1024) (v U1024) {
	for i := range v.n {
		v.n[i] = u.n[i] ^ n.n[i]
	}
	return v
}

func (u U1024) Not() (v U1024) {
	for i := range v.n {
		v.n[i] = ^u.n[i]
	}
	return v
}

// Lsh returns u<<n. Bits shifted past the top are discarded; shifting by 1024
// or more returns 0.
func (u U1024) Lsh(n uint) (v U1024) {
	if n >= u1024Bits {
		return v
	}
	w, s := int(n/64), n%64
	shlVU(v.n[w:], u.n[:u1024Words-w], s)
	return v
}

// Rsh returns u>>n. Shifting by 1024 or more returns 0.
func (u U1024) Rsh(n uint) (v U1024) {
	if n >= u1024Bits {
		return v
	}
	w, s := int(n/64), n%64
	shrVU(v.n[:u1024Words-w], u.n[w:], s)
	return v
}

func (u U1024) LeadingZeros() uint {
	for i := u1024Words - 1; i >= 0; i-- {
		if u.n[i] != 0 {
			return uint(bits.LeadingZeros64(u.n[i])) + uint(u1024Words-1-i)*64
		}
	}
	return u1024Bits
}

func (u U1024) TrailingZeros() uint {
	for i, w := range u.n {
		if w != 0 {
			return uint(bits.TrailingZeros64(w)) + uint(i)*64
		}
	}
	return u1024Bits
}

// BitLen returns the length of the absolute value of u in bits. The bit
// length of 0 is 0.
func (u U1024) BitLen() int { return u1024Bits - int(u.LeadingZeros()) }

// Bit returns the value of the i'th bit of u. The bit index i must be
// 0 <= i < 1024.
func (u U1024) Bit(i int) uint {
	if i < 0 || i >= u1024Bits {
		panic("num: bit out of range")
	}
	return uint(u.n[i/64]>>(uint(i)%64)) & 1
}

// SetBit returns u with u's i'th bit set to b (0 or 1).
func (u U1024) SetBit(i int, b uint) (out U1024) {
	if i < 0 || i >= u1024Bits {
		panic("num: bit out of range")
	}
	out = u
	mask := uint64(1) << (uint(i) % 64)
	switch b {
	case 0:
		out.n[i/64] &^= mask
	case 1:
		out.n[i/64] |= mask
	default:
		panic("num: bit value not 0 or 1")
	}
	return out
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U1024) Quo(by U1024) (q U1024) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// As U1024 is unsigned, truncated and Euclidean division agree:
//
//	q = u/by
//	r = u - by*q
func (u U1024) QuoRem(by U1024) (q, r U1024) {
	if by == zeroU1024 {
		panic(ErrDivisionByZero)
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.n[0] = 1 // dividend and divisor are the same
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	byTrailing0 := by.TrailingZeros()
	if byLeading0+byTrailing0 == u1024Bits-1 {
		// by is a power of two.
		return u.Rsh(byTrailing0), u.And(by.Dec())
	}

	quorem(q.n[:], r.n[:], u.n[:], by.n[:])
	return q, r
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U1024) Rem(by U1024) (r U1024) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem64 divides u by a single word. It is the building block for decimal
// rendering. If by == 0, a division-by-zero run-time panic occurs.
func (u U1024) QuoRem64(by uint64) (q U1024, r uint64) {
	if by == 0 {
		panic(ErrDivisionByZero)
	}
	l := wordLen(u.n[:])
	r = divWVW(q.n[:l], 0, u.n[:l], by)
	return q, r
}

// Mod returns the unique r in [0, m) such that u ≡ r (mod m). Unlike Rem it
// reports a zero modulus as ErrDivisionByZero instead of panicking.
func (u U1024) Mod(m U1024) (U1024, error) {
	if m == zeroU1024 {
		return U1024{}, ErrDivisionByZero
	}
	return u.Rem(m), nil
}

func (u U1024) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U1024) UnmarshalText(bts []byte) (err error) {
	v, accurate, err := U1024FromString(string(bts))
	if err != nil {
		return err
	}
	if !accurate {
		return fmt.Errorf("num: u1024 string %q out of range", string(bts))
	}
	*u = v
	return nil
}

func (u U1024) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U1024) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u1024 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
