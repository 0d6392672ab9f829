package num

import (
	"math/bits"
)

// The functions in this file operate on little-endian word vectors (least
// significant word first). They are shared by U1024 and U2048 so both widths
// use the same carry chains.

// addVV sets z = x + y and returns the carry out of the top word. x and y
// must be at least as long as z.
func addVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow out of the top word. x and y
// must be at least as long as z.
func subVV(z, x, y []uint64) (b uint64) {
	for i := range z {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the word that did not fit.
func mulAddVWW(z, x []uint64, y, r uint64) (c uint64) {
	c = r
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// addMulVVW sets z += x*y and returns the word that did not fit. x must be
// at least as long as z.
//
// (2^64-1)^2 + 2(2^64-1) == 2^128-1, so hi never overflows.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, z[i], 0)
		hi += cc
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// mulVV sets z to the full product x*y. z must have exactly len(x)+len(y)
// words; it is cleared first so it never aliases x or y.
func mulVV(z, x, y []uint64) {
	clear(z)
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		// z[i+len(x)] has not been written yet at this point.
		z[i+len(x)] = addMulVVW(z[i:i+len(x)], x, yi)
	}
}

// mulVVTrunc sets z to the low len(z) words of x*y. x and y must be at least
// as long as z. Partial products landing above len(z) are never formed.
func mulVVTrunc(z, x, y []uint64) {
	clear(z)
	n := len(z)
	for i := 0; i < n; i++ {
		if y[i] == 0 {
			continue
		}
		addMulVVW(z[i:], x[:n-i], y[i])
	}
}

// shlVU sets z = x << s for s < 64 and returns the bits shifted out of the
// top word.
func shlVU(z, x []uint64, s uint) (c uint64) {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	rs := 64 - s
	c = x[len(z)-1] >> rs
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>rs
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for s < 64 and returns the bits shifted out of the
// bottom word, left-aligned.
func shrVU(z, x []uint64, s uint) (c uint64) {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	rs := 64 - s
	c = x[0] << rs
	for i := 1; i < len(z); i++ {
		z[i-1] = x[i-1]>>s | x[i]<<rs
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// divWVW sets z = (xn<<(64*len(x)) + x) / y and returns the remainder. It
// walks from the most significant word down, carrying the running remainder
// into the high half of each 128-bit dividend. xn must be less than y.
func divWVW(z []uint64, xn uint64, x []uint64, y uint64) (r uint64) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// wordLen returns the number of words in x once leading zero words are
// dropped.
func wordLen(x []uint64) int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

// cmpVV compares two equal-length vectors from the most significant word down.
func cmpVV(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// quorem sets q = u / v and r = u % v. v must not be zero. q must have at
// least len(u) words and r at least len(v) words; both are cleared first.
// Neither may alias u or v.
func quorem(q, r, u, v []uint64) {
	clear(q)
	clear(r)

	vl, ul := wordLen(v), wordLen(u)
	if vl == 0 {
		panic(ErrDivisionByZero)
	}
	if ul < vl {
		copy(r, u[:ul])
		return
	}
	if vl == 1 {
		r[0] = divWVW(q[:ul], 0, u[:ul], v[0])
		return
	}
	quoremVV(q[:ul-vl+1], r[:vl], u[:ul], v[:vl])
}

// quoremVV is Knuth's algorithm D (TAOCP vol. 2, 4.3.1) over 64-bit words,
// with the quotient digit estimate refined against the second divisor word
// the way Hacker's Delight divlu does for two words.
//
// v must have at least two words with a non-zero top word and at most
// u1024Words words; len(u) must be at least len(v) and at most u2048Words.
// q receives len(u)-len(v)+1 words and r receives len(v) words.
func quoremVV(q, r, u, v []uint64) {
	n := len(v)
	m := len(u) - n

	var (
		vnBuf    [u1024Words]uint64
		unBuf    [u2048Words + 1]uint64
		qhatvBuf [u1024Words + 1]uint64
	)
	vn := vnBuf[:n]
	un := unBuf[:len(u)+1]
	qhatv := qhatvBuf[:n+1]

	// D1: normalise so the top divisor word has its high bit set.
	s := uint(bits.LeadingZeros64(v[n-1]))
	shlVU(vn, v, s)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	vtop, vnext := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words of the window. ujn can
		// never exceed vtop, so when they differ Div64 cannot overflow.
		qhat := ^uint64(0)
		if ujn := un[j+n]; ujn != vtop {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vtop)

			x1, x0 := bits.Mul64(qhat, vnext)
			ujn2 := un[j+n-2]
			for x1 > rhat || (x1 == rhat && x0 > ujn2) {
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					break
				}
				x1, x0 = bits.Mul64(qhat, vnext)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		if subVV(un[j:j+n+1], un[j:j+n+1], qhatv) != 0 {
			// D6: qhat was one too large; add the divisor back.
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalise the remainder.
	shrVU(r, un[:n], s)
}
