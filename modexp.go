package num

// ModMul returns u*n mod m. The product is formed at full width before it
// is reduced.
func (u U1024) ModMul(n, m U1024) (U1024, error) {
	return u.MulFull(n).Mod(m)
}

// ModExp returns u**exp mod m using right-to-left binary exponentiation, so
// the number of squarings is exp.BitLen() rather than the value of exp.
//
// A zero modulus returns ErrDivisionByZero. If m == 1 the result is 0, and
// for exp == 0 it is 1 mod m.
func (u U1024) ModExp(exp, m U1024) (U1024, error) {
	if m == zeroU1024 {
		return U1024{}, ErrDivisionByZero
	}

	base := u.Rem(m)
	result := oneU1024.Rem(m)

	for exp != zeroU1024 {
		if exp.n[0]&1 == 1 {
			result = result.MulFull(base).Rem(m)
		}
		exp = exp.Rsh(1)
		if exp == zeroU1024 {
			break // the last squaring would never be used
		}
		base = base.MulFull(base).Rem(m)
	}
	return result, nil
}
