package num

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// m521 is the Mersenne prime 2^521 - 1.
var m521 = u64(1).Lsh(521).Dec()

func TestU1024ModExp(t *testing.T) {
	for idx, tc := range []struct {
		b, e, m, r U1024
	}{
		{b: u64(4), e: u64(13), m: u64(497), r: u64(445)},
		{b: u64(2), e: u64(10), m: u64(1000), r: u64(24)},
		{b: u64(7), e: u64(0), m: u64(13), r: u64(1)},
		{b: u64(0), e: u64(0), m: u64(13), r: u64(1)},
		{b: u64(0), e: u64(5), m: u64(13), r: u64(0)},
		{b: u64(7), e: u64(0), m: u64(1), r: u64(0)},
		{b: MaxU1024, e: MaxU1024, m: u64(1), r: u64(0)},
		{b: u64(3), e: m521.Dec(), m: m521, r: u64(1)}, // Fermat
		{b: MaxU1024, e: u64(2), m: MaxU1024, r: u64(0)},
		{b: MaxU1024.Dec(), e: u64(3), m: MaxU1024, r: MaxU1024.Dec()}, // (-1)^3
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, err := tc.b.ModExp(tc.e, tc.m)
			tt.MustOK(err)
			tt.MustEqual(tc.r.String(), r.String())
		})
	}
}

func TestU1024ModExpZeroModulus(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := u64(4).ModExp(u64(13), U1024{})
	tt.MustEqual(ErrDivisionByZero, err)

	_, err = u64(4).ModMul(u64(13), U1024{})
	tt.MustEqual(ErrDivisionByZero, err)
}

func TestU1024ModExpRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	for i := 0; i < 100; i++ {
		b := RandU1024(rng)
		e := RandU1024(rng).Rsh(uint(rng.Intn(u1024Bits)))
		m := RandU1024(rng).Rsh(uint(rng.Intn(u1024Bits))).SetBit(0, 1)

		r, err := b.ModExp(e, m)
		tt.MustOK(err)

		expected := new(big.Int).Exp(b.AsBigInt(), e.AsBigInt(), m.AsBigInt())
		tt.MustEqual(expected.String(), r.String(), "%s**%s mod %s", b, e, m)
		tt.MustAssert(r.LessThan(m))
	}
}

func TestU1024ModMul(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(globalRNG.Int63()))

	for i := 0; i < 500; i++ {
		a, b := RandU1024(rng), RandU1024(rng)
		m := RandU1024(rng).Rsh(uint(rng.Intn(u1024Bits))).SetBit(0, 1)

		r, err := a.ModMul(b, m)
		tt.MustOK(err)

		expected := new(big.Int).Mul(a.AsBigInt(), b.AsBigInt())
		expected.Mod(expected, m.AsBigInt())
		tt.MustEqual(expected.String(), r.String())
	}
}

func BenchmarkU1024ModExp(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	base, exp, m := RandU1024(rng), RandU1024(rng), RandU1024(rng).SetBit(1023, 1).SetBit(0, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchU1024Result, _ = base.ModExp(exp, m)
	}
}

func BenchmarkBigIntExp(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	base, exp, m := RandU1024(rng), RandU1024(rng), RandU1024(rng).SetBit(1023, 1).SetBit(0, 1)
	bb, be, bm := base.AsBigInt(), exp.AsBigInt(), m.AsBigInt()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = new(big.Int).Exp(bb, be, bm)
	}
}
