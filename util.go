package num

// RandSource is satisfied by *math/rand.Rand. It is not suitable for key
// material; use ReadU1024 with a source from the entropy package for that.
type RandSource interface {
	Uint64() uint64
}

// DifferenceU1024 subtracts the smaller of a and b from the larger.
func DifferenceU1024(a, b U1024) U1024 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerU1024(a, b U1024) U1024 {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerU1024(a, b U1024) U1024 {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
