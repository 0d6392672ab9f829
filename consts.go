package num

const (
	maxUint64 = 1<<64 - 1

	u1024Words = 16
	u1024Bytes = u1024Words * 8
	u1024Bits  = u1024Words * 64

	u2048Words = 2 * u1024Words
	u2048Bytes = u2048Words * 8
	u2048Bits  = u2048Words * 64

	// u1024Digits is the number of decimal digits in MaxU1024, which is
	// roughly 1.797e308.
	u1024Digits = 309

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU1024 = U1024{n: allOnes1024()}
	MaxU2048 = U2048{n: allOnes2048()}

	zeroU1024 U1024
	oneU1024  = U1024From64(1)
)

func allOnes1024() (out [u1024Words]uint64) {
	for i := range out {
		out[i] = maxUint64
	}
	return out
}

func allOnes2048() (out [u2048Words]uint64) {
	for i := range out {
		out[i] = maxUint64
	}
	return out
}
