package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Bytes computes the xxHash64 of the given byte slice.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Coefficients computes the xxHash64 of a tag byte followed by the IEEE 754 bits of
// each coefficient in little-endian order. Negative zero is folded into zero so that
// equations that compare equal hash equally.
func Coefficients(tag uint8, coeffs []float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	buf[0] = tag
	_, _ = d.Write(buf[:1])

	for _, c := range coeffs {
		if c == 0 {
			c = 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
