package bits

import (
	"fmt"
	mathbits "math/bits"
)

// Bitmask returns a value with the low n bits set. n may be anything from 0
// to the width of T; Bitmask[T](Width[T]()) is all ones.
func Bitmask[T Unsigned](n uint) (T, error) {
	w := Width[T]()
	switch {
	case n > w:
		return 0, fmt.Errorf("%w: %d low bits of %d-bit value", ErrInvalidRange, n, w)
	case n == w:
		return ^T(0), nil
	}
	return T(1)<<n - 1, nil
}

// Ones returns the number of bits set in v, counted over the width of T.
func Ones[T Unsigned](v T) int {
	switch Width[T]() {
	case 8:
		return mathbits.OnesCount8(uint8(v))
	case 16:
		return mathbits.OnesCount16(uint16(v))
	case 32:
		return mathbits.OnesCount32(uint32(v))
	}
	return mathbits.OnesCount64(uint64(v))
}

// Zeros returns the number of bits of v that are not set.
func Zeros[T Unsigned](v T) int {
	return int(Width[T]()) - Ones(v)
}
