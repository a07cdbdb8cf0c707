// Package bits provides bit and bit-range operations on fixed-width unsigned
// integers (8, 16, 32 and 64 bits).
//
// Bit indices are zero-based, 0 being the least significant bit. Every
// operation checks its index or range against the width of the value's type
// and returns an error instead of wrapping or silently truncating. Operations
// return the new value; nothing is modified in place:
//
//	v, err := bits.Set(v, 3)
package bits

import (
	"fmt"
	mathbits "math/bits"
)

// Unsigned is the set of types the package operates on. Signed integers and
// the platform-sized uint and uintptr are not part of it.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in T.
func Width[T Unsigned]() uint {
	var zero T
	return uint(mathbits.Len64(uint64(^zero)))
}

func checkIndex[T Unsigned](i uint) error {
	if w := Width[T](); i >= w {
		return fmt.Errorf("%w: bit %d outside [0, %d)", ErrInvalidIndex, i, w)
	}
	return nil
}

// Mask returns a value with only bit i set.
func Mask[T Unsigned](i uint) (T, error) {
	if err := checkIndex[T](i); err != nil {
		return 0, err
	}
	return T(1) << i, nil
}

// Set returns v with bit i set to 1.
func Set[T Unsigned](v T, i uint) (T, error) {
	m, err := Mask[T](i)
	if err != nil {
		return v, err
	}
	return v | m, nil
}

// Clear returns v with bit i set to 0.
func Clear[T Unsigned](v T, i uint) (T, error) {
	m, err := Mask[T](i)
	if err != nil {
		return v, err
	}
	return v &^ m, nil
}

// Toggle returns v with bit i flipped.
func Toggle[T Unsigned](v T, i uint) (T, error) {
	m, err := Mask[T](i)
	if err != nil {
		return v, err
	}
	return v ^ m, nil
}

// IsSet reports whether bit i of v is 1.
func IsSet[T Unsigned](v T, i uint) (bool, error) {
	m, err := Mask[T](i)
	if err != nil {
		return false, err
	}
	return v&m != 0, nil
}

// IsClear reports whether bit i of v is 0.
func IsClear[T Unsigned](v T, i uint) (bool, error) {
	set, err := IsSet(v, i)
	if err != nil {
		return false, err
	}
	return !set, nil
}

// Get returns bit i of v as 0 or 1.
func Get[T Unsigned](v T, i uint) (uint, error) {
	set, err := IsSet(v, i)
	if err != nil || !set {
		return 0, err
	}
	return 1, nil
}
