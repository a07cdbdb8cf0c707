package bits

import "fmt"

// Range identifies the contiguous bits [Start, Start+Length) of a word.
type Range struct {
	Start  uint
	Length uint
}

// Check validates r against a word of the given width. Start must lie inside
// the word and the range must not run past its most significant bit.
func (r Range) Check(width uint) error {
	if r.Start >= width {
		return fmt.Errorf("%w: start bit %d outside %d-bit value", ErrInvalidRange, r.Start, width)
	}
	if r.Length > width-r.Start {
		return fmt.Errorf("%w: %d bits from bit %d exceed %d-bit value", ErrInvalidRange, r.Length, r.Start, width)
	}
	return nil
}

// High returns the index of the most significant bit in r. It is only
// meaningful for non-empty ranges.
func (r Range) High() uint {
	return r.Start + r.Length - 1
}

func (r Range) String() string {
	switch r.Length {
	case 0:
		return fmt.Sprintf("empty at bit %d", r.Start)
	case 1:
		return fmt.Sprintf("bit %d", r.Start)
	}
	return fmt.Sprintf("bits %d-%d", r.High(), r.Start)
}

// RangeMask returns the bits covered by r set, in place.
func RangeMask[T Unsigned](r Range) (T, error) {
	if err := r.Check(Width[T]()); err != nil {
		return 0, err
	}
	m, err := Bitmask[T](r.Length)
	if err != nil {
		return 0, err
	}
	return m << r.Start, nil
}

// GetBits extracts the length bits of v starting at bit start, shifted down
// to bit 0.
func GetBits[T Unsigned](v T, start, length uint) (T, error) {
	field, err := RangeMask[T](Range{Start: start, Length: length})
	if err != nil {
		return 0, err
	}
	return (v & field) >> start, nil
}

// SetBits replaces the length bits of v starting at bit start with the low
// length bits of val. Bits of val above the field are discarded.
func SetBits[T Unsigned](v T, start, length uint, val T) (T, error) {
	field, err := RangeMask[T](Range{Start: start, Length: length})
	if err != nil {
		return v, err
	}
	return v&^field | (val<<start)&field, nil
}

// ClearBits returns v with the length bits starting at bit start set to 0.
func ClearBits[T Unsigned](v T, start, length uint) (T, error) {
	field, err := RangeMask[T](Range{Start: start, Length: length})
	if err != nil {
		return v, err
	}
	return v &^ field, nil
}
