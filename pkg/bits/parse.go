package bits

import "fmt"

// Parse reads a string of '0' and '1' digits, most significant first, into a
// value of type T. The empty string parses as 0 and leading zeros are
// ignored. Any other character is an ErrInvalidCharacter, and a set bit that
// would not fit in T is an ErrOverflow.
func Parse[T Unsigned](s string) (T, error) {
	var v T
	top := T(1) << (Width[T]() - 1)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return 0, fmt.Errorf("%w: %q at offset %d of %q", ErrInvalidCharacter, c, i, s)
		}
		if v&top != 0 {
			return 0, fmt.Errorf("%w: %q needs more than %d bits", ErrOverflow, s, Width[T]())
		}
		v = v<<1 | T(c-'0')
	}

	return v, nil
}

// MustParse is like Parse but panics on error. It is meant for constants and
// tests.
func MustParse[T Unsigned](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("invalid input '%s': %v", s, err))
	}
	return v
}

// Format returns v as binary digits, zero-padded to the width of T.
func Format[T Unsigned](v T) string {
	return fmt.Sprintf("%0*b", int(Width[T]()), uint64(v))
}
