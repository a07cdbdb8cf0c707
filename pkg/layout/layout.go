// Package layout describes a fixed-width word as a set of named bit fields
// and decodes, encodes and describes words through it.
//
// A layout for an ISO 7816 first interindustry CLA byte, for instance:
//
//	cla := layout.MustNew[uint8]("CLA",
//		layout.Bit("Proprietary", 7),
//		layout.Bit("Further", 6),
//		layout.Bit("Chaining", 4),
//		layout.Bits("SecureMessaging", 3, 2),
//		layout.Bits("Channel", 1, 0),
//	)
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gregLibert/bitfield/pkg/bits"
)

var (
	ErrInvalidField   = errors.New("invalid field")
	ErrDuplicateField = errors.New("duplicate field")
	ErrOverlap        = errors.New("overlapping fields")
	ErrUnknownField   = errors.New("unknown field")
	ErrValueTooWide   = errors.New("value too wide for field")
)

// Field is a named, non-empty bit range within a word.
type Field struct {
	Name string
	bits.Range
}

// String returns the name followed by the bits the field covers, for
// example "Channel (bits 1-0)".
func (f Field) String() string {
	return fmt.Sprintf("%s (%s)", f.Name, f.Range)
}

// Bit returns a single-bit field at index i.
func Bit(name string, i uint) Field {
	return Field{Name: name, Range: bits.Range{Start: i, Length: 1}}
}

// Bits returns the field spanning bits high down to low, both included.
// A field with high < low is empty and rejected by New.
func Bits(name string, high, low uint) Field {
	if high < low {
		return Field{Name: name, Range: bits.Range{Start: low}}
	}
	return Field{Name: name, Range: bits.Range{Start: low, Length: high - low + 1}}
}

// FieldValue is the content of one field of a decoded word.
type FieldValue[T bits.Unsigned] struct {
	Field
	Value T
}

func (fv FieldValue[T]) String() string {
	return fmt.Sprintf("%s = %d", fv.Field, uint64(fv.Value))
}

// Layout is an ordered set of non-overlapping named fields over a word of
// type T. A Layout is immutable once built and safe for concurrent use.
type Layout[T bits.Unsigned] struct {
	name   string
	fields []Field
	masks  []T
	index  map[string]int
	used   T
}

// New builds a layout, checking every field against the width of T.
func New[T bits.Unsigned](name string, fields ...Field) (*Layout[T], error) {
	l := &Layout[T]{
		name:   name,
		fields: make([]Field, 0, len(fields)),
		masks:  make([]T, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: unnamed field at %s", ErrInvalidField, f.Range)
		}
		if f.Length == 0 {
			return nil, fmt.Errorf("%w: field %q is empty", ErrInvalidField, f.Name)
		}
		if _, ok := l.index[f.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}

		m, err := bits.RangeMask[T](f.Range)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidField, f.Name, err)
		}
		if l.used&m != 0 {
			return nil, fmt.Errorf("%w: %q (%s) shares bits with an earlier field", ErrOverlap, f.Name, f.Range)
		}

		l.used |= m
		l.index[f.Name] = len(l.fields)
		l.fields = append(l.fields, f)
		l.masks = append(l.masks, m)
	}

	return l, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// layouts.
func MustNew[T bits.Unsigned](name string, fields ...Field) *Layout[T] {
	l, err := New[T](name, fields...)
	if err != nil {
		panic(fmt.Sprintf("layout %s: %v", name, err))
	}
	return l
}

// Name returns the name given to New.
func (l *Layout[T]) Name() string {
	return l.name
}

// Fields returns the fields in declaration order.
func (l *Layout[T]) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

func (l *Layout[T]) lookup(name string) (int, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q in layout %s", ErrUnknownField, name, l.name)
	}
	return i, nil
}

// Get returns the value of the named field of v.
func (l *Layout[T]) Get(v T, name string) (T, error) {
	i, err := l.lookup(name)
	if err != nil {
		return 0, err
	}
	f := l.fields[i]
	return bits.GetBits(v, f.Start, f.Length)
}

// Set returns v with the named field replaced by x. Unlike bits.SetBits, a
// value that does not fit in the field is rejected rather than masked.
func (l *Layout[T]) Set(v T, name string, x T) (T, error) {
	i, err := l.lookup(name)
	if err != nil {
		return v, err
	}
	f := l.fields[i]

	if x > l.masks[i]>>f.Start {
		return v, fmt.Errorf("%w: %d in %q (%s)", ErrValueTooWide, x, f.Name, f.Range)
	}
	return bits.SetBits(v, f.Start, f.Length, x)
}

// Decode splits v into its fields, in declaration order.
func (l *Layout[T]) Decode(v T) []FieldValue[T] {
	out := make([]FieldValue[T], len(l.fields))
	for i, f := range l.fields {
		out[i] = FieldValue[T]{Field: f, Value: (v & l.masks[i]) >> f.Start}
	}
	return out
}

// Encode builds a word from named field values. Fields that are not named
// are left at zero.
func (l *Layout[T]) Encode(values map[string]T) (T, error) {
	var v T
	for name, x := range values {
		var err error
		if v, err = l.Set(v, name, x); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// Reserved returns the bits of v that no field covers.
func (l *Layout[T]) Reserved(v T) T {
	return v &^ l.used
}

// Describe renders one line per field, without a trailing newline:
//
//	Channel (bits 1-0): 0b11 (3)
func (l *Layout[T]) Describe(v T) string {
	lines := make([]string, 0, len(l.fields))
	for _, fv := range l.Decode(v) {
		lines = append(lines, fmt.Sprintf("%s: 0b%0*b (%d)",
			fv.Field, int(fv.Length), uint64(fv.Value), uint64(fv.Value)))
	}
	return strings.Join(lines, "\n")
}
