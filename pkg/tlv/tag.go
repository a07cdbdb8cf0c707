// Package tlv inspects BER-TLV (Basic Encoding Rules - Tag-Length-Value)
// data and decodes the bit structure of its tags.
//
// The first octet of a tag is laid out as follows (bit 7 most significant):
//
//	Bits 7-6: Class (Universal, Application, Context-specific, Private).
//	Bit 5:    Constructed (1) or primitive (0) encoding.
//	Bits 4-0: Tag number, or 11111 when the number continues in the
//	          following octets.
//
// Subsequent octets carry the tag number in base 128: bit 7 is set on every
// octet but the last and bits 6-0 hold the data.
package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gregLibert/bitfield/pkg/layout"
)

// Field names of IdentifierLayout.
const (
	FieldClass       = "Class"
	FieldConstructed = "Constructed"
	FieldNumber      = "Number"
)

// Field names of SubsequentLayout.
const (
	FieldMore = "More"
	FieldData = "Data"
)

// longFormNumber in the Number field announces subsequent octets.
const longFormNumber = 0x1F

// IdentifierLayout is the layout of the first octet of a tag.
var IdentifierLayout = layout.MustNew[uint8]("BER-TLV identifier",
	layout.Bits(FieldClass, 7, 6),
	layout.Bit(FieldConstructed, 5),
	layout.Bits(FieldNumber, 4, 0),
)

// SubsequentLayout is the layout of every tag octet after the first one in
// the long form.
var SubsequentLayout = layout.MustNew[uint8]("BER-TLV subsequent octet",
	layout.Bit(FieldMore, 7),
	layout.Bits(FieldData, 6, 0),
)

// field reads a field of one of the package layouts. The names are the
// constants the layouts are declared with, so a failed lookup is a
// programming error and panics rather than reading as zero.
func field(l *layout.Layout[uint8], b byte, name string) uint8 {
	v, err := l.Get(b, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Class is the tag class carried by bits 7-6 of the identifier octet.
type Class uint8

const (
	Universal Class = iota
	Application
	ContextSpecific
	Private
)

func (c Class) String() string {
	switch c {
	case Universal:
		return "Universal"
	case Application:
		return "Application"
	case ContextSpecific:
		return "Context-specific"
	case Private:
		return "Private"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Tag is a decoded BER-TLV tag.
type Tag struct {
	Raw         []byte
	Class       Class
	Constructed bool
	Number      uint64
}

// ParseTag decodes the octets of a single tag. Every octet must belong to
// the tag: a continuation that stops early or octets left after the last one
// are errors.
func ParseTag(raw []byte) (Tag, error) {
	if len(raw) == 0 {
		return Tag{}, fmt.Errorf("empty tag")
	}

	t := Tag{
		Raw:         append([]byte(nil), raw...),
		Class:       Class(field(IdentifierLayout, raw[0], FieldClass)),
		Constructed: field(IdentifierLayout, raw[0], FieldConstructed) == 1,
		Number:      uint64(field(IdentifierLayout, raw[0], FieldNumber)),
	}

	if t.Number != longFormNumber {
		if len(raw) > 1 {
			return Tag{}, fmt.Errorf("tag %X: %d octets after a single-octet tag", raw, len(raw)-1)
		}
		return t, nil
	}

	t.Number = 0
	for i, b := range raw[1:] {
		if t.Number>>57 != 0 {
			return Tag{}, fmt.Errorf("tag %X: number does not fit in 64 bits", raw)
		}
		t.Number = t.Number<<7 | uint64(field(SubsequentLayout, b, FieldData))

		if field(SubsequentLayout, b, FieldMore) == 0 {
			if rest := len(raw) - 2 - i; rest > 0 {
				return Tag{}, fmt.Errorf("tag %X: %d octets after the last tag octet", raw, rest)
			}
			return t, nil
		}
	}

	return Tag{}, fmt.Errorf("tag %X: truncated tag number", raw)
}

// ParseTagHex decodes a tag written in hex, as bertlv reports it.
func ParseTagHex(s string) (Tag, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Tag{}, fmt.Errorf("invalid tag '%s': %w", s, err)
	}
	return ParseTag(raw)
}

// String returns the tag in upper-case hex.
func (t Tag) String() string {
	return strings.ToUpper(hex.EncodeToString(t.Raw))
}

// Verbose returns the tag followed by its decoded class, encoding and number.
func (t Tag) Verbose() string {
	encoding := "primitive"
	if t.Constructed {
		encoding = "constructed"
	}
	return fmt.Sprintf("%s %s %s #%d", t, t.Class, encoding, t.Number)
}
