package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ParseHex constructs a byte slice from a series of hex strings. Spaces are
// ignored, so "00 A4 04 00" is accepted.
func ParseHex(parts ...string) ([]byte, error) {
	cleanHex := strings.ReplaceAll(strings.Join(parts, ""), " ", "")

	data, err := hex.DecodeString(cleanHex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex '%s': %w", cleanHex, err)
	}
	return data, nil
}

// Hex is like ParseHex but panics on invalid input. It is meant for test
// data and constants.
func Hex(parts ...string) []byte {
	data, err := ParseHex(parts...)
	if err != nil {
		panic(err.Error())
	}
	return data
}
