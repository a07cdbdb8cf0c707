package tlv

import (
	"bytes"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    []byte
		wantErr bool
	}{
		{
			name:   "Simple Join",
			inputs: []string{"00", "A4"},
			want:   []byte{0x00, 0xA4},
		},
		{
			name:   "With Spaces",
			inputs: []string{"00 A4", " 04 00 "},
			want:   []byte{0x00, 0xA4, 0x04, 0x00},
		},
		{
			name:   "Mixed Case",
			inputs: []string{"ca", "FE"},
			want:   []byte{0xCA, 0xFE},
		},
		{
			name:    "Invalid Hex",
			inputs:  []string{"ZZ"},
			wantErr: true,
		},
		{
			name:    "Odd Length",
			inputs:  []string{"123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.inputs...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ParseHex() = %X, want %X", got, tt.want)
			}
		})
	}
}

func TestHex_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Hex(\"123\") should have panicked")
		}
	}()
	Hex("123")
}
