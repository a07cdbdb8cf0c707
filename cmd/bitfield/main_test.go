package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"Parse byte", []string{"-w", "8", "parse", "101001"}, exitOK, "41 0x29 0b00101001"},
		{"Set bit", []string{"-w", "8", "set", "41", "1"}, exitOK, "43 0x2B 0b00101011"},
		{"Clear bit", []string{"--width=8", "clear", "0b101000", "5"}, exitOK, "8 0x8 0b00001000"},
		{"Toggle bit", []string{"-w", "8", "toggle", "41", "0"}, exitOK, "40 0x28 0b00101000"},
		{"Test bit", []string{"-w", "16", "test", "0x8000", "15"}, exitOK, "true"},
		{"Get bit", []string{"-w", "16", "get", "0x8000", "14"}, exitOK, "0"},
		{"Mask", []string{"-w", "32", "mask", "32"}, exitOK, "4294967295 0xFFFFFFFF 0b11111111111111111111111111111111"},
		{"Count", []string{"-w", "8", "count", "8"}, exitOK, "ones=1 zeros=7"},
		{"Default width count", []string{"count", "0xFF"}, exitOK, "ones=8 zeros=56"},
		{"Set bits", []string{"-w", "16", "setbits", "0", "8", "4", "13"}, exitOK, "3328 0xD00 0b0000110100000000"},
		{"Get bits", []string{"-w", "16", "getbits", "0x0D00", "8", "4"}, exitOK, "13 0xD 0b0000000000001101"},
		{"Clear bits", []string{"-w", "16", "clearbits", "0x0D00", "8", "4"}, exitOK, "0 0x0 0b0000000000000000"},
		{"Format", []string{"-w", "8", "format", "0o17"}, exitOK, "15 0xF 0b00001111"},
		{"TLV", []string{"tlv", "84 02 CAFE"}, exitOK, "84 Context-specific primitive #4: CAFE"},

		{"Index out of range", []string{"-w", "8", "set", "0", "10"}, exitError, ""},
		{"Range out of range", []string{"-w", "8", "getbits", "0", "6", "4"}, exitError, ""},
		{"Invalid digit", []string{"-w", "8", "parse", "102"}, exitError, ""},
		{"Parse overflow", []string{"-w", "8", "parse", "100000000"}, exitError, ""},
		{"Bad TLV", []string{"tlv", "6F0584"}, exitError, ""},

		{"No command", nil, exitUsage, ""},
		{"Unknown command", []string{"rotate", "1"}, exitUsage, ""},
		{"Wrong arity", []string{"set", "1"}, exitUsage, ""},
		{"Bad width", []string{"-w", "12", "count", "1"}, exitUsage, ""},
		{"Value too wide for width", []string{"-w", "8", "count", "256"}, exitUsage, ""},
		{"Bad flag", []string{"--bogus", "count", "1"}, exitUsage, ""},
		{"Non-numeric width", []string{"-w", "abc", "count", "1"}, exitUsage, ""},
		{"Bad width for tlv", []string{"-w", "12", "tlv", "84 02 CAFE"}, exitUsage, ""},
		{"TLV without data", []string{"tlv"}, exitUsage, ""},
		{"Help", []string{"-h"}, exitOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Fatalf("run(%q) = %d; want %d (stderr: %s)", tt.args, code, tt.wantCode, stderr.String())
			}
			if got := strings.TrimRight(stdout.String(), "\n"); got != tt.wantOut {
				t.Errorf("run(%q) output = %q; want %q", tt.args, got, tt.wantOut)
			}
			if code != exitOK && stderr.Len() == 0 {
				t.Errorf("run(%q) failed without a message on stderr", tt.args)
			}
		})
	}
}

func TestRun_UsageListsCommands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	run([]string{"--help"}, &stdout, &stderr)

	usage := stderr.String()
	for _, name := range commandOrder {
		if !strings.Contains(usage, name) {
			t.Errorf("usage does not mention %q:\n%s", name, usage)
		}
	}
	if !strings.Contains(usage, "--width") {
		t.Errorf("usage does not mention --width:\n%s", usage)
	}
}

func TestRun_FlagErrorIsReported(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--bogus", "count", "1"}, &stdout, &stderr)

	if code != exitUsage {
		t.Fatalf("run() = %d; want %d", code, exitUsage)
	}
	msg := stderr.String()
	if !strings.Contains(msg, "bogus") {
		t.Errorf("stderr does not name the bad flag:\n%s", msg)
	}
	if !strings.Contains(msg, "Usage:") {
		t.Errorf("stderr does not show usage:\n%s", msg)
	}
}
