package main

import (
	"fmt"
	"strconv"

	"github.com/gregLibert/bitfield/pkg/bits"
)

// execute runs a word command on T. Arity has already been checked.
func execute[T bits.Unsigned](name string, args []string) (string, error) {
	if name == "parse" {
		v, err := bits.Parse[T](args[0])
		if err != nil {
			return "", err
		}
		return formatWord(v), nil
	}

	// mask takes a bit count; every other command starts with a value.
	if name == "mask" {
		n, err := parseIndex(args[0])
		if err != nil {
			return "", err
		}
		m, err := bits.Bitmask[T](n)
		if err != nil {
			return "", err
		}
		return formatWord(m), nil
	}

	v, err := parseWord[T](args[0])
	if err != nil {
		return "", err
	}

	switch name {
	case "format":
		return formatWord(v), nil
	case "count":
		return fmt.Sprintf("ones=%d zeros=%d", bits.Ones(v), bits.Zeros(v)), nil
	case "getbits", "clearbits", "setbits":
		return executeRange(name, v, args[1:])
	}

	i, err := parseIndex(args[1])
	if err != nil {
		return "", err
	}

	switch name {
	case "set":
		return wordResult[T](bits.Set(v, i))
	case "clear":
		return wordResult[T](bits.Clear(v, i))
	case "toggle":
		return wordResult[T](bits.Toggle(v, i))
	case "test":
		set, err := bits.IsSet(v, i)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(set), nil
	case "get":
		bit, err := bits.Get(v, i)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(bit), 10), nil
	}

	return "", fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func executeRange[T bits.Unsigned](name string, v T, args []string) (string, error) {
	start, err := parseIndex(args[0])
	if err != nil {
		return "", err
	}
	length, err := parseIndex(args[1])
	if err != nil {
		return "", err
	}

	switch name {
	case "getbits":
		return wordResult[T](bits.GetBits(v, start, length))
	case "clearbits":
		return wordResult[T](bits.ClearBits(v, start, length))
	}

	x, err := parseWord[T](args[2])
	if err != nil {
		return "", err
	}
	return wordResult[T](bits.SetBits(v, start, length, x))
}

func parseWord[T bits.Unsigned](s string) (T, error) {
	v, err := strconv.ParseUint(s, 0, int(bits.Width[T]()))
	if err != nil {
		return 0, fmt.Errorf("%w: value %q: %w", errUsage, s, err)
	}
	return T(v), nil
}

func parseIndex(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q: %w", errUsage, s, err)
	}
	return uint(v), nil
}

func wordResult[T bits.Unsigned](v T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return formatWord(v), nil
}

// formatWord prints v as "<decimal> 0x<hex> 0b<binary>", the binary part
// padded to the width of T.
func formatWord[T bits.Unsigned](v T) string {
	return fmt.Sprintf("%d 0x%X 0b%s", uint64(v), uint64(v), bits.Format(v))
}
