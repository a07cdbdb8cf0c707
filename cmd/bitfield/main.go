// Command bitfield applies bit operations to integers from the command line.
//
// Usage:
//
//	bitfield [-w WIDTH] COMMAND ARGS...
//
// Values accept Go integer literal syntax (0b101, 0x2A, 0o17, 42).
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gregLibert/bitfield/pkg/tlv"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks errors caused by how the command was invoked rather than by
// the operation itself.
var errUsage = errors.New("usage")

// command describes one sub-command: how many arguments it takes and what
// they are called in the usage text.
type command struct {
	args    []string
	summary string
}

var commands = map[string]command{
	"parse":     {[]string{"BITS"}, "parse a string of binary digits"},
	"format":    {[]string{"V"}, "print V in every base"},
	"set":       {[]string{"V", "I"}, "set bit I of V"},
	"clear":     {[]string{"V", "I"}, "clear bit I of V"},
	"toggle":    {[]string{"V", "I"}, "flip bit I of V"},
	"test":      {[]string{"V", "I"}, "report whether bit I of V is set"},
	"get":       {[]string{"V", "I"}, "print bit I of V as 0 or 1"},
	"mask":      {[]string{"N"}, "a value with the low N bits set"},
	"count":     {[]string{"V"}, "count set and unset bits of V"},
	"getbits":   {[]string{"V", "START", "LEN"}, "extract LEN bits of V from START"},
	"setbits":   {[]string{"V", "START", "LEN", "X"}, "replace LEN bits of V from START with X"},
	"clearbits": {[]string{"V", "START", "LEN"}, "clear LEN bits of V from START"},
	"tlv":       {[]string{"HEX..."}, "decode the tags of BER-TLV data"},
}

var commandOrder = []string{
	"parse", "format", "set", "clear", "toggle", "test", "get",
	"mask", "count", "getbits", "setbits", "clearbits", "tlv",
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bitfield: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	fs := pflag.NewFlagSet("bitfield", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.UintP("width", "w", 64, "word width in bits: 8, 16, 32 or 64")
	fs.Usage = func() { showUsage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		log.Printf("%v", err)
		fs.Usage()
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}

	out, err := dispatch(*width, rest[0], rest[1:])
	if err != nil {
		log.Printf("%v", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}

	fmt.Fprintln(stdout, out)
	return exitOK
}

func showUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Usage: bitfield [OPTIONS] COMMAND ARGS...")
	fmt.Fprintln(w, "\nCommands:")
	for _, name := range commandOrder {
		c := commands[name]
		fmt.Fprintf(w, "  %-10s %-18s %s\n", name, strings.Join(c.args, " "), c.summary)
	}
	fmt.Fprintln(w, "\nOptions:")
	fmt.Fprint(w, fs.FlagUsages())
}

var widths = map[uint]bool{8: true, 16: true, 32: true, 64: true}

// dispatch checks the width, the command and its arity, then picks the word
// type for the requested width.
func dispatch(width uint, name string, args []string) (string, error) {
	if !widths[width] {
		return "", fmt.Errorf("%w: unsupported width %d (want 8, 16, 32 or 64)", errUsage, width)
	}

	c, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	if name == "tlv" {
		if len(args) == 0 {
			return "", fmt.Errorf("%w: tlv needs at least one HEX argument", errUsage)
		}
		return inspectTLV(args)
	}

	if len(args) != len(c.args) {
		return "", fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, name, len(c.args), len(args))
	}

	switch width {
	case 8:
		return execute[uint8](name, args)
	case 16:
		return execute[uint16](name, args)
	case 32:
		return execute[uint32](name, args)
	case 64:
		return execute[uint64](name, args)
	}
	return "", fmt.Errorf("%w: unsupported width %d (want 8, 16, 32 or 64)", errUsage, width)
}

func inspectTLV(args []string) (string, error) {
	data, err := tlv.ParseHex(args...)
	if err != nil {
		return "", err
	}
	nodes, err := tlv.Inspect(data)
	if err != nil {
		return "", err
	}
	return tlv.Describe(nodes), nil
}
