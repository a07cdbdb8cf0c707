package tlv

import (
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"
)

// Node is one decoded TLV packet. Value holds the raw value bytes; for
// constructed tags it is the encoding of Children.
type Node struct {
	Tag      Tag
	Depth    int
	Value    []byte
	Children []Node
}

// Inspect decodes raw BER-TLV data and the tag of every packet in it.
func Inspect(data []byte) ([]Node, error) {
	packets, err := bertlv.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("bertlv decode failed: %w", err)
	}
	return fromPackets(packets, 0)
}

func fromPackets(packets []bertlv.TLV, depth int) ([]Node, error) {
	nodes := make([]Node, 0, len(packets))

	for _, p := range packets {
		tag, err := ParseTagHex(p.Tag)
		if err != nil {
			return nil, err
		}

		n := Node{Tag: tag, Depth: depth, Value: p.Value}

		if len(p.TLVs) > 0 {
			if n.Value, err = bertlv.Encode(p.TLVs); err != nil {
				return nil, fmt.Errorf("re-encoding children of %s: %w", tag, err)
			}
			if n.Children, err = fromPackets(p.TLVs, depth+1); err != nil {
				return nil, err
			}
		}

		nodes = append(nodes, n)
	}

	return nodes, nil
}

// Describe renders nodes as an indented tree, one line per node and without
// a trailing newline. Primitive values are shown in hex.
func Describe(nodes []Node) string {
	var lines []string
	walk(nodes, func(n Node) {
		indent := strings.Repeat("  ", n.Depth)
		if n.Tag.Constructed {
			lines = append(lines, fmt.Sprintf("%s%s (%d bytes)", indent, n.Tag.Verbose(), len(n.Value)))
			return
		}
		lines = append(lines, fmt.Sprintf("%s%s: %X", indent, n.Tag.Verbose(), n.Value))
	})
	return strings.Join(lines, "\n")
}

func walk(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		walk(n.Children, fn)
	}
}
