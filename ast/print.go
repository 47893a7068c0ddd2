package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode transforms a node back into source text form. Feeding the result
// through the scanner and parser again yields an equivalent tree.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, c := range n.List() {
			nodes = append(nodes, encodeNode(c))
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case NodeTypeNumber:
		return strconv.FormatFloat(n.Float64(), 'g', -1, 64)

	case NodeTypeString, NodeTypeSymbol:
		// strings already carry their quotes
		return n.Text()

	default:
		panic("unknown node type")
	}
}

// Sprint returns an indented human-readable representation of a node
func Sprint(n *Node) string {
	var b strings.Builder
	sprintLevel(&b, n, 0)
	return b.String()
}

// Print displays a human-readable representation of a node
func Print(n *Node) {
	fmt.Print(Sprint(n))
}

func sprintLevel(b *strings.Builder, n *Node, level int) {
	if n == nil {
		b.WriteString(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(b, "%s(%s)", indent, n.Type())

	if n.IsList() {
		b.WriteString("\n")
		for _, c := range n.List() {
			sprintLevel(b, c, level+1)
		}
		return
	}

	fmt.Fprintf(b, ": %v\n", n.Value())
}
