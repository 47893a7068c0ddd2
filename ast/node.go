package ast

import (
	"errors"
	"fmt"
)

// Node represents one vertex of the expression tree. Value nodes own their
// payload; list nodes own an ordered sequence of children. The tree is
// acyclic by construction since lists are assembled bottom-up from already
// completed children.
type Node struct {
	p *Node

	nt NodeType
	v  interface{}
}

func newNode(nt NodeType, v interface{}) *Node {
	return &Node{
		nt: nt,
		v:  v,
	}
}

// NewNumber creates and returns a node of type "number"
func NewNumber(v float64) *Node {
	return newNode(NodeTypeNumber, v)
}

// NewString creates and returns a node of type "string". The value is the
// literal exactly as scanned, surrounding quotes included.
func NewString(v string) *Node {
	return newNode(NodeTypeString, v)
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(v string) *Node {
	return newNode(NodeTypeSymbol, v)
}

// NewList creates and returns an empty node of type "list"
func NewList() *Node {
	return newNode(NodeTypeList, []*Node{})
}

// Push appends a child node to a node of type "list". The child keeps a
// parent pointer for navigation only; ownership stays with the list.
func (n *Node) Push(node *Node) error {
	if !n.IsList() {
		return errors.New("nodes of type value can't accept children")
	}
	n.v = append(n.v.([]*Node), node)
	node.p = n
	return nil
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the raw value of the node
func (n Node) Value() interface{} {
	return n.v
}

// Float64 returns the numeric payload of a node of type "number"
func (n Node) Float64() float64 {
	return n.v.(float64)
}

// Text returns the textual payload of a node of type "string" or "symbol"
func (n Node) Text() string {
	return n.v.(string)
}

// List returns all the children elements of a node of type "list"
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// IsList returns true if the node can hold children
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// Parent returns the list the node was pushed onto, if any
func (n *Node) Parent() *Node {
	return n.p
}

func (n Node) String() string {
	if n.IsList() {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.v)
}
