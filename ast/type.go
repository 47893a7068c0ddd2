package ast

// NodeType represents the type of an AST node
type NodeType uint8

// Node types
const (
	nodeTypeValue  NodeType = 16
	nodeTypeVector NodeType = 32

	NodeTypeNumber = nodeTypeValue | 1
	NodeTypeString = nodeTypeValue | 2
	NodeTypeSymbol = nodeTypeValue | 4

	NodeTypeList = nodeTypeVector | 1
)

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber: "number",
	NodeTypeString: "string",
	NodeTypeSymbol: "symbol",
	NodeTypeList:   "list",
}

func (nt NodeType) String() string {
	if s, ok := nodeTypeName[nt]; ok {
		return s
	}
	return ""
}
