// Package sem defines the Tree: the language-agnostic intermediate
// representation that the lowering stage produces and every later pass
// consumes.  Trees are immutable once built.  A pass that wants to change a
// tree builds new nodes around the unchanged subtrees, so any node may be
// shared between several parents and read from several goroutines at once.
package sem

import "fmt"

// Tree is the parent interface for all nodes of the intermediate
// representation
type Tree interface {
	// Kind returns the node kind: it must be one of the kinds enumerated below
	Kind() int
}

// Enumeration of node kinds
const (
	NKTreeList = iota
	NKErrorNode
	NKReturnNode
	NKFunctionCall
	NKUnresolvedReference
	NKIfBranch
	NKElseIfBranch
	NKBinaryOperation
	NKMathematicalConstant
)

var kindNames = [...]string{
	NKTreeList:             "TreeList",
	NKErrorNode:            "ErrorNode",
	NKReturnNode:           "ReturnNode",
	NKFunctionCall:         "FunctionCall",
	NKUnresolvedReference:  "UnresolvedReference",
	NKIfBranch:             "IfBranch",
	NKElseIfBranch:         "ElseIfBranch",
	NKBinaryOperation:      "BinaryOperation",
	NKMathematicalConstant: "MathematicalConstant",
}

// KindName returns the name of a node kind as it appears in tree dumps
func KindName(kind int) string {
	if kind < 0 || kind >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", kind)
	}

	return kindNames[kind]
}

// mustTree enforces that a structurally required child is present.  A nil
// here is a bug in whatever pass built the node, never a property of the
// input, so it panics.
func mustTree(t Tree, node, field string) Tree {
	if t == nil {
		panic(fmt.Sprintf("sem: nil %s passed to %s", field, node))
	}

	return t
}

// cloneTrees copies a slice of trees so that the caller and the node never
// share a backing array
func cloneTrees(trees []Tree, node string) []Tree {
	cloned := make([]Tree, len(trees))
	for i, t := range trees {
		cloned[i] = mustTree(t, node, "element")
	}

	return cloned
}
