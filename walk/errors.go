package walk

import (
	"jsspec/logging"
	"jsspec/sem"
	"jsspec/syntax"
	"sync"
)

// Each recurring failure is represented by one shared error node.  They are
// built on first use and only ever read afterwards.
var (
	initializedDeclarationError = sync.OnceValue(func() *sem.ErrorNode {
		return sem.NewErrorNode("Encountered variable declaration with initial value")
	})

	unknownNodeError = sync.OnceValue(func() *sem.ErrorNode {
		return sem.NewErrorNode("Encountered unknown C++ AST node")
	})

	emptyTreeError = sync.OnceValue(func() *sem.ErrorNode {
		return sem.NewErrorNode("AST conversion unexpectedly produced empty tree")
	})

	unrepresentableLiteralError = sync.OnceValue(func() *sem.ErrorNode {
		return sem.NewErrorNode("Encountered numeric literal that does not fit in a 64-bit integer")
	})
)

// InitializedDeclarationError is substituted for a variable declaration with
// an initializer
func InitializedDeclarationError() *sem.ErrorNode {
	return initializedDeclarationError()
}

// UnknownNodeError is substituted for any node kind the walker does not
// recognize
func UnknownNodeError() *sem.ErrorNode {
	return unknownNodeError()
}

// EmptyTreeError is substituted when a position that requires a tree lowered
// to nothing.  Seeing it means the walker itself has a bug.
func EmptyTreeError() *sem.ErrorNode {
	return emptyTreeError()
}

// UnrepresentableLiteralError is substituted for numeric literals that are
// not integers or do not fit in an int64
func UnrepresentableLiteralError() *sem.ErrorNode {
	return unrepresentableLiteralError()
}

// -----------------------------------------------------------------------------

// Diagnostic records one substitution of an error node
type Diagnostic struct {
	// Message is the message of the substituted error node
	Message string

	// NodeKind is the kind name of the offending syntax node
	NodeKind string

	// Position is the source range of the offending node; it may be nil
	Position *logging.TextPosition
}

// substitute records that the given error node replaces the lowering of a
// syntax node and returns it
func (w *Walker) substitute(at syntax.Statement, en *sem.ErrorNode) sem.Tree {
	diag := Diagnostic{Message: en.Message()}
	if !isNilNode(at) {
		diag.NodeKind = at.KindName()
		diag.Position = at.Position()
	}

	w.diagnostics = append(w.diagnostics, diag)
	return en
}
