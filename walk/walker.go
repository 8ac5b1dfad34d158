// Package walk lowers the C++ syntax tree of a function into a Tree.
//
// Lowering is total: every input produces a well-formed tree.  Constructs that
// cannot be lowered are replaced by error nodes and the rest of the function
// is lowered as usual.  The walker does no I/O; the substitutions it made are
// available afterwards as diagnostics.
package walk

import (
	"jsspec/sem"
	"jsspec/syntax"
	"reflect"
)

// Walker is the construct responsible for lowering a function.  A walker
// is not safe for concurrent use, but any number of walkers may run at once.
type Walker struct {
	// diagnostics lists every error node substitution in the order they were
	// made
	diagnostics []Diagnostic
}

// NewWalker creates a new walker
func NewWalker() *Walker {
	return &Walker{}
}

// Diagnostics returns the error node substitutions made so far
func (w *Walker) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), w.diagnostics...)
}

// Convert lowers a single function with a fresh walker
func Convert(fn *syntax.FunctionDeclaration) (*sem.FunctionDefinition, []Diagnostic) {
	w := NewWalker()
	fdef := w.WalkFunction(fn)
	return fdef, w.diagnostics
}

// WalkFunction lowers a function declaration into a function definition:
// each top level statement is lowered in order and those which contribute
// nothing are dropped
func (w *Walker) WalkFunction(fn *syntax.FunctionDeclaration) *sem.FunctionDefinition {
	var name string
	if fn.Name != nil {
		name = fn.Name.FullName()
	}

	var stmts []syntax.Statement
	if fn.Definition != nil {
		stmts = fn.Definition.Statements
	}

	return sem.NewFunctionDefinition(name, w.walkStatementList(stmts))
}

// -----------------------------------------------------------------------------

// walkNullable lowers any syntax node.  It returns nil when the node
// contributes nothing (which is also the result for a nil node).  The cases
// are tried in order and the first one to match wins.
func (w *Walker) walkNullable(stmt syntax.Statement) sem.Tree {
	if isNilNode(stmt) {
		return nil
	}

	switch v := stmt.(type) {
	case *syntax.VariableDeclaration:
		return w.walkVariableDeclaration(v)
	case *syntax.ReturnStatement:
		return w.walkReturnStatement(v)
	case *syntax.FunctionCall:
		return w.walkFunctionCall(v)
	case *syntax.Name:
		return w.walkName(v)
	case *syntax.IfStatement:
		return w.walkIfStatement(v)
	case *syntax.BlockStatement:
		return w.walkBlockStatement(v)
	case *syntax.AssignmentExpression:
		return w.walkAssignment(v)
	case *syntax.NumericLiteral:
		return w.walkNumericLiteral(v)
	}

	return w.substitute(stmt, UnknownNodeError())
}

// walkRequired lowers a node in a position that must hold a tree.  The parent
// is the node owning that position: it is blamed if the position is empty.
func (w *Walker) walkRequired(stmt, parent syntax.Statement) sem.Tree {
	if tree := w.walkNullable(stmt); tree != nil {
		return tree
	}

	if isNilNode(stmt) {
		return w.substitute(parent, EmptyTreeError())
	}

	return w.substitute(stmt, EmptyTreeError())
}

// walkPossiblyEmpty lowers a statement body: a body that contributes nothing
// is an empty tree list
func (w *Walker) walkPossiblyEmpty(stmt syntax.Statement) sem.Tree {
	if tree := w.walkNullable(stmt); tree != nil {
		return tree
	}

	return sem.NewTreeList()
}

// isNilNode reports whether a node is nil, including a nil pointer stored in
// the interface
func isNilNode(stmt syntax.Statement) bool {
	if stmt == nil {
		return true
	}

	v := reflect.ValueOf(stmt)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
