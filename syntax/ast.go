// Package syntax holds the C++ syntax tree produced by the upstream parser.
// Only the node kinds lowering cares about carry their full structure; every
// other kind is still a Statement so that it can be visited generically.
package syntax

import (
	"jsspec/logging"
	"strings"
)

// Statement represents any node of the C++ syntax tree: statements and
// expressions alike (an expression statement is just its expression)
type Statement interface {
	// Position is the range of source text the node spans.  It is nil when
	// the parser did not record one.
	Position() *logging.TextPosition

	// KindName is the parser's name for the kind of node
	KindName() string
}

// nodeBase is the base struct for all syntax nodes
type nodeBase struct {
	pos *logging.TextPosition
}

func (nb *nodeBase) Position() *logging.TextPosition {
	return nb.pos
}

// SetPosition sets the source range of a node
func (nb *nodeBase) SetPosition(pos *logging.TextPosition) {
	nb.pos = pos
}

// -----------------------------------------------------------------------------

// TranslationUnit is everything the parser produced for one C++ source file
type TranslationUnit struct {
	// SourcePath is the path to the original C++ file; it may be empty
	SourcePath string

	Functions []*FunctionDeclaration
}

// FunctionDeclaration is a function along with its definition
type FunctionDeclaration struct {
	nodeBase

	Name       *Name
	Definition *FunctionDefinition
}

func (*FunctionDeclaration) KindName() string { return "FunctionDeclaration" }

// FunctionDefinition is the body of a function
type FunctionDefinition struct {
	Statements []Statement
}

// -----------------------------------------------------------------------------

// VariableDeclaration declares a local variable.  InitialValue is nil if the
// declaration has no initializer.
type VariableDeclaration struct {
	nodeBase

	Name         *Name
	InitialValue Statement
}

func (*VariableDeclaration) KindName() string { return "VariableDeclaration" }

// ReturnStatement returns from a function.  Value is nil for `return;`.
type ReturnStatement struct {
	nodeBase

	Value Statement
}

func (*ReturnStatement) KindName() string { return "ReturnStatement" }

// FunctionCall is a call expression
type FunctionCall struct {
	nodeBase

	Callee    Statement
	Arguments []Statement
}

func (*FunctionCall) KindName() string { return "FunctionCall" }

// Name is a possibly qualified identifier: eg. `Foo::bar`
type Name struct {
	nodeBase

	Scope      []string
	Identifier string
}

func (*Name) KindName() string { return "Name" }

// NewName splits a qualified name into its scope and identifier
func NewName(fullName string) *Name {
	parts := strings.Split(fullName, "::")
	return &Name{
		Scope:      parts[:len(parts)-1],
		Identifier: parts[len(parts)-1],
	}
}

// FullName returns the fully qualified name joined by `::`
func (n *Name) FullName() string {
	if len(n.Scope) == 0 {
		return n.Identifier
	}

	return strings.Join(n.Scope, "::") + "::" + n.Identifier
}

// IfStatement is an if statement.  Else is nil when there is no else clause
// and is itself an IfStatement for `else if`.
type IfStatement struct {
	nodeBase

	Predicate Statement
	Then      Statement
	Else      Statement
}

func (*IfStatement) KindName() string { return "IfStatement" }

// BlockStatement is a braced sequence of statements
type BlockStatement struct {
	nodeBase

	Statements []Statement
}

func (*BlockStatement) KindName() string { return "BlockStatement" }

// AssignmentExpression is an assignment: `lhs = rhs` (compound forms carry
// their operator in Op)
type AssignmentExpression struct {
	nodeBase

	Op       string
	Lhs, Rhs Statement
}

func (*AssignmentExpression) KindName() string { return "AssignmentExpression" }

// NumericLiteral is a numeric literal exactly as spelled in the source
type NumericLiteral struct {
	nodeBase

	Value string
}

func (*NumericLiteral) KindName() string { return "NumericLiteral" }

// -----------------------------------------------------------------------------
// The kinds below are produced by the parser but have no lowering of their own.

// WhileStatement is a while loop
type WhileStatement struct {
	nodeBase

	Predicate Statement
	Body      Statement
}

func (*WhileStatement) KindName() string { return "WhileStatement" }

// ForStatement is a C-style for loop; any of its header parts may be nil
type ForStatement struct {
	nodeBase

	Init, Test, Update Statement
	Body               Statement
}

func (*ForStatement) KindName() string { return "ForStatement" }

// BinaryExpression applies a binary operator: eg. `a + b`
type BinaryExpression struct {
	nodeBase

	Op       string
	Lhs, Rhs Statement
}

func (*BinaryExpression) KindName() string { return "BinaryExpression" }

// UnaryExpression applies a unary operator: eg. `!a`
type UnaryExpression struct {
	nodeBase

	Op      string
	Operand Statement
}

func (*UnaryExpression) KindName() string { return "UnaryExpression" }

// StringLiteral is a string literal exactly as spelled in the source
type StringLiteral struct {
	nodeBase

	Value string
}

func (*StringLiteral) KindName() string { return "StringLiteral" }

// BooleanLiteral is `true` or `false`
type BooleanLiteral struct {
	nodeBase

	Value bool
}

func (*BooleanLiteral) KindName() string { return "BooleanLiteral" }

// Opaque is a node whose kind is unknown to jsspec.  Only its kind name is
// kept.
type Opaque struct {
	nodeBase

	Kind string
}

func (o *Opaque) KindName() string { return o.Kind }
