package syntax

import (
	"errors"
	"fmt"
	"jsspec/logging"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// tomlDump represents a syntax dump as it is encoded in TOML
type tomlDump struct {
	Source    string          `toml:"source,omitempty"`
	Functions []*tomlFunction `toml:"functions"`
}

// tomlFunction represents a function declaration as it is encoded in TOML
type tomlFunction struct {
	Name       string      `toml:"name"`
	Span       []int       `toml:"span,omitempty"`
	Statements []*tomlNode `toml:"statements"`
}

// tomlNode represents any syntax node as it is encoded in TOML.  Which of the
// fields are meaningful depends on the kind.
type tomlNode struct {
	Kind  string `toml:"kind"`
	Span  []int  `toml:"span,omitempty"`
	Name  string `toml:"name,omitempty"`
	Value string `toml:"value,omitempty"`
	Op    string `toml:"op,omitempty"`

	Predicate   *tomlNode `toml:"predicate,omitempty"`
	Then        *tomlNode `toml:"then,omitempty"`
	Else        *tomlNode `toml:"else,omitempty"`
	Body        *tomlNode `toml:"body,omitempty"`
	Callee      *tomlNode `toml:"callee,omitempty"`
	Lhs         *tomlNode `toml:"lhs,omitempty"`
	Rhs         *tomlNode `toml:"rhs,omitempty"`
	Operand     *tomlNode `toml:"operand,omitempty"`
	Initializer *tomlNode `toml:"initializer,omitempty"`
	Expr        *tomlNode `toml:"expr,omitempty"`
	Init        *tomlNode `toml:"init,omitempty"`
	Test        *tomlNode `toml:"test,omitempty"`
	Update      *tomlNode `toml:"update,omitempty"`

	Arguments  []*tomlNode `toml:"arguments,omitempty"`
	Statements []*tomlNode `toml:"statements,omitempty"`
}

// LoadDump loads a syntax dump from a file.  A relative source path in the
// dump is taken relative to `sourceRoot`, or to the directory of the dump if
// `sourceRoot` is empty.
func LoadDump(path, sourceRoot string) (*TranslationUnit, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tu, err := DecodeDump(buff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if sourceRoot == "" {
		sourceRoot = filepath.Dir(path)
	}

	if tu.SourcePath != "" && !filepath.IsAbs(tu.SourcePath) {
		tu.SourcePath = filepath.Join(sourceRoot, tu.SourcePath)
	}

	return tu, nil
}

// DecodeDump decodes a syntax dump.  Child tables that are missing decode to
// nil statements: it is up to the consumer to decide what a missing child
// means.  Only malformed TOML, nodes without a kind and malformed spans are
// errors.
func DecodeDump(buff []byte) (*TranslationUnit, error) {
	td := &tomlDump{}
	if err := toml.Unmarshal(buff, td); err != nil {
		return nil, err
	}

	tu := &TranslationUnit{SourcePath: td.Source}
	for i, tf := range td.Functions {
		fn, err := decodeFunction(tf)
		if err != nil {
			return nil, fmt.Errorf("function %d (%s): %w", i, tf.Name, err)
		}

		tu.Functions = append(tu.Functions, fn)
	}

	return tu, nil
}

// decodeFunction converts a TOML function into a function declaration
func decodeFunction(tf *tomlFunction) (*FunctionDeclaration, error) {
	if tf.Name == "" {
		return nil, errors.New("function is missing its name")
	}

	fn := &FunctionDeclaration{
		Name:       NewName(tf.Name),
		Definition: &FunctionDefinition{},
	}

	pos, err := decodeSpan(tf.Span)
	if err != nil {
		return nil, err
	}
	fn.SetPosition(pos)

	if fn.Definition.Statements, err = decodeNodeList(tf.Statements); err != nil {
		return nil, err
	}

	return fn, nil
}

// decodeSpan converts a `[startLine, startCol, endLine, endCol]` array into a
// text position.  An absent span is a nil position.
func decodeSpan(span []int) (*logging.TextPosition, error) {
	switch len(span) {
	case 0:
		return nil, nil
	case 4:
		return &logging.TextPosition{
			StartLn:  span[0],
			StartCol: span[1],
			EndLn:    span[2],
			EndCol:   span[3],
		}, nil
	default:
		return nil, fmt.Errorf("span must have 4 elements, not %d", len(span))
	}
}

// decodeNodeList decodes a list of nodes preserving their order
func decodeNodeList(tnodes []*tomlNode) ([]Statement, error) {
	stmts := make([]Statement, 0, len(tnodes))
	for _, tn := range tnodes {
		stmt, err := decodeNode(tn)
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// decodeNode converts a TOML node into a syntax node.  A nil node decodes to
// a nil statement.
func decodeNode(tn *tomlNode) (Statement, error) {
	if tn == nil {
		return nil, nil
	}

	if tn.Kind == "" {
		return nil, errors.New("node is missing its kind")
	}

	pos, err := decodeSpan(tn.Span)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tn.Kind, err)
	}

	d := &nodeDecoder{}
	var node interface {
		Statement
		SetPosition(*logging.TextPosition)
	}

	switch tn.Kind {
	case "VariableDeclaration":
		vd := &VariableDeclaration{InitialValue: d.decode(tn.Initializer)}
		if tn.Name != "" {
			vd.Name = NewName(tn.Name)
		}
		node = vd
	case "ReturnStatement":
		node = &ReturnStatement{Value: d.decode(tn.Expr)}
	case "FunctionCall":
		node = &FunctionCall{Callee: d.decode(tn.Callee), Arguments: d.decodeList(tn.Arguments)}
	case "Name":
		node = NewName(tn.Name)
	case "IfStatement":
		node = &IfStatement{
			Predicate: d.decode(tn.Predicate),
			Then:      d.decode(tn.Then),
			Else:      d.decode(tn.Else),
		}
	case "BlockStatement":
		node = &BlockStatement{Statements: d.decodeList(tn.Statements)}
	case "AssignmentExpression":
		node = &AssignmentExpression{Op: opOrDefault(tn.Op, "="), Lhs: d.decode(tn.Lhs), Rhs: d.decode(tn.Rhs)}
	case "NumericLiteral":
		node = &NumericLiteral{Value: tn.Value}
	case "WhileStatement":
		node = &WhileStatement{Predicate: d.decode(tn.Predicate), Body: d.decode(tn.Body)}
	case "ForStatement":
		node = &ForStatement{
			Init:   d.decode(tn.Init),
			Test:   d.decode(tn.Test),
			Update: d.decode(tn.Update),
			Body:   d.decode(tn.Body),
		}
	case "BinaryExpression":
		node = &BinaryExpression{Op: tn.Op, Lhs: d.decode(tn.Lhs), Rhs: d.decode(tn.Rhs)}
	case "UnaryExpression":
		node = &UnaryExpression{Op: tn.Op, Operand: d.decode(tn.Operand)}
	case "StringLiteral":
		node = &StringLiteral{Value: tn.Value}
	case "BooleanLiteral":
		node = &BooleanLiteral{Value: tn.Value == "true"}
	default:
		node = &Opaque{Kind: tn.Kind}
	}

	if d.err != nil {
		return nil, fmt.Errorf("%s: %w", tn.Kind, d.err)
	}

	node.SetPosition(pos)
	return node, nil
}

// opOrDefault returns op unless it is empty
func opOrDefault(op, def string) string {
	if op == "" {
		return def
	}

	return op
}

// nodeDecoder decodes child nodes, keeping the first error it encounters so
// that a whole node can be built before the error is checked
type nodeDecoder struct {
	err error
}

func (d *nodeDecoder) decode(tn *tomlNode) Statement {
	if d.err != nil {
		return nil
	}

	stmt, err := decodeNode(tn)
	d.err = err
	return stmt
}

func (d *nodeDecoder) decodeList(tnodes []*tomlNode) []Statement {
	if d.err != nil {
		return nil
	}

	stmts, err := decodeNodeList(tnodes)
	d.err = err
	return stmts
}
