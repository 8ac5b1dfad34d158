package syntax

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

const sampleDump = `
source = "Operations.cpp"

[[functions]]
name = "JS::ToBoolean"
span = [1, 0, 14, 1]

  [[functions.statements]]
  kind = "VariableDeclaration"
  name = "result"

  [[functions.statements]]
  kind = "AssignmentExpression"
  span = [3, 4, 3, 14]
    [functions.statements.lhs]
    kind = "Name"
    name = "result"
    [functions.statements.rhs]
    kind = "NumericLiteral"
    value = "0"

  [[functions.statements]]
  kind = "IfStatement"
    [functions.statements.predicate]
    kind = "FunctionCall"
      [functions.statements.predicate.callee]
      kind = "Name"
      name = "is_callable"
      [[functions.statements.predicate.arguments]]
      kind = "Name"
      name = "value"
      [[functions.statements.predicate.arguments]]
      kind = "NumericLiteral"
      value = "2"
    [functions.statements.then]
    kind = "BlockStatement"
      [[functions.statements.then.statements]]
      kind = "ReturnStatement"
        [functions.statements.then.statements.expr]
        kind = "NumericLiteral"
        value = "1"
    [functions.statements.else]
    kind = "ReturnStatement"

  [[functions.statements]]
  kind = "LambdaExpression"
  span = [13, 2, 13, 20]
`

func TestDecodeDump(t *testing.T) {
	tu, err := DecodeDump([]byte(sampleDump))
	if err != nil {
		t.Fatalf("decode error: %s", err)
	}

	if tu.SourcePath != "Operations.cpp" {
		t.Errorf("expected source 'Operations.cpp', got %q", tu.SourcePath)
	}
	if len(tu.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(tu.Functions))
	}

	fn := tu.Functions[0]
	if fn.Name.FullName() != "JS::ToBoolean" {
		t.Errorf("expected name 'JS::ToBoolean', got %q", fn.Name.FullName())
	}
	if fn.Position() == nil || fn.Position().EndLn != 14 {
		t.Errorf("expected function span to end on line 14, got %# v", pretty.Formatter(fn.Position()))
	}

	stmts := fn.Definition.Statements
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(stmts))
	}

	vd, ok := stmts[0].(*VariableDeclaration)
	if !ok {
		t.Fatalf("expected VariableDeclaration, got %T", stmts[0])
	}
	if vd.Name.FullName() != "result" || vd.InitialValue != nil {
		t.Errorf("unexpected declaration %# v", pretty.Formatter(vd))
	}

	ae, ok := stmts[1].(*AssignmentExpression)
	if !ok {
		t.Fatalf("expected AssignmentExpression, got %T", stmts[1])
	}
	if ae.Op != "=" {
		t.Errorf("expected default operator '=', got %q", ae.Op)
	}
	if lit, ok := ae.Rhs.(*NumericLiteral); !ok || lit.Value != "0" {
		t.Errorf("expected literal 0 on the right hand side, got %# v", pretty.Formatter(ae.Rhs))
	}
	if ae.Position() == nil || ae.Position().StartCol != 4 {
		t.Errorf("expected assignment to start at column 4")
	}

	is, ok := stmts[2].(*IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %T", stmts[2])
	}
	fc, ok := is.Predicate.(*FunctionCall)
	if !ok {
		t.Fatalf("expected FunctionCall predicate, got %T", is.Predicate)
	}
	if len(fc.Arguments) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(fc.Arguments))
	}
	if n, ok := fc.Arguments[0].(*Name); !ok || n.Identifier != "value" {
		t.Errorf("expected first argument 'value', got %# v", pretty.Formatter(fc.Arguments[0]))
	}
	if _, ok := fc.Arguments[1].(*NumericLiteral); !ok {
		t.Errorf("expected second argument to be a literal, got %T", fc.Arguments[1])
	}

	then, ok := is.Then.(*BlockStatement)
	if !ok || len(then.Statements) != 1 {
		t.Fatalf("expected then block with 1 statement, got %# v", pretty.Formatter(is.Then))
	}
	if rs, ok := then.Statements[0].(*ReturnStatement); !ok || rs.Value == nil {
		t.Errorf("expected return with a value, got %# v", pretty.Formatter(then.Statements[0]))
	}
	if rs, ok := is.Else.(*ReturnStatement); !ok || rs.Value != nil {
		t.Errorf("expected value-less return in else, got %# v", pretty.Formatter(is.Else))
	}

	op, ok := stmts[3].(*Opaque)
	if !ok {
		t.Fatalf("expected Opaque, got %T", stmts[3])
	}
	if op.KindName() != "LambdaExpression" || op.Position() == nil {
		t.Errorf("unexpected opaque node %# v", pretty.Formatter(op))
	}
}

func TestDecodeMissingChildren(t *testing.T) {
	tu, err := DecodeDump([]byte(`
[[functions]]
name = "f"
  [[functions.statements]]
  kind = "FunctionCall"
  [[functions.statements]]
  kind = "IfStatement"
`))
	if err != nil {
		t.Fatalf("decode error: %s", err)
	}

	stmts := tu.Functions[0].Definition.Statements
	if fc := stmts[0].(*FunctionCall); fc.Callee != nil || len(fc.Arguments) != 0 {
		t.Errorf("expected call without callee or arguments, got %# v", pretty.Formatter(fc))
	}

	// missing children must be untyped nils
	is := stmts[1].(*IfStatement)
	if is.Predicate != nil || is.Then != nil || is.Else != nil {
		t.Errorf("expected if statement without children, got %# v", pretty.Formatter(is))
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"malformed": `[[functions]`,
		"no name": `
[[functions]]
span = [1, 0, 1, 1]
`,
		"no kind": `
[[functions]]
name = "f"
  [[functions.statements]]
  name = "x"
`,
		"bad span": `
[[functions]]
name = "f"
  [[functions.statements]]
  kind = "Name"
  name = "x"
  span = [1, 2]
`,
		"nested error": `
[[functions]]
name = "f"
  [[functions.statements]]
  kind = "ReturnStatement"
    [functions.statements.expr]
    value = "1"
`,
	}

	for name, src := range cases {
		if _, err := DecodeDump([]byte(src)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadDumpResolvesSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ops.cppast.toml")
	if err := os.WriteFile(path, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}

	tu, err := LoadDump(path, "")
	if err != nil {
		t.Fatalf("load error: %s", err)
	}
	if want := filepath.Join(dir, "Operations.cpp"); tu.SourcePath != want {
		t.Errorf("expected source %q, got %q", want, tu.SourcePath)
	}

	srcRoot := filepath.Join(dir, "src")
	if tu, err = LoadDump(path, srcRoot); err != nil {
		t.Fatalf("load error: %s", err)
	}
	if want := filepath.Join(srcRoot, "Operations.cpp"); tu.SourcePath != want {
		t.Errorf("expected source %q, got %q", want, tu.SourcePath)
	}

	if _, err := LoadDump(filepath.Join(dir, "missing.cppast.toml"), ""); err == nil {
		t.Error("expected an error for a missing dump")
	}

	bad := filepath.Join(dir, "bad.cppast.toml")
	if err := os.WriteFile(bad, []byte("[[functions]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDump(bad, ""); err == nil || !strings.Contains(err.Error(), "bad.cppast.toml") {
		t.Errorf("expected an error naming the dump, got %v", err)
	}
}

func TestNames(t *testing.T) {
	n := NewName("JS::Detail::to_primitive")
	if n.Identifier != "to_primitive" || len(n.Scope) != 2 {
		t.Errorf("unexpected name %# v", pretty.Formatter(n))
	}
	if n.FullName() != "JS::Detail::to_primitive" {
		t.Errorf("unexpected full name %q", n.FullName())
	}

	if n := NewName("x"); n.FullName() != "x" || len(n.Scope) != 0 {
		t.Errorf("unexpected unqualified name %# v", pretty.Formatter(n))
	}
}
