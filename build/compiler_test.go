package build

import (
	"context"
	"jsspec/common"
	"jsspec/logging"
	"jsspec/project"
	"jsspec/syntax"
	"jsspec/walk"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func init() {
	logging.Initialize("silent")
}

const answerDump = `
[[functions]]
name = "JS::answer"
  [[functions.statements]]
  kind = "ReturnStatement"
    [functions.statements.expr]
    kind = "NumericLiteral"
    value = "42"
`

const answerTree = "FunctionDefinition JS::answer\n  TreeList\n    ReturnNode\n      MathematicalConstant 42\n"

const loopDump = "source = \"Loop.cpp\"\n" + loopFunction

const loopFunction = `
[[functions]]
name = "loop"
  [[functions.statements]]
  kind = "WhileStatement"
  span = [2, 2, 4, 3]
`

const loopTree = "FunctionDefinition loop\n  TreeList\n    ErrorNode \"Encountered unknown C++ AST node\"\n"

const testProject = `
[project]
name = "ops"
inputs = ["ast/*.cppast.toml"]

[[project.profiles]]
name = "debug"
output = "out"
format = "text"
default = true

[[project.profiles]]
name = "strict"
output = "out"
format = "text"
strict = true
`

// newGlobProject creates a project whose inputs are globbed by directory and
// whose `ast/ecma` directory holds the given dumps
func newGlobProject(t *testing.T, dumps map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, common.ProjectFileName), `
[project]
name = "ops"
inputs = ["ast/*/*.cppast.toml"]

[[project.profiles]]
name = "debug"
output = "out"
format = "text"
`)
	for name, contents := range dumps {
		writeFile(t, filepath.Join(dir, "ast", "ecma", name), contents)
	}

	return dir
}

// newTestProject creates a project whose `ast` directory holds the given
// dumps, keyed by file name
func newTestProject(t *testing.T, dumps map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, common.ProjectFileName), testProject)
	for name, contents := range dumps {
		writeFile(t, filepath.Join(dir, "ast", name), contents)
	}

	return dir
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	buff, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unable to read output: %s", err)
	}
	return string(buff)
}

func newTestCompiler(t *testing.T, dir, profile string) *Compiler {
	t.Helper()
	logging.Reset()

	proj, prof, err := project.LoadProject(dir, profile)
	if err != nil {
		t.Fatalf("load error: %s", err)
	}
	return NewCompiler(proj, prof)
}

func TestCompile(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		"answer.cppast.toml": answerDump,
		"loop.cppast.toml":   loopDump,
	})

	c := newTestCompiler(t, dir, "")
	if !c.Compile() {
		t.Fatal("expected the build to succeed")
	}

	if got := readFile(t, filepath.Join(dir, "out", "answer.tree")); got != answerTree {
		t.Errorf("unexpected answer tree\ngot:\n%s\nwant:\n%s", got, answerTree)
	}
	if got := readFile(t, filepath.Join(dir, "out", "loop.tree")); got != loopTree {
		t.Errorf("unexpected loop tree\ngot:\n%s\nwant:\n%s", got, loopTree)
	}

	if errs, warnings := logging.Counts(); errs != 0 || warnings != 1 {
		t.Errorf("expected 1 warning and no errors, got %d warnings and %d errors", warnings, errs)
	}
}

func TestCompileStrict(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		"answer.cppast.toml": answerDump,
		"loop.cppast.toml":   loopDump,
	})

	c := newTestCompiler(t, dir, "strict")
	if c.Compile() {
		t.Fatal("expected a strict build with error nodes to fail")
	}

	if errs, _ := logging.Counts(); errs != 1 {
		t.Errorf("expected 1 error, got %d", errs)
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Error("expected a failed build to emit nothing")
	}
}

func TestCompileBadDump(t *testing.T) {
	dir := newTestProject(t, map[string]string{
		"answer.cppast.toml": answerDump,
		"broken.cppast.toml": "[[functions]]\nname = \"f\"\n  [[functions.statements]]\n  span = [1, 0, 1, 1]\n",
	})

	c := newTestCompiler(t, dir, "")
	if c.Compile() {
		t.Fatal("expected a build with a malformed dump to fail")
	}
}

func TestCompileNoInputs(t *testing.T) {
	c := newTestCompiler(t, newTestProject(t, nil), "")
	if c.Compile() {
		t.Fatal("expected a build without dumps to fail")
	}
}

func TestOutputNames(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a", "ops.cppast.toml"),
		filepath.Join(dir, "b", "ops.cppast.toml"),
		filepath.Join(dir, "a", "types.cppast.toml"),
	}

	var units []*unit
	for _, path := range paths {
		units = append(units, &unit{
			dumpPath: path,
			lctx:     &logging.LogContext{UnitID: common.UnitID(path)},
		})
	}

	names := outputNames(units)
	if names[units[2]] != "types.tree" {
		t.Errorf("expected 'types.tree', got %q", names[units[2]])
	}

	for _, u := range units[:2] {
		if !strings.HasPrefix(names[u], "ops-") || !strings.HasSuffix(names[u], ".tree") {
			t.Errorf("expected a disambiguated name for %s, got %q", u.dumpPath, names[u])
		}
	}
	if names[units[0]] == names[units[1]] {
		t.Errorf("expected distinct names, both are %q", names[units[0]])
	}
}

func TestLowerFile(t *testing.T) {
	logging.Reset()
	path := filepath.Join(t.TempDir(), "answer.cppast.toml")
	writeFile(t, path, answerDump+loopFunction)

	out, err := LowerFile(path, project.FormatText)
	if err != nil {
		t.Fatalf("lower error: %s", err)
	}
	if want := answerTree + "\n" + loopTree; out != want {
		t.Errorf("unexpected output\ngot:\n%s\nwant:\n%s", out, want)
	}
	if _, warnings := logging.Counts(); warnings != 1 {
		t.Errorf("expected 1 warning, got %d", warnings)
	}

	out, err = LowerFile(path, project.FormatGo)
	if err != nil {
		t.Fatalf("lower error: %s", err)
	}
	if !strings.Contains(out, "sem.FunctionDefinition") || !strings.Contains(out, `"JS::answer"`) {
		t.Errorf("unexpected Go output:\n%s", out)
	}

	if _, err := LowerFile(filepath.Join(t.TempDir(), "missing.cppast.toml"), project.FormatText); err == nil {
		t.Error("expected an error for a missing dump")
	}
}

func TestWatch(t *testing.T) {
	dir := newTestProject(t, map[string]string{"answer.cppast.toml": answerDump})
	c := newTestCompiler(t, dir, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, c)
	}()

	loopPath := filepath.Join(dir, "out", "loop.tree")
	waitFor(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "out", "answer.tree"))
		return err == nil
	})

	writeFile(t, filepath.Join(dir, "ast", "loop.cppast.toml"), loopDump)
	waitFor(t, func() bool {
		buff, err := os.ReadFile(loopPath)
		return err == nil && string(buff) == loopTree
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch error: %s", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for watch to stop")
	}
}

// waitFor polls a condition until it holds or the test times out
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for rebuild")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestWatchGlobbedDirectories(t *testing.T) {
	dir := newGlobProject(t, map[string]string{"answer.cppast.toml": answerDump})
	c := newTestCompiler(t, dir, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, c)
	}()

	waitFor(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "out", "answer.tree"))
		return err == nil
	})

	writeFile(t, filepath.Join(dir, "ast", "ecma", "loop.cppast.toml"), loopDump)
	waitFor(t, func() bool {
		buff, err := os.ReadFile(filepath.Join(dir, "out", "loop.tree"))
		return err == nil && string(buff) == loopTree
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch error: %s", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for watch to stop")
	}
}

func TestWatchDirs(t *testing.T) {
	dir := newGlobProject(t, map[string]string{"answer.cppast.toml": answerDump})
	writeFile(t, filepath.Join(dir, "ast", "test262", "loop.cppast.toml"), loopDump)
	writeFile(t, filepath.Join(dir, "ast", "README"), "")

	c := newTestCompiler(t, dir, "")
	dirs := c.watchDirs()

	want := []string{
		filepath.Join(c.proj.Root, "ast", "ecma"),
		filepath.Join(c.proj.Root, "ast", "test262"),
	}
	if len(dirs) != len(want) {
		t.Fatalf("expected %v, got %v", want, dirs)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("dir %d: expected %s, got %s", i, want[i], dirs[i])
		}
	}

	if !c.isInput(filepath.Join(c.proj.Root, "ast", "test262", "loop.cppast.toml")) {
		t.Error("expected a dump in a globbed directory to be an input")
	}
	if c.isInput(filepath.Join(c.proj.Root, "ast", "README")) {
		t.Error("expected a file outside the inputs not to be an input")
	}
}

func TestWatchWithoutInputDirectories(t *testing.T) {
	c := newTestCompiler(t, newGlobProject(t, nil), "")
	if err := Watch(context.Background(), c); err == nil {
		t.Error("expected an error when no input directory exists")
	}
}

func TestLowerUnitPanicIsFatal(t *testing.T) {
	var message string
	fatal = func(msg string) { message = msg }
	defer func() { fatal = logging.LogFatal }()

	c := newTestCompiler(t, newTestProject(t, nil), "")
	u := &unit{
		dumpPath: "broken.cppast.toml",
		tu:       &syntax.TranslationUnit{Functions: []*syntax.FunctionDeclaration{nil}},
		lctx:     &logging.LogContext{},
	}

	c.lowerUnit(u)
	if !strings.Contains(message, "broken.cppast.toml") {
		t.Errorf("expected a fatal error naming the dump, got %q", message)
	}
}

func TestDiagnosticMessage(t *testing.T) {
	diag := walk.Diagnostic{Message: walk.UnknownNodeError().Message(), NodeKind: "WhileStatement"}
	want := "Encountered unknown C++ AST node in `loop` (WhileStatement)"
	if got := diagnosticMessage("loop", diag); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	diag.NodeKind = ""
	if got := diagnosticMessage("loop", diag); got != "Encountered unknown C++ AST node in `loop`" {
		t.Errorf("unexpected message %q", got)
	}
}
