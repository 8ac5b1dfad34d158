package build

import (
	"fmt"
	"jsspec/common"
	"jsspec/logging"
	"jsspec/project"
	"jsspec/sem"
	"jsspec/syntax"
	"jsspec/walk"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of a jsspec build
type Compiler struct {
	// proj is the project being built
	proj *project.Project

	// profile is the profile that is being used to build the project
	profile *project.Profile

	// units is the list of translation units loaded from the project's syntax
	// dumps.  It is sorted by dump path.
	units []*unit

	// stdout collects the rendered units of a profile that has no output
	// directory.  It is printed once all the phases have finished.
	stdout []string
}

// unit is a single translation unit as it moves through the build
type unit struct {
	// dumpPath is the absolute path to the syntax dump of the unit
	dumpPath string

	tu   *syntax.TranslationUnit
	lctx *logging.LogContext

	// functions holds the lowered functions in the order they appear in the
	// syntax dump
	functions []*sem.FunctionDefinition
}

// NewCompiler creates a new compiler for a given project and build profile
func NewCompiler(proj *project.Project, profile *project.Profile) *Compiler {
	return &Compiler{
		proj:    proj,
		profile: profile,
	}
}

// Compile runs the full build on the project: it loads every syntax dump,
// lowers every function in them and emits the lowered trees.  It handles all
// errors appropriately and returns whether or not the build succeeded.
func (c *Compiler) Compile() bool {
	c.units = nil
	c.stdout = nil

	logging.LogCompileHeader(c.profile.Name)

	ok := c.runPhase("Loading", c.loadUnits) &&
		c.runPhase("Lowering", c.lowerUnits) &&
		c.runPhase("Emitting", c.emitUnits)

	for _, out := range c.stdout {
		fmt.Print(out)
	}

	logging.LogCompilationFinished()
	return ok
}

// runPhase runs a single build phase between its begin and end markers
func (c *Compiler) runPhase(name string, phase func() bool) bool {
	logging.LogBeginPhase(name)
	ok := phase() && logging.ShouldProceed()
	logging.LogEndPhase(ok)
	return ok
}

// -----------------------------------------------------------------------------

// loadUnits loads all of the syntax dumps matched by the project's inputs
// concurrently
func (c *Compiler) loadUnits() bool {
	files, err := c.proj.InputFiles()
	if err != nil {
		logging.LogConfigError("Project", err.Error())
		return false
	}

	uchan := make(chan *unit)
	for _, path := range files {
		go c.loadUnit(uchan, path)
	}

	units := make([]*unit, 0, len(files))
	for range files {
		if u := <-uchan; u != nil {
			units = append(units, u)
		}
	}

	// units arrive in whatever order they finished loading in
	sort.Slice(units, func(i, j int) bool {
		return units[i].dumpPath < units[j].dumpPath
	})

	c.units = units
	return logging.ShouldProceed()
}

// loadUnit attempts to load a syntax dump concurrently.  If the dump fails to
// load, an appropriate error is logged and `nil` is written to the channel.
func (c *Compiler) loadUnit(uchan chan *unit, dumpPath string) {
	tu, err := syntax.LoadDump(dumpPath, c.proj.SourceRoot)
	if err != nil {
		logging.LogConfigError("Syntax Dump", err.Error())
		uchan <- nil
		return
	}

	uchan <- &unit{
		dumpPath: dumpPath,
		tu:       tu,
		lctx:     &logging.LogContext{UnitID: common.UnitID(dumpPath), FilePath: tu.SourcePath},
	}
}

// lowerUnits lowers every translation unit.  Each unit is lowered in its own
// goroutine: walkers share nothing but the error node sentinels.
func (c *Compiler) lowerUnits() bool {
	wg := &sync.WaitGroup{}

	for _, u := range c.units {
		wg.Add(1)
		go func(u *unit) {
			defer wg.Done()
			c.lowerUnit(u)
		}(u)
	}

	wg.Wait()
	return logging.ShouldProceed()
}

// fatal reports an unexpected failure of the build and exits
var fatal = logging.LogFatal

// lowerUnit lowers all the functions of a unit and reports the error nodes
// the walker had to substitute.  Lowering is total, so a panic here is a bug
// in jsspec rather than a problem with the dump.
func (c *Compiler) lowerUnit(u *unit) {
	defer func() {
		if r := recover(); r != nil {
			fatal(fmt.Sprintf("lowering %s panicked: %v", u.dumpPath, r))
		}
	}()

	u.functions = make([]*sem.FunctionDefinition, len(u.tu.Functions))

	for i, fn := range u.tu.Functions {
		fdef, diags := walk.Convert(fn)
		u.functions[i] = fdef

		for _, diag := range diags {
			c.reportDiagnostic(u, fdef.Name(), diag)
		}
	}
}

// reportDiagnostic logs a walker diagnostic.  Strict profiles treat error
// nodes as errors.
func (c *Compiler) reportDiagnostic(u *unit, fnName string, diag walk.Diagnostic) {
	if c.profile.Strict {
		logging.LogCompileError(u.lctx, diagnosticMessage(fnName, diag), diag.Position)
	} else {
		logging.LogCompileWarning(u.lctx, diagnosticMessage(fnName, diag), diag.Position)
	}
}

// diagnosticMessage words a walker diagnostic for the log
func diagnosticMessage(fnName string, diag walk.Diagnostic) string {
	msg := diag.Message + " in `" + fnName + "`"
	if diag.NodeKind != "" {
		msg += fmt.Sprintf(" (%s)", diag.NodeKind)
	}

	return msg
}

// emitUnits renders every unit in the profile's output format and writes it
// to the output directory
func (c *Compiler) emitUnits() bool {
	if c.profile.OutputPath == "" {
		for _, u := range c.units {
			c.stdout = append(c.stdout, Render(u.functions, c.profile.OutputFormat))
		}

		return true
	}

	if err := os.MkdirAll(c.profile.OutputPath, os.ModePerm); err != nil {
		logging.LogConfigError("Output", fmt.Sprintf("unable to create output directory: %s", err.Error()))
		return false
	}

	for u, name := range outputNames(c.units) {
		err := os.WriteFile(
			filepath.Join(c.profile.OutputPath, name),
			[]byte(Render(u.functions, c.profile.OutputFormat)),
			0o644,
		)

		if err != nil {
			logging.LogConfigError("Output", fmt.Sprintf("unable to write %s: %s", name, err.Error()))
		}
	}

	return logging.ShouldProceed()
}
