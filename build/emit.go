package build

import (
	"fmt"
	"jsspec/common"
	"jsspec/logging"
	"jsspec/project"
	"jsspec/sem"
	"jsspec/syntax"
	"jsspec/walk"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
)

// Render renders a list of lowered functions in one of the output formats
// (prefixed `Format` in package project).  Functions are separated by a blank
// line.
func Render(fdefs []*sem.FunctionDefinition, format int) string {
	sb := &strings.Builder{}

	for i, fdef := range fdefs {
		if i > 0 {
			sb.WriteByte('\n')
		}

		switch format {
		case project.FormatGo:
			sb.WriteString(pretty.Sprint(fdef))
			sb.WriteByte('\n')
		default:
			sb.WriteString(fdef.Dump())
		}
	}

	return sb.String()
}

// outputNames determines the name of the tree file of each unit.  The name is
// the base name of the dump with its extension replaced.  Units whose dumps
// share a base name also carry their unit ID.
func outputNames(units []*unit) map[*unit]string {
	bases := make(map[*unit]string, len(units))
	counts := make(map[string]int)

	for _, u := range units {
		base := strings.TrimSuffix(filepath.Base(u.dumpPath), common.DumpFileExtension)
		bases[u] = base
		counts[base]++
	}

	names := make(map[*unit]string, len(units))
	for u, base := range bases {
		if counts[base] > 1 {
			names[u] = fmt.Sprintf("%s-%08x%s", base, u.lctx.UnitID, common.TreeFileExtension)
		} else {
			names[u] = base + common.TreeFileExtension
		}
	}

	return names
}

// LowerFile lowers a single syntax dump outside of any project and returns
// the rendered trees.  Error node substitutions are logged as warnings.
func LowerFile(path string, format int) (string, error) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	tu, err := syntax.LoadDump(abspath, "")
	if err != nil {
		return "", err
	}

	lctx := &logging.LogContext{UnitID: common.UnitID(abspath), FilePath: tu.SourcePath}
	fdefs := make([]*sem.FunctionDefinition, len(tu.Functions))

	w := walk.NewWalker()
	for i, fn := range tu.Functions {
		before := len(w.Diagnostics())
		fdefs[i] = w.WalkFunction(fn)

		for _, diag := range w.Diagnostics()[before:] {
			logging.LogCompileWarning(lctx, diagnosticMessage(fdefs[i].Name(), diag), diag.Position)
		}
	}

	return Render(fdefs, format), nil
}
