package project

import (
	"errors"
	"fmt"
	"jsspec/common"
	"jsspec/logging"
	"os"
	"path/filepath"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml"
)

// tomlProjectFile represents the project file as it is encoded in TOML
type tomlProjectFile struct {
	Project *tomlProject `toml:"project"`
}

// tomlProject represents a jsspec project as it is encoded in TOML
type tomlProject struct {
	Name       string         `toml:"name"`
	Version    string         `toml:"jsspec-version"`
	Inputs     []string       `toml:"inputs"`
	SourceRoot string         `toml:"source-root,omitempty"`
	Profiles   []*tomlProfile `toml:"profiles"`
}

// tomlProfile represents a profile as it encoded in TOML
type tomlProfile struct {
	Name        string `toml:"name"`
	OutputPath  string `toml:"output,omitempty"`
	Format      string `toml:"format"`
	Strict      bool   `toml:"strict"`
	DefaultProf bool   `toml:"default"` // in absence of a selected profile, choose this profile
}

// LoadProject loads and validates a project as well as determining the
// correct profile.  `path` is the path to the project directory.
// `selectedProfile` can be empty if there is no profile selected.
func LoadProject(path, selectedProfile string) (*Project, *Profile, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, err
	}

	buff, err := os.ReadFile(filepath.Join(root, common.ProjectFileName))
	if err != nil {
		return nil, nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, nil, err
	}

	if tpf.Project == nil {
		return nil, nil, fmt.Errorf("%s is missing the [project] table", common.ProjectFileName)
	}

	proj := &Project{Root: root}
	if err := validateProject(proj, tpf.Project); err != nil {
		return nil, nil, err
	}

	prof, err := selectProfile(proj, tpf.Project, selectedProfile)
	if err != nil {
		return nil, nil, err
	}

	proj.Name = tpf.Project.Name
	proj.Inputs = tpf.Project.Inputs
	proj.SourceRoot = proj.resolve(tpf.Project.SourceRoot)

	return proj, prof, nil
}

// validateProject checks that the top level project contents are valid
func validateProject(proj *Project, tp *tomlProject) error {
	if tp.Name == "" {
		return fmt.Errorf("missing project name for project at %s", proj.Root)
	}

	if !IsValidIdentifier(tp.Name) {
		return errors.New("project name must be a valid identifier")
	}

	if len(tp.Inputs) == 0 {
		return fmt.Errorf("project %s must list at least one input", tp.Name)
	}

	for _, pattern := range tp.Inputs {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid input pattern `%s` in project %s", pattern, tp.Name)
		}
	}

	return checkVersion(tp)
}

// checkVersion checks the version constraint of a project against the version
// of jsspec.  An unsatisfied constraint is only a warning: syntax dumps and
// trees have been stable across versions so far.
func checkVersion(tp *tomlProject) error {
	if tp.Version == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(tp.Version)
	if err != nil {
		return fmt.Errorf("invalid jsspec-version `%s` in project %s: %w", tp.Version, tp.Name, err)
	}

	if !constraint.Check(semver.MustParse(common.JSSpecVersion)) {
		logging.LogBuildWarning(
			"Project",
			fmt.Sprintf("project `%s` requires jsspec %s but this is jsspec v%s", tp.Name, tp.Version, common.JSSpecVersion),
		)
	}

	return nil
}

// selectProfile selects a profile based on the selected profile name if one
// exists and validates it.  A project without profiles builds with a text
// profile writing to standard out.
func selectProfile(proj *Project, tp *tomlProject, selectedProfile string) (*Profile, error) {
	if len(tp.Profiles) == 0 {
		if selectedProfile != "" {
			return nil, fmt.Errorf("project `%s` has no profile `%s`", tp.Name, selectedProfile)
		}

		return &Profile{Name: "default", OutputFormat: FormatText}, nil
	}

	if selectedProfile != "" {
		for _, prof := range tp.Profiles {
			if prof.Name == selectedProfile {
				return proj.convertProfile(prof)
			}
		}

		return nil, fmt.Errorf("project `%s` has no profile `%s`", tp.Name, selectedProfile)
	}

	var defaultProf *tomlProfile
	for _, prof := range tp.Profiles {
		if prof.DefaultProf {
			if defaultProf != nil {
				return nil, fmt.Errorf("project `%s` specifies multiple default profiles", tp.Name)
			}

			defaultProf = prof
		}
	}

	if defaultProf == nil {
		if len(tp.Profiles) > 1 {
			return nil, fmt.Errorf("project `%s` does not specify a default profile; `--profile` argument is required", tp.Name)
		}

		defaultProf = tp.Profiles[0]
	}

	return proj.convertProfile(defaultProf)
}

// convertProfile converts a TOML profile into a `*Profile`
func (proj *Project) convertProfile(tprof *tomlProfile) (*Profile, error) {
	if tprof.Name == "" {
		return nil, errors.New("profile must specify a name")
	}

	if tprof.Format == "" {
		return nil, fmt.Errorf("profile `%s` must specify an output format", tprof.Name)
	}

	format, ok := ParseFormat(tprof.Format)
	if !ok {
		return nil, fmt.Errorf("%s is not a valid output format", tprof.Format)
	}

	outputPath := ""
	if tprof.OutputPath != "" {
		outputPath = proj.resolve(tprof.OutputPath)
	}

	return &Profile{
		Name:         tprof.Name,
		OutputPath:   outputPath,
		OutputFormat: format,
		Strict:       tprof.Strict,
	}, nil
}

// resolve makes a project relative path absolute.  The empty path resolves to
// the project root.
func (proj *Project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(proj.Root, path)
}

// InputPatterns returns the input patterns of the project made absolute
func (proj *Project) InputPatterns() []string {
	patterns := make([]string, len(proj.Inputs))
	for i, pattern := range proj.Inputs {
		patterns[i] = proj.resolve(pattern)
	}

	return patterns
}

// InputFiles expands the input patterns of the project into a sorted list of
// absolute paths to syntax dumps.  A file matched by several patterns is only
// listed once.
func (proj *Project) InputFiles() ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range proj.InputPatterns() {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if finfo, err := os.Stat(match); err != nil || finfo.IsDir() {
				continue
			}

			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no syntax dumps match the inputs of project %s", proj.Name)
	}

	sort.Strings(files)
	return files, nil
}
