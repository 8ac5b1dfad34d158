package project

import (
	"errors"
	"fmt"
	"jsspec/common"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// InitProject creates a new project with the given name at the given path
func InitProject(name, path string, noProfiles bool) error {
	// convert the project directory to the path to project file
	projFilePath := filepath.Join(path, common.ProjectFileName)

	// check to see if a project already exists
	_, err := os.Stat(projFilePath)
	if err == nil {
		return errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("project file error: %s", err.Error())
	}

	// validate project name
	if !IsValidIdentifier(name) {
		return errors.New("project name must be a valid identifier")
	}

	tp := &tomlProject{
		Name:    name,
		Version: ">=" + common.JSSpecVersion,
		Inputs:  []string{filepath.Join("ast", "*"+common.DumpFileExtension)},
	}

	if !noProfiles {
		tp.Profiles = []*tomlProfile{newInitProfile(true), newInitProfile(false)}
	}

	// encode and save project to file
	f, err := os.Create(projFilePath)
	if err != nil {
		return fmt.Errorf("error creating project file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlProjectFile{Project: tp}); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}

// newInitProfile creates a new initial profile for a project.  The debug
// profile is the default: it dumps Go values and tolerates error nodes.  The
// release profile writes text trees and fails on error nodes.
func newInitProfile(debug bool) *tomlProfile {
	if debug {
		return &tomlProfile{
			Name:        "debug",
			OutputPath:  filepath.Join("out", "debug"),
			Format:      "go",
			DefaultProf: true,
		}
	}

	return &tomlProfile{
		Name:       "release",
		OutputPath: filepath.Join("out", "release"),
		Format:     "text",
		Strict:     true,
	}
}
