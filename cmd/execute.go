package cmd

import (
	"context"
	"fmt"
	"jsspec/build"
	"jsspec/common"
	"jsspec/logging"
	"jsspec/project"
	"os"
	"os/signal"

	"github.com/ComedicChimera/olive"
)

// Execute runs the main `jsspec` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("jsspec", "jsspec lowers C++ syntax dumps of ECMAScript specification code into trees", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "lower every syntax dump of a project", true)
	buildCmd.AddPrimaryArg("project-path", "the path to the project to build", true)
	buildCmd.AddStringArg("profile", "p", "the name of the profile to build", false)
	buildCmd.AddFlag("watch", "w", "rebuild the project whenever one of its syntax dumps changes")

	lowerCmd := cli.AddSubcommand("lower", "lower a single syntax dump and print the trees", true)
	lowerCmd.AddPrimaryArg("dump-path", "the path to the syntax dump", true)
	formatArg := lowerCmd.AddSelectorArg("format", "f", "the output format", false, []string{"text", "go"})
	formatArg.SetDefaultValue("text")

	projCmd := cli.AddSubcommand("project", "manage projects", true)
	projInitCmd := projCmd.AddSubcommand("init", "initialize a project in the working directory", true)
	projInitCmd.AddFlag("no-profiles", "np", "indicates whether jsspec should generate default profiles for this project")
	projInitCmd.AddPrimaryArg("project-name", "the name of the project", true)

	cli.AddSubcommand("version", "print the jsspec version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	logging.Initialize(result.Arguments["loglevel"].(string))

	// process the inputed command line
	ok := true
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		ok = execBuildCommand(subResult)
	case "lower":
		ok = execLowerCommand(subResult)
	case "project":
		ok = execProjectCommand(subResult)
	case "version":
		logging.PrintInfoMessage("jsspec Version", common.JSSpecVersion)
	}

	if !ok {
		os.Exit(1)
	}
}

// execBuildCommand executes the build subcommand and handles all errors
func execBuildCommand(result *olive.ArgParseResult) bool {
	// extract CLI data
	projectPath, _ := result.PrimaryArg()

	profArgVal, ok := result.Arguments["profile"]
	selectedProfile := ""
	if ok {
		selectedProfile = profArgVal.(string)
	}

	// attempt to load the project
	proj, profile, err := project.LoadProject(projectPath, selectedProfile)
	if err != nil {
		logging.PrintErrorMessage("Project Load Error", err)
		return false
	}

	c := build.NewCompiler(proj, profile)

	if result.HasFlag("watch") {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := build.Watch(ctx, c); err != nil {
			logging.PrintErrorMessage("Watch Error", err)
			return false
		}

		return true
	}

	return c.Compile()
}

// execLowerCommand executes the lower subcommand: it prints the trees of a
// single syntax dump followed by any warnings
func execLowerCommand(result *olive.ArgParseResult) bool {
	dumpPath, _ := result.PrimaryArg()

	format, ok := project.ParseFormat(result.Arguments["format"].(string))
	if !ok {
		logging.PrintErrorMessage("CLI Usage Error", fmt.Errorf("unknown format `%s`", result.Arguments["format"]))
		return false
	}

	out, err := build.LowerFile(dumpPath, format)
	if err != nil {
		logging.PrintErrorMessage("Syntax Dump Error", err)
		return false
	}

	fmt.Print(out)
	logging.LogCompilationFinished()
	return true
}

// execProjectCommand executes the `project` subcommand and its subcommands.
// It handles all errors related to this command
func execProjectCommand(result *olive.ArgParseResult) bool {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return false
	}

	switch subcmdName {
	case "init":
		projName, _ := subResult.PrimaryArg()
		if err := project.InitProject(projName, workDir, subResult.HasFlag("no-profiles")); err != nil {
			logging.PrintErrorMessage("Project Init Error", err)
			return false
		}
	}

	return true
}
