package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/VanBelleKoen/softassert"
	"github.com/VanBelleKoen/softassert/demosuite"
	"github.com/VanBelleKoen/softassert/framework"
)

func main() {
	var configPath string
	var config framework.RunnerConfig
	var filters framework.RegexFilters

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&configPath, "config", "", "path to a YAML configuration file")
	fs.Var(&filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&config.Debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&config.DebugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&config.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&config.StackTraces, "stacks", false, "capture a stack trace for each soft failure")
	fs.StringVar(&config.JSONOutput, "json-output", "", "file path for machine-readable results")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if configPath != "" {
		fileConfig, err := framework.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
			os.Exit(1)
		}
		mergeConfig(&config, fileConfig)
		fileFilters, err := fileConfig.Filters()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
			os.Exit(1)
		}
		mergeFilters(&filters, fileFilters)
	}

	if config.NoColor {
		color.NoColor = true
	}

	if desc := filters.Describe(); desc != "" {
		fmt.Println("Some tests will be skipped based on the filter criteria for this test run:")
		fmt.Println(desc)
		fmt.Println()
	}

	var opts []softassert.Option
	if config.StackTraces {
		opts = append(opts, softassert.WithStackCapture())
	}

	suite := framework.NewSuite()
	demosuite.RegisterTests(suite, opts...)

	fmt.Println("Running test suite")

	testLogger := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: config.Debug || config.DebugAll,
		DebugOutputOnSuccess: config.DebugAll,
	}

	results := suite.Run(filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)

	if config.JSONOutput != "" {
		if err := writeJSONFile(config.JSONOutput, results); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write results: %s\n", err)
			os.Exit(1)
		}
	}
	if !results.OK() {
		os.Exit(1)
	}
}

// mergeConfig fills in options from the config file that were not set on the
// command line; flags win where both are present.
func mergeConfig(dst *framework.RunnerConfig, file framework.RunnerConfig) {
	dst.Debug = dst.Debug || file.Debug
	dst.DebugAll = dst.DebugAll || file.DebugAll
	dst.NoColor = dst.NoColor || file.NoColor
	dst.StackTraces = dst.StackTraces || file.StackTraces
	if dst.JSONOutput == "" {
		dst.JSONOutput = file.JSONOutput
	}
}

func mergeFilters(dst *framework.RegexFilters, file framework.RegexFilters) {
	if !dst.MustMatch.IsDefined() {
		dst.MustMatch = file.MustMatch
	}
	if !dst.MustNotMatch.IsDefined() {
		dst.MustNotMatch = file.MustNotMatch
	}
}

func writeJSONFile(path string, results framework.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := results.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
