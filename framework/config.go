package framework

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunnerConfig holds the options for a suite run that can come from a
// configuration file as well as from command line flags.
type RunnerConfig struct {
	// Run and Skip are regex patterns selecting which tests to run.
	Run  []string `yaml:"run"`
	Skip []string `yaml:"skip"`

	// Debug enables debug output for failed tests; DebugAll enables it for
	// every test.
	Debug    bool `yaml:"debug"`
	DebugAll bool `yaml:"debugAll"`

	NoColor bool `yaml:"noColor"`

	// StackTraces attaches a stack trace to every captured soft failure.
	StackTraces bool `yaml:"stackTraces"`

	// JSONOutput, if set, is a file path to write machine-readable results to.
	JSONOutput string `yaml:"jsonOutput"`
}

// LoadConfigFile reads a RunnerConfig from a YAML file. Unknown keys are an
// error, so typos do not silently disable options.
func LoadConfigFile(path string) (RunnerConfig, error) {
	var c RunnerConfig
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("invalid configuration file %q: %w", path, err)
	}
	return c, nil
}

// Filters builds the regex filters described by the configuration.
func (c RunnerConfig) Filters() (RegexFilters, error) {
	var filters RegexFilters
	if err := filters.MustMatch.SetAll(c.Run); err != nil {
		return filters, err
	}
	if err := filters.MustNotMatch.SetAll(c.Skip); err != nil {
		return filters, err
	}
	return filters, nil
}
