// Package cliopts centralizes the csscompare CLI's tunable knobs: the
// bounded values left implementation-defined (import recursion
// depth, log level/format) plus the two required positional operands and
// optional output path. Values come from an optional .csscompare.yaml in
// the working directory; a flag the user actually typed on the command
// line always wins over the file, regardless of parse order.
package cliopts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultImportDepth = 32
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "console"
	ConfigFileName     = ".csscompare.yaml"
)

// Options holds one invocation's configuration. CSS1/CSS2/Output are
// filled in from positional args by the CLI, not the config file.
type Options struct {
	CSS1        string `yaml:"-"`
	CSS2        string `yaml:"-"`
	Output      string `yaml:"-"`
	ImportDepth int    `yaml:"import_depth"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	Explain     bool   `yaml:"explain"`
}

// Defaults returns an Options populated with the package's built-in
// defaults, before any config file or flag has been applied.
func Defaults() Options {
	return Options{
		ImportDepth: DefaultImportDepth,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// Field names LoadConfigFile accepts in its explicitlySet set, matching
// the yaml tags above.
const (
	FieldImportDepth = "import_depth"
	FieldLogLevel    = "log_level"
	FieldLogFormat   = "log_format"
	FieldExplain     = "explain"
)

// LoadConfigFile merges ConfigFileName, if present in the working
// directory, into opts. A missing file is not an error; a malformed one
// is. explicitlySet names the fields the caller already populated from an
// explicit command-line flag (e.g. via cobra's Flags().Changed) — those
// fields are left untouched no matter what the file says, so a flag the
// user actually typed always wins over the config file. Among the fields
// not explicitly set, only those the file itself sets (non-zero/non-empty
// in the decoded struct) override opts; the rest keep their existing
// (default) value.
func LoadConfigFile(opts *Options, explicitlySet map[string]bool) error {
	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}
	var fromFile Options
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}
	if fromFile.ImportDepth != 0 && !explicitlySet[FieldImportDepth] {
		opts.ImportDepth = fromFile.ImportDepth
	}
	if fromFile.LogLevel != "" && !explicitlySet[FieldLogLevel] {
		opts.LogLevel = fromFile.LogLevel
	}
	if fromFile.LogFormat != "" && !explicitlySet[FieldLogFormat] {
		opts.LogFormat = fromFile.LogFormat
	}
	if fromFile.Explain && !explicitlySet[FieldExplain] {
		opts.Explain = true
	}
	return nil
}
