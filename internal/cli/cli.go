package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/seedsync/internal/app"
)

// Exit codes returned by the seedsync CLI.
const (
	// ExitSynchronized means every check passed.
	ExitSynchronized = 0
	// ExitOutOfSync means a constant mismatched or was missing, or a source
	// file could not be read.
	ExitOutOfSync = 1
	// ExitConfigError means bad flags or invalid rules.
	ExitConfigError = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("seedsync", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
seedsync - Checks that constants declared in two source files agree.

Usage:
  seedsync [options]

With no options, the built-in PDA seed check is run against
neuro-shared/src/pda.ts and neuro-program/src/lib.rs under the current
directory.

Exit status is 0 when synchronized, 1 when out of sync or a source cannot
be read, and 2 on a usage or rules error.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", ".", "Directory that relative source paths are resolved against.")
	rulesFlag := flagSet.String("rules", "", "Rules file (.hcl or .toml) or directory of .hcl files. Empty uses the built-in rules.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noEmojiFlag := flagSet.Bool("no-emoji", false, "Use ASCII markers in the report.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitConfigError, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitConfigError, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Arguments parsed successfully.")

	config, err := app.NewConfig(app.Config{
		Root:      *rootFlag,
		RulesPath: *rulesFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Plain:     *noEmojiFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitConfigError, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
