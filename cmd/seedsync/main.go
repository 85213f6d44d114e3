package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/seedsync/internal/app"
	"github.com/specialistvlad/seedsync/internal/cli"
)

// main is the entrypoint for the seedsync application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitOutOfSync)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
// The report goes to outW and logs to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	seedsync, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitConfigError, Message: err.Error()}
	}

	verdict, err := seedsync.Run(context.Background())
	if err != nil {
		return err
	}
	if !verdict.Synchronized() {
		return &cli.ExitError{Code: cli.ExitOutOfSync}
	}
	return nil
}
