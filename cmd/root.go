// Package cmd implements the partstream CLI using Cobra.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/partstream/core/convert"
	"github.com/gaurav-prasanna/partstream/core/converters"
)

// app carries the process streams and the logger shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel string
	logFile  string

	registry *convert.Registry

	log      *zap.Logger
	closeLog func() error
	// logging is set once a logger that actually emits is configured.
	logging bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		registry: convert.Default(),
		log:      zap.NewNop(),
		closeLog: func() error { return nil },
	}
}

// converterRegistry returns the registry a command converts against. The
// extended converters go on a fresh registry so the shared one keeps only
// its built-in entries.
func (a *app) converterRegistry(extended bool) *convert.Registry {
	if !extended {
		return a.registry
	}
	reg := convert.NewWithBuiltins()
	converters.Register(reg)
	return reg
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "partstream",
		Short: "Assemble typed content parts into one output",
		Long: `partstream converts content parts of different media types (plain text,
HTML, Markdown, ...) into a single target media type and concatenates them.

Usage:
  partstream render --to text/html --part text/html:header.html --text "raw & escaped"
  partstream converters --extended`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := newLogger(a.logLevel, a.logFile, a.stderr)
			if err != nil {
				return err
			}
			a.log, a.closeLog = log, closer
			a.logging = a.logLevel != levelNone
			return nil
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", levelNormal, "Console log level: none, normal or debug")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Also write the log to this file")

	root.AddCommand(newRenderCmd(a), newConvertersCmd(a))
	return root
}

// run executes the CLI with args and returns the combined error of the
// command and of releasing the logger.
func (a *app) run(args []string) (err error) {
	root := newRootCmd(a)
	root.SetArgs(args)

	defer func() {
		if err != nil && a.logging {
			a.log.Error("Failed", zap.Error(err))
		}
		_ = a.log.Sync()
		err = multierr.Append(err, a.closeLog())
	}()
	return root.Execute()
}

// Execute runs the root command.
func Execute() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.run(os.Args[1:]); err != nil {
		if !a.logging {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
