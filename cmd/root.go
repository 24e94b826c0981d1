package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"filetidy/internal"
)

// Version is overridden from the embedded VERSION file.
var Version = "dev"

// Exit codes.
const (
	ExitUsage       = 1
	ExitInvalidArgs = 2
	ExitReport      = 3
	ExitInterrupted = 130
)

var (
	configFlag  string
	dryRunFlag  bool
	verboseFlag bool
)

// appFs is the filesystem every command works on.
var appFs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:          "filetidy",
	Short:        "Directory-walking file maintenance utilities",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetOutput(cmd.ErrOrStderr())
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ApplyVersion copies Version onto the root command.
func ApplyVersion() {
	rootCmd.Version = Version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: <user config dir>/filetidy/filetidy.toml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Report what would change without touching files")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging on stderr")
}

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var reportErr *internal.ReportError
	if errors.As(err, &reportErr) {
		return ExitReport
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	return ExitUsage
}

// exactArgs prints the usage on stdout when the argument count is wrong.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), cmd.UsageString())
		return &ExitError{
			Code: ExitUsage,
			Err:  fmt.Errorf("accepts %d arg(s), received %d", n, len(args)),
		}
	}
}
