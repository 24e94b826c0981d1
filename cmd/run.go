package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"filetidy/internal"
)

func requireDir(role, path string) error {
	info, err := appFs.Stat(path)
	if err != nil || !info.IsDir() {
		return &ExitError{
			Code: ExitInvalidArgs,
			Err:  fmt.Errorf("%s '%s' is not a valid directory", role, path),
		}
	}
	return nil
}

func loadConfig() (*internal.Config, error) {
	conf, err := internal.LoadConfig(configFlag)
	if err != nil {
		return nil, &ExitError{Code: ExitInvalidArgs, Err: err}
	}
	return conf, nil
}

// runTool walks tool.Root with the tool's action until done or interrupted.
func runTool(cmd *cobra.Command, conf *internal.Config, tool internal.Tool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if dryRunFlag {
		tool.Header = append(tool.Header, "     Dry run: no files will be changed")
	}

	walker := &internal.Walker{
		Fs:      appFs,
		Options: internal.ScanOptions{SkipHidden: conf.SkipHidden},
	}
	_, err := walker.Run(ctx, tool, cmd.OutOrStdout())
	return err
}
