package cmd

import (
	"github.com/spf13/cobra"

	"filetidy/internal"
)

var settimeCmd = &cobra.Command{
	Use:   "settime [folder]",
	Short: "Set file modification times from dates in filenames",
	Long: `Walk a folder recursively and set each file's modification time (and, on
Windows, its creation time) from a YYYYMMDDhhmmss date found in the digits
of its filename. Years before 1970 or in the future are ignored.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]
		if err := requireDir("target directory", folder); err != nil {
			return err
		}

		conf, err := loadConfig()
		if err != nil {
			return err
		}
		loc, err := conf.Location()
		if err != nil {
			return &ExitError{Code: ExitInvalidArgs, Err: err}
		}

		return runTool(cmd, conf, internal.Tool{
			Name: "settime",
			Root: folder,
			Labels: internal.Labels{
				Applied:        "timestamps set",
				SkippedNoDate:  "no date in filename",
				SkippedInvalid: "invalid date in filename",
				Excepted:       "errors",
			},
			Action: &internal.SetTimestamps{
				Times:    internal.FsTimes{Fs: appFs},
				Location: loc,
				DryRun:   dryRunFlag,
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(settimeCmd)
}
