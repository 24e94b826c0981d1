package cmd

import (
	"github.com/spf13/cobra"

	"filetidy/internal"
)

var lowercaseCmd = &cobra.Command{
	Use:   "lowercase [folder]",
	Short: "Rename files to lowercase",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]
		if err := requireDir("target directory", folder); err != nil {
			return err
		}

		conf, err := loadConfig()
		if err != nil {
			return err
		}

		return runTool(cmd, conf, internal.Tool{
			Name: "lowercase",
			Root: folder,
			Labels: internal.Labels{
				Applied:       "renamed",
				SkippedNoDate: "already lowercase",
				Excepted:      "errors",
			},
			Action: &internal.RenameLowercase{Fs: appFs, DryRun: dryRunFlag},
		})
	},
}

func init() {
	rootCmd.AddCommand(lowercaseCmd)
}
