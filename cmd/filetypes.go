package cmd

import (
	"github.com/spf13/cobra"

	"filetidy/internal"
)

var filetypesCmd = &cobra.Command{
	Use:   "filetypes [folder]",
	Short: "Count files per extension",
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
			Name:   "filetypes",
			Root:   folder,
			Labels: internal.Labels{Applied: "counted"},
			Action: internal.ListFileTypes{},
			Finish: internal.LogFileTypes,
		})
	},
}

func init() {
	rootCmd.AddCommand(filetypesCmd)
}
