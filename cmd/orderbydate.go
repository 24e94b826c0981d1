package cmd

import (
	"github.com/spf13/cobra"

	"filetidy/internal"
)

var orderbydateCmd = &cobra.Command{
	Use:   "orderbydate [sourcedir] [destinationdir] [exceptionsdir] [validyears]",
	Short: "Move files into year/month folders by their filename prefix",
	Long: `Move every file under sourcedir whose name starts with YYYYMM into
destinationdir/YYYY/MM. Names with a valid year but no valid month go to
destinationdir/YYYY. Names without a year inside validyears (YYYY-YYYY) go
to exceptionsdir. The report is written to destinationdir.`,
	Args: exactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dest, exc := args[0], args[1], args[2]

		if err := requireDir("source folder", src); err != nil {
			return err
		}
		if err := requireDir("destination folder", dest); err != nil {
			return err
		}
		if err := requireDir("exceptions folder", exc); err != nil {
			return err
		}
		years, err := internal.ParseYearRange(args[3])
		if err != nil {
			return &ExitError{Code: ExitInvalidArgs, Err: err}
		}

		conf, err := loadConfig()
		if err != nil {
			return err
		}

		return runTool(cmd, conf, internal.Tool{
			Name:      "orderbydate",
			Root:      src,
			ReportDir: dest,
			Header: []string{
				"  Source directory:  " + src,
				"  Destination directory:  " + dest,
				"  Exceptions directory:  " + exc,
				"  Valid years:  " + years.String() + "\n",
			},
			Labels: internal.Labels{
				Applied:        "fully dated",
				SkippedNoDate:  "not dated",
				SkippedInvalid: "partially dated files",
				Excepted:       "exception files",
			},
			Action: &internal.ClassifyAndMove{
				Fs:         appFs,
				Dest:       dest,
				Exceptions: exc,
				Years:      years,
				DryRun:     dryRunFlag,
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(orderbydateCmd)
}
