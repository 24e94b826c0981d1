package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"filetidy/internal"
)

var exifdatesCmd = &cobra.Command{
	Use:   "exifdates [folder]",
	Short: "Write EXIF dates from existing metadata or filenames",
	Long: `Walk a folder recursively and write ModifyDate, DateTimeOriginal and
DateTimeDigitized into each file through exiftool. The date comes from the
file's own metadata (CreateDate, ModifyDate, QuickTime:CreateDate,
QuickTime:ModifyDate) or, when none is present, from its filename.`,
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

		et, err := internal.NewExifTool(conf.ExifToolPath, conf.ExifToolTimeout)
		if err != nil {
			return err
		}
		defer et.Close()

		var reader internal.MetadataReader = et
		if conf.MetadataBackend == internal.BackendNative {
			reader = internal.NativeExifReader{Fs: appFs}
		}

		return runTool(cmd, conf, internal.Tool{
			Name:   "exifdates",
			Root:   folder,
			Header: []string{fmt.Sprintf("     Metadata reader: %s", conf.MetadataBackend)},
			Labels: internal.Labels{
				Applied:        "metadata written",
				SkippedNoDate:  "no date found",
				SkippedInvalid: "invalid date",
				Excepted:       "exceptions",
			},
			Action: &internal.WriteExifDates{
				Source:   &internal.MetadataDateSource{Reader: reader},
				Writer:   et,
				Location: loc,
				DryRun:   dryRunFlag,
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(exifdatesCmd)
}
