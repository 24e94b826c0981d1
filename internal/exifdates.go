package internal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// WriteExifDates writes the effective date of each file back into its EXIF
// date fields.
type WriteExifDates struct {
	Source   *MetadataDateSource
	Writer   MetadataWriter
	Location *time.Location
	DryRun   bool
}

func (a *WriteExifDates) Process(ctx context.Context, entry FileEntry) Result {
	lines := []string{fmt.Sprintf("\n  » processing file: %s", entry.Name)}

	resolved, err := a.Source.Resolve(ctx, entry.Path, entry.Name)
	switch {
	case errors.Is(err, ErrInconsistency):
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("     ...inconsistency: %v, manual intervention required.", err)),
			Err:     err,
		}
	case err != nil:
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("     ...exception: an error occurred while attempting to read metadata: %v", err)),
			Err:     err,
		}
	}

	if resolved.Date.Validity == ValidityNone {
		return Result{
			Outcome: SkippedNoDate,
			Lines:   append(lines, "     ...no valid dates found, skipping file."),
			Err:     ErrNoDateFound,
		}
	}

	t, err := resolved.Date.Time(a.Location)
	if err != nil {
		return Result{
			Outcome: SkippedInvalid,
			Lines:   append(lines, fmt.Sprintf("     ...invalid date from %s: %v", resolved.Source, err)),
			Err:     err,
		}
	}

	stamp := t.Format(ExifDateLayout)
	lines = append(lines,
		fmt.Sprintf("     ...using source: %s", resolved.Source),
		fmt.Sprintf("     ...use date: %s", stamp),
	)

	if a.DryRun {
		return Result{Outcome: Applied, Lines: append(lines, "     ...dry run, metadata not written.")}
	}

	if err := a.Writer.WriteDates(ctx, entry.Path, stamp); err != nil {
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("     ...exception, failed to write metadata: %v", err)),
			Err:     fmt.Errorf("%w: write metadata: %v", ErrFilesystemOperation, err),
		}
	}
	return Result{Outcome: Applied, Lines: lines}
}
