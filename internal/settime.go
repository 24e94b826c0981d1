package internal

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SetTimestamps sets each file's modification time from the date in its name.
type SetTimestamps struct {
	Times    TimeSetter
	Location *time.Location
	Now      func() time.Time
	DryRun   bool
}

func (a *SetTimestamps) Process(ctx context.Context, entry FileEntry) Result {
	lines := []string{fmt.Sprintf("\n  » processing file: %s", entry.Name)}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	date := DateFromFilename(entry.Name, StrictYears(now()))
	if date.Validity == ValidityNone {
		return Result{
			Outcome: SkippedNoDate,
			Lines:   append(lines, "  ...no valid dates found, skipping file."),
			Err:     ErrNoDateFound,
		}
	}
	lines = append(lines, dateLines(date)...)

	t, err := date.Time(a.Location)
	if err != nil {
		return Result{
			Outcome: SkippedInvalid,
			Lines:   append(lines, fmt.Sprintf("  ...invalid date format in filename: %s", entry.Name)),
			Err:     err,
		}
	}

	if a.DryRun {
		return Result{
			Outcome: Applied,
			Lines:   append(lines, fmt.Sprintf("  ...dry run, would set modification time to %s", t.Format(time.DateTime))),
		}
	}

	if err := a.Times.SetModTime(entry.Path, t); err != nil {
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("  ...error processing file %s: %v", entry.Name, err)),
			Err:     fmt.Errorf("%w: set modification time: %v", ErrFilesystemOperation, err),
		}
	}

	switch err := a.Times.TrySetCreationTime(entry.Path, t); {
	case errors.Is(err, ErrCreationTimeUnsupported):
		lines = append(lines, "  ...warning: creation time not set, unsupported here.")
	case err != nil:
		lines = append(lines, fmt.Sprintf("  ...warning: error setting creation time: %v", err))
	}

	return Result{Outcome: Applied, Lines: lines}
}

func dateLines(d InferredDate) []string {
	return []string{
		fmt.Sprintf("  ...year: %d", d.Year),
		fmt.Sprintf("  ...month: %d", d.Month),
		fmt.Sprintf("  ...day: %d", d.Day),
		fmt.Sprintf("  ...hour: %d", d.Hour),
		fmt.Sprintf("  ...minute: %d", d.Minute),
		fmt.Sprintf("  ...second: %d", d.Second),
	}
}
