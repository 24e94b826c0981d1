package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
)

// YearRange is an inclusive range of accepted years.
type YearRange struct {
	Start int
	End   int
}

func (r YearRange) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

func (r YearRange) String() string {
	return fmt.Sprintf("%04d-%04d", r.Start, r.End)
}

// ParseYearRange parses "YYYY-YYYY" with start <= end.
func ParseYearRange(s string) (YearRange, error) {
	if len(s) != 9 || s[4] != '-' || !isDigits(s[:4]) || !isDigits(s[5:]) {
		return YearRange{}, fmt.Errorf("invalid year range %q, use YYYY-YYYY (eg. 1990-2011)", s)
	}
	start, _ := strconv.Atoi(s[:4])
	end, _ := strconv.Atoi(s[5:])
	if end < start {
		return YearRange{}, fmt.Errorf("invalid year range %q, end year precedes start year", s)
	}
	return YearRange{Start: start, End: end}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ClassifyAndMove moves files into Dest/YYYY/MM using the first six characters
// of the raw filename. Unlike DateFromFilename nothing is stripped, so only
// names that start with YYYYMM are fully dated.
type ClassifyAndMove struct {
	Fs         afero.Fs
	Dest       string
	Exceptions string
	Years      YearRange
	DryRun     bool
}

// Classify returns the outcome and target directory for name.
func (a *ClassifyAndMove) Classify(name string) (Outcome, string) {
	if len(name) < 4 || !isDigits(name[:4]) {
		return Excepted, a.Exceptions
	}
	year, _ := strconv.Atoi(name[:4])
	if !a.Years.Contains(year) {
		return Excepted, a.Exceptions
	}

	yearDir := filepath.Join(a.Dest, name[:4])
	if len(name) < 6 || !isDigits(name[4:6]) {
		return SkippedInvalid, yearDir
	}
	month, _ := strconv.Atoi(name[4:6])
	if month < 1 || month > 12 {
		return SkippedInvalid, yearDir
	}
	return Applied, filepath.Join(yearDir, name[4:6])
}

func (a *ClassifyAndMove) Process(ctx context.Context, entry FileEntry) Result {
	outcome, dir := a.Classify(entry.Name)

	var lines []string
	var reason error
	switch outcome {
	case Excepted:
		if len(entry.Name) >= 4 && isDigits(entry.Name[:4]) {
			lines = append(lines, fmt.Sprintf("  File year is outside of selected valid range: %s", entry.Name))
		} else {
			lines = append(lines, fmt.Sprintf("  No year found for file: %s", entry.Name))
		}
		reason = ErrNoDateFound
	case SkippedInvalid:
		lines = append(lines, fmt.Sprintf("  Invalid month for file: %s", entry.Name))
		reason = ErrInvalidDateCombination
	}

	target := filepath.Join(dir, entry.Name)
	if a.DryRun {
		lines = append(lines, fmt.Sprintf("  [dry-run] would move [%s] to %s", entry.Path, dir))
		return Result{Outcome: outcome, Lines: lines, Err: reason}
	}

	if err := a.Fs.MkdirAll(dir, 0755); err != nil {
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("  Error: could not create directory %s: %v", dir, err)),
			Err:     fmt.Errorf("%w: create %s: %v", ErrFilesystemOperation, dir, err),
		}
	}

	if err := moveFile(a.Fs, entry.Path, target); err != nil {
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("  Error moving '%s': %v", entry.Path, err)),
			Err:     err,
		}
	}

	lines = append(lines, fmt.Sprintf("  File [%s] moved to %s", entry.Path, dir))
	return Result{Outcome: outcome, Lines: lines, Err: reason}
}
