package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// RenameLowercase renames files to their lowercase name in place.
type RenameLowercase struct {
	Fs     afero.Fs
	DryRun bool
}

func (a *RenameLowercase) Process(ctx context.Context, entry FileEntry) Result {
	lower := strings.ToLower(entry.Name)
	if lower == entry.Name {
		return Result{Outcome: SkippedNoDate}
	}

	newPath := filepath.Join(filepath.Dir(entry.Path), lower)
	lines := []string{fmt.Sprintf("\n      ...renaming file: %s", entry.Name)}

	if existing, err := a.Fs.Stat(newPath); err == nil {
		// A case-insensitive filesystem reports the file itself.
		current, statErr := a.Fs.Stat(entry.Path)
		if statErr != nil || !os.SameFile(current, existing) {
			return Result{
				Outcome: Excepted,
				Lines:   append(lines, fmt.Sprintf("      ...error: file '%s' already exists.", newPath)),
				Err:     fmt.Errorf("%w: %s already exists", ErrFilesystemOperation, newPath),
			}
		}
	}

	if a.DryRun {
		return Result{Outcome: Applied, Lines: append(lines, fmt.Sprintf("      ...[dry-run] would rename to '%s'", lower))}
	}

	if err := a.Fs.Rename(entry.Path, newPath); err != nil {
		return Result{
			Outcome: Excepted,
			Lines:   append(lines, fmt.Sprintf("      ...an unexpected error occurred: %v", err)),
			Err:     fmt.Errorf("%w: rename %s: %v", ErrFilesystemOperation, entry.Name, err),
		}
	}
	return Result{Outcome: Applied, Lines: append(lines, fmt.Sprintf("      ...renamed '%s' to '%s'", entry.Path, newPath))}
}
