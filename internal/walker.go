package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileEntry is one file yielded by the scan.
type FileEntry struct {
	Path string
	Name string
}

// Action is the per-file behavior plugged into a walk.
type Action interface {
	Process(ctx context.Context, entry FileEntry) Result
}

// ActionFunc adapts a function to Action.
type ActionFunc func(ctx context.Context, entry FileEntry) Result

func (f ActionFunc) Process(ctx context.Context, entry FileEntry) Result {
	return f(ctx, entry)
}

// ScanOptions controls which files the scan yields.
type ScanOptions struct {
	SkipHidden bool
	// Exclude lists paths that are never yielded (the report file).
	Exclude []string
}

// ScanFiles scans root recursively and returns every non-directory entry.
// Unreadable subdirectories are logged and skipped; only a failure on root
// itself is returned.
func ScanFiles(fsys afero.Fs, root string, opts ScanOptions) ([]FileEntry, error) {
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, p := range opts.Exclude {
		excluded[absPath(p)] = true
	}

	var files []FileEntry
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logrus.WithError(err).Warnf("skipping unreadable path %s", path)
			return nil
		}
		if opts.SkipHidden && path != root && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if excluded[absPath(path)] {
			return nil
		}
		files = append(files, FileEntry{Path: path, Name: info.Name()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning files: %w", err)
	}
	return files, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// Tool describes one run: what to walk, where the report goes and which
// action handles each file.
type Tool struct {
	Name      string // report file is <Name>.rep
	Root      string
	ReportDir string // defaults to Root
	Header    []string
	Labels    Labels
	Action    Action
	// Finish, if set, runs after the last file and before the footer.
	Finish func(report *WalkReport)
}

// ReportPath is where the run's report file is written.
func (t Tool) ReportPath() string {
	dir := t.ReportDir
	if dir == "" {
		dir = t.Root
	}
	return filepath.Join(dir, t.Name+".rep")
}

// Walker runs tools over a filesystem, one file at a time.
type Walker struct {
	Fs      afero.Fs
	Options ScanOptions
	Now     func() time.Time
}

func (w *Walker) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

// Run creates the report file, walks the tool's root and writes the footer.
// The report file is opened before any file is touched; failing to create or
// write it aborts the run with a *ReportError. Cancelling ctx stops the walk
// after the in-flight file and still finalizes the report, then returns
// ctx.Err().
func (w *Walker) Run(ctx context.Context, tool Tool, out io.Writer) (WalkStats, error) {
	start := w.now()
	reportPath := tool.ReportPath()

	logger, err := NewLogger(w.Fs, reportPath, out)
	if err != nil {
		return WalkStats{}, err
	}

	report := NewWalkReport(tool.Name, tool.Root, logger)
	report.LogHeader(tool.Header...)

	walkErr := w.Walk(ctx, tool.Root, tool.Action, report, reportPath)
	interrupted := walkErr != nil && ctx.Err() != nil

	if tool.Finish != nil && report.Err() == nil {
		tool.Finish(report)
	}
	report.LogFooter(tool.Labels, w.now().Sub(start), interrupted)

	if err := logger.Close(); err != nil {
		return report.GetStats(), err
	}
	return report.GetStats(), walkErr
}

// Walk scans root, then hands each file to action and merges the result into
// report. Files are collected before the first action runs so moves and
// renames do not disturb the traversal.
func (w *Walker) Walk(ctx context.Context, root string, action Action, report *WalkReport, exclude ...string) error {
	opts := w.Options
	opts.Exclude = append(append([]string(nil), opts.Exclude...), exclude...)

	files, err := ScanFiles(w.Fs, root, opts)
	if err != nil {
		return err
	}
	logrus.Debugf("found %d files under %s", len(files), root)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		report.Merge(f, action.Process(ctx, f))
		if err := report.Err(); err != nil {
			return err
		}
	}
	return nil
}
