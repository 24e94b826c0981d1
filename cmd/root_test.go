package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"filetidy/internal"
)

// execute runs the root command in-process with a fresh config file.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, "timezone = \"UTC\"\n", args...)
}

func executeWithConfig(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()

	conf := filepath.Join(t.TempDir(), "filetidy.toml")
	if err := os.WriteFile(conf, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	configFlag, dryRunFlag, verboseFlag = "", false, false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", conf}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"usage", &ExitError{Code: ExitUsage, Err: errors.New("x")}, ExitUsage},
		{"invalid args", fmt.Errorf("wrapped: %w", &ExitError{Code: ExitInvalidArgs, Err: errors.New("x")}), ExitInvalidArgs},
		{"report", &internal.ReportError{Path: "/x.rep", Err: errors.New("x")}, ExitReport},
		{"interrupted", fmt.Errorf("walk: %w", context.Canceled), ExitInterrupted},
		{"other", errors.New("unknown flag"), ExitUsage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestCommands_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{"settime"},
		{"exifdates", "a", "b"},
		{"lowercase"},
		{"filetypes", "a", "b"},
		{"orderbydate", "a", "b", "c"},
	} {
		t.Run(args[0], func(t *testing.T) {
			out, err := execute(t, args...)
			if ExitCode(err) != ExitUsage {
				t.Errorf("Expected exit %d, got %d (%v)", ExitUsage, ExitCode(err), err)
			}
			if !strings.Contains(out, "Usage:") {
				t.Errorf("Expected usage on stdout, got:\n%s", out)
			}
		})
	}
}

func TestCommands_InvalidDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	dir := t.TempDir()

	for _, args := range [][]string{
		{"settime", missing},
		{"exifdates", missing},
		{"lowercase", missing},
		{"filetypes", missing},
		{"orderbydate", missing, dir, dir, "2000-2020"},
		{"orderbydate", dir, dir, dir, "2020-2000"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, args...)
			if ExitCode(err) != ExitInvalidArgs {
				t.Errorf("Expected exit %d, got %d (%v)", ExitInvalidArgs, ExitCode(err), err)
			}
		})
	}
}

func TestCommands_InvalidConfig(t *testing.T) {
	dir := t.TempDir()

	for _, cmdName := range []string{"settime", "exifdates"} {
		t.Run(cmdName, func(t *testing.T) {
			_, err := executeWithConfig(t, "timezone = \"Mars/Olympus\"\n", cmdName, dir)
			if ExitCode(err) != ExitInvalidArgs {
				t.Errorf("Expected exit %d, got %d (%v)", ExitInvalidArgs, ExitCode(err), err)
			}
			if _, statErr := os.Stat(filepath.Join(dir, cmdName+".rep")); statErr == nil {
				t.Error("Expected no report file for a rejected config")
			}
		})
	}
}

func TestLowercaseCommand(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "IMG_0001.JPG", "sub/Notes.TXT", "already.txt")

	out, err := execute(t, "lowercase", dir)
	if err != nil {
		t.Fatalf("lowercase failed: %v", err)
	}

	for _, name := range []string{"img_0001.jpg", "sub/notes.txt", "already.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
	if !strings.Contains(out, "...renamed: 2") {
		t.Errorf("Expected 2 renamed, got:\n%s", out)
	}

	report, err := os.ReadFile(filepath.Join(dir, "lowercase.rep"))
	if err != nil {
		t.Fatalf("Expected report file: %v", err)
	}
	if string(report) != out {
		t.Error("Expected stdout to mirror the report file")
	}
}

func TestSetTimeCommand(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "IMG_20200615_101112.jpg", "photo.jpg")

	out, err := execute(t, "settime", dir)
	if err != nil {
		t.Fatalf("settime failed: %v", err)
	}

	fi, err := os.Stat(filepath.Join(dir, "IMG_20200615_101112.jpg"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	expected := time.Date(2020, 6, 15, 10, 11, 12, 0, time.UTC)
	if !fi.ModTime().Equal(expected) {
		t.Errorf("Expected mtime %s, got %s", expected, fi.ModTime())
	}
	if !strings.Contains(out, "Files processed: 2") {
		t.Errorf("Expected 2 processed, got:\n%s", out)
	}
}

func TestSetTimeCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "20200615.jpg")
	before, _ := os.Stat(filepath.Join(dir, "20200615.jpg"))

	out, err := execute(t, "--dry-run", "settime", dir)
	if err != nil {
		t.Fatalf("settime failed: %v", err)
	}

	after, _ := os.Stat(filepath.Join(dir, "20200615.jpg"))
	if !before.ModTime().Equal(after.ModTime()) {
		t.Error("Expected dry run to leave mtime alone")
	}
	if !strings.Contains(out, "Dry run") {
		t.Errorf("Expected dry run header, got:\n%s", out)
	}
}

func TestFileTypesCommand(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpg", "c.pdf", "README")

	out, err := execute(t, "filetypes", dir)
	if err != nil {
		t.Fatalf("filetypes failed: %v", err)
	}

	for _, want := range []string{"Scanned 4 files", ".jpg: 2 (Images)", ".pdf: 1 (Documents)", "(none): 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestOrderByDateCommand(t *testing.T) {
	src, dest, exc := t.TempDir(), t.TempDir(), t.TempDir()
	writeFiles(t, src, "20200145_photo.jpg", "deep/2020xx_a.jpg", "photo.jpg", "1999_old.jpg")

	out, err := execute(t, "orderbydate", src, dest, exc, "2019-2021")
	if err != nil {
		t.Fatalf("orderbydate failed: %v", err)
	}

	for _, path := range []string{
		filepath.Join(dest, "2020", "01", "20200145_photo.jpg"),
		filepath.Join(dest, "2020", "2020xx_a.jpg"),
		filepath.Join(exc, "photo.jpg"),
		filepath.Join(exc, "1999_old.jpg"),
		filepath.Join(dest, "orderbydate.rep"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s: %v", path, err)
		}
	}
	for _, want := range []string{"...fully dated: 1", "...partially dated files: 1", "...exception files: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}
