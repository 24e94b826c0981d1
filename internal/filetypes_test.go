package internal

import (
	"context"
	"testing"
)

func TestFileExtension(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"a.jpg", ".jpg"},
		{"b.JPG", ".JPG"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{".hidden.txt", ".txt"},
		{"...", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fileExtension(tc.name); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestCategorizeFile(t *testing.T) {
	testCases := []struct {
		ext      string
		expected string
	}{
		{".jpg", "Images"},
		{".JPG", "Images"},
		{".mov", "Videos"},
		{".pdf", "Documents"},
		{".toml", "Config"},
		{".xyz", "Other"},
	}

	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			if got := categorizeFile(tc.ext); got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestListFileTypes_Tally(t *testing.T) {
	report := NewWalkReport("filetypes", "/p", nil)
	action := ListFileTypes{}

	for _, name := range []string{"a.jpg", "b.jpg", "c.JPG", "README"} {
		entry := FileEntry{Path: "/p/" + name, Name: name}
		report.Merge(entry, action.Process(context.Background(), entry))
	}

	if got := report.Tally(".jpg"); got != 2 {
		t.Errorf("Expected 2 .jpg, got %d", got)
	}
	if got := report.Tally(".JPG"); got != 1 {
		t.Errorf("Expected 1 .JPG, got %d", got)
	}
	if got := report.Tally(NoExtension); got != 1 {
		t.Errorf("Expected 1 without extension, got %d", got)
	}

	keys := report.TallyKeys()
	if len(keys) != 3 || keys[0] != ".jpg" {
		t.Errorf("Expected .jpg first of 3 keys, got %v", keys)
	}

	stats := report.GetStats()
	if stats.Processed != 4 || stats.Applied != 4 {
		t.Errorf("Expected 4 processed and applied, got %+v", stats)
	}
}
