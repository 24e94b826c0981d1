package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// NoExtension is the histogram key for files without an extension.
const NoExtension = "(none)"

// File type categories
var fileTypeCategories = map[string][]string{
	"Images":        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".webp", ".heic", ".heif", ".raw", ".cr2", ".nef", ".arw", ".dng"},
	"Videos":        {".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm", ".m4v", ".mpg", ".mpeg", ".3gp"},
	"Documents":     {".pdf", ".doc", ".docx", ".rtf", ".odt"},
	"Spreadsheets":  {".xls", ".xlsx", ".csv", ".ods"},
	"Presentations": {".ppt", ".pptx", ".odp"},
	"Text":          {".txt", ".md", ".rst", ".asciidoc"},
	"Books":         {".epub", ".mobi", ".azw", ".azw3", ".cbr", ".cbz", ".fb2", ".lit"},
	"Code":          {".go", ".js", ".ts", ".py", ".java", ".c", ".cpp", ".h", ".hpp", ".rs", ".php", ".rb", ".swift"},
	"Config":        {".json", ".yaml", ".yml", ".toml", ".ini", ".conf", ".xml"},
	"Archives":      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"},
	"Audio":         {".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a"},
}

// categorizeFile determines the category of a file based on extension.
// Matching ignores case; the histogram itself does not.
func categorizeFile(ext string) string {
	ext = strings.ToLower(ext)
	for category, extensions := range fileTypeCategories {
		for _, e := range extensions {
			if ext == e {
				return category
			}
		}
	}
	return "Other"
}

// fileExtension returns the extension of name the way a dot-file is usually
// read: ".bashrc" has none, "archive.tar.gz" has ".gz".
func fileExtension(name string) string {
	trimmed := strings.TrimLeft(name, ".")
	if trimmed == "" {
		return ""
	}
	return filepath.Ext(trimmed)
}

// ListFileTypes counts files per extension. It never touches a file.
type ListFileTypes struct{}

func (ListFileTypes) Process(ctx context.Context, entry FileEntry) Result {
	ext := fileExtension(entry.Name)
	if ext == "" {
		ext = NoExtension
	}
	return Result{Outcome: Applied, Tally: ext}
}

// LogFileTypes writes the extension histogram with each extension's category.
func LogFileTypes(report *WalkReport) {
	stats := report.GetStats()
	report.LogTally(
		fmt.Sprintf("Scanned %d files and found these extensions:", stats.Processed),
		func(ext string) string {
			if ext == NoExtension {
				return ""
			}
			return categorizeFile(ext)
		},
	)
}
