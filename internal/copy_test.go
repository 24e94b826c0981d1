package internal

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestCopyFileAtomic(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/a", 0755)
	fs.MkdirAll("/b", 0755)
	afero.WriteFile(fs, "/a/photo.jpg", []byte("test content"), 0640)
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	fs.Chtimes("/a/photo.jpg", mtime, mtime)

	if err := copyFileAtomic(fs, "/a/photo.jpg", "/b/photo.jpg"); err != nil {
		t.Fatalf("copyFileAtomic failed: %v", err)
	}

	data, err := afero.ReadFile(fs, "/b/photo.jpg")
	if err != nil {
		t.Fatalf("Failed to read copy: %v", err)
	}
	if string(data) != "test content" {
		t.Errorf("Expected copied content, got %q", data)
	}

	fi, _ := fs.Stat("/b/photo.jpg")
	if !fi.ModTime().Equal(mtime) {
		t.Errorf("Expected mtime %s, got %s", mtime, fi.ModTime())
	}
	if ok, _ := afero.Exists(fs, "/b/photo.jpg.tmp"); ok {
		t.Error("Expected temp file to be renamed away")
	}
}

func TestMoveFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/a", 0755)
	fs.MkdirAll("/b", 0755)
	afero.WriteFile(fs, "/a/one.jpg", []byte("1"), 0644)
	afero.WriteFile(fs, "/a/two.jpg", []byte("2"), 0644)
	afero.WriteFile(fs, "/b/two.jpg", []byte("existing"), 0644)

	if err := moveFile(fs, "/a/one.jpg", "/b/one.jpg"); err != nil {
		t.Fatalf("moveFile failed: %v", err)
	}
	if ok, _ := afero.Exists(fs, "/a/one.jpg"); ok {
		t.Error("Expected source to be gone after move")
	}

	err := moveFile(fs, "/a/two.jpg", "/b/two.jpg")
	if !errors.Is(err, ErrFilesystemOperation) {
		t.Errorf("Expected ErrFilesystemOperation, got %v", err)
	}
	data, _ := afero.ReadFile(fs, "/b/two.jpg")
	if string(data) != "existing" {
		t.Errorf("Expected existing target untouched, got %q", data)
	}
}
