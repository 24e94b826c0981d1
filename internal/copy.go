package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyFileAtomic copies a file atomically (copy temp → rename) and keeps the
// source mode and modification time.
func copyFileAtomic(fsys afero.Fs, src, dest string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	tmp := dest + ".tmp"
	out, err := fsys.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		fsys.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		fsys.Remove(tmp)
		return err
	}
	if err := fsys.Chtimes(tmp, info.ModTime(), info.ModTime()); err != nil {
		fsys.Remove(tmp)
		return err
	}

	return fsys.Rename(tmp, dest)
}

// moveFile renames src to dest. Across filesystems it copies then removes
// the source. An existing dest is never overwritten.
func moveFile(fsys afero.Fs, src, dest string) error {
	if _, err := fsys.Stat(dest); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrFilesystemOperation, dest)
	}

	err := fsys.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return fmt.Errorf("%w: move %s: %v", ErrFilesystemOperation, filepath.Base(src), err)
	}

	if err := copyFileAtomic(fsys, src, dest); err != nil {
		return fmt.Errorf("%w: copy %s across devices: %v", ErrFilesystemOperation, filepath.Base(src), err)
	}
	if err := fsys.Remove(src); err != nil {
		return fmt.Errorf("%w: remove %s after copy: %v", ErrFilesystemOperation, filepath.Base(src), err)
	}
	return nil
}
