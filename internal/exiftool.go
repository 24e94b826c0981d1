package internal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barasher/go-exiftool"
	"github.com/sirupsen/logrus"
)

// ExifTool reads and writes metadata through one long-running exiftool
// process. Calls are serialized by the library.
type ExifTool struct {
	et      *exiftool.Exiftool
	timeout time.Duration
}

// NewExifTool starts exiftool from binPath ("" uses the one on PATH).
// A zero timeout lets every call block until exiftool answers.
func NewExifTool(binPath string, timeout time.Duration) (*ExifTool, error) {
	var opts []func(*exiftool.Exiftool) error
	if binPath != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binPath))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to start exiftool: %w", err)
	}
	return &ExifTool{et: et, timeout: timeout}, nil
}

func (e *ExifTool) ReadDates(ctx context.Context, path string) (MetadataRecord, error) {
	var infos []exiftool.FileMetadata
	err := e.call(ctx, func() {
		infos = e.et.ExtractMetadata(path)
	})
	if err != nil {
		return MetadataRecord{}, err
	}
	if len(infos) == 0 {
		return MetadataRecord{}, errors.New("exiftool returned no metadata")
	}
	info := infos[0]
	if info.Err != nil {
		return MetadataRecord{}, info.Err
	}
	logrus.Debugf("exiftool read %d fields from %s", len(info.Fields), path)

	return MetadataRecord{
		CreateDate:          fieldString(info, FieldCreateDate),
		ModifyDate:          fieldString(info, FieldModifyDate),
		QuickTimeCreateDate: fieldString(info, FieldQuickTimeCreateDate),
		QuickTimeModifyDate: fieldString(info, FieldQuickTimeModifyDate),
	}, nil
}

func fieldString(info exiftool.FileMetadata, key string) string {
	v, err := info.GetString(key)
	if err != nil {
		return ""
	}
	return v
}

// WriteDates overwrites the original file; no _original backup is kept.
func (e *ExifTool) WriteDates(ctx context.Context, path string, date string) error {
	md := exiftool.FileMetadata{File: path, Fields: map[string]interface{}{}}
	for _, field := range exifWriteFields {
		md.SetString(field, date)
	}
	batch := []exiftool.FileMetadata{md}

	err := e.call(ctx, func() {
		e.et.WriteMetadata(batch)
	})
	if err != nil {
		return err
	}
	logrus.Debugf("exiftool wrote %s to %s", date, path)
	return batch[0].Err
}

// call runs fn, giving up after the configured timeout. Cancellation of ctx
// does not cut the call short; the in-flight file always finishes. A
// timed-out exiftool call keeps running in the background and holds the
// process until it ends.
func (e *ExifTool) call(ctx context.Context, fn func()) error {
	if e.timeout <= 0 {
		fn()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("exiftool call: %w", ctx.Err())
	}
}

func (e *ExifTool) Close() error {
	return e.et.Close()
}
