package internal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Metadata date fields, in the order they are preferred.
const (
	FieldCreateDate          = "CreateDate"
	FieldModifyDate          = "ModifyDate"
	FieldQuickTimeCreateDate = "QuickTime:CreateDate"
	FieldQuickTimeModifyDate = "QuickTime:ModifyDate"

	// SourceFilename marks a date taken from the filename.
	SourceFilename = "Filename"
)

// Fields written back by the EXIF writer.
var exifWriteFields = []string{"ModifyDate", "DateTimeOriginal", "DateTimeDigitized"}

// MetadataRecord holds the raw date strings read from a file. Empty means absent.
type MetadataRecord struct {
	CreateDate          string
	ModifyDate          string
	QuickTimeCreateDate string
	QuickTimeModifyDate string
}

// Effective returns the highest-priority date present and its field name.
// exiftool reports unset tags as "0000:00:00 00:00:00"; those count as absent.
func (m MetadataRecord) Effective() (value, field string, ok bool) {
	candidates := []struct{ value, field string }{
		{m.CreateDate, FieldCreateDate},
		{m.ModifyDate, FieldModifyDate},
		{m.QuickTimeCreateDate, FieldQuickTimeCreateDate},
		{m.QuickTimeModifyDate, FieldQuickTimeModifyDate},
	}
	for _, c := range candidates {
		if !isUnsetDate(c.value) {
			return c.value, c.field, true
		}
	}
	return "", "", false
}

func isUnsetDate(v string) bool {
	if strings.TrimSpace(v) == "" {
		return true
	}
	d := FilenameDigits(v)
	return d != "" && strings.Trim(d, "0") == ""
}

// MetadataReader reads embedded date fields from a file.
type MetadataReader interface {
	ReadDates(ctx context.Context, path string) (MetadataRecord, error)
}

// MetadataWriter writes date (formatted YYYY:MM:DD HH:MM:SS) into the file's
// ModifyDate, DateTimeOriginal and DateTimeDigitized fields in place.
type MetadataWriter interface {
	WriteDates(ctx context.Context, path string, date string) error
}

// ResolvedDate is a date together with where it came from.
type ResolvedDate struct {
	Date   InferredDate
	Source string
}

// MetadataDateSource prefers embedded metadata over the filename.
type MetadataDateSource struct {
	Reader MetadataReader
	Now    func() time.Time
}

// Resolve returns the effective date for the file at path. A read failure
// yields ErrMetadataUnavailable and a metadata year older than the filename
// year yields ErrInconsistency; neither falls back to the filename. When no
// metadata date exists the filename date is returned, which may have
// ValidityNone.
func (s *MetadataDateSource) Resolve(ctx context.Context, path, name string) (ResolvedDate, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	fromName := DateFromFilename(name, UpperBoundYears(now()))

	rec, err := s.Reader.ReadDates(ctx, path)
	if err != nil {
		return ResolvedDate{}, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}

	value, field, ok := rec.Effective()
	if !ok {
		return ResolvedDate{Date: fromName, Source: SourceFilename}, nil
	}

	date, err := parseExifDate(value)
	if err != nil {
		return ResolvedDate{}, fmt.Errorf("%w: %s: %v", ErrMetadataUnavailable, field, err)
	}
	if fromName.Validity != ValidityNone && date.Year < fromName.Year {
		return ResolvedDate{}, fmt.Errorf("%w: %s year %d, filename year %d", ErrInconsistency, field, date.Year, fromName.Year)
	}
	return ResolvedDate{Date: date, Source: field}, nil
}
