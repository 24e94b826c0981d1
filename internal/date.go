package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ExifDateLayout is the date format exiftool reads and writes.
const ExifDateLayout = "2006:01:02 15:04:05"

// Validity tells how much of a date could be inferred from a filename.
type Validity int

const (
	ValidityNone     Validity = iota // no usable year, the file must not be touched
	ValidityYearOnly                 // a year but nothing after it
	ValidityFull                     // a year, later fields parsed or defaulted
)

func (v Validity) String() string {
	switch v {
	case ValidityYearOnly:
		return "year-only"
	case ValidityFull:
		return "full"
	default:
		return "none"
	}
}

// InferredDate is the best-effort date found in a filename. Fields that were
// missing or out of range keep their defaults (month=1, day=1, 00:00:00).
type InferredDate struct {
	Year     int
	Month    int
	Day      int
	Hour     int
	Minute   int
	Second   int
	Validity Validity
}

// YearBounds is the inclusive range a filename year must fall in.
type YearBounds struct {
	Min int
	Max int
}

// StrictYears accepts 1970 up to the current year. Used when setting file times.
func StrictYears(now time.Time) YearBounds {
	return YearBounds{Min: 1970, Max: now.Year()}
}

// UpperBoundYears only rejects years in the future (and year 0, which reads
// as "no year"). Used by the EXIF writer's filename fallback.
func UpperBoundYears(now time.Time) YearBounds {
	return YearBounds{Min: 1, Max: now.Year()}
}

// FilenameDigits strips every character that is not a decimal digit.
func FilenameDigits(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if c := name[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// DateFromFilename reads YYYYMMDDhhmmss from the digits of filename. Each field
// is checked on its own; an invalid month does not stop the day from being read.
func DateFromFilename(filename string, bounds YearBounds) InferredDate {
	date := InferredDate{Month: 1, Day: 1}

	d := FilenameDigits(filename)
	if len(d) <= 4 {
		return date
	}

	year, ok := digitField(d, 0, 4, bounds.Min, bounds.Max)
	if !ok {
		return date
	}
	date.Year = year
	date.Validity = ValidityFull
	if len(d) < 6 {
		date.Validity = ValidityYearOnly
	}

	if v, ok := digitField(d, 4, 6, 1, 12); ok {
		date.Month = v
	}
	if v, ok := digitField(d, 6, 8, 1, 31); ok {
		date.Day = v
	}
	if v, ok := digitField(d, 8, 10, 0, 23); ok {
		date.Hour = v
	}
	if v, ok := digitField(d, 10, 12, 0, 59); ok {
		date.Minute = v
	}
	if v, ok := digitField(d, 12, 14, 0, 59); ok {
		date.Second = v
	}
	return date
}

func digitField(d string, from, to, min, max int) (int, bool) {
	if len(d) < to {
		return 0, false
	}
	n, err := strconv.Atoi(d[from:to])
	if err != nil {
		return 0, false
	}
	if n < min || n > max {
		return 0, false
	}
	return n, true
}

// Time materializes the date in loc. Day-of-month is only checked here, so
// 20230231 parses fine but fails to become a time.
func (d InferredDate) Time(loc *time.Location) (time.Time, error) {
	if d.Validity == ValidityNone {
		return time.Time{}, ErrNoDateFound
	}
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, loc)
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDateCombination, d.Year, d.Month, d.Day)
	}
	return t, nil
}

// ExifString formats the date as YYYY:MM:DD HH:MM:SS.
func (d InferredDate) ExifString() string {
	return fmt.Sprintf("%04d:%02d:%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// parseExifDate reads a metadata date string such as "2021:07:04 10:11:12+02:00".
// Anything after the first 19 characters (zone, sub-seconds) is ignored.
func parseExifDate(s string) (InferredDate, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(ExifDateLayout) {
		return InferredDate{}, fmt.Errorf("malformed metadata date %q", s)
	}
	t, err := time.Parse(ExifDateLayout, s[:len(ExifDateLayout)])
	if err != nil {
		return InferredDate{}, fmt.Errorf("malformed metadata date %q: %w", s, err)
	}
	return InferredDate{
		Year:     t.Year(),
		Month:    int(t.Month()),
		Day:      t.Day(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   t.Second(),
		Validity: ValidityFull,
	}, nil
}
