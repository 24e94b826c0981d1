package internal

import (
	"context"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// NativeExifReader reads EXIF dates in-process with goexif. It only
// understands JPEG/TIFF style EXIF, so QuickTime fields are never filled.
// EXIF DateTimeDigitized is what exiftool reports as CreateDate, and EXIF
// DateTime is its ModifyDate.
type NativeExifReader struct {
	Fs afero.Fs
}

// ReadDates returns an empty record for files without decodable EXIF, so
// they fall back to the filename like they do under exiftool. Only a file
// that cannot be opened is an error.
func (r NativeExifReader) ReadDates(ctx context.Context, path string) (MetadataRecord, error) {
	f, err := r.Fs.Open(path)
	if err != nil {
		return MetadataRecord{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		if x == nil || exif.IsCriticalError(err) {
			logrus.Debugf("no EXIF in %s: %v", path, err)
			return MetadataRecord{}, nil
		}
		// partially decoded, the date tags may still be there
		logrus.Debugf("partial EXIF in %s: %v", path, err)
	}

	return MetadataRecord{
		CreateDate: exifTagString(x, exif.DateTimeDigitized),
		ModifyDate: exifTagString(x, exif.DateTime),
	}, nil
}

func exifTagString(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return s
}
