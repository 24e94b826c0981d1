package internal

import (
	"errors"
	"time"

	"github.com/spf13/afero"
)

// ErrCreationTimeUnsupported is returned where the platform (or filesystem)
// has no settable creation time.
var ErrCreationTimeUnsupported = errors.New("setting creation time is not supported on this platform")

// TimeSetter sets file times. TrySetCreationTime is best-effort.
type TimeSetter interface {
	SetModTime(path string, t time.Time) error
	TrySetCreationTime(path string, t time.Time) error
}

// FsTimes sets times through an afero filesystem. Creation time is only
// attempted on the real OS filesystem.
type FsTimes struct {
	Fs afero.Fs
}

// SetModTime sets both access and modification time to t.
func (f FsTimes) SetModTime(path string, t time.Time) error {
	return f.Fs.Chtimes(path, t, t)
}

func (f FsTimes) TrySetCreationTime(path string, t time.Time) error {
	if _, ok := f.Fs.(*afero.OsFs); !ok {
		return ErrCreationTimeUnsupported
	}
	return setCreationTime(path, t)
}
