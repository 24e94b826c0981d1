//go:build !windows

package internal

import "time"

// Birth time cannot be set through a portable syscall outside Windows.
func setCreationTime(path string, t time.Time) error {
	return ErrCreationTimeUnsupported
}
