//go:build !unix && !windows

package internal

func isCrossDevice(err error) bool {
	return false
}
