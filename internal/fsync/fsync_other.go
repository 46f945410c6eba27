//go:build !linux && !freebsd && !darwin && !windows

package fsync

import "os"

// File falls back to (*os.File).Sync where no finer primitive is wired.
func File(f *os.File) error {
	return f.Sync()
}
