//go:build darwin

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// File flushes f with F_FULLFSYNC, falling back to fsync when the
// filesystem does not support it.
//
// F_FULLFSYNC ensures data is written to the physical disk, not just the drive cache.
func File(f *os.File) error {
	fd := f.Fd()
	if _, err := unix.FcntlInt(fd, unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(int(fd))
}
