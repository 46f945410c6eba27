//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

// File flushes f using FlushFileBuffers.
func File(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
