// Package mmfile maps target files read-only for browsing.
package mmfile

import (
	"errors"
	"fmt"

	"github.com/joshuapare/hexkit/internal/buf"
)

// ErrTooLarge indicates a file extends past the 32-bit offset space.
var ErrTooLarge = errors.New("mmfile: file exceeds 32-bit offset space")

func checkSize(size int64) error {
	if size < 0 || uint64(size) > buf.AddressSpace {
		return fmt.Errorf("%w (%d bytes)", ErrTooLarge, size)
	}
	if size > int64(^uint(0)>>1) {
		return fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	return nil
}

func noop() error { return nil }
