package bytestore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/fsync"
)

// RowWidth is the number of bytes in one rendered row.
const RowWidth = 16

var (
	// ErrClosed indicates an operation on a closed store.
	ErrClosed = errors.New("bytestore: store closed")

	// ErrOutOfRange indicates a write would address bytes past 2^32-1.
	ErrOutOfRange = errors.New("bytestore: range exceeds 32-bit offset space")
)

// Store is a file opened for row reads and positional writes.
type Store struct {
	f    *os.File
	path string
	row  [RowWidth]byte
}

// Open opens path read-only.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Store{f: f, path: path}, nil
}

// OpenRW opens path for reading and writing without truncating it.
func OpenRW(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &Store{f: f, path: path}, nil
}

// Path returns the path the store was opened with.
func (s *Store) Path() string { return s.path }

// Seek positions the cursor at offset.
func (s *Store) Seek(offset uint32) error {
	if s.f == nil {
		return ErrClosed
	}
	if _, err := s.f.Seek(int64(offset), io.SeekStart); err != nil {
		return fmt.Errorf("seek 0x%08X: %w", offset, err)
	}
	return nil
}

// ReadRow reads up to RowWidth bytes from the cursor. It returns fewer bytes
// at end of file and an empty slice with a nil error once nothing remains.
// The returned slice is only valid until the next call.
func (s *Store) ReadRow() ([]byte, error) {
	if s.f == nil {
		return nil, ErrClosed
	}
	n, err := io.ReadFull(s.f, s.row[:])
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return s.row[:n], nil
	default:
		return nil, fmt.Errorf("read row: %w", err)
	}
}

// WriteAt overwrites len(p) bytes starting at off, implementing io.WriterAt.
// Writing past the current end extends the file; nothing after the written
// range moves.
func (s *Store) WriteAt(p []byte, off int64) (int, error) {
	if s.f == nil {
		return 0, ErrClosed
	}
	if off < 0 || off > int64(^uint32(0)) || !buf.Fits32(uint32(off), len(p)) {
		return 0, fmt.Errorf("%w: 0x%08X+%d", ErrOutOfRange, off, len(p))
	}
	n, err := s.f.WriteAt(p, off)
	if err != nil {
		return n, fmt.Errorf("write 0x%08X: %w", off, err)
	}
	return n, nil
}

// Size returns the current length of the file.
func (s *Store) Size() (int64, error) {
	if s.f == nil {
		return 0, ErrClosed
	}
	info, err := s.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Sync flushes written data to stable storage.
func (s *Store) Sync() error {
	if s.f == nil {
		return ErrClosed
	}
	return fsync.File(s.f)
}

// Close releases the file handle. Closing twice is a no-op.
func (s *Store) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
