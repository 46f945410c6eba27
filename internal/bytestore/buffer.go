package bytestore

import (
	"fmt"

	"github.com/joshuapare/hexkit/internal/buf"
)

// Buffer is an in-memory store. It never shares its backing array with the
// caller after the first write.
type Buffer struct {
	data   []byte
	owned  bool
	cursor int
}

// NewBuffer wraps data without copying it. Data may be a read-only mapping;
// the first WriteAt copies it before modifying.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the current contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the current length.
func (b *Buffer) Len() int { return len(b.data) }

// Seek positions the cursor at offset. Seeking past the end is allowed;
// the next ReadRow returns nothing.
func (b *Buffer) Seek(offset uint32) error {
	if uint64(offset) > uint64(len(b.data)) {
		b.cursor = len(b.data)
		return nil
	}
	b.cursor = int(offset)
	return nil
}

// ReadRow reads up to RowWidth bytes from the cursor.
func (b *Buffer) ReadRow() ([]byte, error) {
	n := min(RowWidth, len(b.data)-b.cursor)
	row, ok := buf.Slice(b.data, b.cursor, n)
	if !ok {
		return []byte{}, nil
	}
	b.cursor += n
	return row, nil
}

// WriteAt overwrites the buffer at offset, zero-filling any gap past the end.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(^uint32(0)) || !buf.Fits32(uint32(off), len(p)) {
		return 0, fmt.Errorf("%w: %d+%d", ErrOutOfRange, off, len(p))
	}
	end, ok := buf.AddOverflowSafe(int(off), len(p))
	if !ok {
		return 0, fmt.Errorf("%w: %d+%d", ErrOutOfRange, off, len(p))
	}
	if !b.owned {
		b.data = append(make([]byte, 0, max(end, len(b.data))), b.data...)
		b.owned = true
	}
	if end > len(b.data) {
		b.data = append(b.data, make([]byte, end-len(b.data))...)
	}
	copy(b.data[off:end], p)
	return len(p), nil
}
