// Package bytestore treats a file as a flat, randomly addressable sequence of
// up to 2^32 bytes.
//
// A Store wraps an *os.File and exposes the three primitives the rest of the
// module is built on:
//
//   - Seek(offset): position the cursor at a 32-bit offset
//   - ReadRow(): read up to RowWidth bytes from the cursor
//   - WriteAt(p, offset): positional overwrite (io.WriterAt), used only by replay
//
// Buffer offers the same read primitives over an in-memory byte slice and
// auto-extends on WriteAt, so a changelog can be replayed without touching disk.
//
// Neither type is safe for concurrent use. Handles are meant to be opened
// right before an operation and closed when it returns.
package bytestore
