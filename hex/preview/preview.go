// Package preview renders a staged edit merged over a file without writing it.
//
// Rows start at the row-aligned offset containing the edit and end right
// after the row holding its last byte. Inside the edit span the edit's bytes
// replace the file's; every row carries the span as a highlight. Rows that
// reach past end of file are extended to cover the edit, with zeros for any
// gap between the old end and the edit, which is what the replayed write
// will leave on disk.
package preview

import (
	"fmt"

	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/bytestore"
)

// AlignedStart rounds offset down to its row boundary.
func AlignedStart(offset uint32) uint32 {
	return offset / grid.RowWidth * grid.RowWidth
}

// Range renders the header and the merged rows for an edit of edit at
// editOffset. src is only read. It returns the number of rows written.
// A zero-length edit renders nothing.
func Range(r *grid.Renderer, src grid.Source, editOffset uint32, edit []byte) (int, error) {
	if len(edit) == 0 {
		return 0, nil
	}
	if !buf.Fits32(editOffset, len(edit)) {
		return 0, fmt.Errorf("%w: 0x%08X+%d", bytestore.ErrOutOfRange, editOffset, len(edit))
	}

	hl := grid.Highlight{Start: editOffset, Len: uint32(len(edit))}
	editEnd := buf.SpanEnd(editOffset, len(edit))
	start := AlignedStart(editOffset)

	if err := r.Header(); err != nil {
		return 0, err
	}
	if err := src.Seek(start); err != nil {
		return 0, err
	}

	var merged [grid.RowWidth]byte
	rows := 0
	eof := false
	for base := uint64(start); base < editEnd; base += grid.RowWidth {
		var fileRow []byte
		if !eof {
			row, err := src.ReadRow()
			if err != nil {
				return rows, err
			}
			fileRow = row
			eof = len(row) < grid.RowWidth
		}

		count := mergeRow(merged[:], base, fileRow, editOffset, edit)
		if err := r.Row(uint32(base), merged[:count], hl); err != nil {
			return rows, err
		}
		rows++
	}
	return rows, nil
}

// mergeRow fills dst with the row at base: file bytes, overlaid by edit bytes
// where the edit span covers them. It returns the row length, which is the
// longer of the file row and the edit's reach into this row.
func mergeRow(dst []byte, base uint64, fileRow []byte, editOffset uint32, edit []byte) int {
	count := len(fileRow)
	if reach := buf.SpanEnd(editOffset, len(edit)); reach > base {
		count = max(count, int(min(reach-base, grid.RowWidth)))
	}

	for i := range count {
		p := base + uint64(i)
		switch {
		case buf.InSpan(p, editOffset, uint32(len(edit))):
			dst[i] = edit[p-uint64(editOffset)]
		case i < len(fileRow):
			dst[i] = fileRow[i]
		default:
			dst[i] = 0
		}
	}
	return count
}
