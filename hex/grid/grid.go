package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/hexkit/internal/buf"
	"github.com/joshuapare/hexkit/internal/bytestore"
)

// RowWidth is the number of bytes per rendered row.
const RowWidth = bytestore.RowWidth

const (
	offsetLabel  = "  OFFSET  "
	decodedLabel = "DECODED TEXT"
	columnGap    = "\t"
	emptySlot    = "   "
)

// Source is anything rows can be streamed from.
type Source interface {
	Seek(offset uint32) error
	ReadRow() ([]byte, error)
}

// Highlight marks the byte range [Start, Start+Len) as pending change.
type Highlight struct {
	Start uint32
	Len   uint32
}

// Contains reports whether absolute position p is highlighted.
func (h Highlight) Contains(p uint64) bool {
	return buf.InSpan(p, h.Start, h.Len)
}

// Options controls rendering.
type Options struct {
	// Palette styles labels and highlights. Zero value: PlainPalette.
	Palette Palette

	// Charset decodes the text column. Default: ASCII.
	Charset Charset
}

// Renderer writes grid text to an io.Writer.
type Renderer struct {
	w       io.Writer
	palette Palette
	charset Charset
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	cs := opts.Charset
	if cs == nil {
		cs = ASCII
	}
	return &Renderer{w: w, palette: opts.Palette.fill(), charset: cs}
}

// Palette returns the palette in use so callers can style surrounding text consistently.
func (r *Renderer) Palette() Palette { return r.palette }

// FormatHeader returns the column header line, without a trailing newline.
func (r *Renderer) FormatHeader() string {
	var b strings.Builder
	b.WriteString(offsetLabel)
	for i := range RowWidth {
		fmt.Fprintf(&b, "%02X ", i)
	}
	// The gap stays outside the style, as in FormatRow; styling expands tabs.
	return r.palette.Accent(b.String()) + columnGap + r.palette.Accent(decodedLabel)
}

// Header writes the header line.
func (r *Renderer) Header() error {
	_, err := fmt.Fprintln(r.w, r.FormatHeader())
	return err
}

// FormatRow renders one row starting at offset, without a trailing newline.
// Only the first RowWidth bytes of row are used.
func (r *Renderer) FormatRow(offset uint32, row []byte, highlights ...Highlight) string {
	count := min(len(row), RowWidth)
	marked := func(i int) bool {
		p := uint64(offset) + uint64(i)
		for _, h := range highlights {
			if h.Contains(p) {
				return true
			}
		}
		return false
	}

	var b strings.Builder
	b.WriteString(r.palette.Accent(fmt.Sprintf(" %08X ", offset)))

	for i := range RowWidth {
		if i >= count {
			b.WriteString(emptySlot)
			continue
		}
		cell := fmt.Sprintf("%02X ", row[i])
		if marked(i) {
			cell = r.palette.Highlight(cell)
		}
		b.WriteString(cell)
	}

	b.WriteString(columnGap)

	for i := range count {
		g, ok := r.charset.Glyph(row[i])
		if !ok {
			g = '.'
		}
		cell := string(g) + " "
		if marked(i) {
			cell = r.palette.Highlight(cell)
		}
		b.WriteString(cell)
	}

	return b.String()
}

// Row writes one rendered row.
func (r *Renderer) Row(offset uint32, row []byte, highlights ...Highlight) error {
	_, err := fmt.Fprintln(r.w, r.FormatRow(offset, row, highlights...))
	return err
}

// Range writes the header followed by rows read from src starting at start.
// It stops at end of file or after maxRows rows (0 means until end of file)
// and returns the number of rows written.
func (r *Renderer) Range(src Source, start uint32, maxRows int, highlights ...Highlight) (int, error) {
	if err := r.Header(); err != nil {
		return 0, err
	}
	if err := src.Seek(start); err != nil {
		return 0, err
	}

	rows := 0
	offset := uint64(start)
	for maxRows == 0 || rows < maxRows {
		row, err := src.ReadRow()
		if err != nil {
			return rows, err
		}
		if len(row) == 0 {
			break
		}
		if err := r.Row(uint32(offset), row, highlights...); err != nil {
			return rows, err
		}
		rows++
		offset += uint64(len(row))
		if len(row) < RowWidth || offset >= buf.AddressSpace {
			break
		}
	}
	return rows, nil
}
