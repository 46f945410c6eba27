package preview

import (
	"bytes"
	"crypto/sha256"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/internal/bytestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markerRenderer(out *bytes.Buffer) *grid.Renderer {
	p := grid.PlainPalette()
	p.Highlight = func(s string) string { return "[" + s + "]" }
	return grid.New(out, grid.Options{Palette: p})
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func lines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestAlignedStart(t *testing.T) {
	assert.EqualValues(t, 0, AlignedStart(0))
	assert.EqualValues(t, 0, AlignedStart(15))
	assert.EqualValues(t, 16, AlignedStart(16))
	assert.EqualValues(t, 0xFFFFFFF0, AlignedStart(0xFFFFFFFF))
}

func TestRangeSingleRow(t *testing.T) {
	var out bytes.Buffer
	r := markerRenderer(&out)

	rows, err := Range(r, bytestore.NewBuffer(seq(64)), 0x15, []byte{0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	got := lines(&out)
	require.Len(t, got, 2)
	assert.Equal(t, r.FormatHeader(), got[0])
	assert.True(t, strings.HasPrefix(got[1], " 00000010 10 11 12 13 14 [AA ][BB ]17 "), got[1])
	assert.Equal(t, 4, strings.Count(got[1], "["))
}

func TestRangeSpansRows(t *testing.T) {
	var out bytes.Buffer
	r := markerRenderer(&out)

	edit := bytes.Repeat([]byte{0xEE}, 20)
	rows, err := Range(r, bytestore.NewBuffer(seq(64)), 0x0E, edit)
	require.NoError(t, err)
	assert.Equal(t, 3, rows, "0x0E..0x21 covers rows 0x00, 0x10 and 0x20")

	got := lines(&out)
	require.Len(t, got, 4)
	assert.True(t, strings.HasPrefix(got[1], " 00000000 00 01 "))
	assert.Equal(t, 4, strings.Count(got[1], "["))
	assert.Equal(t, 32, strings.Count(got[2], "["))
	assert.True(t, strings.HasPrefix(got[3], " 00000020 [EE ][EE ]22 23 "), got[3])
}

func TestRangeStopsAfterCoveringRow(t *testing.T) {
	var out bytes.Buffer
	r := markerRenderer(&out)

	rows, err := Range(r, bytestore.NewBuffer(seq(256)), 0x1F, []byte{1})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	assert.True(t, strings.HasPrefix(lines(&out)[1], " 00000010 "))
}

func TestRangePastEOF(t *testing.T) {
	var out bytes.Buffer
	r := markerRenderer(&out)

	// file is 0x14 bytes; edit starts at 0x12 and runs to 0x17
	rows, err := Range(r, bytestore.NewBuffer(seq(0x14)), 0x12, []byte{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	row := lines(&out)[1]
	assert.True(t, strings.HasPrefix(row, " 00000010 10 11 [01 ][02 ][03 ][04 ][05 ][06 ]   "), row)
}

func TestRangeGapPastEOFIsZeroFilled(t *testing.T) {
	var out bytes.Buffer
	r := markerRenderer(&out)

	rows, err := Range(r, bytestore.NewBuffer(seq(4)), 0x08, []byte{0xAB})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	row := lines(&out)[1]
	assert.True(t, strings.HasPrefix(row, " 00000000 00 01 02 03 00 00 00 00 [AB ]   "), row)
}

func TestRangeWholeRowsPastEOF(t *testing.T) {
	var out bytes.Buffer
	r := markerRenderer(&out)

	rows, err := Range(r, bytestore.NewBuffer(seq(4)), 0x40, bytes.Repeat([]byte{0x11}, 17))
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	got := lines(&out)
	assert.True(t, strings.HasPrefix(got[1], " 00000040 [11 ]"), got[1])
	assert.True(t, strings.HasPrefix(got[2], " 00000050 [11 ]   "), got[2])
}

func TestRangeEmptyEdit(t *testing.T) {
	var out bytes.Buffer
	rows, err := Range(markerRenderer(&out), bytestore.NewBuffer(seq(16)), 0, nil)
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.Empty(t, out.String())
}

func TestRangeNeverWritesTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "target.bin")
	require.NoError(t, os.WriteFile(path, seq(40), 0o644))
	before := checksum(t, path)

	s, err := bytestore.OpenRW(path)
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = Range(markerRenderer(&out), s, 0x20, bytes.Repeat([]byte{0xFF}, 30))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, before, checksum(t, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 40, info.Size())
}

func TestRangeTopOfAddressSpace(t *testing.T) {
	var out bytes.Buffer
	rows, err := Range(markerRenderer(&out), bytestore.NewBuffer(nil), 0xFFFFFFFE, []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	assert.True(t, strings.HasPrefix(lines(&out)[1], " FFFFFFF0 "))
}

func checksum(t *testing.T, path string) [32]byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return sha256.Sum256(data)
}

func TestRangeRejectsEditPastAddressSpace(t *testing.T) {
	var out bytes.Buffer
	_, err := Range(markerRenderer(&out), bytestore.NewBuffer(nil), 0xFFFFFFFF, []byte{1, 2})
	require.ErrorIs(t, err, bytestore.ErrOutOfRange)
	assert.Empty(t, out.String())
}
