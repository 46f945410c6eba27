package hexkit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func newTarget(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(newTarget(t, seq(4))))
	require.ErrorIs(t, Check(filepath.Join(t.TempDir(), "nope")), os.ErrNotExist)
}

func TestRead(t *testing.T) {
	path := newTarget(t, seq(48))
	var out bytes.Buffer

	rows, err := Read(path, &out, 0x10, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Contains(t, out.String(), " 00000010 10 11 12")
	assert.Contains(t, out.String(), " 00000020 20 21 22")
}

func TestReadMissing(t *testing.T) {
	var out bytes.Buffer
	_, err := Read(filepath.Join(t.TempDir(), "nope"), &out, 0, 0, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteStagesRecordWithoutTouchingTarget(t *testing.T) {
	path := newTarget(t, seq(32))
	var out bytes.Buffer

	res, err := Write(path, &out, 0x10, []byte{0xAA, 0xBB, 0xCC, 0xDD}, nil)
	require.NoError(t, err)
	assert.True(t, res.Appended)
	assert.Equal(t, path+".log", res.LogPath)
	assert.Equal(t, 1, res.Rows)
	assert.Contains(t, out.String(), " 00000010 AA BB CC DD 14 ")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, seq(32), got)

	recs, truncated, err := Pending(path)
	require.NoError(t, err)
	assert.False(t, truncated)
	require.Len(t, recs, 1)
	assert.EqualValues(t, 0x10, recs[0].Offset)
}

func TestWriteEmptyIsNoop(t *testing.T) {
	path := newTarget(t, seq(4))
	var out bytes.Buffer

	res, err := Write(path, &out, 0, nil, nil)
	require.NoError(t, err)
	assert.False(t, res.Appended)
	assert.Empty(t, out.String())
	assert.NoFileExists(t, path+".log")
}

func TestWriteTooLarge(t *testing.T) {
	path := newTarget(t, seq(4))
	var out bytes.Buffer

	_, err := Write(path, &out, 0, make([]byte, 256), nil)
	require.ErrorIs(t, err, changelog.ErrPayloadTooLarge)
	assert.NoFileExists(t, path+".log")
	assert.Empty(t, out.String())
}

func TestWriteMissingTarget(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "nope.bin")
	_, err := Write(path, &out, 0, []byte{1}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, path+".log")
}

func TestWriteThenSave(t *testing.T) {
	path := newTarget(t, make([]byte, 3))
	var out bytes.Buffer

	_, err := Write(path, &out, 0, []byte{1, 2}, nil)
	require.NoError(t, err)
	_, err = Write(path, &out, 1, []byte{9, 9}, nil)
	require.NoError(t, err)

	res, err := Save(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 9, 9}, got)
}

func TestLoadAndRecords(t *testing.T) {
	path := newTarget(t, seq(8))
	logPath := filepath.Join(t.TempDir(), "fix.log")
	require.NoError(t, changelog.AppendFile(logPath, changelog.Record{Offset: 7, Payload: []byte{0xFF, 0xFE}}))

	recs, truncated, err := Records(logPath)
	require.NoError(t, err)
	assert.False(t, truncated)
	require.Len(t, recs, 1)

	_, err = Load(path, logPath, nil)
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 0xFF, 0xFE}, got)
}

func TestDiscard(t *testing.T) {
	path := newTarget(t, seq(4))
	require.NoError(t, Discard(path), "no changelog is fine")

	var out bytes.Buffer
	_, err := Write(path, &out, 0, []byte{1}, nil)
	require.NoError(t, err)
	require.FileExists(t, path+".log")

	require.NoError(t, Discard(path))
	assert.NoFileExists(t, path+".log")

	recs, _, err := Pending(path)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestMergePending(t *testing.T) {
	base := seq(16)
	path := newTarget(t, base)

	merged, recs, _, err := MergePending(path, base)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Equal(t, base, merged)

	var out bytes.Buffer
	_, err = Write(path, &out, 2, []byte{0xAA}, nil)
	require.NoError(t, err)
	_, err = Write(path, &out, 18, []byte{0xBB}, nil)
	require.NoError(t, err)

	merged, recs, res, err := MergePending(path, base)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 2, res.Records)
	assert.Len(t, merged, 19)
	assert.Equal(t, byte(0xAA), merged[2])
	assert.Equal(t, byte(0xBB), merged[18])
	assert.Equal(t, seq(16), base, "base must not be modified")
}
