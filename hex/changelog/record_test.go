package changelog

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLayout(t *testing.T) {
	got, err := Encode(0x01020304, []byte{0xAA, 0xBB})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x02, 0xAA, 0xBB}, got)
}

func TestEncodeIsBigEndianOnEveryHost(t *testing.T) {
	got, err := Encode(0x10, []byte{0xFF})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x10, 0x01, 0xFF}, got)
}

func TestEncodeSize(t *testing.T) {
	for _, n := range []int{0, 1, 16, 254, 255} {
		got, err := Encode(7, make([]byte, n))
		require.NoError(t, err)
		assert.Len(t, got, HeaderSize+n, "payload %d", n)
	}
}

func TestEncodeRejectsLargePayload(t *testing.T) {
	_, err := Encode(0, make([]byte, 256))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestEncodeRejectsRangePastAddressSpace(t *testing.T) {
	_, err := Encode(math.MaxUint32, []byte{1, 2})
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = Encode(math.MaxUint32, []byte{1})
	require.NoError(t, err)
}

func TestRoundTrip(t *testing.T) {
	cases := []Record{
		{Offset: 0, Payload: []byte{}},
		{Offset: 0x10, Payload: []byte{0xAA, 0xBB, 0xCC, 0xDD}},
		{Offset: 0x7FFFFFFF, Payload: []byte{0x00}},
		{Offset: 0xFFFFFF00, Payload: bytes.Repeat([]byte{0x5A}, 255)},
	}
	for _, want := range cases {
		enc, err := Encode(want.Offset, want.Payload)
		require.NoError(t, err)

		got, err := Decode(bytes.NewReader(enc))
		require.NoError(t, err)
		assert.Equal(t, want.Offset, got.Offset)
		assert.Equal(t, want.Payload, got.Payload)
	}
}

func TestDecodeEmptyIsEOF(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, io.EOF))
	assert.False(t, errors.Is(err, ErrTruncated))
}

func TestDecodeTruncated(t *testing.T) {
	full, err := Encode(0x20, []byte{1, 2, 3, 4})
	require.NoError(t, err)

	for cut := 1; cut < len(full); cut++ {
		_, err := Decode(bytes.NewReader(full[:cut]))
		require.ErrorIs(t, err, ErrTruncated, "cut at %d", cut)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	}
}

func TestDecodeReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Decode(io.MultiReader(bytes.NewReader([]byte{0, 0}), errReader{boom}))
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTruncated)
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestRecordHelpers(t *testing.T) {
	rec := Record{Offset: 0xFFFFFFF0, Payload: make([]byte, 16)}
	assert.Equal(t, 16, rec.Len())
	assert.Equal(t, 21, rec.Size())
	assert.Equal(t, uint64(1)<<32, rec.End())
	assert.Equal(t, "16 bytes at 0xFFFFFFF0", rec.String())
	require.NoError(t, rec.Validate())
}
