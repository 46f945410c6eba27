package changelog

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/hexkit/internal/buf"
)

const (
	// HeaderSize is the fixed prefix of every record: offset(4) + length(1).
	HeaderSize = 5

	// MaxPayload is the largest payload one record can carry.
	MaxPayload = math.MaxUint8
)

// Record is one staged overwrite of len(Payload) bytes at Offset.
type Record struct {
	Offset  uint32
	Payload []byte
}

// Len returns the payload length.
func (r Record) Len() int { return len(r.Payload) }

// End returns the exclusive end offset, widened so it cannot wrap.
func (r Record) End() uint64 { return buf.SpanEnd(r.Offset, len(r.Payload)) }

// Size returns the encoded size in bytes.
func (r Record) Size() int { return HeaderSize + len(r.Payload) }

// Validate checks the payload fits a record and the range fits 32-bit offsets.
func (r Record) Validate() error {
	if len(r.Payload) > MaxPayload {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(r.Payload))
	}
	if !buf.Fits32(r.Offset, len(r.Payload)) {
		return fmt.Errorf("%w: 0x%08X+%d", ErrOutOfRange, r.Offset, len(r.Payload))
	}
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("%d bytes at 0x%08X", len(r.Payload), r.Offset)
}

// Encode returns the on-disk form of a record: big-endian offset, one length
// byte, then the payload.
func Encode(offset uint32, payload []byte) ([]byte, error) {
	return AppendRecord(nil, Record{Offset: offset, Payload: payload})
}

// AppendRecord appends the encoded form of rec to dst.
func AppendRecord(dst []byte, rec Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return dst, err
	}
	dst = buf.AppendU32BE(dst, rec.Offset)
	dst = append(dst, byte(len(rec.Payload)))
	return append(dst, rec.Payload...), nil
}

// Decode reads one record from r.
//
// It returns io.EOF if r is exhausted before the first byte and ErrTruncated
// (wrapping io.ErrUnexpectedEOF) if r ends inside the header or payload.
func Decode(r io.Reader) (Record, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Record{}, endOfLog(err, "header")
	}

	rec := Record{Offset: buf.U32BE(hdr[:4])}
	n := int(hdr[4])
	rec.Payload = make([]byte, n)
	if _, err := io.ReadFull(r, rec.Payload); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Record{}, endOfLog(err, "payload")
	}
	return rec, nil
}

func endOfLog(err error, part string) error {
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: short %s: %w", ErrTruncated, part, err)
	case errors.Is(err, io.EOF):
		return io.EOF
	default:
		return fmt.Errorf("changelog: read %s: %w", part, err)
	}
}
