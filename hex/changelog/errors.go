package changelog

import "errors"

var (
	// ErrPayloadTooLarge indicates a payload longer than MaxPayload bytes.
	ErrPayloadTooLarge = errors.New("changelog: payload exceeds 255 bytes")

	// ErrOutOfRange indicates a record addressing bytes past 2^32-1.
	ErrOutOfRange = errors.New("changelog: record exceeds 32-bit offset space")

	// ErrTruncated indicates the log ended inside a record.
	ErrTruncated = errors.New("changelog: truncated record")

	// ErrEmptyPayload indicates an attempt to append a zero-length edit.
	ErrEmptyPayload = errors.New("changelog: empty payload")
)
