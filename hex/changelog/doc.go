// Package changelog encodes, appends and reads staged edit records.
//
// # Format
//
// A changelog is a flat sequence of records with no header, footer or checksum:
//
//	+--------+--------+--------+--------+--------+----------------+
//	| offset (u32, big-endian)          | length | payload[length] |
//	+--------+--------+--------+--------+--------+----------------+
//
// Every record is exactly HeaderSize+length bytes. The offset is always
// written most significant byte first regardless of host byte order.
//
// # End of log
//
// Decode returns io.EOF when the stream ends on a record boundary and
// ErrTruncated when it ends inside a record. Callers replaying a log treat
// both as the end; a truncated tail is never turned into a partial record.
//
// # Appending
//
// Appender opens the log with O_APPEND, writes each encoded record with a
// single Write call and flushes it before closing, so records are never
// interleaved with reads or with each other.
package changelog
