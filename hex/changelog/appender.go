package changelog

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/hexkit/internal/fsync"
	"github.com/joshuapare/hexkit/internal/logger"
)

// Extension is appended to a target path to derive its changelog path.
const Extension = ".log"

// PathFor returns the changelog path staged edits for target are appended to.
func PathFor(target string) string {
	return target + Extension
}

// Appender appends records to a changelog file.
type Appender struct {
	f    *os.File
	path string
	buf  []byte
}

// OpenAppender opens path for append-only writing, creating it if needed.
func OpenAppender(path string) (*Appender, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Appender{f: f, path: path, buf: make([]byte, 0, HeaderSize+MaxPayload)}, nil
}

// Path returns the changelog path.
func (a *Appender) Path() string { return a.path }

// Append encodes rec and writes it with a single write call.
func (a *Appender) Append(rec Record) error {
	if a.f == nil {
		return os.ErrClosed
	}
	if len(rec.Payload) == 0 {
		return ErrEmptyPayload
	}
	encoded, err := AppendRecord(a.buf[:0], rec)
	if err != nil {
		return err
	}
	if _, err := a.f.Write(encoded); err != nil {
		return fmt.Errorf("append %s: %w", a.path, err)
	}
	logger.Debug("record appended", "log", a.path, "offset", rec.Offset, "len", len(rec.Payload))
	return nil
}

// Close flushes appended records to stable storage and closes the file.
func (a *Appender) Close() error {
	if a.f == nil {
		return nil
	}
	syncErr := fsync.File(a.f)
	closeErr := a.f.Close()
	a.f = nil
	return errors.Join(syncErr, closeErr)
}

// AppendFile opens path, appends rec and closes it again.
func AppendFile(path string, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if len(rec.Payload) == 0 {
		return ErrEmptyPayload
	}
	a, err := OpenAppender(path)
	if err != nil {
		return err
	}
	if err := a.Append(rec); err != nil {
		_ = a.Close()
		return err
	}
	return a.Close()
}
