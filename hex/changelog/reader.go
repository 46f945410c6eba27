package changelog

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// Reader iterates the records of a changelog stream in stored order.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r in a buffered record reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next record, io.EOF at a clean end or ErrTruncated when
// the stream ends inside a record.
func (r *Reader) Next() (Record, error) {
	return Decode(r.r)
}

// ReadAll returns every intact record. truncated reports whether the log
// ended inside a record; that is not returned as an error.
func ReadAll(r io.Reader) (recs []Record, truncated bool, err error) {
	rd := NewReader(r)
	for {
		rec, err := rd.Next()
		switch {
		case err == nil:
			recs = append(recs, rec)
		case errors.Is(err, io.EOF):
			return recs, false, nil
		case errors.Is(err, ErrTruncated):
			return recs, true, nil
		default:
			return recs, false, err
		}
	}
}

// ReadFile opens path and returns its intact records.
func ReadFile(path string) ([]Record, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	return ReadAll(f)
}
