package hexkit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/hex/preview"
	"github.com/joshuapare/hexkit/hex/replay"
	"github.com/joshuapare/hexkit/internal/bytestore"
	"github.com/joshuapare/hexkit/internal/logger"
)

// Options controls rendering for Read, Preview and Write.
type Options struct {
	Palette grid.Palette
	Charset grid.Charset
}

func (o *Options) renderer(w io.Writer) *grid.Renderer {
	if o == nil {
		return grid.New(w, grid.Options{})
	}
	return grid.New(w, grid.Options{Palette: o.Palette, Charset: o.Charset})
}

// WriteResult describes a staged edit.
type WriteResult struct {
	Record   changelog.Record
	LogPath  string
	Rows     int  // preview rows rendered
	Appended bool // false for an empty edit
}

// Check verifies path can be opened for reading.
func Check(path string) error {
	s, err := bytestore.Open(path)
	if err != nil {
		return err
	}
	return s.Close()
}

// Read renders rows of path from offset; rows == 0 means until end of file.
func Read(path string, w io.Writer, offset uint32, rows int, opts *Options) (int, error) {
	s, err := bytestore.Open(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return opts.renderer(w).Range(s, offset, rows)
}

// Preview renders payload merged over path at offset. The file is opened
// read-only and never modified.
func Preview(path string, w io.Writer, offset uint32, payload []byte, opts *Options) (int, error) {
	s, err := bytestore.Open(path)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return preview.Range(opts.renderer(w), s, offset, payload)
}

// Write previews payload at offset and appends it as one record to the
// changelog for path. An empty payload is a no-op.
func Write(path string, w io.Writer, offset uint32, payload []byte, opts *Options) (WriteResult, error) {
	res := WriteResult{
		Record:  changelog.Record{Offset: offset, Payload: payload},
		LogPath: changelog.PathFor(path),
	}
	if len(payload) == 0 {
		return res, nil
	}
	if err := res.Record.Validate(); err != nil {
		return res, err
	}

	rows, err := Preview(path, w, offset, payload, opts)
	res.Rows = rows
	if err != nil {
		return res, fmt.Errorf("preview: %w", err)
	}

	if err := changelog.AppendFile(res.LogPath, res.Record); err != nil {
		return res, fmt.Errorf("append changelog: %w", err)
	}
	res.Appended = true
	return res, nil
}

// Save replays the changelog for path onto path.
func Save(path string, opts *replay.Options) (replay.Result, error) {
	return replay.Save(path, opts)
}

// Load replays the changelog at logPath onto path.
func Load(path, logPath string, opts *replay.Options) (replay.Result, error) {
	return replay.Load(path, logPath, opts)
}

// Discard deletes the changelog for path. It is not an error if there is none.
func Discard(path string) error {
	logPath := changelog.PathFor(path)
	if err := os.Remove(logPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	logger.Info("changelog discarded", "log", logPath)
	return nil
}

// Records returns the intact records of the changelog at logPath.
func Records(logPath string) ([]changelog.Record, bool, error) {
	return changelog.ReadFile(logPath)
}

// Pending returns the records staged for path. A missing changelog yields none.
func Pending(path string) ([]changelog.Record, bool, error) {
	recs, truncated, err := changelog.ReadFile(changelog.PathFor(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	return recs, truncated, err
}

// MergePending replays the changelog staged for path over a copy of base and
// returns the merged bytes together with the records applied. base is not
// modified.
func MergePending(path string, base []byte) ([]byte, []changelog.Record, replay.Result, error) {
	f, err := os.Open(changelog.PathFor(path))
	if errors.Is(err, os.ErrNotExist) {
		return base, nil, replay.Result{}, nil
	}
	if err != nil {
		return base, nil, replay.Result{}, err
	}
	defer f.Close()

	var recs []changelog.Record
	merged := bytestore.NewBuffer(base)
	res, err := replay.ApplyFunc(f, merged, func(_ int, rec changelog.Record) {
		recs = append(recs, rec)
	})
	if err != nil {
		return base, recs, res, err
	}
	return merged.Bytes(), recs, res, nil
}
