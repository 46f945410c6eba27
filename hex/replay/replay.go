package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/internal/bytestore"
	"github.com/joshuapare/hexkit/internal/logger"
)

// Result summarizes a replay.
type Result struct {
	Records   int  // records applied
	Bytes     int  // payload bytes written
	Truncated bool // log ended inside a record
}

// Options controls Save and Load.
type Options struct {
	// Truncate empties the changelog after a successful replay. Without it the
	// log is kept and a later save writes the same bytes again.
	Truncate bool

	// OnRecord, if set, is called after each record is written.
	OnRecord func(i int, rec changelog.Record)
}

// Apply decodes records from log and writes each onto target in order.
func Apply(log io.Reader, target io.WriterAt) (Result, error) {
	return ApplyFunc(log, target, nil)
}

// ApplyFunc is Apply with a callback invoked after each record is written.
func ApplyFunc(log io.Reader, target io.WriterAt, onRecord func(i int, rec changelog.Record)) (Result, error) {
	var res Result
	rd := changelog.NewReader(log)
	for {
		rec, err := rd.Next()
		switch {
		case errors.Is(err, io.EOF):
			return res, nil
		case errors.Is(err, changelog.ErrTruncated):
			res.Truncated = true
			logger.Warn("changelog ended inside a record; replay stopped", "applied", res.Records, "error", err)
			return res, nil
		case err != nil:
			return res, err
		}

		if _, err := target.WriteAt(rec.Payload, int64(rec.Offset)); err != nil {
			return res, fmt.Errorf("apply record %d (%s): %w", res.Records, rec, err)
		}
		if onRecord != nil {
			onRecord(res.Records, rec)
		}
		res.Records++
		res.Bytes += len(rec.Payload)
	}
}

// Save replays the changelog staged for target onto target.
func Save(target string, opts *Options) (Result, error) {
	return Load(target, changelog.PathFor(target), opts)
}

// Load replays the changelog at logPath onto target.
func Load(target, logPath string, opts *Options) (Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	logFile, err := os.Open(logPath)
	if err != nil {
		return Result{}, fmt.Errorf("open changelog: %w", err)
	}
	defer logFile.Close()

	store, err := bytestore.OpenRW(target)
	if err != nil {
		return Result{}, fmt.Errorf("open target: %w", err)
	}

	res, err := ApplyFunc(logFile, store, opts.OnRecord)
	if err != nil {
		_ = store.Close()
		return res, err
	}
	if err := store.Sync(); err != nil {
		_ = store.Close()
		return res, fmt.Errorf("sync target: %w", err)
	}
	if err := store.Close(); err != nil {
		return res, fmt.Errorf("close target: %w", err)
	}
	logger.Info("changelog replayed", "target", target, "log", logPath,
		"records", res.Records, "bytes", res.Bytes, "truncated", res.Truncated)

	if opts.Truncate {
		if err := os.Truncate(logPath, 0); err != nil {
			return res, fmt.Errorf("truncate changelog: %w", err)
		}
	}
	return res, nil
}
