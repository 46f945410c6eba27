package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/hex/replay"
	"github.com/joshuapare/hexkit/internal/hexinput"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/hexkit"
)

const opPrompt = "\nSpecify operation (r)ead / (w)rite / (s)ave / (l)oad / (e)xit: "

// Shell is the interactive read/write/save/load loop over one target file.
type Shell struct {
	target  string
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	opts    *hexkit.Options
	palette grid.Palette
}

// NewShell creates a shell reading commands from in.
func NewShell(target string, in io.Reader, out, errOut io.Writer, opts *hexkit.Options) *Shell {
	if opts == nil {
		opts = &hexkit.Options{Palette: grid.PlainPalette()}
	}
	return &Shell{
		target:  target,
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		opts:    opts,
		palette: opts.Palette,
	}
}

func runShell(args []string) error {
	target := args[0]

	// Try opening the file before asking what to do with it
	if err := hexkit.Check(target); err != nil {
		return err
	}

	opts, err := renderOptions()
	if err != nil {
		return err
	}
	logger.Info("starting session", "target", target)
	return NewShell(target, os.Stdin, os.Stdout, os.Stderr, opts).Run()
}

// Run prompts for operations until exit or end of input.
// Failures of a single operation are reported and the loop continues.
func (s *Shell) Run() error {
	for {
		line, err := s.readLine(opPrompt)
		if err != nil {
			return ignoreEOF(err)
		}

		var opErr error
		switch hexinput.ParseOp(line) {
		case hexinput.OpRead:
			opErr = s.read()
		case hexinput.OpWrite:
			opErr = s.write()
		case hexinput.OpSave:
			opErr = s.save()
		case hexinput.OpLoad:
			opErr = s.load()
		case hexinput.OpExit:
			return nil
		default:
			continue
		}

		if errors.Is(opErr, io.EOF) {
			return nil
		}
		if opErr != nil {
			logger.Warn("operation failed", "target", s.target, "error", opErr)
			fmt.Fprintln(s.errOut, s.palette.Error("Error: "+opErr.Error()))
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readLine prints prompt and returns the next input line without its newline.
// A final line without a newline is returned before io.EOF.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask keeps prompting until parse accepts the line.
func (s *Shell) ask(prompt string, parse func(string) error) error {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return err
		}
		if parse(line) == nil {
			return nil
		}
	}
}

func (s *Shell) read() error {
	var offset uint32
	err := s.ask("\nOffset in bytes to start reading from as hex (Enter: 0): ", func(line string) (err error) {
		offset, err = hexinput.ParseOffset(line)
		return err
	})
	if err != nil {
		return err
	}

	var rows int
	err = s.ask("Number of rows to read (Enter: 0 to read until EOF): ", func(line string) (err error) {
		rows, err = hexinput.ParseRows(line)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	_, err = hexkit.Read(s.target, s.out, offset, rows, s.opts)
	return err
}

func (s *Shell) write() error {
	var offset uint32
	err := s.ask("\nOffset in bytes to start writing to as hex (Enter: 0): ", func(line string) (err error) {
		offset, err = hexinput.ParseOffset(line)
		return err
	})
	if err != nil {
		return err
	}

	line, err := s.readLine("Bytes to write as a string of hex digits: ")
	if err != nil {
		return err
	}
	payload := hexinput.ParseBytes(line)
	fmt.Fprintln(s.out, s.palette.Info(fmt.Sprintf("Parsed %d bytes", len(payload))))
	if len(payload) == 0 {
		return nil
	}

	rec := changelog.Record{Offset: offset, Payload: payload}
	if err := rec.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nPreview changes:")
	res, err := hexkit.Write(s.target, s.out, offset, payload, s.opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.palette.Success(fmt.Sprintf(
		"Appended changelog to %q, enter (s)ave to commit changes", res.LogPath)))
	return nil
}

func (s *Shell) save() error {
	res, err := hexkit.Save(s.target, nil)
	if err != nil {
		return err
	}
	s.reportReplay(changelog.PathFor(s.target), res)
	fmt.Fprintln(s.out, s.palette.Success(fmt.Sprintf(
		"Saved changes from %q to %q", changelog.PathFor(s.target), s.target)))
	return nil
}

func (s *Shell) load() error {
	logPath, err := s.readLine("\nPath to the logfile to be loaded: ")
	if err != nil {
		return err
	}
	logPath = strings.TrimSpace(logPath)

	res, err := hexkit.Load(s.target, logPath, nil)
	if err != nil {
		return err
	}
	s.reportReplay(logPath, res)
	fmt.Fprintln(s.out, s.palette.Success(fmt.Sprintf(
		"Loaded changes from %q to %q", logPath, s.target)))
	return nil
}

func (s *Shell) reportReplay(logPath string, res replay.Result) {
	if res.Truncated {
		fmt.Fprintln(s.out, s.palette.Info(fmt.Sprintf(
			"%s ends inside a record; stopped after %d records", logPath, res.Records)))
	}
}
