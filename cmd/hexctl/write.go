package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/internal/hexinput"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
)

var (
	writeOffset string
	writeDryRun bool
)

func init() {
	cmd := newWriteCmd()
	cmd.Flags().StringVar(&writeOffset, "offset", "0", "Offset of the first byte to overwrite, as hex")
	cmd.Flags().BoolVar(&writeDryRun, "dry-run", false, "Preview the edit without staging it")
	rootCmd.AddCommand(cmd)
}

func newWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <file> <hex bytes>...",
		Short: "Preview an edit and stage it in the changelog",
		Long: `The write command previews an overwrite and appends it to <file>.log.
The file itself is not modified until the changelog is saved.

Byte parsing stops at the first token that is not a hex pair. At most 255
bytes can be staged in one edit.

Example:
  hexctl write firmware.bin --offset 1f4 DEADBEEF
  hexctl write firmware.bin --offset 1f4 "DE AD BE EF"
  hexctl write firmware.bin --offset 10 00 00 --dry-run`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(args)
		},
	}
	return cmd
}

func runWrite(args []string) error {
	path := args[0]

	offset, err := hexinput.ParseOffset(writeOffset)
	if err != nil {
		return err
	}
	payload := hexinput.ParseBytes(strings.Join(args[1:], " "))
	opts, err := renderOptions()
	if err != nil {
		return err
	}

	printInfo("%s\n", opts.Palette.Info(fmt.Sprintf("Parsed %d bytes", len(payload))))
	if len(payload) == 0 {
		return nil
	}
	rec := changelog.Record{Offset: offset, Payload: payload}
	if err := rec.Validate(); err != nil {
		return err
	}

	printInfo("\nPreview changes:\n")
	if writeDryRun {
		if _, err := hexkit.Preview(path, os.Stdout, offset, payload, opts); err != nil {
			return fmt.Errorf("failed to preview: %w", err)
		}
		return nil
	}

	res, err := hexkit.Write(path, os.Stdout, offset, payload, opts)
	if err != nil {
		return fmt.Errorf("failed to write: %w", err)
	}
	printSuccess("Appended changelog to %q, run 'hexctl save %s' to commit changes", res.LogPath, path)
	return nil
}
