package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/hexkit/internal/hexinput"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
)

var (
	readOffset string
	readRows   int
)

func init() {
	cmd := newReadCmd()
	cmd.Flags().StringVar(&readOffset, "offset", "0", "Start offset as hex")
	cmd.Flags().IntVar(&readRows, "rows", 0, "Number of rows (0 = until end of file)")
	rootCmd.AddCommand(cmd)
}

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Render a byte range as a hex/text grid",
		Long: `The read command renders the file from an offset as rows of 16 bytes.

Example:
  hexctl read firmware.bin
  hexctl read firmware.bin --offset 1f0 --rows 4
  hexctl read firmware.bin --charset cp437`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args)
		},
	}
	return cmd
}

func runRead(args []string) error {
	path := args[0]

	offset, err := hexinput.ParseOffset(readOffset)
	if err != nil {
		return err
	}
	if readRows < 0 {
		return hexinput.ErrInvalidRows
	}
	opts, err := renderOptions()
	if err != nil {
		return err
	}

	printVerbose("Reading %s from 0x%08X\n", path, offset)
	rows, err := hexkit.Read(path, os.Stdout, offset, readRows, opts)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}
	printVerbose("%d rows\n", rows)
	return nil
}
