package main

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
)

const maxPayloadPreview = 32

var logPathFlag string

func init() {
	cmd := newLogCmd()
	cmd.Flags().StringVar(&logPathFlag, "log", "", "Read this changelog instead of <file>.log")
	rootCmd.AddCommand(cmd)
}

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [file]",
		Short: "List the records of a changelog",
		Long: `The log command lists changelog records in replay order.

Example:
  hexctl log firmware.bin
  hexctl log --log fixes/boot-patch.log
  hexctl log firmware.bin --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(args)
		},
	}
	return cmd
}

type recordJSON struct {
	Index   int    `json:"index"`
	Offset  uint32 `json:"offset"`
	Length  int    `json:"length"`
	Payload string `json:"payload"`
}

func runLog(args []string) error {
	logPath := logPathFlag
	if logPath == "" {
		if len(args) != 1 {
			return fmt.Errorf("expected <file> or --log <changelog>")
		}
		logPath = changelog.PathFor(args[0])
	}

	recs, truncated, err := hexkit.Records(logPath)
	if err != nil {
		return fmt.Errorf("failed to read changelog: %w", err)
	}

	if jsonOut {
		out := make([]recordJSON, 0, len(recs))
		for i, rec := range recs {
			out = append(out, recordJSON{
				Index:   i,
				Offset:  rec.Offset,
				Length:  rec.Len(),
				Payload: hex.EncodeToString(rec.Payload),
			})
		}
		return printJSON(map[string]interface{}{
			"log":       logPath,
			"records":   out,
			"truncated": truncated,
		})
	}

	if len(recs) == 0 {
		printInfo("%s: no records\n", logPath)
	}
	for i, rec := range recs {
		payload := hex.EncodeToString(rec.Payload)
		if rec.Len() > maxPayloadPreview {
			payload = fmt.Sprintf("%s... (%d bytes)", hex.EncodeToString(rec.Payload[:maxPayloadPreview]), rec.Len())
		}
		printInfo("#%-4d 0x%08X %3d  %s\n", i, rec.Offset, rec.Len(), payload)
	}
	if truncated {
		printInfo("%s\n", palette().Info(fmt.Sprintf("%s ends inside a record", logPath)))
	}
	return nil
}
