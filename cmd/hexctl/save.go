package main

import (
	"fmt"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/hex/replay"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
)

var saveTruncate bool

func init() {
	cmd := newSaveCmd()
	cmd.Flags().BoolVar(&saveTruncate, "truncate", false, "Empty the changelog after a successful save")
	rootCmd.AddCommand(cmd)
}

func newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Commit the staged changelog to the file",
		Long: `The save command replays <file>.log onto the file, record by record in
the order they were staged. The changelog is kept unless --truncate is given;
saving again rewrites the same bytes.

Example:
  hexctl save firmware.bin
  hexctl save firmware.bin --truncate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(args)
		},
	}
	return cmd
}

func runSave(args []string) error {
	path := args[0]
	logPath := changelog.PathFor(path)

	opts := &replay.Options{Truncate: saveTruncate, OnRecord: verboseRecord}
	res, err := hexkit.Save(path, opts)
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	return reportReplay(path, logPath, res, "Saved")
}

func verboseRecord(i int, rec changelog.Record) {
	printVerbose("  #%d %s\n", i, rec)
}

func reportReplay(path, logPath string, res replay.Result, verb string) error {
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":      path,
			"log":       logPath,
			"records":   res.Records,
			"bytes":     res.Bytes,
			"truncated": res.Truncated,
		})
	}
	if res.Truncated {
		printInfo("%s\n", palette().Info(fmt.Sprintf(
			"%s ends inside a record; stopped after %d records", logPath, res.Records)))
	}
	printSuccess("%s changes from %q to %q (%d records, %d bytes)", verb, logPath, path, res.Records, res.Bytes)
	return nil
}
