package main

import (
	"fmt"

	"github.com/joshuapare/hexkit/hex/replay"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLoadCmd())
}

func newLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file> <changelog>",
		Short: "Replay an arbitrary changelog onto the file",
		Long: `The load command replays a changelog from any path onto the file.

Example:
  hexctl load firmware.bin fixes/boot-patch.log`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(args)
		},
	}
	return cmd
}

func runLoad(args []string) error {
	path, logPath := args[0], args[1]

	res, err := hexkit.Load(path, logPath, &replay.Options{OnRecord: verboseRecord})
	if err != nil {
		return fmt.Errorf("failed to load: %w", err)
	}
	return reportReplay(path, logPath, res, "Loaded")
}
