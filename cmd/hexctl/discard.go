package main

import (
	"fmt"

	"github.com/joshuapare/hexkit/hex/changelog"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDiscardCmd())
}

func newDiscardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discard <file>",
		Short: "Delete the staged changelog without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscard(args)
		},
	}
	return cmd
}

func runDiscard(args []string) error {
	path := args[0]
	if err := hexkit.Discard(path); err != nil {
		return fmt.Errorf("failed to discard: %w", err)
	}
	printSuccess("Discarded %q", changelog.PathFor(path))
	return nil
}
