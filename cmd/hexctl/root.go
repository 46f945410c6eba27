package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/hexkit"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	noColor     bool
	debugLog    bool
	charsetName string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "hexctl <file>",
	Short: "Inspect and patch binary files through a staged changelog",
	Long: `hexctl renders binary files as a hex/text grid and patches them through an
append-only changelog. Edits are previewed and staged in <file>.log first and
only written to the file when the changelog is saved.

Run with just a file to start the interactive session:
  hexctl firmware.bin

Or use the subcommands for one-shot operations:
  hexctl read firmware.bin --offset 1f0 --rows 4
  hexctl write firmware.bin --offset 1f4 "DE AD BE EF"
  hexctl save firmware.bin`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Enable debug logging to ~/.hexkit/logs/")
	rootCmd.PersistentFlags().
		StringVar(&charsetName, "charset", "ascii", "Decoded text charset (ascii, cp437, windows-1252, latin1)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	fn, err := logger.Init(logger.Options{Enabled: debugLog, Level: slog.LevelDebug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
		return nil
	}
	closeLog = fn
	return nil
}

// renderOptions builds the grid options selected by the global flags.
func renderOptions() (*hexkit.Options, error) {
	cs, err := grid.LookupCharset(charsetName)
	if err != nil {
		return nil, err
	}
	return &hexkit.Options{Palette: palette(), Charset: cs}, nil
}

// palette disables color for --no-color, --json and output that is not a terminal.
func palette() grid.Palette {
	return grid.PaletteFor(noColor || jsonOut || !term.IsTerminal(int(os.Stdout.Fd())))
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printSuccess prints a styled success line if not in quiet mode
func printSuccess(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintln(os.Stdout, palette().Success(fmt.Sprintf(format, args...)))
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
