package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	debug   bool
	noColor bool
	charset string
	args    []string
}

// parseArgs extracts flags from args, leaving positional arguments in order.
func parseArgs(args []string) (options, error) {
	opts := options{charset: "ascii"}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--debug" || arg == "-d":
			opts.debug = true
		case arg == "--no-color":
			opts.noColor = true
		case arg == "--charset":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--charset requires a value")
			}
			i++
			opts.charset = args[i]
		case strings.HasPrefix(arg, "--charset="):
			opts.charset = strings.TrimPrefix(arg, "--charset=")
		default:
			opts.args = append(opts.args, arg)
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	closeLog, err := logger.Init(logger.Options{
		Enabled: opts.debug,
		Level:   slog.LevelDebug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	os.Exit(run(opts, closeLog))
}

func run(opts options, closeLog func() error) int {
	defer closeLog()

	if len(opts.args) < 1 {
		printUsage()
		return 1
	}

	switch opts.args[0] {
	case "--help", "-h":
		printHelp()
		return 0
	case "--version", "-v":
		fmt.Printf("hexexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		return 0
	}

	path := opts.args[0]
	logger.Info("starting hexexplorer", "path", path, "debug", opts.debug)

	if _, err := os.Stat(path); err != nil {
		logger.Error("file not found", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		return 1
	}

	cs, err := grid.LookupCharset(opts.charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	m := NewModel(path, grid.Options{Palette: grid.PaletteFor(opts.noColor), Charset: cs})
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		return 1
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.Warn("error closing resources", "error", err)
		}
	}

	logger.Info("hexexplorer exited normally")
	return 0
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: hexexplorer [options] <file>\n")
	fmt.Fprintf(os.Stderr, "Try 'hexexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("hexexplorer - Interactive hex viewer for binary files")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  hexexplorer [options] <file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Browses a file as a hex/text grid. The file is mapped read-only and")
	fmt.Println("  never modified. Changes staged with 'hexctl write' can be previewed")
	fmt.Println("  in place before they are saved.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    ↑/k, ↓/j    Previous/next row")
	fmt.Println("    pgup, pgdn  Page up/down")
	fmt.Println("    home, end   First/last row")
	fmt.Println("    g           Go to offset")
	fmt.Println("    p           Toggle pending changes")
	fmt.Println("    y           Copy row as hex")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug        Enable debug logging to ~/.hexkit/logs/")
	fmt.Println("      --charset NAME Decoded text charset (ascii, cp437, windows-1252, latin1)")
	fmt.Println("      --no-color     Disable colored output")
	fmt.Println("  -h, --help         Show this help message")
	fmt.Println("  -v, --version      Show version information")
	fmt.Println()
	fmt.Println("For reading and patching from scripts, use the 'hexctl' command instead.")
}
