package main

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/internal/mmfile"
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	GotoMode
)

// Layout constants
const (
	chromeLines     = 4  // title, grid header, blank, status
	defaultPageRows = 16 // used until the first WindowSizeMsg
	helpWidth       = 48
	helpHeight      = 20
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// Model is the main application model
type Model struct {
	path  string
	base  []byte
	unmap func() error

	// Pending view: base with the staged changelog replayed over it
	showPending     bool
	merged          []byte
	pending         []grid.Highlight
	pendingTruncate bool

	renderer *grid.Renderer
	keys     KeyMap

	cursor int // row index under the cursor
	top    int // first visible row
	width  int
	height int

	inputMode   InputMode
	inputBuffer string

	showHelp bool
	help     viewport.Model

	statusMessage string

	err error
}

// NewModel maps path read-only and creates the TUI model.
func NewModel(path string, opts grid.Options) Model {
	m := Model{
		path:     path,
		unmap:    func() error { return nil },
		renderer: grid.New(io.Discard, opts),
		keys:     DefaultKeyMap(),
		help:     viewport.New(helpWidth, helpHeight),
	}

	data, unmap, err := mmfile.Map(path)
	if err != nil {
		logger.Error("failed to map file", "path", path, "error", err)
		m.err = err
		return m
	}
	m.base = data
	m.unmap = unmap
	logger.Info("file mapped", "path", path, "size", len(data))
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the file mapping.
func (m Model) Close() error {
	return m.unmap()
}

// bytes returns the bytes currently on screen.
func (m Model) bytes() []byte {
	if m.showPending {
		return m.merged
	}
	return m.base
}

func (m Model) rowCount() int {
	return (len(m.bytes()) + grid.RowWidth - 1) / grid.RowWidth
}

func (m Model) pageRows() int {
	if m.height == 0 {
		return defaultPageRows
	}
	return max(1, m.height-chromeLines)
}

// row returns the bytes of row i of the current view.
func (m Model) row(i int) []byte {
	data := m.bytes()
	start := i * grid.RowWidth
	if i < 0 || start >= len(data) {
		return nil
	}
	return data[start:min(start+grid.RowWidth, len(data))]
}

// moveCursor moves the cursor by delta rows, clamped to the file, and
// scrolls so it stays visible.
func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(row int) {
	last := max(0, m.rowCount()-1)
	m.cursor = min(max(row, 0), last)

	page := m.pageRows()
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+page {
		m.top = m.cursor - page + 1
	}
	m.top = max(0, min(m.top, max(0, m.rowCount()-page)))
}
