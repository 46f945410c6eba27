package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/hexkit/hex/grid"
	"github.com/joshuapare/hexkit/internal/hexinput"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/pkg/hexkit"
)

type clearStatusMsg struct{}

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = min(helpWidth, max(10, msg.Width-4))
		m.help.Height = max(1, msg.Height-4)
		m.setCursor(m.cursor)
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If help is showing, handle help keys
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down) ||
			key.Matches(msg, m.keys.PageUp) || key.Matches(msg, m.keys.PageDown) {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.inputMode == GotoMode {
		return m.handleInputMode(msg)
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.err != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageRows())
	case key.Matches(msg, m.keys.Home):
		m.setCursor(0)
	case key.Matches(msg, m.keys.End):
		m.setCursor(m.rowCount() - 1)
	case key.Matches(msg, m.keys.Goto):
		m.inputMode = GotoMode
		m.inputBuffer = ""
	case key.Matches(msg, m.keys.Pending):
		return m.togglePending()
	case key.Matches(msg, m.keys.Copy):
		return m.copyRow()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.help.SetContent(m.helpContent())
		m.help.GotoTop()
	case key.Matches(msg, m.keys.Esc):
		m.statusMessage = ""
	}
	return m, nil
}

// handleInputMode handles input while the go-to-offset prompt is open
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = NormalMode
		m.inputBuffer = ""
		return m, nil

	case tea.KeyEnter:
		input := m.inputBuffer
		m.inputMode = NormalMode
		m.inputBuffer = ""
		return m.gotoOffset(input)

	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
		}
		return m, nil

	case tea.KeyRunes:
		m.inputBuffer += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) gotoOffset(input string) (tea.Model, tea.Cmd) {
	offset, err := hexinput.ParseOffset(input)
	if err != nil {
		return m.flash(fmt.Sprintf("Invalid offset %q", strings.TrimSpace(input)))
	}
	size := len(m.bytes())
	if uint64(offset) >= uint64(size) {
		m.setCursor(m.rowCount() - 1)
		return m.flash(fmt.Sprintf("Offset 0x%08X is past end of file (%d bytes)", offset, size))
	}
	m.setCursor(int(offset / grid.RowWidth))
	return m, nil
}

// togglePending switches between the file as stored and the file with its
// staged changelog replayed over it.
func (m Model) togglePending() (tea.Model, tea.Cmd) {
	if m.showPending {
		m.showPending = false
		m.merged = nil
		m.pending = nil
		m.setCursor(m.cursor)
		return m.flash("Showing file as saved")
	}

	merged, recs, res, err := hexkit.MergePending(m.path, m.base)
	if err != nil {
		logger.Warn("failed to replay changelog", "path", m.path, "error", err)
		return m.flash(fmt.Sprintf("Failed to load pending changes: %v", err))
	}
	if len(recs) == 0 {
		return m.flash("No pending changes")
	}

	m.showPending = true
	m.merged = merged
	m.pendingTruncate = res.Truncated
	m.pending = make([]grid.Highlight, 0, len(recs))
	for _, rec := range recs {
		m.pending = append(m.pending, grid.Highlight{Start: rec.Offset, Len: uint32(rec.Len())})
	}
	logger.Debug("pending view", "path", m.path, "records", res.Records, "bytes", res.Bytes)

	msg := fmt.Sprintf("Showing %d pending records", res.Records)
	if res.Truncated {
		msg += " (changelog ends inside a record)"
	}
	return m.flash(msg)
}

func (m Model) copyRow() (tea.Model, tea.Cmd) {
	row := m.row(m.cursor)
	if len(row) == 0 {
		return m.flash("Nothing to copy")
	}
	text := strings.ToUpper(hex.EncodeToString(row))
	if err := writeClipboard(text); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return m.flash("Failed to copy row")
	}
	return m.flash(fmt.Sprintf("Copied row 0x%08X to clipboard", m.cursor*grid.RowWidth))
}

// flash sets a status message that clears itself after two seconds.
func (m Model) flash(msg string) (tea.Model, tea.Cmd) {
	m.statusMessage = msg
	return m, tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
