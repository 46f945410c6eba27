package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/hexkit/hex/grid"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		// Recreated every render so the background reflects the latest model
		helpOverlay := overlay.New(
			&helpModel{vp: m.help},
			&mainViewModel{model: &m},
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderGrid(),
		m.renderStatus(),
	)
}

// renderHeader renders the title line with the file name
func (m Model) renderHeader() string {
	parts := []string{
		headerStyle.Render("Hex Explorer"),
		pathStyle.Render(m.path),
	}
	if m.showPending {
		parts = append(parts, pendingBadgeStyle.Render(fmt.Sprintf("[pending: %d]", len(m.pending))))
	}
	return strings.Join(parts, "  ")
}

// renderGrid renders the column header and the visible rows
func (m Model) renderGrid() string {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(m.renderer.FormatHeader())
	b.WriteString("\n")

	end := min(m.top+m.pageRows(), m.rowCount())
	for i := m.top; i < end; i++ {
		marker := " "
		if i == m.cursor {
			marker = cursorStyle.Render("›")
		}
		b.WriteString(marker)
		b.WriteString(m.renderer.FormatRow(uint32(i*grid.RowWidth), m.row(i), m.pending...))
		b.WriteString("\n")
	}
	if m.rowCount() == 0 {
		b.WriteString(statusStyle.Render("  (empty file)"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderStatus renders the prompt, a transient message, or the position line
func (m Model) renderStatus() string {
	if m.inputMode == GotoMode {
		return inputPromptStyle.Render("Go to offset (hex): ") + m.inputBuffer + "█"
	}
	if m.statusMessage != "" {
		return statusMessageStyle.Render(m.statusMessage)
	}

	size := len(m.bytes())
	line := fmt.Sprintf("0x%08X  row %d/%d  %d bytes", m.cursor*grid.RowWidth, m.cursor+1, max(1, m.rowCount()), size)
	if m.pendingTruncate && m.showPending {
		line += "  changelog truncated"
	}
	return statusStyle.Render(line + "  ? help  q quit")
}

// helpContent renders the key reference shown in the help overlay
func (m Model) helpContent() string {
	const keyWidth = 10

	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range m.keys.helpSections() {
		b.WriteString("\n")
		b.WriteString(helpSectionStyle.Render(section.Title))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			b.WriteString(helpKeyStyle.Width(keyWidth).Render(h.Key))
			b.WriteString("  ")
			b.WriteString(helpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// helpModel is the overlay foreground.
type helpModel struct {
	vp viewport.Model
}

func (h *helpModel) Init() tea.Cmd                       { return nil }
func (h *helpModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }
func (h *helpModel) View() string                        { return helpBoxStyle.Render(h.vp.View()) }

// mainViewModel wraps the main UI for use as overlay background.
type mainViewModel struct {
	model *Model
}

func (v *mainViewModel) Init() tea.Cmd                       { return nil }
func (v *mainViewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

// View pads the main UI to the window so the help box is never clipped.
func (v *mainViewModel) View() string {
	return lipgloss.NewStyle().
		Width(v.model.width).
		Height(v.model.height).
		Render(v.model.renderMain())
}
