package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notecards/internal/notes"
	"github.com/marcus/notecards/internal/styles"
	"github.com/marcus/notecards/internal/ui"
)

const (
	headerHeight = 2 // header line + spacing
	gridPadX     = 1
	minWidth     = ui.MinCardWidth + 2*gridPadX
	minHeight    = ui.CardHeight + headerHeight + 1
)

// layout sizes the grid to the space between header and footer.
func (m *Model) layout() {
	h := m.height - headerHeight - m.footerHeight()
	m.grid.SetSize(m.width-2*gridPadX, h)
	m.grid.EnsureVisible(m.cursor, m.itemCount())
}

// footerVisible reports whether a footer is drawn. An active toast shows
// the status line even with the footer turned off.
func (m *Model) footerVisible() bool {
	return m.showFooter || m.showHelp || m.toast.Message != ""
}

func (m *Model) footerHeight() int {
	if !m.footerVisible() {
		return 0
	}
	return lipgloss.Height(m.renderFooter())
}

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show warning if terminal is too small
	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render(msg))
	}

	snap := m.store.Snapshot()
	var b strings.Builder

	// Header
	b.WriteString(m.renderHeader(len(snap.Notes)))
	b.WriteString("\n")
	b.WriteString("\n") // spacing between header and content

	// Main content
	b.WriteString(m.renderContent(snap.Notes))

	// Footer (optional)
	if m.footerVisible() {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	// Overlay modals (priority order via activeModal)
	bg := b.String()
	switch m.activeModal() {
	case ModalConfirmDelete:
		return m.renderConfirmOverlay(bg)
	case ModalForm:
		return m.renderFormOverlay(bg, snap.Form)
	case ModalViewer:
		return m.renderViewerOverlay(bg)
	}
	return bg
}

// renderHeader renders the title bar with the note count.
func (m Model) renderHeader(count int) string {
	title := renderLogo()
	if m.version != "" {
		title += styles.Subtle.Render(" " + m.version)
	}

	noun := "notes"
	if count == 1 {
		noun = "note"
	}
	right := styles.Muted.Render(fmt.Sprintf("%d %s", count, noun))

	// Header padding takes one cell on each side
	spacing := max(0, m.width-2-lipgloss.Width(title)-lipgloss.Width(right))
	header := title + strings.Repeat(" ", spacing) + right
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(header)
}

// renderContent draws the grid and registers its click targets.
func (m Model) renderContent(list []notes.Note) string {
	m.gridMouse.HitMap.Clear()
	grid := m.grid.Render(ui.GridView{
		Notes:     list,
		Cursor:    m.cursor,
		Menus:     m.menus,
		HoverID:   m.hoverID,
		HoverNote: m.hoverNote,
	}, m.gridMouse.HitMap, gridPadX, headerHeight)

	pad := strings.Repeat(" ", gridPadX)
	lines := strings.Split(grid, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders key hints and the toast. With help toggled on it
// shows every binding.
func (m Model) renderFooter() string {
	var status string
	if m.toast.Message != "" {
		toastStyle := styles.ToastSuccess
		if m.toast.IsError {
			toastStyle = styles.ToastError
		}
		status = toastStyle.Render(m.toast.Message)
	}

	if !m.showFooter && !m.showHelp {
		return styles.Footer.Width(m.width).MaxWidth(m.width).Render(status)
	}

	h := m.help
	h.Width = max(0, m.width-lipgloss.Width(status)-2)
	hints := h.View(m.keymap)

	if m.showHelp {
		// The status line is kept even when empty so the height is stable
		return styles.Footer.Width(m.width).Render(status + "\n" + hints)
	}

	spacing := max(1, m.width-lipgloss.Width(hints)-lipgloss.Width(status))
	footer := hints + strings.Repeat(" ", spacing) + status
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(footer)
}
