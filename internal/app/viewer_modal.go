package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/modal"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/ui"
)

const (
	viewerEditID  = "viewer-edit"
	viewerCopyID  = "viewer-copy"
	viewerCloseID = "viewer-close"
)

// noteViewer shows one note rendered as markdown.
type noteViewer struct {
	noteID  string
	modal   *modal.Modal
	handler *mouse.Handler
	width   int
}

// invalidate forces a rebuild, e.g. after a theme change.
func (v *noteViewer) invalidate() { v.width = 0 }

// openViewer shows note id read-only.
func (m *Model) openViewer(id string) {
	if _, ok := m.store.Get(id); !ok {
		return
	}
	delete(m.menus, id)
	m.viewer = &noteViewer{noteID: id, handler: mouse.NewHandler()}
	m.ensureViewerModal()
}

// ensureViewerModal builds/rebuilds the viewer modal.
func (m *Model) ensureViewerModal() {
	v := m.viewer
	modalW := ui.ModalWidthLarge
	if modalW > m.width-4 {
		modalW = m.width - 4
	}
	if modalW < modal.MinModalWidth {
		modalW = modal.MinModalWidth
	}
	if v.modal != nil && v.width == modalW {
		return
	}
	v.width = modalW

	store, id := m.store, v.noteID
	v.modal = modal.New("",
		modal.WithWidth(modalW),
		modal.WithCloseButton(),
		modal.WithHintText("Tab next · Enter select · Esc close"),
	).
		AddSection(modal.Custom(func(contentWidth int, _, _ string) modal.RenderedSection {
			n, ok := store.Get(id)
			if !ok {
				return modal.RenderedSection{}
			}
			return modal.RenderedSection{Content: renderMarkdown(noteMarkdown(n.Title, n.Description, n.Date), contentWidth)}
		}, nil)).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(" Edit ", viewerEditID, modal.BtnPrimary()),
			modal.Btn(" Copy ", viewerCopyID),
			modal.Btn(" Close ", viewerCloseID),
		))
	v.modal.Render(max(m.width, modalW+4), max(m.height, 24), v.handler)
}

func (m *Model) handleViewerAction(action string) tea.Cmd {
	switch action {
	case "cancel", viewerCloseID:
		m.viewer = nil
	case viewerEditID:
		id := m.viewer.noteID
		m.viewer = nil
		m.openEditForm(id)
	case viewerCopyID:
		return m.yank(m.viewer.noteID)
	}
	return nil
}

// handleViewerKeys handles keyboard input for the viewer.
func (m *Model) handleViewerKeys(k tea.KeyMsg) tea.Cmd {
	m.ensureViewerModal()
	switch k.String() {
	case "up", "k":
		m.viewer.modal.ScrollBy(-1)
		return nil
	case "down", "j":
		m.viewer.modal.ScrollBy(1)
		return nil
	}
	action, cmd := m.viewer.modal.HandleKey(k)
	return tea.Batch(cmd, m.handleViewerAction(action))
}

// handleViewerMouse handles mouse events for the viewer.
func (m *Model) handleViewerMouse(msg tea.MouseMsg) tea.Cmd {
	m.ensureViewerModal()
	return m.handleViewerAction(m.viewer.modal.HandleMouse(msg, m.viewer.handler))
}

// renderViewerOverlay renders the viewer over content.
func (m *Model) renderViewerOverlay(content string) string {
	m.ensureViewerModal()
	modalContent := m.viewer.modal.Render(m.width, m.height, m.viewer.handler)
	return ui.OverlayModal(content, modalContent, m.width, m.height)
}
