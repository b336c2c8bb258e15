package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/modal"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/ui"
)

// deleteConfirm is a pending delete waiting for confirmation.
type deleteConfirm struct {
	noteID  string
	modal   *modal.Modal
	handler *mouse.Handler
}

// requestDelete removes note id, asking first when ui.confirmDelete is set.
func (m *Model) requestDelete(id string) tea.Cmd {
	n, ok := m.store.Get(id)
	if !ok {
		return nil
	}
	delete(m.menus, id)
	if !m.cfg.UI.ConfirmDelete {
		return m.deleteNote(id)
	}
	m.confirm = &deleteConfirm{
		noteID:  id,
		modal:   ui.NewDeleteNoteDialog(n.Title).ToModal(),
		handler: mouse.NewHandler(),
	}
	// Focus IDs are only known after a render
	m.confirm.modal.Render(max(m.width, 48), max(m.height, 24), m.confirm.handler)
	return nil
}

// deleteNote removes note id from the store.
func (m *Model) deleteNote(id string) tea.Cmd {
	if !m.store.Remove(id) {
		return nil
	}
	delete(m.menus, id)
	if m.viewer != nil && m.viewer.noteID == id {
		m.viewer = nil
	}
	m.clampCursor()
	m.logger.Info("note deleted", "id", id)
	return m.toastInfo("Note deleted")
}

func (m *Model) handleConfirmAction(action string) tea.Cmd {
	switch action {
	case ui.ConfirmActionID:
		id := m.confirm.noteID
		m.confirm = nil
		return m.deleteNote(id)
	case ui.CancelActionID:
		m.confirm = nil
	}
	return nil
}

// handleConfirmKeys handles keyboard input for the delete confirmation.
func (m *Model) handleConfirmKeys(k tea.KeyMsg) tea.Cmd {
	switch k.String() {
	case "y":
		return m.handleConfirmAction(ui.ConfirmActionID)
	case "n":
		return m.handleConfirmAction(ui.CancelActionID)
	}
	action, cmd := m.confirm.modal.HandleKey(k)
	return tea.Batch(cmd, m.handleConfirmAction(action))
}

// handleConfirmMouse handles mouse events for the delete confirmation.
func (m *Model) handleConfirmMouse(msg tea.MouseMsg) tea.Cmd {
	return m.handleConfirmAction(m.confirm.modal.HandleMouse(msg, m.confirm.handler))
}

// renderConfirmOverlay renders the delete confirmation over content.
func (m *Model) renderConfirmOverlay(content string) string {
	modalContent := m.confirm.modal.Render(m.width, m.height, m.confirm.handler)
	return ui.OverlayModal(content, modalContent, m.width, m.height)
}
