package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notecards/internal/keymap"
	"github.com/marcus/notecards/internal/modal"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/notes"
	"github.com/marcus/notecards/internal/styles"
	"github.com/marcus/notecards/internal/ui"
)

const (
	formTitleID  = "note-title"
	formDescID   = "note-description"
	formSubmitID = "note-submit"
	formCancelID = "note-cancel"

	formDescHeight = 4
)

// noteForm holds the widgets behind the add/update modal. The store's
// FormState is the source of truth; the inputs mirror its draft.
type noteForm struct {
	state   notes.FormState // last snapshot, refreshed each render
	title   textinput.Model
	desc    textarea.Model
	modal   *modal.Modal
	handler *mouse.Handler
	width   int
}

func newNoteForm(state notes.FormState, limit int, km *keymap.KeyMap) *noteForm {
	d := state.Draft()

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"
	title.SetValue(d.Title)

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.CharLimit = limit
	desc.SetHeight(formDescHeight)
	desc.KeyMap.InsertNewline.SetKeys(km.Keys(keymap.CmdInsertNewline)...)
	desc.SetValue(d.Description)

	f := &noteForm{
		state:   state,
		title:   title,
		desc:    desc,
		handler: mouse.NewHandler(),
	}
	f.restyle()
	return f
}

// restyle applies the current palette to the inputs.
func (f *noteForm) restyle() {
	text := lipgloss.NewStyle().Foreground(styles.CardTitleColor)
	placeholder := lipgloss.NewStyle().Foreground(styles.TextSubtle)

	f.title.TextStyle = text
	f.title.PlaceholderStyle = placeholder
	f.title.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	f.desc.FocusedStyle.Text = text
	f.desc.BlurredStyle.Text = text
	f.desc.FocusedStyle.Placeholder = placeholder
	f.desc.BlurredStyle.Placeholder = placeholder
	f.desc.FocusedStyle.CursorLine = lipgloss.NewStyle()
	f.desc.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	// Widths are fixed at build time, force a rebuild
	f.width = 0
}

// syncFocus focuses the widget the modal has focused. Inputs ignore keys
// while blurred.
func (f *noteForm) syncFocus() {
	switch f.modal.FocusedID() {
	case formTitleID:
		f.desc.Blur()
		f.title.Focus()
	case formDescID:
		f.title.Blur()
		f.desc.Focus()
	default:
		f.title.Blur()
		f.desc.Blur()
	}
}

// discardsOnCancel reports whether the edited note was already taken out of
// the list, so closing the form loses it.
func (f *noteForm) discardsOnCancel() bool {
	return f.state.Kind() == notes.FormUpdate && f.state.EditMode() == notes.EditReinsert
}

// draft reads the inputs.
func (f *noteForm) draft() (title, description string) {
	return f.title.Value(), f.desc.Value()
}

// ensureFormModal builds/rebuilds the form modal.
func (m *Model) ensureFormModal() {
	f := m.form
	modalW := ui.ModalWidthLarge
	if modalW > m.width-4 {
		modalW = m.width - 4
	}
	if modalW < modal.MinModalWidth {
		modalW = modal.MinModalWidth
	}

	// Only rebuild if modal doesn't exist or width changed
	if f.modal != nil && f.width == modalW {
		return
	}
	focus := formTitleID
	if f.modal != nil {
		focus = f.modal.FocusedID()
	}
	f.width = modalW

	kind := f.state.Kind()
	hint := fmt.Sprintf("Tab next · Enter save · %s new line · Esc close",
		m.keymap.Binding(keymap.CmdInsertNewline).Help().Key)

	f.modal = modal.New(kind.Heading(),
		modal.WithWidth(modalW),
		modal.WithCloseButton(),
		modal.WithPrimaryAction(formSubmitID),
		modal.WithHintText(hint),
	).
		AddSection(modal.InputWithLabel(formTitleID, "Title", &f.title)).
		AddSection(modal.Spacer()).
		AddSection(modal.TextareaWithLabel(formDescID, "Description", &f.desc)).
		AddSection(modal.When(f.discardsOnCancel,
			modal.StyledText("Cancel discards this note.", styles.Muted))).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(" "+kind.SubmitLabel()+" ", formSubmitID,
				modal.BtnPrimary(),
				modal.BtnDimmed(func() bool { return !f.state.Draft().Complete() }),
			),
			modal.Btn(" Cancel ", formCancelID),
		))

	// Focus IDs are only known after a render
	f.modal.Render(max(m.width, modalW+4), max(m.height, 24), f.handler)
	f.modal.SetFocus(focus)
	f.syncFocus()
}

// openAddForm opens an empty add form.
func (m *Model) openAddForm() {
	if !m.store.OpenForm(notes.FormAdd) {
		return
	}
	m.viewer = nil
	m.form = newNoteForm(m.store.Form(), m.store.DescriptionLimit(), m.keymap)
	m.ensureFormModal()
	m.logger.Debug("form opened", "kind", notes.FormAdd.String())
}

// openEditForm stages note id for editing.
func (m *Model) openEditForm(id string) bool {
	if !m.store.StageForEdit(id) {
		return false
	}
	delete(m.menus, id)
	m.viewer = nil
	state := m.store.Form()
	m.form = newNoteForm(state, m.store.DescriptionLimit(), m.keymap)
	m.ensureFormModal()
	if state.EditMode() == notes.EditReinsert {
		m.clampCursor()
	}
	m.logger.Debug("form opened", "kind", notes.FormUpdate.String(), "id", id, "mode", string(state.EditMode()))
	return true
}

// closeForm discards the draft.
func (m *Model) closeForm() {
	if state := m.store.Form(); state.Kind() == notes.FormUpdate && state.EditMode() == notes.EditReinsert {
		m.logger.Info("edit cancelled, note discarded", "id", state.NoteID())
	}
	m.store.CloseForm()
	m.form = nil
}

// submitForm commits the draft. Incomplete drafts keep the form open with
// the first empty field focused.
func (m *Model) submitForm() tea.Cmd {
	state := m.store.Form()
	note, ok := m.store.Submit()
	if !ok {
		d := m.store.Form().Draft()
		if d.Title == "" {
			m.form.modal.SetFocus(formTitleID)
		} else {
			m.form.modal.SetFocus(formDescID)
		}
		m.form.syncFocus()
		return nil
	}
	m.form = nil
	m.focusNote(note.ID)

	if state.Kind() == notes.FormUpdate {
		m.logger.Info("note updated", "id", note.ID, "mode", string(state.EditMode()))
		return m.toastInfo("Note updated")
	}
	m.logger.Info("note added", "id", note.ID)
	return m.toastInfo("Note added")
}

// handleFormAction reacts to a modal action.
func (m *Model) handleFormAction(action string) tea.Cmd {
	switch action {
	case "cancel", formCancelID:
		m.closeForm()
	case formSubmitID:
		return m.submitForm()
	}
	return nil
}

// handleFormKeys handles keyboard input for the form modal.
func (m *Model) handleFormKeys(k tea.KeyMsg) tea.Cmd {
	m.ensureFormModal()
	f := m.form
	f.syncFocus()

	action, cmd := f.modal.HandleKey(k)
	f.syncFocus()
	m.store.SetDraft(f.draft())
	return tea.Batch(cmd, m.handleFormAction(action))
}

// handleFormMouse handles mouse events for the form modal.
func (m *Model) handleFormMouse(msg tea.MouseMsg) tea.Cmd {
	m.ensureFormModal()
	f := m.form
	action := f.modal.HandleMouse(msg, f.handler)
	f.syncFocus()
	return m.handleFormAction(action)
}

// renderFormOverlay renders the form modal over content.
func (m *Model) renderFormOverlay(content string, state notes.FormState) string {
	m.form.state = state
	m.ensureFormModal()
	modalContent := m.form.modal.Render(m.width, m.height, m.form.handler)
	return ui.OverlayModal(content, modalContent, m.width, m.height)
}
