package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/config"
	"github.com/marcus/notecards/internal/keymap"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/msg"
	"github.com/marcus/notecards/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(message)

	case tea.MouseMsg:
		return m, m.handleMouseMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.layout()
		return m, nil

	case msg.ToastMsg:
		return m, m.setToast(message)

	case msg.ToastExpiredMsg:
		if message.Seq == m.toastSeq {
			m.toast = msg.ToastMsg{}
			if m.ready {
				m.layout()
			}
		}
		return m, nil

	case config.ReloadedMsg:
		var cmd tea.Cmd
		if message.Err != nil {
			cmd = m.toastError("Config: " + message.Err.Error())
		} else {
			m.logger.Info("config reloaded")
			cmd = m.applyConfig(message.Config)
		}
		if m.watcher != nil {
			cmd = tea.Batch(cmd, waitForReload(m.watcher))
		}
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(k tea.KeyMsg) tea.Cmd {
	// ctrl+c always quits, even while typing
	if k.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch m.activeModal() {
	case ModalConfirmDelete:
		return m.handleConfirmKeys(k)
	case ModalForm:
		return m.handleFormKeys(k)
	case ModalViewer:
		return m.handleViewerKeys(k)
	}

	n := m.itemCount()
	switch m.keymap.Resolve(k, keymap.ContextGrid) {
	case keymap.CmdQuit:
		return tea.Quit
	case keymap.CmdHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.layout()
	case keymap.CmdUp:
		m.moveCursor(0, -1)
	case keymap.CmdDown:
		m.moveCursor(0, 1)
	case keymap.CmdLeft:
		m.moveCursor(-1, 0)
	case keymap.CmdRight:
		m.moveCursor(1, 0)
	case keymap.CmdTop:
		m.cursor = 0
		m.grid.EnsureVisible(m.cursor, n)
	case keymap.CmdBottom:
		m.cursor = n - 1
		m.grid.EnsureVisible(m.cursor, n)
	case keymap.CmdSelect:
		if m.cursor == 0 {
			m.openAddForm()
			return nil
		}
		if note, ok := m.focusedNote(); ok {
			m.openViewer(note.ID)
		}
	case keymap.CmdNew:
		m.openAddForm()
	case keymap.CmdMenu:
		if note, ok := m.focusedNote(); ok {
			m.toggleMenu(note.ID)
		}
	case keymap.CmdEdit:
		if note, ok := m.focusedNote(); ok {
			m.openEditForm(note.ID)
		}
	case keymap.CmdDelete:
		if note, ok := m.focusedNote(); ok {
			return m.requestDelete(note.ID)
		}
	case keymap.CmdYank:
		if note, ok := m.focusedNote(); ok {
			return m.yank(note.ID)
		}
	case keymap.CmdView:
		if note, ok := m.focusedNote(); ok {
			m.openViewer(note.ID)
		}
	case keymap.CmdBack:
		clear(m.menus)
	case keymap.CmdTheme:
		return m.cycleTheme()
	}
	return nil
}

func (m *Model) moveCursor(dx, dy int) {
	n := m.itemCount()
	m.cursor = m.grid.Move(m.cursor, dx, dy, n)
	m.grid.EnsureVisible(m.cursor, n)
}

// toggleMenu opens or closes the card menu of note id. Menus are
// independent; opening one leaves the others as they are.
func (m *Model) toggleMenu(id string) {
	if m.menus[id] {
		delete(m.menus, id)
		return
	}
	m.menus[id] = true
}

// handleMouseMsg routes mouse input to the active modal or the grid.
func (m *Model) handleMouseMsg(e tea.MouseMsg) tea.Cmd {
	switch m.activeModal() {
	case ModalConfirmDelete:
		return m.handleConfirmMouse(e)
	case ModalForm:
		return m.handleFormMouse(e)
	case ModalViewer:
		return m.handleViewerMouse(e)
	}

	action := m.gridMouse.HandleMouse(e)
	switch action.Type {
	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		m.grid.ScrollBy(action.Delta, m.itemCount())
		return nil
	case mouse.ActionHover:
		m.hoverID, m.hoverNote = "", ""
		if action.Region != nil {
			m.hoverID = action.Region.ID
			m.hoverNote, _ = action.Region.Data.(string)
		}
		return nil
	case mouse.ActionClick, mouse.ActionDoubleClick:
	default:
		return nil
	}
	if action.Region == nil {
		return nil
	}

	id, _ := action.Region.Data.(string)
	switch action.Region.ID {
	case ui.AddTileRegion:
		m.cursor = 0
		m.openAddForm()
	case ui.MenuToggleRegion:
		m.focusNote(id)
		m.toggleMenu(id)
	case ui.MenuEditRegion:
		m.openEditForm(id)
	case ui.MenuDeleteRegion:
		return m.requestDelete(id)
	case ui.CardRegion:
		m.focusNote(id)
		if action.Type == mouse.ActionDoubleClick {
			m.openViewer(id)
		}
	}
	return nil
}
