// Package modal builds centered dialogs from stacked sections and keeps
// their mouse hit regions in sync with what was drawn.
package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/mouse"
)

// Region IDs registered by every modal.
const (
	backdropID = "modal-backdrop"
	bodyID     = "modal-body"
)

// Modal is a declarative dialog. Focus order follows section order.
type Modal struct {
	title           string
	variant         Variant
	width           int
	sections        []Section
	showHints       bool
	hintText        string
	primaryAction   string
	closeOnBackdrop bool
	closeButton     bool

	focusIdx     int
	hoverID      string
	focusIDs     []string // rebuilt on every Render
	scrollOffset int

	// from the last layout, for keeping the focused element in view
	focusPositions map[string]focusablePos
	lastViewportH  int
}

type focusablePos struct {
	y      int
	height int
}

// New creates a modal with the given title.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:           title,
		variant:         VariantDefault,
		width:           DefaultWidth,
		showHints:       true,
		closeOnBackdrop: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends s and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// Render draws the modal for a screenW x screenH terminal and, when handler
// is non-nil, replaces its hit regions with the modal's.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	return m.buildLayout(screenW, screenH, handler)
}

// HandleKey processes a key press. Esc returns "cancel". Enter returns the
// focused section's action, else the primary action, else the focused ID.
func (m *Modal) HandleKey(msg tea.KeyMsg) (action string, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return "cancel", nil
	case "tab":
		m.cycleFocus(1)
		return "", nil
	case "shift+tab":
		m.cycleFocus(-1)
		return "", nil
	case "enter":
		focusID := m.currentFocusID()
		if focusID == "" {
			return "", nil
		}
		action, cmd = m.routeToFocusedSection(msg)
		if action != "" {
			return action, cmd
		}
		if m.primaryAction != "" {
			return m.primaryAction, cmd
		}
		return focusID, cmd
	}
	return m.routeToFocusedSection(msg)
}

// HandleMouse processes a mouse event against the regions of the last
// Render. Clicking a focusable focuses it and returns its ID.
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) string {
	action := handler.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		if action.Region == nil {
			return ""
		}
		switch id := action.Region.ID; id {
		case backdropID:
			if m.closeOnBackdrop {
				return "cancel"
			}
			return ""
		case bodyID:
			return ""
		case closeActionID:
			return "cancel"
		default:
			for i, fid := range m.focusIDs {
				if fid == id {
					m.focusIdx = i
					return id
				}
			}
		}
		return ""

	case mouse.ActionHover:
		m.hoverID = ""
		if r := action.Region; r != nil && r.ID != backdropID && r.ID != bodyID {
			m.hoverID = r.ID
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Region != nil && action.Region.ID != backdropID {
			// clamped on the next layout
			m.scrollOffset = max(0, m.scrollOffset+action.Delta)
		}
	}
	return ""
}

// ScrollBy moves the content by delta lines.
func (m *Modal) ScrollBy(delta int) { m.scrollOffset = max(0, m.scrollOffset+delta) }

// SetFocus focuses the element with id, if it was rendered.
func (m *Modal) SetFocus(id string) {
	for i, fid := range m.focusIDs {
		if fid == id {
			m.focusIdx = i
			return
		}
	}
}

// FocusedID returns the focused element ID.
func (m *Modal) FocusedID() string { return m.currentFocusID() }

func (m *Modal) currentFocusID() string {
	if len(m.focusIDs) == 0 {
		return ""
	}
	if m.focusIdx < 0 || m.focusIdx >= len(m.focusIDs) {
		return m.focusIDs[0]
	}
	return m.focusIDs[m.focusIdx]
}

func (m *Modal) cycleFocus(delta int) {
	n := len(m.focusIDs)
	if n == 0 {
		return
	}
	m.focusIdx = (m.focusIdx + delta + n) % n
	m.scrollToFocused()
}

func (m *Modal) scrollToFocused() {
	pos, ok := m.focusPositions[m.currentFocusID()]
	if !ok || m.lastViewportH <= 0 {
		return
	}
	if pos.y < m.scrollOffset {
		m.scrollOffset = pos.y
	}
	if bottom := pos.y + pos.height; bottom > m.scrollOffset+m.lastViewportH {
		m.scrollOffset = bottom - m.lastViewportH
	}
}

func (m *Modal) routeToFocusedSection(msg tea.KeyMsg) (string, tea.Cmd) {
	focusID := m.currentFocusID()
	if focusID == "" {
		return "", nil
	}
	for _, section := range m.sections {
		if action, cmd := section.Update(msg, focusID); action != "" || cmd != nil {
			return action, cmd
		}
	}
	return "", nil
}
