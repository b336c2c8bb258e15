package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/notecards/internal/styles"
)

// Section is one vertical block of modal content.
type Section interface {
	// Render draws the section at contentWidth and reports its focusable
	// elements relative to the section's top-left corner.
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	// Update handles a message while focusID is focused. A non-empty action
	// is returned to the modal's caller.
	Update(msg tea.Msg, focusID string) (action string, cmd tea.Cmd)
}

// RenderedSection is the output of Section.Render.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// FocusableInfo locates a focusable element inside a section.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// measureHeight counts content lines, ignoring one trailing newline.
func measureHeight(content string) int {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// --- Text ---

type textSection struct {
	text  string
	style *lipgloss.Style
}

// Text renders wrapped, non-focusable text.
func Text(s string) Section {
	return &textSection{text: s}
}

// StyledText renders text with style.
func StyledText(s string, style lipgloss.Style) Section {
	return &textSection{text: s, style: &style}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	st := lipgloss.NewStyle()
	if s.style != nil {
		st = *s.style
	}
	return RenderedSection{Content: st.Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// --- Spacer ---

type spacerSection struct{}

// Spacer renders one blank line.
func Spacer() Section { return spacerSection{} }

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: " "}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// --- Buttons ---

type btnKind int

const (
	btnNormal btnKind = iota
	btnPrimary
	btnDanger
)

// ButtonDef describes one button in a Buttons row.
type ButtonDef struct {
	Label string
	ID    string
	kind  btnKind
	dim   func() bool
}

// BtnOption configures a button.
type BtnOption func(*ButtonDef)

// Btn creates a button that returns id when activated.
func Btn(label, id string, opts ...BtnOption) ButtonDef {
	b := ButtonDef{Label: label, ID: id}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// BtnPrimary styles the button as the default action.
func BtnPrimary() BtnOption {
	return func(b *ButtonDef) { b.kind = btnPrimary }
}

// BtnDanger styles the button as destructive.
func BtnDanger() BtnOption {
	return func(b *ButtonDef) { b.kind = btnDanger }
}

// BtnDimmed de-emphasizes the button while cond reports true. The button
// stays focusable and clickable.
func BtnDimmed(cond func() bool) BtnOption {
	return func(b *ButtonDef) { b.dim = cond }
}

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons renders a horizontal row of buttons.
func Buttons(buttons ...ButtonDef) Section {
	return &buttonsSection{buttons: buttons}
}

func (s *buttonsSection) Render(_ int, focusID, hoverID string) RenderedSection {
	var sb strings.Builder
	focusables := make([]FocusableInfo, 0, len(s.buttons))
	x := 0
	for i, b := range s.buttons {
		if i > 0 {
			sb.WriteString("  ")
			x += 2
		}
		rendered := buttonStyle(b, b.ID == focusID, b.ID == hoverID).Render(b.Label)
		w := ansi.StringWidth(rendered)
		sb.WriteString(rendered)
		focusables = append(focusables, FocusableInfo{ID: b.ID, OffsetX: x, OffsetY: 0, Width: w, Height: 1})
		x += w
	}
	return RenderedSection{Content: sb.String(), Focusables: focusables}
}

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || k.String() != "enter" {
		return "", nil
	}
	for _, b := range s.buttons {
		if b.ID == focusID {
			return b.ID, nil
		}
	}
	return "", nil
}

func buttonStyle(b ButtonDef, focused, hovered bool) lipgloss.Style {
	if b.kind == btnDanger {
		switch {
		case focused:
			return styles.ButtonDangerFocused
		case hovered:
			return styles.ButtonDangerHover
		}
		return styles.ButtonDanger
	}
	switch {
	case focused:
		return styles.ButtonFocused
	case hovered:
		return styles.ButtonHover
	case b.dim != nil && b.dim():
		return styles.ButtonDim
	case b.kind == btnPrimary:
		return styles.ButtonFocused.Bold(false)
	}
	return styles.Button
}

// --- When ---

type whenSection struct {
	cond    func() bool
	section Section
}

// When renders section only while cond reports true. A hidden section takes
// no lines.
func When(cond func() bool, section Section) Section {
	return &whenSection{cond: cond, section: section}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.section.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.section.Update(msg, focusID)
}

// --- Custom ---

// RenderFunc draws a custom section.
type RenderFunc func(contentWidth int, focusID, hoverID string) RenderedSection

// UpdateFunc handles messages for a custom section.
type UpdateFunc func(msg tea.Msg, focusID string) (string, tea.Cmd)

type customSection struct {
	render RenderFunc
	update UpdateFunc
}

// Custom builds a section from closures. update may be nil.
func Custom(render RenderFunc, update UpdateFunc) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

// --- Inputs ---

func fieldBox(focused bool) lipgloss.Style {
	border := styles.CardBorder
	if focused {
		border = styles.CardBorderActive
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

type inputSection struct {
	id    string
	label string
	input *textinput.Model
}

// InputWithLabel renders a label line above a bordered single-line input.
func InputWithLabel(id, label string, input *textinput.Model) Section {
	return &inputSection{id: id, label: label, input: input}
}

func (s *inputSection) Render(contentWidth int, focusID, _ string) RenderedSection {
	focused := focusID == s.id
	if focused {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
	// border(2) + prompt + cursor
	s.input.Width = max(1, contentWidth-2-ansi.StringWidth(s.input.Prompt)-1)
	box := fieldBox(focused).Width(contentWidth - 2).Render(s.input.View())
	return RenderedSection{
		Content: styles.ModalLabel.Render(s.label) + "\n" + box,
		Focusables: []FocusableInfo{{
			ID: s.id, OffsetX: 0, OffsetY: 1, Width: contentWidth, Height: lipgloss.Height(box),
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return "", nil
	}
	var cmd tea.Cmd
	*s.input, cmd = s.input.Update(msg)
	return "", cmd
}

type textareaSection struct {
	id    string
	label string
	area  *textarea.Model
}

// TextareaWithLabel renders a label line above a bordered multi-line input.
// When the textarea has a CharLimit a counter is shown below it. Enter is
// left to the modal so the form can submit; configure the textarea's
// InsertNewline binding for line breaks.
func TextareaWithLabel(id, label string, area *textarea.Model) Section {
	return &textareaSection{id: id, label: label, area: area}
}

func (s *textareaSection) Render(contentWidth int, focusID, _ string) RenderedSection {
	focused := focusID == s.id
	if focused {
		s.area.Focus()
	} else {
		s.area.Blur()
	}
	s.area.SetWidth(max(1, contentWidth-2))
	box := fieldBox(focused).Render(s.area.View())
	content := styles.ModalLabel.Render(s.label) + "\n" + box
	if limit := s.area.CharLimit; limit > 0 {
		counter := fmt.Sprintf("%d/%d", s.area.Length(), limit)
		content += "\n" + styles.Muted.Width(contentWidth).Align(lipgloss.Right).Render(counter)
	}
	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID: s.id, OffsetX: 0, OffsetY: 1, Width: contentWidth, Height: lipgloss.Height(box),
		}},
	}
}

func (s *textareaSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return "", nil
	}
	var cmd tea.Cmd
	*s.area, cmd = s.area.Update(msg)
	return "", cmd
}
