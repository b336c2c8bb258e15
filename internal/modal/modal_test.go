package modal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/styles"
)

func TestNew(t *testing.T) {
	m := New("Test Modal")
	if m.title != "Test Modal" {
		t.Errorf("expected title 'Test Modal', got %q", m.title)
	}
	if m.width != DefaultWidth {
		t.Errorf("expected default width %d, got %d", DefaultWidth, m.width)
	}
	if m.variant != VariantDefault {
		t.Errorf("expected VariantDefault, got %v", m.variant)
	}
	if !m.closeOnBackdrop {
		t.Errorf("expected closeOnBackdrop true, got %v", m.closeOnBackdrop)
	}
}

func TestNewWithOptions(t *testing.T) {
	m := New("Test",
		WithWidth(60),
		WithVariant(VariantDanger),
		WithHints(false),
		WithPrimaryAction("submit"),
		WithCloseOnBackdropClick(false),
	)

	if m.width != 60 {
		t.Errorf("expected width 60, got %d", m.width)
	}
	if m.variant != VariantDanger {
		t.Errorf("expected VariantDanger, got %v", m.variant)
	}
	if m.showHints != false {
		t.Errorf("expected showHints false, got %v", m.showHints)
	}
	if m.primaryAction != "submit" {
		t.Errorf("expected primaryAction 'submit', got %q", m.primaryAction)
	}
	if m.closeOnBackdrop {
		t.Errorf("expected closeOnBackdrop false, got %v", m.closeOnBackdrop)
	}
}

func TestAddSection(t *testing.T) {
	m := New("Test").
		AddSection(Text("Hello")).
		AddSection(Spacer()).
		AddSection(Text("World"))

	if len(m.sections) != 3 {
		t.Errorf("expected 3 sections, got %d", len(m.sections))
	}
}

func TestTextSection(t *testing.T) {
	s := Text("Hello World")
	res := s.Render(80, "", "")

	if !strings.Contains(res.Content, "Hello World") {
		t.Errorf("expected content to contain 'Hello World', got %q", res.Content)
	}
	if len(res.Focusables) != 0 {
		t.Errorf("expected no focusables, got %d", len(res.Focusables))
	}
}

func TestSpacerSection(t *testing.T) {
	s := Spacer()
	res := s.Render(80, "", "")

	if res.Content != " " {
		t.Errorf("expected spacer content to be a single space, got %q", res.Content)
	}
}

func TestButtonsSection(t *testing.T) {
	s := Buttons(
		Btn(" Confirm ", "confirm"),
		Btn(" Cancel ", "cancel"),
	)
	res := s.Render(80, "confirm", "")

	if !strings.Contains(res.Content, "Confirm") {
		t.Errorf("expected content to contain 'Confirm', got %q", res.Content)
	}
	if len(res.Focusables) != 2 {
		t.Errorf("expected 2 focusables, got %d", len(res.Focusables))
	}

	// Check focusable IDs
	if res.Focusables[0].ID != "confirm" {
		t.Errorf("expected first focusable ID 'confirm', got %q", res.Focusables[0].ID)
	}
	if res.Focusables[1].ID != "cancel" {
		t.Errorf("expected second focusable ID 'cancel', got %q", res.Focusables[1].ID)
	}
}

func TestButtonsDanger(t *testing.T) {
	s := Buttons(
		Btn(" Delete ", "delete", BtnDanger()),
	)
	res := s.Render(80, "delete", "")

	// Should render with danger style
	if !strings.Contains(res.Content, "Delete") {
		t.Errorf("expected content to contain 'Delete', got %q", res.Content)
	}
}

func TestWhenSection(t *testing.T) {
	show := false
	s := When(func() bool { return show }, Text("Conditional"))

	// When false
	res := s.Render(80, "", "")
	if res.Content != "" {
		t.Errorf("expected empty when condition is false, got %q", res.Content)
	}

	// When true
	show = true
	res = s.Render(80, "", "")
	if !strings.Contains(res.Content, "Conditional") {
		t.Errorf("expected 'Conditional' when condition is true, got %q", res.Content)
	}
}

func TestWhenSectionNoSpacerLine(t *testing.T) {
	m := New("Test", WithHints(false)).
		AddSection(Custom(func(contentWidth int, focusID, hoverID string) RenderedSection {
			return RenderedSection{
				Content: "First",
				Focusables: []FocusableInfo{{
					ID:      "first",
					OffsetX: 0,
					OffsetY: 0,
					Width:   5,
					Height:  1,
				}},
			}
		}, nil)).
		AddSection(When(func() bool { return false }, Text("Hidden"))).
		AddSection(Custom(func(contentWidth int, focusID, hoverID string) RenderedSection {
			return RenderedSection{
				Content: "Second",
				Focusables: []FocusableInfo{{
					ID:      "second",
					OffsetX: 0,
					OffsetY: 0,
					Width:   6,
					Height:  1,
				}},
			}
		}, nil))

	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	regions := handler.HitMap.Regions()
	var first, second *mouse.Region
	for i := range regions {
		switch regions[i].ID {
		case "first":
			first = &regions[i]
		case "second":
			second = &regions[i]
		}
	}

	if first == nil || second == nil {
		t.Fatalf("expected both 'first' and 'second' regions to be registered")
	}

	if second.Rect.Y-first.Rect.Y != 1 {
		t.Errorf("expected no spacer line between sections; got delta %d", second.Rect.Y-first.Rect.Y)
	}
}

func TestHandleKeyEsc(t *testing.T) {
	m := New("Test").
		AddSection(Buttons(Btn(" OK ", "ok")))

	// Render to populate focusIDs
	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if action != "cancel" {
		t.Errorf("expected 'cancel' on Esc, got %q", action)
	}
}

func TestHandleKeyTab(t *testing.T) {
	m := New("Test").
		AddSection(Buttons(
			Btn(" A ", "a"),
			Btn(" B ", "b"),
			Btn(" C ", "c"),
		))

	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	// Initial focus should be on first element
	if m.FocusedID() != "a" {
		t.Errorf("expected initial focus on 'a', got %q", m.FocusedID())
	}

	// Tab to next
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != "b" {
		t.Errorf("expected focus on 'b' after Tab, got %q", m.FocusedID())
	}

	// Tab again
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != "c" {
		t.Errorf("expected focus on 'c' after second Tab, got %q", m.FocusedID())
	}

	// Tab wraps around
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != "a" {
		t.Errorf("expected focus to wrap to 'a', got %q", m.FocusedID())
	}

	// Shift+Tab goes backward
	m.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.FocusedID() != "c" {
		t.Errorf("expected focus on 'c' after Shift+Tab, got %q", m.FocusedID())
	}
}

func TestHandleKeyEnter(t *testing.T) {
	m := New("Test").
		AddSection(Buttons(
			Btn(" OK ", "ok"),
			Btn(" Cancel ", "cancel"),
		))

	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	// Enter on focused button returns its ID
	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "ok" {
		t.Errorf("expected 'ok' on Enter, got %q", action)
	}

	// Focus cancel and enter
	m.SetFocus("cancel")
	action, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "cancel" {
		t.Errorf("expected 'cancel' on Enter, got %q", action)
	}
}

func TestHandleMouseClick(t *testing.T) {
	m := New("Test", WithWidth(40)).
		AddSection(Text("Click a button")).
		AddSection(Spacer()).
		AddSection(Buttons(
			Btn(" OK ", "ok"),
			Btn(" Cancel ", "cancel"),
		))

	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	// Find the "ok" button region
	regions := handler.HitMap.Regions()
	var okRegion *mouse.Region
	for i := range regions {
		if regions[i].ID == "ok" {
			okRegion = &regions[i]
			break
		}
	}

	if okRegion == nil {
		t.Fatal("expected 'ok' button region to be registered")
	}

	// Click on the OK button
	clickX := okRegion.Rect.X + okRegion.Rect.W/2
	clickY := okRegion.Rect.Y
	action := m.HandleMouse(tea.MouseMsg{
		X:      clickX,
		Y:      clickY,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}, handler)

	if action != "ok" {
		t.Errorf("expected 'ok' on click, got %q", action)
	}
}

func TestHandleMouseBackdropClick(t *testing.T) {
	m := New("Test", WithWidth(40)).
		AddSection(Text("Click outside"))

	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	action := m.HandleMouse(tea.MouseMsg{
		X:      0,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}, handler)
	if action != "cancel" {
		t.Errorf("expected 'cancel' on backdrop click, got %q", action)
	}

	m = New("Test", WithWidth(40), WithCloseOnBackdropClick(false)).
		AddSection(Text("Click outside"))
	handler = mouse.NewHandler()
	m.Render(80, 24, handler)

	action = m.HandleMouse(tea.MouseMsg{
		X:      0,
		Y:      0,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}, handler)
	if action != "" {
		t.Errorf("expected no action on backdrop click when disabled, got %q", action)
	}
}

func TestHandleMouseHover(t *testing.T) {
	m := New("Test", WithWidth(40)).
		AddSection(Buttons(Btn(" OK ", "ok")))

	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	// Find the button region
	regions := handler.HitMap.Regions()
	var okRegion *mouse.Region
	for i := range regions {
		if regions[i].ID == "ok" {
			okRegion = &regions[i]
			break
		}
	}

	if okRegion == nil {
		t.Fatal("expected 'ok' button region")
	}

	// Hover over button
	m.HandleMouse(tea.MouseMsg{
		X:      okRegion.Rect.X,
		Y:      okRegion.Rect.Y,
		Action: tea.MouseActionMotion,
	}, handler)

	if m.hoverID != "ok" {
		t.Errorf("expected hoverID 'ok', got %q", m.hoverID)
	}

	// Move away
	m.HandleMouse(tea.MouseMsg{
		X:      0,
		Y:      0,
		Action: tea.MouseActionMotion,
	}, handler)

	if m.hoverID != "" {
		t.Errorf("expected empty hoverID, got %q", m.hoverID)
	}
}

func TestMouseScrollModal(t *testing.T) {
	m := New("Test", WithWidth(40), WithHints(false))
	for i := 1; i <= 12; i++ {
		m.AddSection(Text(fmt.Sprintf("Line %d", i)))
	}

	handler := mouse.NewHandler()
	m.Render(80, 12, handler) // Small height to force scrolling

	// Scroll on backdrop does nothing
	m.HandleMouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, handler)
	if m.scrollOffset != 0 {
		t.Fatalf("backdrop scroll moved content to %d", m.scrollOffset)
	}

	body := handler.HitMap.Test(40, 6)
	if body == nil || body.ID != bodyID {
		t.Fatalf("expected modal body at center, got %+v", body)
	}
	m.HandleMouse(tea.MouseMsg{X: 40, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, handler)
	if m.scrollOffset != 3 {
		t.Errorf("expected scrollOffset 3 after wheel down, got %d", m.scrollOffset)
	}

	// Clamped on render
	m.ScrollBy(100)
	m.Render(80, 12, handler)
	if m.scrollOffset != 12-m.lastViewportH {
		t.Errorf("expected scroll clamped to %d, got %d", 12-m.lastViewportH, m.scrollOffset)
	}
}
func TestInputSection(t *testing.T) {
	ti := textinput.New()
	ti.Placeholder = "Enter name"
	s := InputWithLabel("name", "Name:", &ti)

	res := s.Render(60, "name", "")

	if !strings.Contains(res.Content, "Name:") {
		t.Errorf("expected content to contain 'Name:', got %q", res.Content)
	}
	if len(res.Focusables) != 1 {
		t.Errorf("expected 1 focusable, got %d", len(res.Focusables))
	}
	if res.Focusables[0].ID != "name" {
		t.Errorf("expected focusable ID 'name', got %q", res.Focusables[0].ID)
	}
}

func TestHitRegionAccuracy(t *testing.T) {
	m := New("Test Modal", WithWidth(50)).
		AddSection(Text("Some text")).
		AddSection(Spacer()).
		AddSection(Buttons(
			Btn(" OK ", "ok"),
			Btn(" Cancel ", "cancel"),
		))

	handler := mouse.NewHandler()
	rendered := m.Render(80, 24, handler)

	// The modal should have rendered something
	if rendered == "" {
		t.Error("expected non-empty render")
	}

	// Check that hit regions are registered
	regions := handler.HitMap.Regions()
	foundBackdrop := false
	foundBody := false
	foundOK := false
	foundCancel := false

	for _, r := range regions {
		switch r.ID {
		case "modal-backdrop":
			foundBackdrop = true
		case "modal-body":
			foundBody = true
		case "ok":
			foundOK = true
		case "cancel":
			foundCancel = true
		}
	}

	if !foundBackdrop {
		t.Error("expected modal-backdrop region")
	}
	if !foundBody {
		t.Error("expected modal-body region")
	}
	if !foundOK {
		t.Error("expected ok button region")
	}
	if !foundCancel {
		t.Error("expected cancel button region")
	}
}

func TestMeasureHeight(t *testing.T) {
	cases := []struct {
		content  string
		expected int
	}{
		{"", 0},
		{"single line", 1},
		{"line 1\nline 2", 2},
		{"line 1\nline 2\nline 3", 3},
		{"with trailing\n", 1}, // Trailing newline trimmed
		{"\n", 0},              // Only newline = empty
	}

	for _, tc := range cases {
		got := measureHeight(tc.content)
		if got != tc.expected {
			t.Errorf("measureHeight(%q) = %d, want %d", tc.content, got, tc.expected)
		}
	}
}

func TestSliceLines(t *testing.T) {
	content := "line 0\nline 1\nline 2\nline 3\nline 4"

	cases := []struct {
		offset, height int
		padToHeight    bool
		want           string
	}{
		{0, 2, true, "line 0\nline 1"},
		{1, 2, true, "line 1\nline 2"},
		{3, 3, true, "line 3\nline 4\n"},                                  // Padded with empty
		{0, 10, true, "line 0\nline 1\nline 2\nline 3\nline 4\n\n\n\n\n"}, // Padded
		{3, 3, false, "line 3\nline 4"},
		{0, 10, false, "line 0\nline 1\nline 2\nline 3\nline 4"},
	}

	for _, tc := range cases {
		got := sliceLines(content, tc.offset, tc.height, tc.padToHeight)
		if got != tc.want {
			t.Errorf("sliceLines(offset=%d, height=%d, pad=%v) = %q, want %q", tc.offset, tc.height, tc.padToHeight, got, tc.want)
		}
	}
}

func TestCloseButton(t *testing.T) {
	m := New("Add a new Note", WithWidth(40), WithCloseButton(), WithCloseOnBackdropClick(false)).
		AddSection(Buttons(Btn(" OK ", "ok")))

	handler := mouse.NewHandler()
	out := m.Render(80, 24, handler)
	if !strings.Contains(out, "×") {
		t.Fatalf("expected close glyph in title line, got %q", out)
	}

	var closeRegion *mouse.Region
	regions := handler.HitMap.Regions()
	for i := range regions {
		if regions[i].ID == closeActionID {
			closeRegion = &regions[i]
		}
	}
	if closeRegion == nil {
		t.Fatal("expected close region")
	}

	// Hover highlights the glyph
	m.HandleMouse(tea.MouseMsg{X: closeRegion.Rect.X + 1, Y: closeRegion.Rect.Y, Action: tea.MouseActionMotion}, handler)
	if m.hoverID != closeActionID {
		t.Errorf("expected close hovered, got %q", m.hoverID)
	}

	action := m.HandleMouse(tea.MouseMsg{
		X: closeRegion.Rect.X + 1, Y: closeRegion.Rect.Y,
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	}, handler)
	if action != "cancel" {
		t.Errorf("expected 'cancel' from close button, got %q", action)
	}
}

func TestCloseButtonSitsOnTitleLine(t *testing.T) {
	m := New("Title", WithWidth(40), WithCloseButton(), WithHints(false)).
		AddSection(Buttons(Btn(" OK ", "ok")))
	handler := mouse.NewHandler()
	m.Render(80, 24, handler)

	var closeY, okY = -1, -1
	for _, r := range handler.HitMap.Regions() {
		switch r.ID {
		case closeActionID:
			closeY = r.Rect.Y
		case "ok":
			okY = r.Rect.Y
		}
	}
	// title line, margin line, then content
	if okY-closeY != 2 {
		t.Errorf("expected button two rows below close glyph, got close=%d ok=%d", closeY, okY)
	}
}

func TestHintText(t *testing.T) {
	m := New("T", WithHintText("Enter save")).AddSection(Text("body"))
	out := m.Render(80, 24, nil)
	if !strings.Contains(out, "Enter save") {
		t.Errorf("expected custom hint, got %q", out)
	}
	if strings.Contains(out, defaultHint) {
		t.Error("default hint should be replaced")
	}

	m = New("T", WithHints(false)).AddSection(Text("body"))
	if out := m.Render(80, 24, nil); strings.Contains(out, defaultHint) {
		t.Error("hints disabled but rendered")
	}
}

func TestPrimaryActionOnEnter(t *testing.T) {
	ti := textinput.New()
	m := New("T", WithPrimaryAction("submit")).
		AddSection(InputWithLabel("title", "Title", &ti)).
		AddSection(Buttons(Btn(" Save ", "save")))
	m.Render(80, 24, nil)

	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "submit" {
		t.Errorf("expected primary action from input, got %q", action)
	}
}

func TestInputSectionTyping(t *testing.T) {
	ti := textinput.New()
	m := New("T").AddSection(InputWithLabel("title", "Title", &ti))
	m.Render(80, 24, nil) // focuses the input

	m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	if ti.Value() != "hi" {
		t.Errorf("expected typed value 'hi', got %q", ti.Value())
	}
	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "title" {
		t.Errorf("expected focus ID on enter, got %q", action)
	}
	if ti.Value() != "hi" {
		t.Errorf("enter must not edit the input, got %q", ti.Value())
	}
}

func TestTextareaSection(t *testing.T) {
	ta := textarea.New()
	ta.CharLimit = 200
	ta.SetHeight(3)
	ta.SetValue("hello")
	s := TextareaWithLabel("desc", "Description", &ta)

	res := s.Render(40, "desc", "")
	if !strings.Contains(res.Content, "Description") {
		t.Errorf("expected label, got %q", res.Content)
	}
	if !strings.Contains(res.Content, "5/200") {
		t.Errorf("expected counter 5/200, got %q", res.Content)
	}
	if len(res.Focusables) != 1 || res.Focusables[0].OffsetY != 1 || res.Focusables[0].Height != 5 {
		t.Errorf("unexpected focusables %+v", res.Focusables)
	}

	// Enter is left to the modal
	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, "desc")
	if ta.Value() != "hello" {
		t.Errorf("enter must not insert a newline, got %q", ta.Value())
	}
	// Unfocused sections ignore keys
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, "other")
	if ta.Value() != "hello" {
		t.Errorf("unfocused textarea changed to %q", ta.Value())
	}
}

func TestBtnDimmed(t *testing.T) {
	dim := true
	b := Btn(" Add Note ", "submit", BtnDimmed(func() bool { return dim }))
	if got := buttonStyle(b, false, false); got.GetBackground() != styles.ButtonDim.GetBackground() {
		t.Error("expected dim style while condition holds")
	}
	if got := buttonStyle(b, true, false); got.GetBackground() != styles.ButtonFocused.GetBackground() {
		t.Error("focus should override dimming")
	}
	dim = false
	if got := buttonStyle(b, false, false); got.GetBackground() == styles.ButtonDim.GetBackground() {
		t.Error("expected normal style once condition clears")
	}
}
