package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/notecards/internal/notes"
)

func testNote(id, title, desc string) notes.Note {
	return notes.Note{ID: id, Title: title, Description: desc, Date: "Mar 7, 2024"}
}

func TestRenderCard(t *testing.T) {
	out := RenderCard(CardView{Note: testNote("1", "Groceries", "milk and eggs"), Width: 30})
	plain := ansi.Strip(out)

	for _, want := range []string{"Groceries", "milk and eggs", "Mar 7, 2024", MenuGlyph} {
		if !strings.Contains(plain, want) {
			t.Errorf("card missing %q:\n%s", want, plain)
		}
	}
	if w := lipgloss.Width(out); w != 30 {
		t.Errorf("card width = %d, want 30", w)
	}
	if h := lipgloss.Height(out); h != CardHeight {
		t.Errorf("card height = %d, want %d", h, CardHeight)
	}
}

func TestRenderCard_FixedSizeForLongContent(t *testing.T) {
	long := strings.Repeat("word ", 60)
	out := RenderCard(CardView{Note: testNote("1", strings.Repeat("T", 80), long), Width: 28})
	if h := lipgloss.Height(out); h != CardHeight {
		t.Errorf("card height = %d, want %d", h, CardHeight)
	}
	if w := lipgloss.Width(out); w != 28 {
		t.Errorf("card width = %d, want 28", w)
	}
	if !strings.Contains(ansi.Strip(out), "…") {
		t.Error("expected ellipsis for truncated content")
	}
}

func TestWrapDescription(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		n     int
		want  []string
	}{
		{"short", "hello", 10, 2, []string{"hello", ""}},
		{"wraps on words", "one two three", 8, 3, []string{"one two", "three", ""}},
		{"collapses whitespace", "a\n\n  b", 10, 1, []string{"a b"}},
		{"overflow ellipsis", "aaa bbb ccc ddd", 7, 1, []string{"aaa bb…"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapDescription(tt.in, tt.width, tt.n)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMenuToggleRect(t *testing.T) {
	card := RenderCard(CardView{Note: testNote("1", "T", "d"), Width: 30})
	x, y, w, _ := MenuToggleRect(30)
	line := ansi.Strip(strings.Split(card, "\n")[y])
	if got := ansi.Cut(line, x, x+w); got != MenuGlyph {
		t.Errorf("toggle rect covers %q, want %q", got, MenuGlyph)
	}
}

func TestRenderCardMenu(t *testing.T) {
	out := RenderCardMenu(MenuDeleteRegion)
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Edit") || !strings.Contains(plain, "Delete") {
		t.Errorf("menu missing items:\n%s", plain)
	}
	if w := lipgloss.Width(out); w != cardMenuWidth {
		t.Errorf("menu width = %d, want %d", w, cardMenuWidth)
	}
	lines := strings.Split(plain, "\n")
	if !strings.Contains(lines[1], "Edit") || !strings.Contains(lines[2], "Delete") {
		t.Errorf("menu rows out of order:\n%s", plain)
	}
}

func TestCardCache(t *testing.T) {
	c := NewCardCache(2)
	v := CardView{Note: testNote("1", "T", "d"), Width: 30}

	first := c.Render(v)
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if again := c.Render(v); again != first {
		t.Error("cache hit should return identical output")
	}
	if c.Len() != 1 {
		t.Errorf("cache hit should not add entries, Len() = %d", c.Len())
	}

	v.Focused = true
	c.Render(v)
	if c.Len() != 2 {
		t.Errorf("focus change should be a new entry, Len() = %d", c.Len())
	}

	// Over the limit the cache starts over
	v.Width = 40
	c.Render(v)
	if c.Len() != 1 {
		t.Errorf("Len() after overflow = %d, want 1", c.Len())
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
}

func TestRenderAddTile(t *testing.T) {
	out := RenderAddTile(30, false, false)
	if !strings.Contains(ansi.Strip(out), AddTileLabel) {
		t.Errorf("tile missing label:\n%s", ansi.Strip(out))
	}
	if lipgloss.Width(out) != 30 || lipgloss.Height(out) != CardHeight {
		t.Errorf("tile size = %dx%d, want 30x%d", lipgloss.Width(out), lipgloss.Height(out), CardHeight)
	}
}
