package ui

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/notecards/internal/notes"
	"github.com/marcus/notecards/internal/styles"
	"github.com/mattn/go-runewidth"
)

// Card geometry. Heights include the border.
const (
	CardHeight    = 9
	MinCardWidth  = 24
	cardChromeW   = 4 // border(2) + padding(2)
	descLines     = 4
	MenuGlyph     = "..."
	cardMenuWidth = 10
	cardMenuItems = 2
)

// CardView is everything needed to draw one card.
type CardView struct {
	Note     notes.Note
	Width    int
	Focused  bool
	MenuOpen bool
	Hover    string // hovered region ID, if it belongs to this card
}

// CardCache memoizes rendered cards. Cards re-render on every frame while
// the cursor or mouse moves, but their content rarely changes.
type CardCache struct {
	entries map[uint64]string
	limit   int
}

// NewCardCache creates a cache holding up to limit cards.
func NewCardCache(limit int) *CardCache {
	return &CardCache{entries: make(map[uint64]string), limit: max(1, limit)}
}

// Reset drops all entries. Call after a theme change.
func (c *CardCache) Reset() {
	clear(c.entries)
}

// Len returns the number of cached cards.
func (c *CardCache) Len() int { return len(c.entries) }

// Render returns the cached rendering of v, drawing it on a miss.
func (c *CardCache) Render(v CardView) string {
	if c == nil {
		return RenderCard(v)
	}
	key := v.key()
	if s, ok := c.entries[key]; ok {
		return s
	}
	if len(c.entries) >= c.limit {
		clear(c.entries)
	}
	s := RenderCard(v)
	c.entries[key] = s
	return s
}

func (v CardView) key() uint64 {
	d := xxhash.New()
	for _, s := range []string{
		v.Note.ID, v.Note.Title, v.Note.Description, v.Note.Date,
		strconv.Itoa(v.Width), strconv.FormatBool(v.Focused), strconv.FormatBool(v.MenuOpen),
		v.Hover, styles.GetCurrentThemeName(),
	} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// RenderCard draws a note card: title with the menu toggle, a rule, the
// wrapped description and the date.
func RenderCard(v CardView) string {
	inner := max(1, v.Width-cardChromeW)

	toggle := styles.CardMenuToggle
	if v.MenuOpen || v.Hover == MenuToggleRegion {
		toggle = toggle.Foreground(styles.Primary)
	}
	titleW := max(1, inner-runewidth.StringWidth(MenuGlyph)-1)
	title := runewidth.FillRight(runewidth.Truncate(v.Note.Title, titleW, "…"), titleW)

	lines := make([]string, 0, CardHeight-2)
	lines = append(lines,
		styles.CardTitle.Render(title)+styles.CardBody.Render(" ")+toggle.Render(MenuGlyph),
		styles.CardRule.Render(strings.Repeat("─", inner)),
	)
	for _, l := range wrapDescription(v.Note.Description, inner, descLines) {
		lines = append(lines, styles.CardBody.Render(runewidth.FillRight(l, inner)))
	}
	lines = append(lines, styles.CardDate.Render(runewidth.FillRight(v.Note.Date, inner)))

	style := styles.Card
	if v.Focused {
		style = styles.CardFocused
	}
	return style.Width(v.Width - 2).Height(CardHeight - 2).Render(strings.Join(lines, "\n"))
}

// wrapDescription word-wraps s to width and returns exactly n lines. Text
// that does not fit ends with an ellipsis.
func wrapDescription(s string, width, n int) []string {
	s = strings.Join(strings.Fields(s), " ")
	wrapped := strings.Split(ansi.Wrap(s, width, ""), "\n")
	out := make([]string, n)
	for i := range out {
		if i < len(wrapped) {
			out[i] = strings.TrimRight(wrapped[i], " ")
		}
	}
	if len(wrapped) > n {
		last := runewidth.Truncate(out[n-1], width-1, "")
		out[n-1] = last + "…"
	}
	return out
}

// MenuToggleRect returns the "..." target relative to the card's top-left.
func MenuToggleRect(cardWidth int) (x, y, w, h int) {
	inner := max(1, cardWidth-cardChromeW)
	gw := runewidth.StringWidth(MenuGlyph)
	return 2 + inner - gw, 1, gw, 1
}

// Card menu action labels, in display order.
var cardMenuLabels = [cardMenuItems]string{"Edit", "Delete"}

// CardMenuRegions are the region IDs of the menu rows, matching labels.
var CardMenuRegions = [cardMenuItems]string{MenuEditRegion, MenuDeleteRegion}

// RenderCardMenu draws the Edit/Delete popup. hover highlights a row.
func RenderCardMenu(hover string) string {
	rows := make([]string, cardMenuItems)
	for i, label := range cardMenuLabels {
		st := styles.MenuItem
		if hover == CardMenuRegions[i] {
			st = styles.MenuItemHover
		}
		rows[i] = st.Width(cardMenuWidth - 2).Render(label)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CardBorderActive).
		BorderBackground(styles.CardBg).
		Render(strings.Join(rows, "\n"))
}

// CardMenuOrigin returns where the popup sits relative to the card's
// top-left: right-aligned under the toggle.
func CardMenuOrigin(cardWidth int) (x, y int) {
	return max(0, cardWidth-cardMenuWidth-1), 2
}
