package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/notes"
)

// Region IDs registered by the grid. Card regions carry the note ID as
// region data.
const (
	GridRegion       = "grid"
	AddTileRegion    = "add-tile"
	CardRegion       = "card"
	MenuToggleRegion = "card-menu"
	MenuEditRegion   = "card-menu-edit"
	MenuDeleteRegion = "card-menu-delete"
)

// MaxColumns caps the grid width in cards.
const MaxColumns = 4

const (
	gapX = 2
	gapY = 1
)

// GridView is the per-frame input to Grid.Render. Index 0 of the cursor
// space is the add tile; note i sits at index i+1.
type GridView struct {
	Notes     []notes.Note
	Cursor    int
	Menus     map[string]bool // open card menus by note ID
	HoverID   string          // hovered region ID
	HoverNote string          // note ID of the hovered region
}

// Grid lays out the add tile and cards in rows and owns the scroll offset.
type Grid struct {
	width, height int
	offset        int
	cache         *CardCache
}

// NewGrid creates a grid that renders cards through cache (may be nil).
func NewGrid(cache *CardCache) *Grid {
	return &Grid{cache: cache}
}

// SetSize sets the viewport size in cells.
func (g *Grid) SetSize(width, height int) {
	g.width, g.height = max(1, width), max(1, height)
}

// Size returns the viewport size.
func (g *Grid) Size() (int, int) { return g.width, g.height }

// Offset returns the scroll offset in lines.
func (g *Grid) Offset() int { return g.offset }

// Columns returns how many cards fit side by side, between 1 and MaxColumns.
func (g *Grid) Columns() int {
	cols := (g.width + gapX) / (MinCardWidth + gapX)
	return max(1, min(MaxColumns, cols))
}

// CardWidth returns the outer width of one card.
func (g *Grid) CardWidth() int {
	cols := g.Columns()
	return max(MinCardWidth/2, (g.width-gapX*(cols-1))/cols)
}

func (g *Grid) rowHeight() int { return CardHeight + gapY }

// ContentHeight returns the height of all rows for n items.
func (g *Grid) ContentHeight(n int) int {
	rows := (n + g.Columns() - 1) / g.Columns()
	if rows == 0 {
		return 0
	}
	return rows*g.rowHeight() - gapY
}

func (g *Grid) maxOffset(n int) int {
	return max(0, g.ContentHeight(n)-g.height)
}

// ScrollBy moves the viewport by delta lines, clamped to the content.
func (g *Grid) ScrollBy(delta, n int) {
	g.offset = clamp(g.offset+delta, 0, g.maxOffset(n))
}

// EnsureVisible scrolls so the item at index is fully on screen.
func (g *Grid) EnsureVisible(index, n int) {
	top := (index / g.Columns()) * g.rowHeight()
	bottom := top + CardHeight
	if top < g.offset {
		g.offset = top
	}
	if bottom > g.offset+g.height {
		g.offset = bottom - g.height
	}
	g.offset = clamp(g.offset, 0, g.maxOffset(n))
}

// Move returns the cursor after moving dx columns and dy rows across n
// items. Moves off the grid edge are clamped.
func (g *Grid) Move(cursor, dx, dy, n int) int {
	if n == 0 {
		return 0
	}
	cols := g.Columns()
	if dx != 0 {
		return clamp(cursor+dx, 0, n-1)
	}
	next := cursor + dy*cols
	if next < 0 || next >= n {
		if dy > 0 && (cursor/cols) < (n-1)/cols {
			// partial last row: land on its last item
			return n - 1
		}
		return cursor
	}
	return next
}

// itemOrigin returns the content-space position of item index.
func (g *Grid) itemOrigin(index int) (x, y int) {
	cols := g.Columns()
	return (index % cols) * (g.CardWidth() + gapX), (index / cols) * g.rowHeight()
}

// Render draws the visible part of the grid and registers click targets in
// hm relative to (originX, originY). hm may be nil.
func (g *Grid) Render(v GridView, hm *mouse.HitMap, originX, originY int) string {
	n := len(v.Notes) + 1
	g.offset = clamp(g.offset, 0, g.maxOffset(n))
	cols := g.Columns()
	cw := g.CardWidth()
	gap := strings.Repeat(" ", gapX)

	var rows []string
	for start := 0; start < n; start += cols {
		cells := make([]string, 0, cols*2)
		for i := start; i < min(start+cols, n); i++ {
			if i > start {
				cells = append(cells, gap)
			}
			cells = append(cells, g.renderItem(v, i, cw))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	out := sliceLines(strings.Join(rows, strings.Repeat("\n", gapY+1)), g.offset, g.height)

	if hm != nil {
		hm.AddRect(GridRegion, originX, originY, g.width, g.height, nil)
	}
	for i := 0; i < n; i++ {
		x, y := g.itemOrigin(i)
		y -= g.offset
		if hm == nil || y+CardHeight <= 0 || y >= g.height {
			continue
		}
		top, bottom := max(0, y), min(g.height, y+CardHeight)
		if i == 0 {
			hm.AddRect(AddTileRegion, originX+x, originY+top, cw, bottom-top, nil)
			continue
		}
		id := v.Notes[i-1].ID
		hm.AddRect(CardRegion, originX+x, originY+top, cw, bottom-top, id)
		tx, ty, tw, th := MenuToggleRect(cw)
		if y+ty >= 0 && y+ty < g.height {
			hm.AddRect(MenuToggleRegion, originX+x+tx, originY+y+ty, tw, th, id)
		}
	}

	// Open menus draw over neighbouring cards, so they go last.
	for i, note := range v.Notes {
		if !v.Menus[note.ID] {
			continue
		}
		x, y := g.itemOrigin(i + 1)
		mx, my := CardMenuOrigin(cw)
		x, y = x+mx, y+my-g.offset
		hover := ""
		if v.HoverNote == note.ID {
			hover = v.HoverID
		}
		out = Place(out, RenderCardMenu(hover), x, y)
		if hm == nil {
			continue
		}
		for row, region := range CardMenuRegions {
			ry := y + 1 + row
			if ry >= 0 && ry < g.height {
				hm.AddRect(region, originX+x+1, originY+ry, cardMenuWidth-2, 1, note.ID)
			}
		}
	}
	return out
}

func (g *Grid) renderItem(v GridView, i, width int) string {
	if i == 0 {
		return RenderAddTile(width, v.Cursor == 0, v.HoverID == AddTileRegion)
	}
	note := v.Notes[i-1]
	cv := CardView{
		Note:     note,
		Width:    width,
		Focused:  v.Cursor == i,
		MenuOpen: v.Menus[note.ID],
	}
	if v.HoverNote == note.ID && v.HoverID == MenuToggleRegion {
		cv.Hover = v.HoverID
	}
	if g.cache != nil {
		return g.cache.Render(cv)
	}
	return RenderCard(cv)
}

// sliceLines returns height lines of s starting at offset, padding with
// empty lines.
func sliceLines(s string, offset, height int) string {
	lines := strings.Split(s, "\n")
	offset = min(offset, len(lines))
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
