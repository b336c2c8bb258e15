package ui

import "github.com/marcus/notecards/internal/styles"

// AddTileLabel is the text of the add tile.
const AddTileLabel = "+ Add new note"

// RenderAddTile draws the tile that opens the add form. It has the same
// outer size as a card.
func RenderAddTile(width int, focused, hovered bool) string {
	st := styles.AddTile
	if focused || hovered {
		st = styles.AddTileFocused
	}
	return st.Width(width - 2).Height(CardHeight - 2).Render(AddTileLabel)
}
