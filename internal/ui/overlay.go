// Package ui renders the note grid and composes layers on top of it.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle grays out content behind a modal. Existing colors are stripped
// first since faint (SGR 2) does not combine reliably with them.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

const resetSeq = "\x1b[0m"

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// compositeRow dims bgLine and draws fgLine over it starting at column x.
func compositeRow(bgLine, fgLine string, x, fgWidth, totalWidth int) string {
	var b strings.Builder
	plain := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(plain)

	if x > 0 {
		left := ansi.Truncate(plain, x, "")
		b.WriteString(DimStyle.Render(left))
		if w := ansi.StringWidth(left); w < x {
			b.WriteString(strings.Repeat(" ", x-w))
		}
	}
	b.WriteString(fgLine)
	if right := x + fgWidth; right < totalWidth && bgWidth > right {
		b.WriteString(DimStyle.Render(ansi.Cut(plain, right, bgWidth)))
	}
	return b.String()
}

// OverlayModal centers modal over a dimmed copy of background, filling
// width x height.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	fgLines := strings.Split(modal, "\n")
	fgW := maxLineWidth(fgLines)
	x := max(0, (width-fgW)/2)
	y := max(0, (height-len(fgLines))/2)

	out := make([]string, height)
	for row := range out {
		bg := ""
		if row < len(bgLines) {
			bg = bgLines[row]
		}
		if i := row - y; i >= 0 && i < len(fgLines) {
			out[row] = compositeRow(bg, fgLines[i], x, fgW, width)
		} else {
			out[row] = dimLine(bg)
		}
	}
	return strings.Join(out, "\n")
}

// Place draws fg over bg with its top-left corner at (x, y), keeping bg's
// styling on both sides. Rows of fg beyond bg are dropped.
func Place(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(0, x)
	for i, line := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		w := ansi.StringWidth(line)
		base := bgLines[row]
		baseW := ansi.StringWidth(base)

		var b strings.Builder
		left := ansi.Truncate(base, x, "")
		b.WriteString(left)
		b.WriteString(resetSeq)
		if lw := ansi.StringWidth(left); lw < x {
			b.WriteString(strings.Repeat(" ", x-lw))
		}
		b.WriteString(line)
		b.WriteString(resetSeq)
		if x+w < baseW {
			b.WriteString(ansi.Cut(base, x+w, baseW))
		}
		bgLines[row] = b.String()
	}
	return strings.Join(bgLines, "\n")
}
