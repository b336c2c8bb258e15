package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/styles"
)

const defaultHint = "Tab next · Enter confirm · Esc close"

type renderedSection struct {
	content    string
	height     int
	focusables []FocusableInfo
}

// renderSections renders every section and drops the ones that produced no
// lines. It also returns the focus order.
func (m *Modal) renderSections(contentWidth int) ([]renderedSection, []string) {
	focusID := m.currentFocusID()
	var out []renderedSection
	var ids []string
	for _, s := range m.sections {
		res := s.Render(contentWidth, focusID, m.hoverID)
		h := measureHeight(res.Content)
		for _, f := range res.Focusables {
			ids = append(ids, f.ID)
		}
		if h == 0 {
			continue
		}
		out = append(out, renderedSection{content: res.Content, height: h, focusables: res.Focusables})
	}
	return out, ids
}

func (m *Modal) setFocusIDs(ids []string) {
	m.focusIDs = ids
	if m.focusIdx >= len(ids) {
		m.focusIdx = 0
	}
}

// buildLayout renders the modal and registers its hit regions.
func (m *Modal) buildLayout(screenW, screenH int, handler *mouse.Handler) string {
	maxWidth := max(1, screenW-4)
	modalWidth := clamp(m.width, min(MinModalWidth, maxWidth), maxWidth)
	contentWidth := max(1, modalWidth-ModalPadding)

	headerLines := 0
	if m.title != "" || m.closeButton {
		headerLines = 2 // title + margin
	}
	footerLines := 0
	if m.showHints {
		footerLines++
	}
	// border and padding take 4 rows, leave 2 rows of margin
	maxViewport := max(1, screenH-6-headerLines-footerLines)

	sections, ids := m.renderSections(contentWidth)
	m.setFocusIDs(ids)
	contentH := sumHeights(sections)

	scrollbar := contentH > maxViewport
	if scrollbar && contentWidth > 1 {
		// make room for the scrollbar column
		sections, ids = m.renderSections(contentWidth - 1)
		m.setFocusIDs(ids)
		contentH = sumHeights(sections)
		scrollbar = contentH > maxViewport
	}

	m.focusPositions = make(map[string]focusablePos, len(ids))
	parts := make([]string, 0, len(sections))
	y := 0
	for _, s := range sections {
		for _, f := range s.focusables {
			m.focusPositions[f.ID] = focusablePos{y: y + f.OffsetY, height: f.Height}
		}
		parts = append(parts, s.content)
		y += s.height
	}

	viewportH := maxViewport
	pad := true
	if contentH <= maxViewport {
		viewportH = max(1, contentH)
		pad = false
	}
	m.lastViewportH = viewportH
	m.scrollOffset = clamp(m.scrollOffset, 0, max(0, contentH-viewportH))

	body := sliceLines(strings.Join(parts, "\n"), m.scrollOffset, viewportH, pad)
	if scrollbar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, renderScrollbar(contentH, m.scrollOffset, viewportH))
	}

	var inner strings.Builder
	if headerLines > 0 {
		inner.WriteString(m.renderTitleLine(contentWidth))
		inner.WriteString("\n")
	}
	inner.WriteString(body)
	if m.showHints {
		hint := m.hintText
		if hint == "" {
			hint = defaultHint
		}
		inner.WriteString("\n")
		inner.WriteString(styles.Muted.Render(hint))
	}

	styled := m.boxStyle(modalWidth).Render(inner.String())
	if handler == nil {
		return styled
	}

	modalH := lipgloss.Height(styled)
	modalX := (screenW - modalWidth) / 2
	modalY := (screenH - modalH) / 2
	contentX := modalX + 3 // border + padding
	titleY := modalY + 2
	contentY := titleY + headerLines

	handler.HitMap.Clear()
	handler.HitMap.AddRect(backdropID, 0, 0, screenW, screenH, nil)
	handler.HitMap.AddRect(bodyID, modalX, modalY, modalWidth, modalH, nil)
	if m.closeButton {
		// the glyph is one cell; the target spans its neighbours too
		handler.HitMap.AddRect(closeActionID, contentX+contentWidth-2, titleY, 3, 1, nil)
	}

	sectionY := 0
	for _, s := range sections {
		for _, f := range s.focusables {
			absY := contentY + sectionY + f.OffsetY - m.scrollOffset
			if intersectsViewport(absY, f.Height, contentY, viewportH) {
				handler.HitMap.AddRect(f.ID, contentX+f.OffsetX, absY, f.Width, f.Height, f.ID)
			}
		}
		sectionY += s.height
	}
	return styled
}

func sumHeights(sections []renderedSection) int {
	h := 0
	for _, s := range sections {
		h += s.height
	}
	return h
}

func (m *Modal) accent() lipgloss.Color {
	switch m.variant {
	case VariantDanger:
		return styles.Error
	case VariantWarning:
		return styles.Warning
	case VariantInfo:
		return styles.Info
	}
	return styles.Primary
}

func (m *Modal) boxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.accent()).
		Background(styles.BgSecondary).
		Padding(1, 2).
		Width(width)
}

// renderTitleLine renders the title and, when enabled, the close glyph at
// the right edge of the content area.
func (m *Modal) renderTitleLine(contentWidth int) string {
	titleStyle := styles.ModalTitle
	if m.variant != VariantDefault {
		titleStyle = titleStyle.Foreground(m.accent())
	}
	if !m.closeButton {
		return titleStyle.Render(m.title)
	}

	glyph := styles.CloseGlyph
	if m.hoverID == closeActionID {
		glyph = styles.CloseGlyphHover
	}
	title := ansi.Truncate(m.title, max(0, contentWidth-2), "…")
	gap := max(1, contentWidth-ansi.StringWidth(title)-1)
	line := titleStyle.UnsetMarginBottom().Render(title) + strings.Repeat(" ", gap) + glyph.Render("×")
	return lipgloss.NewStyle().MarginBottom(1).Render(line)
}

func renderScrollbar(total, offset, viewportH int) string {
	if viewportH < 1 || total < 1 {
		return ""
	}
	thumb := clamp(viewportH*viewportH/total, 1, viewportH)
	thumbPos := clamp(offset*(viewportH-thumb)/max(1, total-viewportH), 0, viewportH-thumb)

	track := lipgloss.NewStyle().Foreground(styles.TextSubtle).Render("│")
	bar := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("┃")
	lines := make([]string, viewportH)
	for i := range lines {
		lines[i] = track
		if i >= thumbPos && i < thumbPos+thumb {
			lines[i] = bar
		}
	}
	return strings.Join(lines, "\n")
}

// sliceLines returns height lines of content starting at offset, padded
// with empty lines when pad is set.
func sliceLines(content string, offset, height int, pad bool) string {
	lines := strings.Split(content, "\n")
	if offset >= len(lines) {
		offset = max(0, len(lines)-1)
	}
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	for pad && len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func intersectsViewport(y, h, viewportY, viewportH int) bool {
	return y < viewportY+viewportH && y+h > viewportY
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
