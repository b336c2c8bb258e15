package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/marcus/notecards/internal/styles"
)

var (
	rendererMu sync.Mutex
	renderers  = map[markdownRendererKey]*glamour.TermRenderer{}
)

type markdownRendererKey struct {
	width int
	style string
}

// renderMarkdown renders input for the current theme, wrapped to width.
// Rendering errors fall back to the plain input.
func renderMarkdown(input string, width int) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width, styles.CurrentMarkdownTheme)
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = strings.Trim(out, "\n")
	return xansi.Hardwrap(out, width, true)
}

func getRenderer(width int, style string) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := markdownRendererKey{width: width, style: style}
	if r, ok := renderers[key]; ok {
		return r
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = r
	return r
}

func buildStyleConfig(style string) glamouransi.StyleConfig {
	base := glamourstyles.LightStyleConfig
	if style == "dark" {
		base = glamourstyles.DarkStyleConfig
	}
	// Spacing comes from the modal padding, not from glamour.
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero
	return base
}

// noteMarkdown formats a note as a markdown document. The description is
// user text and is rendered as markdown; the title is a heading.
func noteMarkdown(title, description, date string) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(strings.ReplaceAll(title, "\n", " "))
	b.WriteString("\n\n")
	b.WriteString(description)
	b.WriteString("\n\n*")
	b.WriteString(date)
	b.WriteString("*\n")
	return b.String()
}
