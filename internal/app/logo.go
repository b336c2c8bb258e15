package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notecards/internal/styles"
)

type rgb struct {
	R, G, B float64
}

// hexToRGB parses a #RRGGBB color. ok is false for anything else.
func hexToRGB(hex string) (rgb, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return rgb{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return rgb{}, false
	}
	return rgb{float64(r), float64(g), float64(b)}, true
}

func (c rgb) lerp(to rgb, t float64) rgb {
	return rgb{
		R: c.R + t*(to.R-c.R),
		G: c.G + t*(to.G-c.G),
		B: c.B + t*(to.B-c.B),
	}
}

func (c rgb) toLipgloss() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", int(c.R+0.5), int(c.G+0.5), int(c.B+0.5)))
}

// gradientText colors each letter of text along a left-to-right gradient.
// Colors that are not hex fall back to a solid from color.
func gradientText(text string, from, to lipgloss.Color) string {
	start, ok1 := hexToRGB(string(from))
	end, ok2 := hexToRGB(string(to))
	runes := []rune(text)
	if !ok1 || !ok2 || len(runes) < 2 {
		return styles.Logo.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes)-1)
		c := start.lerp(end, t).toLipgloss()
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(r)))
	}
	return b.String()
}

// renderLogo draws the app name in the current theme's gradient.
func renderLogo() string {
	return gradientText("Notecards", styles.Primary, styles.Secondary)
}
