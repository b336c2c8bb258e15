package app

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want rgb
		ok   bool
	}{
		{"#38BDF8", rgb{0x38, 0xbd, 0xf8}, true},
		{"06b6d4", rgb{0x06, 0xb6, 0xd4}, true},
		{"#fff", rgb{}, false},
		{"#zzzzzz", rgb{}, false},
		{"red", rgb{}, false},
	}
	for _, tt := range tests {
		got, ok := hexToRGB(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("hexToRGB(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRGBLerpEndpoints(t *testing.T) {
	from := rgb{0, 100, 200}
	to := rgb{200, 100, 0}
	if got := from.lerp(to, 0); got != from {
		t.Errorf("lerp(0) = %v, want %v", got, from)
	}
	if got := from.lerp(to, 1); got != to {
		t.Errorf("lerp(1) = %v, want %v", got, to)
	}
	if got := from.lerp(to, 0.5).toLipgloss(); got != lipgloss.Color("#646464") {
		t.Errorf("lerp(0.5) = %v, want #646464", got)
	}
}

func TestGradientTextKeepsText(t *testing.T) {
	tests := []struct {
		name     string
		from, to lipgloss.Color
	}{
		{"hex", "#38BDF8", "#06B6D4"},
		{"ansi fallback", "12", "14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := gradientText("Notecards", tt.from, tt.to)
			if got := ansi.Strip(out); got != "Notecards" {
				t.Errorf("stripped = %q, want Notecards", got)
			}
		})
	}
}
