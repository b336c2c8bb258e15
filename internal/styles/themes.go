package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu guards themeRegistry and currentTheme.
var themeMu sync.RWMutex

// hexColorRegex matches #RRGGBB and #RRGGBBAA.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors. JSON names double as override keys
// in the config file.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`

	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`

	CardBg           string `json:"cardBg"`
	CardTitle        string `json:"cardTitle"`
	CardText         string `json:"cardText"`
	CardBorder       string `json:"cardBorder"`
	CardBorderActive string `json:"cardBorderActive"`

	ButtonHover      string `json:"buttonHover"`
	ButtonDim        string `json:"buttonDim"`
	ToastSuccessText string `json:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText"`

	// Glamour style name for the note viewer
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme is a named palette.
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

var (
	// SkyTheme is a light palette: white cards under a sky-to-cyan header.
	SkyTheme = Theme{
		Name:        "sky",
		DisplayName: "Sky",
		Colors: ColorPalette{
			Primary:   "#38BDF8", // Sky 400
			Secondary: "#06B6D4", // Cyan 500
			Accent:    "#0EA5E9",

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",
			Info:    "#3B82F6",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			TextSubtle:    "#4B5563",

			BgPrimary:   "#0C4A6E",
			BgSecondary: "#FFFFFF",
			BgTertiary:  "#E0F2FE",

			CardBg:           "#FFFFFF",
			CardTitle:        "#172554", // Blue 950
			CardText:         "#4B5563",
			CardBorder:       "#BAE6FD",
			CardBorderActive: "#0284C7",

			ButtonHover:      "#0284C7",
			ButtonDim:        "#BAE6FD",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",

			MarkdownTheme: "light",
		},
	}

	// DarkTheme keeps the sky accents on dark surfaces.
	DarkTheme = Theme{
		Name:        "dark",
		DisplayName: "Dark",
		Colors: ColorPalette{
			Primary:   "#38BDF8",
			Secondary: "#22D3EE",
			Accent:    "#F59E0B",

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",
			Info:    "#3B82F6",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			TextSubtle:    "#4B5563",

			BgPrimary:   "#111827",
			BgSecondary: "#1F2937",
			BgTertiary:  "#374151",

			CardBg:           "#1F2937",
			CardTitle:        "#F9FAFB",
			CardText:         "#D1D5DB",
			CardBorder:       "#374151",
			CardBorderActive: "#38BDF8",

			ButtonHover:      "#0EA5E9",
			ButtonDim:        "#4B5563",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",

			MarkdownTheme: "dark",
		},
	}
)

// DefaultThemeName is applied when the config names no theme.
const DefaultThemeName = "sky"

var themeRegistry = map[string]Theme{
	"sky":  SkyTheme,
	"dark": DarkTheme,
}

var currentTheme = DefaultThemeName

// IsValidHexColor checks for #RRGGBB or #RRGGBBAA.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme reports whether name is registered.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns the named theme, or the sky theme if unknown.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return SkyTheme
}

// GetCurrentThemeName returns the name of the applied theme.
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme applies a theme by name.
func ApplyTheme(name string) {
	ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides applies a theme with per-color overrides from
// config. Unknown keys and invalid colors are ignored.
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)
	for key, value := range overrides {
		applyOverride(&theme.Colors, key, value)
	}
	applyColors(theme.Colors)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

func applyOverride(p *ColorPalette, key, value string) {
	if key == "markdownTheme" {
		p.MarkdownTheme = value
		return
	}
	if !IsValidHexColor(value) {
		return
	}
	fields := map[string]*string{
		"primary":          &p.Primary,
		"secondary":        &p.Secondary,
		"accent":           &p.Accent,
		"success":          &p.Success,
		"warning":          &p.Warning,
		"error":            &p.Error,
		"info":             &p.Info,
		"textPrimary":      &p.TextPrimary,
		"textSecondary":    &p.TextSecondary,
		"textMuted":        &p.TextMuted,
		"textSubtle":       &p.TextSubtle,
		"bgPrimary":        &p.BgPrimary,
		"bgSecondary":      &p.BgSecondary,
		"bgTertiary":       &p.BgTertiary,
		"cardBg":           &p.CardBg,
		"cardTitle":        &p.CardTitle,
		"cardText":         &p.CardText,
		"cardBorder":       &p.CardBorder,
		"cardBorderActive": &p.CardBorderActive,
		"buttonHover":      &p.ButtonHover,
		"buttonDim":        &p.ButtonDim,
		"toastSuccessText": &p.ToastSuccessText,
		"toastErrorText":   &p.ToastErrorText,
	}
	if f, ok := fields[key]; ok {
		*f = value
	}
}

func applyColors(c ColorPalette) {
	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Accent = lipgloss.Color(c.Accent)

	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	Info = lipgloss.Color(c.Info)

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	TextSubtle = lipgloss.Color(c.TextSubtle)

	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)

	CardBg = lipgloss.Color(c.CardBg)
	CardTitleColor = lipgloss.Color(c.CardTitle)
	CardTextColor = lipgloss.Color(c.CardText)
	CardBorder = lipgloss.Color(c.CardBorder)
	CardBorderActive = lipgloss.Color(c.CardBorderActive)

	ButtonHoverColor = lipgloss.Color(c.ButtonHover)
	ButtonDimColor = lipgloss.Color(c.ButtonDim)
	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	CurrentMarkdownTheme = c.MarkdownTheme

	rebuildStyles()
}
