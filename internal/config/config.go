package config

import (
	"log/slog"

	"github.com/marcus/notecards/internal/notes"
	"github.com/marcus/notecards/internal/styles"
)

// Config is the root configuration structure.
type Config struct {
	Notes   NotesConfig  `json:"notes" toml:"notes" yaml:"notes"`
	UI      UIConfig     `json:"ui" toml:"ui" yaml:"ui"`
	Keymap  KeymapConfig `json:"keymap" toml:"keymap" yaml:"keymap"`
	Locale  string       `json:"locale,omitempty" toml:"locale,omitempty" yaml:"locale,omitempty"`    // BCP 47 tag; empty uses the environment
	LogFile string       `json:"logFile,omitempty" toml:"logFile,omitempty" yaml:"logFile,omitempty"` // empty discards logs
}

// NotesConfig configures note editing.
type NotesConfig struct {
	// EditMode is "inplace" (default) or "reinsert". Reinsert removes a note
	// when it is staged for edit and appends a fresh one on submit.
	EditMode         string `json:"editMode" toml:"editMode" yaml:"editMode"`
	DescriptionLimit int    `json:"descriptionLimit" toml:"descriptionLimit" yaml:"descriptionLimit"`
}

// KeymapConfig holds key binding overrides, command -> keys.
type KeymapConfig struct {
	Overrides map[string][]string `json:"overrides" toml:"overrides" yaml:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter    bool        `json:"showFooter" toml:"showFooter" yaml:"showFooter"`
	ConfirmDelete bool        `json:"confirmDelete" toml:"confirmDelete" yaml:"confirmDelete"`
	Theme         ThemeConfig `json:"theme" toml:"theme" yaml:"theme"`
}

// ThemeConfig configures the color theme.
type ThemeConfig struct {
	Name      string            `json:"name" toml:"name" yaml:"name"`
	Overrides map[string]string `json:"overrides,omitempty" toml:"overrides,omitempty" yaml:"overrides,omitempty"` // palette key -> hex
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Notes: NotesConfig{
			EditMode:         string(notes.EditInPlace),
			DescriptionLimit: notes.DefaultDescriptionLimit,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string][]string),
		},
		UI: UIConfig{
			ShowFooter: true,
			Theme: ThemeConfig{
				Name:      styles.DefaultThemeName,
				Overrides: make(map[string]string),
			},
		},
	}
}

// Validate normalizes out-of-range values back to defaults.
func (c *Config) Validate() error {
	if _, err := notes.ParseEditMode(c.Notes.EditMode); err != nil {
		slog.Warn("invalid edit mode, using default", "editMode", c.Notes.EditMode)
		c.Notes.EditMode = string(notes.EditInPlace)
	}
	if c.Notes.DescriptionLimit <= 0 {
		c.Notes.DescriptionLimit = notes.DefaultDescriptionLimit
	}
	if !styles.IsValidTheme(c.UI.Theme.Name) {
		slog.Warn("unknown theme, using default", "theme", c.UI.Theme.Name)
		c.UI.Theme.Name = styles.DefaultThemeName
	}
	for k, v := range c.UI.Theme.Overrides {
		if k != "markdownTheme" && !styles.IsValidHexColor(v) {
			slog.Warn("ignoring invalid color override", "key", k, "value", v)
			delete(c.UI.Theme.Overrides, k)
		}
	}
	return nil
}

// EditMode returns the parsed edit mode.
func (c *Config) EditMode() notes.EditMode {
	m, err := notes.ParseEditMode(c.Notes.EditMode)
	if err != nil {
		return notes.EditInPlace
	}
	return m
}
