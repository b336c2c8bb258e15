package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	configDir  = ".config/notecards"
	configFile = "config.json"
)

// rawConfig is the unmarshaling intermediary. Pointer fields tell "unset"
// apart from zero values so defaults survive partial files.
type rawConfig struct {
	Notes   rawNotesConfig `json:"notes" toml:"notes" yaml:"notes"`
	UI      rawUIConfig    `json:"ui" toml:"ui" yaml:"ui"`
	Keymap  KeymapConfig   `json:"keymap" toml:"keymap" yaml:"keymap"`
	Locale  *string        `json:"locale" toml:"locale" yaml:"locale"`
	LogFile *string        `json:"logFile" toml:"logFile" yaml:"logFile"`
}

type rawNotesConfig struct {
	EditMode         *string `json:"editMode" toml:"editMode" yaml:"editMode"`
	DescriptionLimit *int    `json:"descriptionLimit" toml:"descriptionLimit" yaml:"descriptionLimit"`
}

type rawUIConfig struct {
	ShowFooter    *bool       `json:"showFooter" toml:"showFooter" yaml:"showFooter"`
	ConfirmDelete *bool       `json:"confirmDelete" toml:"confirmDelete" yaml:"confirmDelete"`
	Theme         ThemeConfig `json:"theme" toml:"theme" yaml:"theme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notecards/config.json. The extension picks
// the format: .toml, .yaml/.yml, anything else is JSON.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // no home directory
		}
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw rawConfig
	if err := unmarshal(path, data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	mergeConfig(cfg, &raw)
	cfg.LogFile = ExpandPath(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type format int

const (
	formatJSON format = iota
	formatTOML
	formatYAML
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatJSON
}

func unmarshal(path string, data []byte, v any) error {
	switch formatOf(path) {
	case formatTOML:
		return toml.Unmarshal(data, v)
	case formatYAML:
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func marshal(path string, v any) ([]byte, error) {
	switch formatOf(path) {
	case formatTOML:
		return toml.Marshal(v)
	case formatYAML:
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Notes
	if raw.Notes.EditMode != nil {
		cfg.Notes.EditMode = *raw.Notes.EditMode
	}
	if raw.Notes.DescriptionLimit != nil {
		cfg.Notes.DescriptionLimit = *raw.Notes.DescriptionLimit
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.ConfirmDelete != nil {
		cfg.UI.ConfirmDelete = *raw.UI.ConfirmDelete
	}
	if raw.UI.Theme.Name != "" {
		cfg.UI.Theme.Name = raw.UI.Theme.Name
	}
	for k, v := range raw.UI.Theme.Overrides {
		cfg.UI.Theme.Overrides[k] = v
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}

	if raw.Locale != nil {
		cfg.Locale = *raw.Locale
	}
	if raw.LogFile != nil {
		cfg.LogFile = *raw.LogFile
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the default config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
