package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Save writes the config to the default location.
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return errors.New("save config: no home directory")
	}
	return SaveTo(path, cfg)
}

// SaveTo writes cfg to path in the format its extension names. Top-level
// keys already in the file that Config does not manage are kept.
func SaveTo(path string, cfg *Config) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	doc := map[string]any{}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := unmarshal(path, existing, &doc); err != nil {
			return fmt.Errorf("save config: existing %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("save config: %w", err)
	}

	managed, err := toDocument(path, cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	for k, v := range managed {
		doc[k] = v
	}

	data, err := marshal(path, doc)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// toDocument round-trips cfg through the target format so numbers keep the
// types that format decodes them as.
func toDocument(path string, cfg *Config) (map[string]any, error) {
	data, err := marshal(path, cfg)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := unmarshal(path, data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveTheme updates only the theme name in the config at path. Color
// overrides belong to the previous theme and are dropped.
func SaveTheme(path, themeName string) error {
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.UI.Theme.Name = themeName
	cfg.UI.Theme.Overrides = nil
	return SaveTo(path, cfg)
}
