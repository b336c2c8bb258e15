package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSave_PreservesUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Write a config file that includes keys Save does not manage
	initial := []byte(`{
  "templates": [
    {"name": "Standup", "body": "yesterday / today"}
  ],
  "customKey": "should survive"
}`)
	if err := os.WriteFile(path, initial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal saved config: %v", err)
	}

	if _, ok := raw["templates"]; !ok {
		t.Error("SaveTo() deleted 'templates' key from config.json")
	}
	if _, ok := raw["customKey"]; !ok {
		t.Error("SaveTo() deleted 'customKey' from config.json")
	}

	var templates []map[string]any
	if err := json.Unmarshal(raw["templates"], &templates); err != nil {
		t.Fatalf("unmarshal templates: %v", err)
	}
	if len(templates) != 1 || templates[0]["name"] != "Standup" {
		t.Errorf("templates not intact: %v", templates)
	}

	// Verify managed keys are also present
	for _, key := range []string{"notes", "ui", "keymap"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("SaveTo() did not write %q key", key)
		}
	}
}

func TestSave_WorksWithNoExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	if err := SaveTo(path, Default()); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after save: %v", err)
	}
	if cfg.Notes.DescriptionLimit != 200 || cfg.UI.Theme.Name != "sky" {
		t.Errorf("round trip lost values: %+v", cfg)
	}
}

func TestSaveTheme(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		initial string
	}{
		{"json", "config.json", `{"notes": {"editMode": "reinsert"}, "ui": {"theme": {"name": "sky", "overrides": {"primary": "#123456"}}}}`},
		{"toml", "config.toml", "[notes]\neditMode = \"reinsert\"\ndescriptionLimit = 150\n\n[ui.theme]\nname = \"sky\"\n"},
		{"yaml", "config.yml", "notes:\n  editMode: reinsert\nui:\n  theme:\n    name: sky\n    overrides:\n      primary: \"#123456\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.initial), 0644); err != nil {
				t.Fatal(err)
			}

			if err := SaveTheme(path, "dark"); err != nil {
				t.Fatalf("SaveTheme failed: %v", err)
			}

			cfg, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom: %v", err)
			}
			if cfg.UI.Theme.Name != "dark" {
				t.Errorf("theme = %q, want dark", cfg.UI.Theme.Name)
			}
			if len(cfg.UI.Theme.Overrides) != 0 {
				t.Errorf("overrides should be cleared, got %v", cfg.UI.Theme.Overrides)
			}
			if cfg.Notes.EditMode != "reinsert" {
				t.Errorf("unrelated setting lost: editMode = %q", cfg.Notes.EditMode)
			}
		})
	}
}
