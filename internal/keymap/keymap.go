// Package keymap resolves key presses to commands, with user overrides.
package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds one key.Binding per command and implements help.KeyMap for
// the grid context.
type KeyMap struct {
	bindings map[string]key.Binding
	contexts map[string]string // command -> context
}

// New builds the key map from DefaultBindings. overrides replace all keys of
// a command; an unknown command is an error.
func New(overrides map[string][]string) (*KeyMap, error) {
	keys := make(map[string][]string)
	contexts := make(map[string]string)
	for _, b := range DefaultBindings() {
		keys[b.Command] = append(keys[b.Command], b.Key)
		contexts[b.Command] = b.Context
	}

	for _, cmd := range sortedKeys(overrides) {
		if _, ok := keys[cmd]; !ok {
			return nil, fmt.Errorf("keymap: unknown command %q", cmd)
		}
		override := overrides[cmd]
		if len(override) == 0 {
			return nil, fmt.Errorf("keymap: command %q has no keys", cmd)
		}
		keys[cmd] = override
	}

	seen := make(map[string]string) // context+key -> command
	for _, cmd := range sortedKeys(keys) {
		for _, k := range keys[cmd] {
			id := contexts[cmd] + "\x00" + k
			if other, dup := seen[id]; dup {
				return nil, fmt.Errorf("keymap: key %q bound to both %q and %q", k, other, cmd)
			}
			seen[id] = cmd
		}
	}

	km := &KeyMap{bindings: make(map[string]key.Binding, len(keys)), contexts: contexts}
	for cmd, ks := range keys {
		text := helpText[cmd]
		if _, ok := overrides[cmd]; ok {
			text[0] = strings.Join(ks, "/")
		}
		km.bindings[cmd] = key.NewBinding(key.WithKeys(ks...), key.WithHelp(text[0], text[1]))
	}
	return km, nil
}

// Default returns the key map without overrides.
func Default() *KeyMap {
	km, _ := New(nil)
	return km
}

// Binding returns the binding for command.
func (k *KeyMap) Binding(command string) key.Binding {
	return k.bindings[command]
}

// Keys returns the keys bound to command.
func (k *KeyMap) Keys(command string) []string {
	return k.bindings[command].Keys()
}

// Matches reports whether msg triggers command.
func (k *KeyMap) Matches(msg tea.KeyMsg, command string) bool {
	b, ok := k.bindings[command]
	return ok && key.Matches(msg, b)
}

// Resolve returns the command msg triggers in context, or "".
func (k *KeyMap) Resolve(msg tea.KeyMsg, context string) string {
	for cmd, b := range k.bindings {
		if k.contexts[cmd] == context && key.Matches(msg, b) {
			return cmd
		}
	}
	return ""
}

// ShortHelp implements help.KeyMap.
func (k *KeyMap) ShortHelp() []key.Binding {
	return k.list(CmdNew, CmdSelect, CmdMenu, CmdEdit, CmdDelete, CmdHelp, CmdQuit)
}

// FullHelp implements help.KeyMap.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.list(CmdUp, CmdDown, CmdLeft, CmdRight, CmdTop, CmdBottom),
		k.list(CmdNew, CmdSelect, CmdMenu, CmdEdit, CmdDelete),
		k.list(CmdView, CmdYank, CmdBack, CmdInsertNewline),
		k.list(CmdTheme, CmdHelp, CmdQuit),
	}
}

func (k *KeyMap) list(commands ...string) []key.Binding {
	out := make([]key.Binding, 0, len(commands))
	for _, c := range commands {
		out = append(out, k.bindings[c])
	}
	return out
}

// sortedKeys keeps error messages deterministic.
func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
