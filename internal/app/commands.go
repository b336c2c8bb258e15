package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notecards/internal/config"
	"github.com/marcus/notecards/internal/msg"
	"github.com/marcus/notecards/internal/styles"
)

// waitForReload blocks until the watcher reports a config change. A closed
// watcher yields nil, which ends the loop.
func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		reloaded, ok := <-w.Events()
		if !ok {
			return nil
		}
		return reloaded
	}
}

// yank copies the description of note id to the system clipboard.
func (m *Model) yank(id string) tea.Cmd {
	n, ok := m.store.Get(id)
	if !ok {
		return nil
	}
	if err := m.writeClip(n.Description); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		return m.toastError("Copy failed: " + err.Error())
	}
	return m.toastInfo("Copied note text")
}

// cycleTheme switches to the next theme and saves the choice.
func (m *Model) cycleTheme() tea.Cmd {
	names := styles.ListThemes()
	next := names[0]
	if i := slices.Index(names, styles.GetCurrentThemeName()); i >= 0 {
		next = names[(i+1)%len(names)]
	}

	m.cfg.UI.Theme.Name = next
	m.cfg.UI.Theme.Overrides = nil
	m.applyTheme(next, nil)
	m.logger.Info("theme changed", "theme", next)

	return tea.Batch(m.toastInfo("Theme: "+next), saveTheme(m.configPath, next))
}

// saveTheme writes the theme name to the config file at path.
func saveTheme(path, name string) tea.Cmd {
	return func() tea.Msg {
		if err := config.SaveTheme(path, name); err != nil {
			return msg.ToastMsg{Message: "Theme not saved: " + err.Error(), Duration: msg.ToastLong, IsError: true}
		}
		return nil
	}
}
