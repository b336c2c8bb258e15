// Package app is the root Bubble Tea model: it owns the note store and
// routes input to the grid and the modals drawn over it.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notecards/internal/config"
	"github.com/marcus/notecards/internal/keymap"
	"github.com/marcus/notecards/internal/locale"
	"github.com/marcus/notecards/internal/mouse"
	"github.com/marcus/notecards/internal/msg"
	"github.com/marcus/notecards/internal/notes"
	"github.com/marcus/notecards/internal/styles"
	"github.com/marcus/notecards/internal/ui"
)

// ModalKind identifies an app-level modal with explicit priority ordering.
// Lower values = higher priority (checked first for rendering and input routing).
type ModalKind int

const (
	ModalNone          ModalKind = iota // No modal open
	ModalConfirmDelete                  // Delete confirmation (highest priority)
	ModalForm                           // Add/update note form
	ModalViewer                         // Read-only note view
)

// activeModal returns the highest-priority open modal.
func (m *Model) activeModal() ModalKind {
	switch {
	case m.confirm != nil:
		return ModalConfirmDelete
	case m.form != nil && m.store.Form().IsOpen():
		return ModalForm
	case m.viewer != nil:
		return ModalViewer
	default:
		return ModalNone
	}
}

// cardCacheSize bounds the rendered-card cache.
const cardCacheSize = 256

// Model is the root Bubble Tea model.
type Model struct {
	cfg        *config.Config
	configPath string
	version    string
	logger     *slog.Logger
	watcher    *config.Watcher
	writeClip  func(string) error
	locale     string // --locale, wins over config on reload

	keymap *keymap.KeyMap
	help   help.Model

	// Notes and the grid that shows them
	store     *notes.Store
	grid      *ui.Grid
	cards     *ui.CardCache
	gridMouse *mouse.Handler
	cursor    int             // 0 is the add tile, note i is at i+1
	menus     map[string]bool // open card menus by note ID
	hoverID   string
	hoverNote string

	// Modals
	form    *noteForm
	confirm *deleteConfirm
	viewer  *noteViewer

	// UI state
	width, height int
	ready         bool
	showHelp      bool
	showFooter    bool

	// Status/toast messages
	toast    msg.ToastMsg
	toastSeq int

	startupCmds []tea.Cmd
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConfigPath records where the config came from, so theme changes can
// be saved back.
func WithConfigPath(path string) Option {
	return func(m *Model) { m.configPath = path }
}

// WithWatcher delivers config reloads from w.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithVersion sets the version shown in the header.
func WithVersion(v string) Option {
	return func(m *Model) { m.version = v }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.writeClip = write
		}
	}
}

// WithLocaleOverride pins the date locale across config reloads.
func WithLocaleOverride(tag string) Option {
	return func(m *Model) { m.locale = tag }
}

// WithStoreOptions passes extra options to the note store, after the ones
// derived from config.
func WithStoreOptions(opts ...notes.Option) Option {
	return func(m *Model) {
		m.store = newStore(m.cfg, opts...)
	}
}

// New creates the root model from cfg. A nil cfg uses defaults.
func New(cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	cards := ui.NewCardCache(cardCacheSize)
	m := Model{
		cfg:        cfg,
		logger:     slog.Default(),
		writeClip:  writeClipboard,
		store:      newStore(cfg),
		grid:       ui.NewGrid(cards),
		cards:      cards,
		gridMouse:  mouse.NewHandler(),
		menus:      make(map[string]bool),
		showFooter: cfg.UI.ShowFooter,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.locale != "" {
		m.applyLocale(cfg.Locale)
	}

	km, err := keymap.New(cfg.Keymap.Overrides)
	if err != nil {
		m.logger.Warn("invalid keymap overrides, using defaults", "err", err)
		m.startupCmds = append(m.startupCmds, msg.ShowError("Keymap: "+err.Error()))
		km = keymap.Default()
	}
	m.keymap = km

	styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)
	m.help = newHelp()
	return m
}

func newStore(cfg *config.Config, extra ...notes.Option) *notes.Store {
	opts := []notes.Option{
		notes.WithEditMode(cfg.EditMode()),
		notes.WithDescriptionLimit(cfg.Notes.DescriptionLimit),
		notes.WithDateFormatter(locale.FromEnv(cfg.Locale)),
	}
	return notes.NewStore(append(opts, extra...)...)
}

func newHelp() help.Model {
	h := help.New()
	key := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	desc := lipgloss.NewStyle().Foreground(styles.TextMuted)
	sep := lipgloss.NewStyle().Foreground(styles.TextSubtle)
	h.Styles.ShortKey, h.Styles.FullKey = key, key
	h.Styles.ShortDesc, h.Styles.FullDesc = desc, desc
	h.Styles.ShortSeparator, h.Styles.FullSeparator = sep, sep
	return h
}

// Init starts the config watcher and shows startup warnings.
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{}, m.startupCmds...)
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Store exposes the note store.
func (m Model) Store() *notes.Store { return m.store }

// Cursor returns the grid cursor; 0 is the add tile.
func (m Model) Cursor() int { return m.cursor }

// MenuOpen reports whether the card menu of note id is shown.
func (m Model) MenuOpen(id string) bool { return m.menus[id] }

// Toast returns the current status message, if any.
func (m Model) Toast() msg.ToastMsg { return m.toast }

// setToast shows t and schedules its expiry.
func (m *Model) setToast(t msg.ToastMsg) tea.Cmd {
	if t.Duration <= 0 {
		t.Duration = msg.ToastShort
	}
	m.toastSeq++
	m.toast = t
	if m.ready {
		m.layout() // the footer may have grown
	}
	return msg.ExpireToast(m.toastSeq, t.Duration)
}

func (m *Model) toastInfo(text string) tea.Cmd {
	return m.setToast(msg.ToastMsg{Message: text, Duration: msg.ToastShort})
}

func (m *Model) toastError(text string) tea.Cmd {
	return m.setToast(msg.ToastMsg{Message: text, Duration: msg.ToastLong, IsError: true})
}

// focusedNote returns the note under the cursor.
func (m *Model) focusedNote() (notes.Note, bool) {
	ns := m.store.Notes()
	if m.cursor < 1 || m.cursor > len(ns) {
		return notes.Note{}, false
	}
	return ns[m.cursor-1], true
}

// itemCount is the number of grid cells, including the add tile.
func (m *Model) itemCount() int { return m.store.Len() + 1 }

// clampCursor keeps the cursor on an existing cell after removals.
func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, m.itemCount()-1))
	m.grid.EnsureVisible(m.cursor, m.itemCount())
}

// focusNote moves the cursor to the note with id.
func (m *Model) focusNote(id string) {
	for i, n := range m.store.Notes() {
		if n.ID == id {
			m.cursor = i + 1
			m.grid.EnsureVisible(m.cursor, m.itemCount())
			return
		}
	}
}

// applyConfig swaps in a reloaded config.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	m.cfg = cfg
	m.showFooter = cfg.UI.ShowFooter
	m.store.SetEditMode(cfg.EditMode())
	m.applyLocale(cfg.Locale)
	m.applyTheme(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)

	km, err := keymap.New(cfg.Keymap.Overrides)
	if err != nil {
		m.logger.Warn("invalid keymap overrides, keeping current", "err", err)
		return m.toastError("Keymap: " + err.Error())
	}
	m.keymap = km
	m.layout()
	return nil
}

// applyLocale sets the date locale for notes created from now on. Existing
// notes keep the date they were created with.
func (m *Model) applyLocale(tag string) {
	if m.locale != "" {
		tag = m.locale
	}
	f := locale.FromEnv(tag)
	m.store.SetDateFormatter(f)
	m.logger.Debug("date locale", "tag", f.Tag().String())
}

// applyTheme switches palettes and drops everything rendered with the old one.
func (m *Model) applyTheme(name string, overrides map[string]string) {
	styles.ApplyThemeWithOverrides(name, overrides)
	m.cards.Reset()
	m.help = newHelp()
	m.help.ShowAll = m.showHelp
	if m.form != nil {
		m.form.restyle()
	}
	if m.viewer != nil {
		m.viewer.invalidate()
	}
}
