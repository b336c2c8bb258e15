package keymap

// Contexts group bindings by where they apply.
const (
	ContextGrid = "grid"
	ContextForm = "form"
)

// Command names. Config overrides are keyed by these.
const (
	CmdQuit          = "quit"
	CmdHelp          = "toggle-help"
	CmdUp            = "cursor-up"
	CmdDown          = "cursor-down"
	CmdLeft          = "cursor-left"
	CmdRight         = "cursor-right"
	CmdTop           = "cursor-top"
	CmdBottom        = "cursor-bottom"
	CmdSelect        = "select"
	CmdNew           = "new-note"
	CmdMenu          = "toggle-menu"
	CmdEdit          = "edit-note"
	CmdDelete        = "delete-note"
	CmdYank          = "yank-description"
	CmdView          = "view-note"
	CmdBack          = "back"
	CmdTheme         = "cycle-theme"
	CmdInsertNewline = "insert-newline"
)

// Binding maps one key to a command.
type Binding struct {
	Key     string
	Command string
	Context string
}

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		{Key: "q", Command: CmdQuit, Context: ContextGrid},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGrid},
		{Key: "?", Command: CmdHelp, Context: ContextGrid},
		{Key: "k", Command: CmdUp, Context: ContextGrid},
		{Key: "up", Command: CmdUp, Context: ContextGrid},
		{Key: "j", Command: CmdDown, Context: ContextGrid},
		{Key: "down", Command: CmdDown, Context: ContextGrid},
		{Key: "h", Command: CmdLeft, Context: ContextGrid},
		{Key: "left", Command: CmdLeft, Context: ContextGrid},
		{Key: "l", Command: CmdRight, Context: ContextGrid},
		{Key: "right", Command: CmdRight, Context: ContextGrid},
		{Key: "g", Command: CmdTop, Context: ContextGrid},
		{Key: "home", Command: CmdTop, Context: ContextGrid},
		{Key: "G", Command: CmdBottom, Context: ContextGrid},
		{Key: "end", Command: CmdBottom, Context: ContextGrid},
		{Key: "enter", Command: CmdSelect, Context: ContextGrid},
		{Key: "n", Command: CmdNew, Context: ContextGrid},
		{Key: "a", Command: CmdNew, Context: ContextGrid},
		{Key: "m", Command: CmdMenu, Context: ContextGrid},
		{Key: ".", Command: CmdMenu, Context: ContextGrid},
		{Key: "e", Command: CmdEdit, Context: ContextGrid},
		{Key: "d", Command: CmdDelete, Context: ContextGrid},
		{Key: "y", Command: CmdYank, Context: ContextGrid},
		{Key: "v", Command: CmdView, Context: ContextGrid},
		{Key: "esc", Command: CmdBack, Context: ContextGrid},
		{Key: "t", Command: CmdTheme, Context: ContextGrid},

		// Line breaks in the description field; enter submits the form.
		{Key: "alt+enter", Command: CmdInsertNewline, Context: ContextForm},
		{Key: "ctrl+j", Command: CmdInsertNewline, Context: ContextForm},
	}
}

// helpText describes each command for the help footer.
var helpText = map[string][2]string{
	CmdQuit:          {"q", "quit"},
	CmdHelp:          {"?", "help"},
	CmdUp:            {"↑/k", "up"},
	CmdDown:          {"↓/j", "down"},
	CmdLeft:          {"←/h", "left"},
	CmdRight:         {"→/l", "right"},
	CmdTop:           {"g", "first"},
	CmdBottom:        {"G", "last"},
	CmdSelect:        {"enter", "open"},
	CmdNew:           {"n", "new note"},
	CmdMenu:          {"m", "menu"},
	CmdEdit:          {"e", "edit"},
	CmdDelete:        {"d", "delete"},
	CmdYank:          {"y", "copy text"},
	CmdView:          {"v", "view"},
	CmdBack:          {"esc", "close menu"},
	CmdTheme:         {"t", "theme"},
	CmdInsertNewline: {"alt+enter", "new line"},
}
