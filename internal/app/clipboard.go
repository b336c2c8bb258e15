package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var (
	systemClipboardWrite = clipboard.WriteAll
	osc52ClipboardWrite  = writeOSC52Clipboard
)

// writeClipboard copies text with the system clipboard and falls back to an
// OSC52 escape sequence, which works over SSH in most terminals.
func writeClipboard(text string) error {
	sysErr := systemClipboardWrite(text)
	if sysErr == nil {
		return nil
	}
	oscErr := osc52ClipboardWrite(text)
	if oscErr == nil {
		return nil
	}
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard (DISPLAY/WAYLAND_DISPLAY unset); OSC52: %w", oscErr)
	}
	return fmt.Errorf("system clipboard: %v; OSC52: %w", sysErr, oscErr)
}

func writeOSC52Clipboard(text string) error {
	if !osc52Enabled(os.Getenv) {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text, os.Getenv)
}

// writeOSC52Sequence emits the copy sequence, wrapped for tmux or screen
// when running inside one.
func writeOSC52Sequence(w io.Writer, text string, getenv func(string) string) error {
	seq := osc52.New(text)
	term := strings.ToLower(strings.TrimSpace(getenv("TERM")))
	switch {
	case getenv("TMUX") != "":
		// Plain and wrapped, tmux configs differ on passthrough
		if _, err := seq.WriteTo(w); err != nil {
			return err
		}
		_, err := seq.Tmux().WriteTo(w)
		return err
	case strings.HasPrefix(term, "screen"):
		_, err := seq.Screen().WriteTo(w)
		return err
	}
	_, err := seq.WriteTo(w)
	return err
}

func osc52Enabled(getenv func(string) string) bool {
	switch strings.ToLower(strings.TrimSpace(getenv("NOTECARDS_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	term := strings.TrimSpace(getenv("TERM"))
	return term != "" && !strings.EqualFold(term, "dumb")
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
