// Package msg holds messages shared between the app and its helpers.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Toast durations.
const (
	ToastShort = 2 * time.Second
	ToastLong  = 5 * time.Second
)

// ToastMsg displays a temporary message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // true for error toasts (red), false for success (green)
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
		}
	}
}

// ShowError returns a command to show an error toast.
func ShowError(message string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: ToastLong,
			IsError:  true,
		}
	}
}

// ToastExpiredMsg clears the toast identified by Seq if it is still shown.
type ToastExpiredMsg struct {
	Seq int
}

// ExpireToast fires a ToastExpiredMsg after d.
func ExpireToast(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}
