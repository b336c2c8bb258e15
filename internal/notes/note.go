// Package notes holds the note collection and the form state that edits it.
package notes

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDescriptionLimit is the maximum description length in runes.
const DefaultDescriptionLimit = 200

// Note represents a single note card.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`       // formatted once, at creation
	CreatedAt   time.Time `json:"created_at"` // not displayed
}

// IDGenerator returns a new identifier that is unique for the process lifetime.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// DateFormatter renders a creation time for display.
type DateFormatter interface {
	FormatDate(t time.Time) string
}

// DateFormatterFunc adapts a plain function to DateFormatter.
type DateFormatterFunc func(time.Time) string

// FormatDate calls f(t).
func (f DateFormatterFunc) FormatDate(t time.Time) string { return f(t) }

// NewID generates a random UUID v4 string.
func NewID() string {
	return uuid.NewString()
}

// defaultDateFormat is used when no locale formatter is configured.
var defaultDateFormat = DateFormatterFunc(func(t time.Time) string {
	return t.Format("Jan 2, 2006")
})
