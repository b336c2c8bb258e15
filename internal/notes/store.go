package notes

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// EditMode selects how an edited note is written back.
type EditMode string

const (
	// EditInPlace updates the note keyed by id and keeps its position.
	EditInPlace EditMode = "inplace"
	// EditReinsert removes the note when editing starts and appends a new one
	// on submit. Cancelling the form loses the note.
	EditReinsert EditMode = "reinsert"
)

// ParseEditMode validates a config value. Empty means EditInPlace.
func ParseEditMode(s string) (EditMode, error) {
	switch EditMode(s) {
	case "", EditInPlace:
		return EditInPlace, nil
	case EditReinsert:
		return EditReinsert, nil
	}
	return EditInPlace, fmt.Errorf("unknown edit mode %q", s)
}

// Snapshot is a read-only copy of the store handed to views.
type Snapshot struct {
	Notes []Note
	Form  FormState
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the id source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.now = c
		}
	}
}

// WithDateFormatter sets the formatter used for Note.Date.
func WithDateFormatter(f DateFormatter) Option {
	return func(s *Store) {
		if f != nil {
			s.dates = f
		}
	}
}

// WithEditMode selects in-place or reinsert editing.
func WithEditMode(m EditMode) Option {
	return func(s *Store) { s.editMode = m }
}

// WithDescriptionLimit caps description length in runes.
func WithDescriptionLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.descLimit = n
		}
	}
}

// Store owns the note collection and the form state. It is not safe for
// concurrent use; all mutations come from the UI event loop.
type Store struct {
	notes Collection
	form  FormState

	newID     IDGenerator
	now       Clock
	dates     DateFormatter
	editMode  EditMode
	descLimit int
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID:     NewID,
		now:       time.Now,
		dates:     defaultDateFormat,
		editMode:  EditInPlace,
		descLimit: DefaultDescriptionLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EditMode returns the configured edit mode.
func (s *Store) EditMode() EditMode { return s.editMode }

// SetEditMode switches edit mode for edits started afterwards. An open
// update form keeps the mode it was staged with.
func (s *Store) SetEditMode(m EditMode) { s.editMode = m }

// SetDateFormatter changes how notes created afterwards are dated.
func (s *Store) SetDateFormatter(f DateFormatter) {
	if f != nil {
		s.dates = f
	}
}

// DescriptionLimit returns the description cap in runes.
func (s *Store) DescriptionLimit() int { return s.descLimit }

// Add appends n to the collection. No validation happens here.
func (s *Store) Add(n Note) {
	s.notes.Add(n)
}

// Remove deletes the note with the given id; unknown ids are a no-op.
func (s *Store) Remove(id string) bool {
	return s.notes.Remove(id)
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (Note, bool) {
	return s.notes.Get(id)
}

// Len returns the number of notes.
func (s *Store) Len() int { return s.notes.Len() }

// Notes returns a copy of the collection in display order.
func (s *Store) Notes() []Note { return s.notes.Notes() }

// Form returns the current form state.
func (s *Store) Form() FormState { return s.form }

// Snapshot returns a copy of notes and form state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Notes: s.notes.Notes(), Form: s.form}
}

// OpenForm opens the form with an empty draft. Only FormAdd can be opened this
// way; update mode needs a note and goes through StageForEdit.
func (s *Store) OpenForm(kind FormKind) bool {
	switch kind {
	case FormAdd:
		s.form = AddForm(Draft{})
		return true
	case FormClosed:
		s.CloseForm()
		return true
	}
	return false
}

// CloseForm closes the form and discards the draft.
func (s *Store) CloseForm() {
	s.form = ClosedForm()
}

// StageForEdit loads the note's fields into an update draft and opens the form.
// In EditReinsert mode the note is removed from the collection as well.
// Unknown ids leave everything unchanged.
func (s *Store) StageForEdit(id string) bool {
	n, ok := s.notes.Get(id)
	if !ok {
		return false
	}
	if s.editMode == EditReinsert {
		s.notes.Remove(id)
	}
	s.form = UpdateForm(id, s.editMode, Draft{Title: n.Title, Description: n.Description})
	return true
}

// SetDraft replaces the staged fields of an open form. The description is
// clipped to the configured limit.
func (s *Store) SetDraft(title, description string) {
	s.form = s.form.WithDraft(Draft{
		Title:       title,
		Description: clipRunes(description, s.descLimit),
	})
}

// Submit commits the draft. Incomplete drafts and closed forms are refused and
// leave all state unchanged. On success the form is closed and the stored note
// returned.
func (s *Store) Submit() (Note, bool) {
	if !s.form.IsOpen() {
		return Note{}, false
	}
	d := s.form.Draft()
	if !d.Complete() {
		return Note{}, false
	}

	var n Note
	if s.form.Kind() == FormUpdate && s.form.EditMode() == EditInPlace && s.notes.Update(s.form.NoteID(), d.Title, d.Description) {
		n, _ = s.notes.Get(s.form.NoteID())
	} else {
		n = s.newNote(d)
		s.notes.Add(n)
	}

	s.form = ClosedForm()
	return n, true
}

// newNote builds a note with a fresh id and the current date.
func (s *Store) newNote(d Draft) Note {
	now := s.now()
	return Note{
		ID:          s.uniqueID(),
		Title:       d.Title,
		Description: d.Description,
		Date:        s.dates.FormatDate(now),
		CreatedAt:   now,
	}
}

// uniqueID draws ids until one is not already in the collection.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.notes.Index(id) < 0 {
			return id
		}
	}
}

// clipRunes truncates s to at most n runes.
func clipRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
