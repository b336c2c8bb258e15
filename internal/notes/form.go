package notes

// FormKind identifies which state the note form is in.
type FormKind int

const (
	FormClosed FormKind = iota
	FormAdd
	FormUpdate
)

// String returns the kind name used in logs.
func (k FormKind) String() string {
	switch k {
	case FormAdd:
		return "add"
	case FormUpdate:
		return "update"
	default:
		return "closed"
	}
}

// Heading returns the form title bar label.
func (k FormKind) Heading() string {
	if k == FormUpdate {
		return "Update a Note"
	}
	return "Add a new Note"
}

// SubmitLabel returns the submit button label.
func (k FormKind) SubmitLabel() string {
	if k == FormUpdate {
		return "Update Note"
	}
	return "Add Note"
}

// Draft holds the uncommitted title and description of an open form.
type Draft struct {
	Title       string
	Description string
}

// Complete reports whether both fields are non-empty. Whitespace counts as content.
func (d Draft) Complete() bool {
	return d.Title != "" && d.Description != ""
}

// FormState is Closed, Add{Draft} or Update{NoteID, Mode, Draft}.
// The zero value is Closed.
type FormState struct {
	kind   FormKind
	noteID string
	mode   EditMode // update only; fixed when the edit starts
	draft  Draft
}

// ClosedForm returns the closed state.
func ClosedForm() FormState { return FormState{} }

// AddForm returns an add-mode state holding d.
func AddForm(d Draft) FormState {
	return FormState{kind: FormAdd, draft: d}
}

// UpdateForm returns an update-mode state for the note with the given id,
// to be written back with mode.
func UpdateForm(noteID string, mode EditMode, d Draft) FormState {
	return FormState{kind: FormUpdate, noteID: noteID, mode: mode, draft: d}
}

// Kind returns the form kind.
func (f FormState) Kind() FormKind { return f.kind }

// IsOpen reports whether the form is showing.
func (f FormState) IsOpen() bool { return f.kind != FormClosed }

// NoteID returns the id of the note being updated, empty otherwise.
func (f FormState) NoteID() string { return f.noteID }

// EditMode returns the mode an update was staged with, empty otherwise.
func (f FormState) EditMode() EditMode { return f.mode }

// Draft returns the staged fields. Closed forms have an empty draft.
func (f FormState) Draft() Draft { return f.draft }

// WithDraft returns a copy of f holding d. Closed forms stay closed and empty.
func (f FormState) WithDraft(d Draft) FormState {
	if f.kind == FormClosed {
		return f
	}
	f.draft = d
	return f
}
