package notes

// Collection is the ordered list of active notes. Insertion order is display order.
type Collection struct {
	notes []Note
}

// Add appends n to the end of the collection.
func (c *Collection) Add(n Note) {
	c.notes = append(c.notes, n)
}

// Remove deletes the note with the given id. Unknown ids are a no-op.
func (c *Collection) Remove(id string) bool {
	idx := c.Index(id)
	if idx < 0 {
		return false
	}
	c.notes = append(c.notes[:idx], c.notes[idx+1:]...)
	return true
}

// Update replaces the title and description of the note with the given id,
// keeping its id, date and position.
func (c *Collection) Update(id, title, description string) bool {
	idx := c.Index(id)
	if idx < 0 {
		return false
	}
	c.notes[idx].Title = title
	c.notes[idx].Description = description
	return true
}

// Get returns the note with the given id.
func (c *Collection) Get(id string) (Note, bool) {
	idx := c.Index(id)
	if idx < 0 {
		return Note{}, false
	}
	return c.notes[idx], true
}

// Index returns the position of the note with the given id, or -1.
func (c *Collection) Index(id string) int {
	for i := range c.notes {
		if c.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of notes.
func (c *Collection) Len() int { return len(c.notes) }

// Notes returns a copy of the notes in display order.
func (c *Collection) Notes() []Note {
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}
