package modal

// Variant selects the accent color of a modal.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// Layout constants.
const (
	DefaultWidth  = 50
	MinModalWidth = 30
	ModalPadding  = 6 // border(2) + horizontal padding(4)
)

// closeActionID is the hit region of the title-bar close glyph.
const closeActionID = "modal-close"

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the preferred modal width. It is clamped to the screen.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the modal accent.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints toggles the keyboard hint line under the content.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithHintText replaces the default hint line text and enables it.
func WithHintText(text string) Option {
	return func(m *Modal) {
		m.hintText = text
		m.showHints = text != ""
	}
}

// WithPrimaryAction makes Enter return action when the focused section
// does not produce one.
func WithPrimaryAction(action string) Option {
	return func(m *Modal) { m.primaryAction = action }
}

// WithCloseOnBackdropClick controls whether clicks outside the modal cancel it.
func WithCloseOnBackdropClick(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}

// WithCloseButton renders a clickable × on the title line. Clicking it
// returns "cancel".
func WithCloseButton() Option {
	return func(m *Modal) { m.closeButton = true }
}
