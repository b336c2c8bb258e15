package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/notecards/internal/modal"
)

// Modal widths shared by the app's dialogs.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
	ModalWidthLarge  = 64
)

// Confirm dialog action IDs.
const (
	ConfirmActionID = "confirm"
	CancelActionID  = "cancel"
)

// ConfirmDialog is a yes/no modal.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	Variant      modal.Variant
	Width        int
}

// NewConfirmDialog creates a dialog with default labels.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Variant:      modal.VariantDefault,
		Width:        ModalWidthMedium,
	}
}

// NewDeleteNoteDialog asks before removing the note titled title.
func NewDeleteNoteDialog(title string) *ConfirmDialog {
	d := NewConfirmDialog("Delete note?",
		fmt.Sprintf("%q will be removed. This cannot be undone.", ansi.Truncate(title, 32, "…")))
	d.ConfirmLabel = " Delete "
	d.Variant = modal.VariantDanger
	d.Width = ModalWidthSmall + 4
	return d
}

// ToModal builds the modal. Enter confirms unless Cancel is focused.
func (d *ConfirmDialog) ToModal() *modal.Modal {
	confirmOpts := []modal.BtnOption{modal.BtnPrimary()}
	if d.Variant == modal.VariantDanger {
		confirmOpts = []modal.BtnOption{modal.BtnDanger()}
	}
	return modal.New(d.Title,
		modal.WithWidth(d.Width),
		modal.WithVariant(d.Variant),
		modal.WithPrimaryAction(ConfirmActionID),
		modal.WithHints(false),
	).
		AddSection(modal.Text(d.Message)).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(d.ConfirmLabel, ConfirmActionID, confirmOpts...),
			modal.Btn(d.CancelLabel, CancelActionID),
		))
}
