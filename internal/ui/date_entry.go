package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/numerals"
)

// dateSeparatorRune mirrors config.DateSeparator for rune comparison.
var dateSeparatorRune = []rune(config.DateSeparator)[0]

// DateEntry is a custom Entry widget that only accepts date input runes:
// Persian digits, Latin digits and the slash separator. It embeds
// widget.Entry to inherit all standard behavior.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events. It filters characters to the two
// accepted digit scripts plus the separator; everything else is dropped.
func (e *DateEntry) TypedRune(r rune) {
	if numerals.IsDigitRune(r) || r == dateSeparatorRune {
		e.Entry.TypedRune(r)
	}
	// Note: Shortcuts like Ctrl+V (Paste) are handled by TypedShortcut/TypedKey,
	// so arbitrary text can still be pasted. The validator catches that on submit.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
