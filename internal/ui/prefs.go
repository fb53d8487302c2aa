package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/engine"
)

// LastSelectedStore persists the confirmed date across runs on Fyne
// preferences. It complements picker.Options.RememberLast, which only
// remembers within a process: load the stored date into Options.DefaultDate
// at startup and save from the OnSelect callback.
type LastSelectedStore struct {
	Preferences fyne.Preferences
}

// NewLastSelectedStore wraps the given preferences.
func NewLastSelectedStore(prefs fyne.Preferences) *LastSelectedStore {
	return &LastSelectedStore{Preferences: prefs}
}

// Save stores d in the canonical text form.
func (s *LastSelectedStore) Save(d engine.JalaliDate) {
	if d.IsZero() {
		return
	}
	s.Preferences.SetString(config.PrefLastSelected, d.String())
}

// Load returns the stored date. ok is false when nothing is stored or the
// stored text no longer parses as a valid date.
func (s *LastSelectedStore) Load() (d engine.JalaliDate, ok bool) {
	raw := s.Preferences.String(config.PrefLastSelected)
	if raw == "" {
		return engine.JalaliDate{}, false
	}

	var year, month, day int
	if _, err := fmt.Sscanf(raw, config.FormatDate, &year, &month, &day); err != nil {
		slog.Warn(config.MsgPrefCorrupt,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyText, raw,
			config.LogKeyError, err,
		)
		return engine.JalaliDate{}, false
	}

	date, err := engine.NewJalaliDate(year, month, day)
	if err != nil {
		slog.Warn(config.MsgPrefCorrupt,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyText, raw,
			config.LogKeyError, err,
		)
		return engine.JalaliDate{}, false
	}
	return date, true
}

// Clear removes the stored date.
func (s *LastSelectedStore) Clear() {
	s.Preferences.RemoveValue(config.PrefLastSelected)
}
