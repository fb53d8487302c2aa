package ui

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-shamsi/internal/config"
	"github.com/tartampluch/go-shamsi/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Messages owns the translation bundle and resolves display strings for the
// picker: button labels, the window title, and the localized text behind
// each validation reason tag.
type Messages struct {
	Bundle      *i18n.Bundle
	Localizer   *i18n.Localizer
	Preferences fyne.Preferences // optional; language preference read from here
	Supported   []string

	lang string // explicit override, wins over the preference
}

// NewMessages initializes the translation bundle from the embedded catalogs
// and detects available languages. prefs may be nil for shells without Fyne
// preferences; the default language applies until SetLanguage is called.
func NewMessages(prefs fyne.Preferences) *Messages {
	m := &Messages{Preferences: prefs}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		m.Bundle = bundle
		m.UpdateLocalizer()
		return m
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		trimmed := strings.TrimPrefix(name, "active.")
		langCode := strings.TrimSuffix(trimmed, ".json")

		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		detectedLangs = append(detectedLangs, langCode)

		path := "locales/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyLang, langCode,
				config.LogKeyFile, name,
			)
		}
	}

	m.Supported = detectedLangs
	m.Bundle = bundle
	m.UpdateLocalizer()
	return m
}

// SetLanguage forces a language regardless of the stored preference.
func (m *Messages) SetLanguage(lang string) {
	m.lang = lang
	m.UpdateLocalizer()
}

// UpdateLocalizer refreshes the translator from the override or the user's
// language preference.
func (m *Messages) UpdateLocalizer() {
	lang := m.lang
	if lang == "" && m.Preferences != nil {
		lang = m.Preferences.String(config.PrefLanguage)
	}
	if lang == "" {
		lang = config.DefaultLanguage
	}
	m.Localizer = i18n.NewLocalizer(m.Bundle, lang)
}

// GetMsg is a helper to translate a key safely.
func (m *Messages) GetMsg(key string) string {
	if m.Localizer == nil {
		return key
	}
	msg, err := m.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// reasonKeys maps each validation reason tag to its translation key and the
// English fallback used when the catalog lookup fails.
var reasonKeys = map[engine.Reason]struct {
	key      string
	fallback string
}{
	engine.ReasonMalformedText:      {config.TKeyErrMalformed, config.FallbackErrMalformed},
	engine.ReasonInvalidMonth:       {config.TKeyErrMonth, config.FallbackErrMonth},
	engine.ReasonNonExistentDay:     {config.TKeyErrDay, config.FallbackErrDay},
	engine.ReasonOutOfRange:         {config.TKeyErrRange, config.FallbackErrRange},
	engine.ReasonUnsupportedNumeral: {config.TKeyErrNumeral, config.FallbackErrNumeral},
}

// ReasonMessage returns the localized text for a rejection reason, or an
// empty string for ReasonNone and unknown tags.
func (m *Messages) ReasonMessage(r engine.Reason) string {
	entry, ok := reasonKeys[r]
	if !ok {
		return ""
	}
	if msg := m.GetMsg(entry.key); msg != entry.key {
		return msg
	}
	return entry.fallback
}
