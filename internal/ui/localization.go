package ui

import (
	"sync"

	"github.com/logue/drop-compress-image/internal/i18n"
	"github.com/logue/drop-compress-image/internal/locale"
)

// Localization tracks the language preference of the window and renders UI
// text through the message bundle. It also renders notification text, so a
// language change reaches the notification gateway too.
type Localization struct {
	bundle *i18n.Bundle

	mu         sync.RWMutex
	preference string
	translator *i18n.Translator
}

// NewLocalization creates a localization that follows the system locale
func NewLocalization(bundle *i18n.Bundle) *Localization {
	l := &Localization{bundle: bundle}
	l.SetLanguage(locale.SystemPreference)
	return l
}

// SetLanguage sets the language preference, a locale code or "system"
func (l *Localization) SetLanguage(preference string) {
	if preference == "" {
		preference = locale.SystemPreference
	}
	translator := l.bundle.Translator(locale.ResolvePreference(preference))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.preference = preference
	l.translator = translator
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	return l.Translator().T(key, nil)
}

// T renders a message of the current language
func (l *Localization) T(id string, data map[string]any) string {
	return l.Translator().T(id, data)
}

// Plural renders a count dependent message of the current language
func (l *Localization) Plural(id string, count int, data map[string]any) string {
	return l.Translator().Plural(id, count, data)
}

// Translator returns the translator of the resolved locale
func (l *Localization) Translator() *i18n.Translator {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.translator
}

// Locale returns the resolved locale
func (l *Localization) Locale() locale.Locale {
	return l.Translator().Locale()
}

// GetCurrentLanguage returns the language preference, which may be "system"
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.preference
}

// LanguageOption is one entry of the language menu
type LanguageOption struct {
	Preference string
	Label      string
}

// GetAvailableLanguages returns the language menu entries, system default
// first and the rest in catalog order
func (l *Localization) GetAvailableLanguages() []LanguageOption {
	all := locale.All()
	options := make([]LanguageOption, 0, len(all)+1)
	options = append(options, LanguageOption{
		Preference: locale.SystemPreference,
		Label:      l.GetText(i18n.KeyMenuSystemDefault),
	})

	for _, info := range all {
		options = append(options, LanguageOption{Preference: string(info.Code), Label: info.Label})
	}
	return options
}
