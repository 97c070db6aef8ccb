package i18n

import (
	"github.com/hashicorp/go-hclog"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/logue/drop-compress-image/internal/locale"
)

// Translator renders messages for one locale.
//
// Lookup order is fixed: the translator's locale, then English, then the
// message ID itself.
type Translator struct {
	locale    locale.Locale
	localizer *goi18n.Localizer
	fallback  *goi18n.Localizer
	logger    hclog.Logger
}

// Locale returns the locale this translator renders.
func (t *Translator) Locale() locale.Locale {
	return t.locale
}

// T returns the message for id rendered with data.
func (t *Translator) T(id string, data map[string]any) string {
	return t.localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural returns the plural form of id selected by count. Count is also
// available to the template as .Count.
func (t *Translator) Plural(id string, count int, data map[string]any) string {
	merged := make(map[string]any, len(data)+1)
	for k, v := range data {
		merged[k] = v
	}
	merged["Count"] = count

	return t.localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: merged, PluralCount: count})
}

func (t *Translator) localize(cfg *goi18n.LocalizeConfig) string {
	msg, err := t.localizer.Localize(cfg)
	if err == nil {
		return msg
	}
	t.logger.Debug("message lookup failed", "locale", t.locale, "id", cfg.MessageID, "error", err)

	if t.locale != locale.Default {
		if msg, err := t.fallback.Localize(cfg); err == nil {
			return msg
		}
	}
	return cfg.MessageID
}
