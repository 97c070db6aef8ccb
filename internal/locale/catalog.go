package locale

import "golang.org/x/text/language"

// Locale is one of the UI locales the application ships messages for.
type Locale string

// Supported locale codes
const (
	English            Locale = "en"
	French             Locale = "fr"
	Japanese           Locale = "ja"
	Korean             Locale = "ko"
	SimplifiedChinese  Locale = "zhHans"
	TraditionalChinese Locale = "zhHant"
)

// Default is the locale used when a signal cannot be matched.
const Default = English

// Info describes a supported locale.
type Info struct {
	Code     Locale
	Label    string // display name shown in language menus
	ISO      string // hreflang / document language tag
	OGLocale string // open graph locale (underscore form)
	Tag      language.Tag
}

// catalog is ordered the way language menus list locales.
var catalog = []Info{
	{Code: English, Label: "🇺🇸 English", ISO: "en-US", OGLocale: "en_US", Tag: language.English},
	{Code: French, Label: "🇫🇷 Français", ISO: "fr-FR", OGLocale: "fr_FR", Tag: language.French},
	{Code: Japanese, Label: "🇯🇵 日本語", ISO: "ja-JP", OGLocale: "ja_JP", Tag: language.Japanese},
	{Code: Korean, Label: "🇰🇷 한국어", ISO: "ko-KR", OGLocale: "ko_KR", Tag: language.Korean},
	{Code: SimplifiedChinese, Label: "🇨🇳 简体中文", ISO: "zh-CN", OGLocale: "zh_CN", Tag: language.SimplifiedChinese},
	{Code: TraditionalChinese, Label: "🇹🇼 繁體中文", ISO: "zh-TW", OGLocale: "zh_TW", Tag: language.TraditionalChinese},
}

var byCode = func() map[Locale]Info {
	m := make(map[Locale]Info, len(catalog))
	for _, info := range catalog {
		m[info.Code] = info
	}
	return m
}()

// All returns every supported locale in menu order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns catalog information for a locale code.
func Lookup(code Locale) (Info, bool) {
	info, ok := byCode[code]
	return info, ok
}

// IsSupported reports whether code is one of the supported locales.
func IsSupported(code Locale) bool {
	_, ok := byCode[code]
	return ok
}

// String returns the locale code.
func (l Locale) String() string {
	return string(l)
}

// Info returns the catalog entry for l, or the default locale's entry when l
// is not supported.
func (l Locale) Info() Info {
	if info, ok := byCode[l]; ok {
		return info
	}
	return byCode[Default]
}

// Tag returns the BCP-47 tag message bundles are keyed by.
func (l Locale) Tag() language.Tag {
	return l.Info().Tag
}

// ISO returns the tag assigned to the host document language.
func (l Locale) ISO() string {
	return l.Info().ISO
}
