package locale

import (
	"strings"

	"golang.org/x/text/language"
)

const chineseSubtag = "zh"

// simplifiedRegions are the only full tags that select Simplified Chinese.
// Every other zh signal resolves to Traditional Chinese.
var simplifiedRegions = map[string]bool{
	"zh-cn": true,
	"zh-sg": true,
}

// Resolve maps a raw locale signal (navigator language, OS locale, persisted
// preference) to a supported locale. It never fails: empty or unknown signals
// resolve to Default.
func Resolve(raw string) Locale {
	raw = strings.TrimSpace(raw)

	// Already-resolved codes map to themselves.
	for _, info := range catalog {
		if strings.EqualFold(raw, string(info.Code)) {
			return info.Code
		}
	}

	subtag := primarySubtag(raw)
	if subtag == chineseSubtag {
		if simplifiedRegions[strings.ToLower(raw)] {
			return SimplifiedChinese
		}
		return TraditionalChinese
	}

	if code := Locale(subtag); IsSupported(code) {
		return code
	}
	return Default
}

// primarySubtag returns the lowercased first two characters of raw, or the
// default locale code when raw is empty.
func primarySubtag(raw string) string {
	runes := []rune(raw)
	if len(runes) == 0 {
		return string(Default)
	}
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToLower(string(runes))
}

// ResolveAcceptLanguage picks the first entry of an Accept-Language header, in
// quality order, whose language is supported. Chinese entries go through the
// same Simplified/Traditional split as Resolve, except that an explicit
// Hans/Hant script subtag is honoured.
func ResolveAcceptLanguage(header string) Locale {
	header = strings.TrimSpace(header)
	if header == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default
	}

	for _, tag := range tags {
		if code, ok := resolveTag(tag); ok {
			return code
		}
	}
	return Default
}

func resolveTag(tag language.Tag) (Locale, bool) {
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}

	if base.String() != chineseSubtag {
		code := Locale(base.String())
		return code, IsSupported(code)
	}

	if script, conf := tag.Script(); conf == language.Exact {
		switch script.String() {
		case "Hans":
			return SimplifiedChinese, true
		case "Hant":
			return TraditionalChinese, true
		}
	}

	if region, conf := tag.Region(); conf == language.Exact {
		return Resolve(chineseSubtag + "-" + region.String()), true
	}
	return Resolve(chineseSubtag), true
}
