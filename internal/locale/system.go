package locale

import (
	"os"
	"strings"

	golocale "github.com/jeandeaual/go-locale"
)

// SystemPreference is the persisted language value that defers to the host.
const SystemPreference = "system"

// localeEnvVars are checked in order of precedence when the host API yields
// nothing.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// hostLocale is swapped in tests.
var hostLocale = golocale.GetLocale

// SystemSignal returns the host's preferred locale as a BCP-47-like raw
// signal, or "" when the host reports nothing.
func SystemSignal() string {
	if value, err := hostLocale(); err == nil && strings.TrimSpace(value) != "" {
		return NormalizePOSIX(value)
	}

	for _, key := range localeEnvVars {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return NormalizePOSIX(value)
		}
	}
	return ""
}

// NormalizePOSIX converts POSIX locale names to BCP-47 form:
// "zh_CN.UTF-8" -> "zh-CN", "de_DE@euro" -> "de-DE", "C" -> "en-US".
func NormalizePOSIX(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.Index(value, "."); idx > 0 {
		value = value[:idx]
	}
	if idx := strings.Index(value, "@"); idx > 0 {
		value = value[:idx]
	}
	value = strings.ReplaceAll(value, "_", "-")

	switch value {
	case "C", "POSIX":
		return "en-US"
	}
	return value
}

// ResolvePreference resolves a persisted language preference. An empty value
// or SystemPreference uses the host locale.
func ResolvePreference(preference string) Locale {
	preference = strings.TrimSpace(preference)
	if preference == "" || preference == SystemPreference {
		return Resolve(SystemSignal())
	}
	return Resolve(preference)
}
