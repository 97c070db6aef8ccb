package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		raw      string
		expected Locale
	}{
		{"en-US", English},
		{"en", English},
		{"fr-FR", French},
		{"fr-CA", French},
		{"ja", Japanese},
		{"ja-JP", Japanese},
		{"ko-KR", Korean},
		{"FR-fr", French},
		{"zh-CN", SimplifiedChinese},
		{"zh-cn", SimplifiedChinese},
		{"zh-SG", SimplifiedChinese},
		{"zh-TW", TraditionalChinese},
		{"zh-HK", TraditionalChinese},
		{"zh", TraditionalChinese},
		{"zh-Hans-CN", TraditionalChinese},
		{"zh_CN", TraditionalChinese},
		{"de-DE", English},
		{"pt-BR", English},
		{"", English},
		{"   ", English},
		{"e", English},
		{"???", English},
		{"日本語", English},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.raw))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, info := range All() {
		got := Resolve(string(info.Code))
		assert.Equal(t, info.Code, got, "resolving %q", info.Code)
		assert.Equal(t, got, Resolve(string(got)))
	}
}

func TestResolveAcceptLanguage(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected Locale
	}{
		{"empty", "", English},
		{"single", "ja", Japanese},
		{"quality order", "de-DE,ko;q=0.9,fr;q=0.8", Korean},
		{"quality reordered", "fr;q=0.5, ja;q=0.9", Japanese},
		{"unsupported only", "de-DE, it;q=0.8", English},
		{"simplified region", "zh-CN,zh;q=0.9", SimplifiedChinese},
		{"singapore", "zh-SG", SimplifiedChinese},
		{"traditional region", "zh-TW", TraditionalChinese},
		{"explicit hans script", "zh-Hans-HK", SimplifiedChinese},
		{"explicit hant script", "zh-Hant", TraditionalChinese},
		{"bare chinese", "zh", TraditionalChinese},
		{"malformed", ";;;q=abc", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAcceptLanguage(tt.header))
		})
	}
}

func TestNormalizePOSIX(t *testing.T) {
	tests := map[string]string{
		"zh_CN.UTF-8": "zh-CN",
		"de_DE@euro":  "de-DE",
		"ja_JP":       "ja-JP",
		"C":           "en-US",
		"POSIX":       "en-US",
		"en-US":       "en-US",
		"":            "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizePOSIX(in), "NormalizePOSIX(%q)", in)
	}
}

func TestSystemSignal(t *testing.T) {
	original := hostLocale
	t.Cleanup(func() { hostLocale = original })

	hostLocale = func() (string, error) { return "zh_CN", nil }
	assert.Equal(t, "zh-CN", SystemSignal())

	hostLocale = func() (string, error) { return "", errors.New("no locale") }
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ko_KR.UTF-8")
	assert.Equal(t, "ko-KR", SystemSignal())

	t.Setenv("LANG", "")
	assert.Equal(t, "", SystemSignal())
}

func TestResolvePreference(t *testing.T) {
	original := hostLocale
	t.Cleanup(func() { hostLocale = original })
	hostLocale = func() (string, error) { return "ja_JP.UTF-8", nil }

	assert.Equal(t, Japanese, ResolvePreference(SystemPreference))
	assert.Equal(t, Japanese, ResolvePreference(""))
	assert.Equal(t, French, ResolvePreference("fr"))
	assert.Equal(t, SimplifiedChinese, ResolvePreference("zhHans"))
}

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 6)

	codes := map[Locale]bool{}
	isos := map[string]bool{}
	for _, info := range all {
		assert.False(t, codes[info.Code], "duplicate code %s", info.Code)
		assert.False(t, isos[info.ISO], "duplicate ISO %s", info.ISO)
		assert.NotEmpty(t, info.Label)
		codes[info.Code] = true
		isos[info.ISO] = true
	}

	assert.Equal(t, "zh-CN", SimplifiedChinese.ISO())
	assert.Equal(t, "zh-Hant", TraditionalChinese.Tag().String())
	assert.Equal(t, English, Locale("xx").Info().Code)
	assert.False(t, IsSupported("zh"))

	// mutating the returned slice leaves the catalog intact
	all[0].Label = "changed"
	info, ok := Lookup(English)
	require.True(t, ok)
	assert.NotEqual(t, "changed", info.Label)
}
