package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconDownload = "⬇"
	IconWindows  = "⊞"
	IconApple    = "🍎"
	IconLinux    = "🐧"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 360

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)

// iconGlyphs maps catalog icon names to the glyphs shown in buttons
var iconGlyphs = map[string]string{
	"mdi-microsoft-windows": IconWindows,
	"mdi-apple":             IconApple,
	"mdi-linux":             IconLinux,
	"mdi-download":          IconDownload,
}

// iconGlyph returns the glyph for a catalog icon name
func iconGlyph(name string) string {
	if glyph, ok := iconGlyphs[name]; ok {
		return glyph
	}
	return IconDownload
}
