package config

import (
	"fyne.io/fyne/v2"

	"github.com/logue/drop-compress-image/internal/locale"
)

// AppID identifies the application to Fyne. The desktop app and the command
// line share preferences through it.
const AppID = "io.github.logue.drop-compress-image"

// Settings keys for Fyne preferences
const (
	KeyLanguage               = "app_language"
	KeyNotificationPermission = "notification_permission"
	KeyNotificationPrompt     = "notification_prompt"
)

// Notification permission values as stored in preferences
const (
	PermissionUnknown = "unknown"
	PermissionGranted = "granted"
	PermissionDenied  = "denied"
)

// Default values
const (
	DefaultLanguage           = locale.SystemPreference
	DefaultNotificationPrompt = "every-attempt"
)

// Settings manages persisted desktop preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language preference
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage stores the language preference. Anything other than "system"
// is stored as the resolved locale code.
func (s *Settings) SetLanguage(lang string) {
	if lang != locale.SystemPreference {
		lang = string(locale.Resolve(lang))
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetNotificationPermission returns the remembered notification permission
func (s *Settings) GetNotificationPermission() string {
	return s.app.Preferences().StringWithFallback(KeyNotificationPermission, PermissionUnknown)
}

// SetNotificationPermission remembers the user's answer to the permission
// prompt. Unknown values reset it.
func (s *Settings) SetNotificationPermission(permission string) {
	switch permission {
	case PermissionGranted, PermissionDenied:
	default:
		permission = PermissionUnknown
	}
	s.app.Preferences().SetString(KeyNotificationPermission, permission)
}

// GetNotificationPrompt returns the permission prompt policy
func (s *Settings) GetNotificationPrompt() string {
	return s.app.Preferences().StringWithFallback(KeyNotificationPrompt, DefaultNotificationPrompt)
}

// SetNotificationPrompt sets the permission prompt policy
func (s *Settings) SetNotificationPrompt(policy string) {
	if policy == "" {
		policy = DefaultNotificationPrompt
	}
	s.app.Preferences().SetString(KeyNotificationPrompt, policy)
}
