package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/logue/drop-compress-image/internal/config"
	"github.com/logue/drop-compress-image/internal/i18n"
	"github.com/logue/drop-compress-image/internal/notify"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(resetPermission bool)

	// UI components
	languageSelect *widget.Select
	promptSelect   *widget.Select
	resetCheck     *widget.Check

	languageValues []string
	promptValues   []notify.PromptPolicy
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored and reports whether the permission was reset.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(resetPermission bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	var languageLabels []string
	for _, option := range sd.localization.GetAvailableLanguages() {
		sd.languageValues = append(sd.languageValues, option.Preference)
		languageLabels = append(languageLabels, option.Label)
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	sd.promptValues = []notify.PromptPolicy{notify.PromptEveryAttempt, notify.PromptOnce}
	sd.promptSelect = widget.NewSelect([]string{
		text(i18n.KeyPromptEveryAttempt),
		text(i18n.KeyPromptOnce),
	}, nil)

	sd.resetCheck = widget.NewCheck(text(i18n.KeyResetPermission), nil)

	form := container.NewVBox(
		widget.NewLabel(text(i18n.KeySettingsLanguage)),
		sd.languageSelect,
		widget.NewSeparator(),
		widget.NewLabel(text(i18n.KeySettingsPrompt)),
		sd.promptSelect,
		sd.resetCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(i18n.KeySettingsTitle),
		text(i18n.KeySave),
		text(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.localization.GetCurrentLanguage()
	for i, value := range sd.languageValues {
		if value == current {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}

	policy, err := notify.ParsePromptPolicy(sd.settings.GetNotificationPrompt())
	if err != nil {
		policy = notify.PromptEveryAttempt
	}
	for i, value := range sd.promptValues {
		if value == policy {
			sd.promptSelect.SetSelectedIndex(i)
		}
	}

	sd.resetCheck.SetChecked(false)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if i := sd.languageSelect.SelectedIndex(); i >= 0 {
		sd.settings.SetLanguage(sd.languageValues[i])
	}
	if i := sd.promptSelect.SelectedIndex(); i >= 0 {
		sd.settings.SetNotificationPrompt(string(sd.promptValues[i]))
	}
	reset := sd.resetCheck.Checked
	if reset {
		sd.settings.SetNotificationPermission(config.PermissionUnknown)
	}

	if sd.onSaved != nil {
		sd.onSaved(reset)
	}
}
