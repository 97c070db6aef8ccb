package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/logue/drop-compress-image/internal/config"
	"github.com/logue/drop-compress-image/internal/i18n"
	"github.com/logue/drop-compress-image/internal/model"
	"github.com/logue/drop-compress-image/internal/notify"
	"github.com/logue/drop-compress-image/internal/platform"
)

// Options carries the collaborators of the main window
type Options struct {
	Catalog *platform.Catalog
	Version string
	// Host is the platform the download panel recommends for.
	Host platform.Descriptor
	// Language overrides the persisted language preference when set.
	Language string
	// Gateway follows the window's language and the saved prompt policy.
	Gateway    *notify.Gateway
	Dispatcher *notify.Dispatcher
	// Localization is shared with collaborators rendering text outside the
	// window, such as the permission prompt. Created from the bundle when nil.
	Localization *Localization
	// OpenURL defaults to platform.OpenURL.
	OpenURL func(string) error
	Logger  hclog.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	catalog      *platform.Catalog
	version      string
	host         platform.Descriptor
	gateway      *notify.Gateway
	dispatcher   *notify.Dispatcher
	openURL      func(string) error
	logger       hclog.Logger

	subtitleLabel   *widget.Label
	primaryBtn      *widget.Button
	primaryDetail   *widget.Label
	otherLabel      *widget.Label
	alternativesBox *fyne.Container

	primary      platform.Target
	alternatives []platform.Target
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, bundle *i18n.Bundle, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := opts.Localization
	if localization == nil {
		localization = NewLocalization(bundle)
	}
	if opts.Language != "" {
		localization.SetLanguage(opts.Language)
	} else {
		localization.SetLanguage(settings.GetLanguage())
	}

	if opts.Catalog == nil {
		opts.Catalog = platform.DefaultCatalog()
	}
	if opts.OpenURL == nil {
		opts.OpenURL = platform.OpenURL
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		catalog:      opts.Catalog,
		version:      opts.Version,
		host:         opts.Host,
		gateway:      opts.Gateway,
		dispatcher:   opts.Dispatcher,
		openURL:      opts.OpenURL,
		logger:       opts.Logger.Named("ui"),
	}

	if ui.gateway != nil {
		ui.gateway.SetMessages(localization)
	}

	ui.setupUI()
	ui.logger.Debug("ui initialized", "locale", localization.Locale(), "host", opts.Host)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.subtitleLabel = widget.NewLabel("")
	ui.subtitleLabel.Alignment = fyne.TextAlignCenter

	ui.primaryBtn = widget.NewButton("", func() {
		ui.onOpenTarget(ui.primary)
	})
	ui.primaryBtn.Importance = widget.HighImportance

	ui.primaryDetail = widget.NewLabel("")
	ui.primaryDetail.Alignment = fyne.TextAlignCenter
	ui.primaryDetail.Wrapping = fyne.TextWrapWord

	ui.otherLabel = widget.NewLabel("")
	ui.otherLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.alternativesBox = container.NewVBox()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.subtitleLabel)
	content := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.primaryBtn,
		ui.primaryDetail,
		ui.otherLabel,
		ui.alternativesBox,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.refreshUITexts()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyMenuSettings), ui.onShowSettings)
	downloadsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyMenuDownloads), ui.onShowDownloads)

	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(i18n.KeyMenuLanguage))
	current := ui.localization.GetCurrentLanguage()
	for _, option := range ui.localization.GetAvailableLanguages() {
		preference := option.Preference
		item := fyne.NewMenuItem(option.Label, func() {
			ui.onLanguageChange(preference)
		})
		item.Checked = preference == current
		languageMenu.Items = append(languageMenu.Items, item)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyMenuFile), downloadsItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(preference string) {
	ui.localization.SetLanguage(preference)
	ui.settings.SetLanguage(preference)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))
	ui.subtitleLabel.SetText(ui.localization.GetText(i18n.KeyAppSubtitle))

	selector := ui.selector()
	ui.primary = selector.SelectDownload(ui.host, ui.version)
	ui.alternatives = selector.Alternatives(ui.host, ui.version)

	ui.primaryBtn.SetText(iconGlyph(ui.primary.Icon) + " " + ui.primary.Label)
	ui.primaryDetail.SetText(ui.primary.Subtitle)

	ui.alternativesBox.RemoveAll()
	if len(ui.alternatives) == 0 {
		ui.otherLabel.Hide()
	} else {
		ui.otherLabel.SetText(ui.localization.GetText(i18n.KeyOtherPlatforms))
		ui.otherLabel.Show()
		for _, target := range ui.alternatives {
			ui.alternativesBox.Add(ui.targetLink(target))
		}
	}
	ui.alternativesBox.Refresh()
}

func (ui *RootUI) selector() *platform.Selector {
	return platform.NewSelector(ui.catalog, ui.localization.Translator())
}

// targetLink renders a target as a hyperlink with a colored marker
func (ui *RootUI) targetLink(target platform.Target) fyne.CanvasObject {
	text := target.Subtitle
	if text == "" {
		text = target.Label
	}
	text += MiddleDotSeparator + string(target.Format)

	link := widget.NewHyperlink(text, nil)
	if u, err := url.Parse(target.URL); err == nil {
		link.URL = u
	}
	link.OnTapped = func() {
		ui.onOpenTarget(target)
	}

	marker := canvas.NewText(iconGlyph(target.Icon), PresentationColor(target.IconColor))
	return container.NewHBox(marker, link)
}

// onOpenTarget opens the download URL of target in the browser
func (ui *RootUI) onOpenTarget(target platform.Target) {
	if target.URL == "" {
		return
	}
	if err := ui.openURL(target.URL); err != nil {
		ui.logger.Error("failed to open download", "url", target.URL, "error", err)
		dialog.ShowInformation(
			ui.localization.GetText(i18n.KeyDownload),
			ui.localization.GetText(i18n.KeyOpenFailed),
			ui.window,
		)
	}
}

// onShowDownloads lists every published artifact
func (ui *RootUI) onShowDownloads() {
	box := container.NewVBox()
	for _, target := range ui.selector().Downloads(ui.version) {
		box.Add(ui.targetLink(target))
	}
	dialog.ShowCustom(
		ui.localization.GetText(i18n.KeyMenuDownloads),
		ui.localization.GetText(i18n.KeyCancel),
		container.NewVScroll(box),
		ui.window,
	)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the stored settings to the running window and
// notification gateway
func (ui *RootUI) onSettingsSaved(resetPermission bool) {
	ui.onLanguageChange(ui.settings.GetLanguage())

	if ui.gateway != nil {
		policy, err := notify.ParsePromptPolicy(ui.settings.GetNotificationPrompt())
		if err != nil {
			ui.logger.Warn("invalid notification prompt policy, using default", "error", err)
			policy = notify.PromptEveryAttempt
		}
		ui.gateway.SetPromptPolicy(policy)
		if resetPermission {
			ui.gateway.ForgetDenial()
		}
	}
	ui.logger.Debug("settings applied", "language", ui.localization.GetCurrentLanguage(), "reset_permission", resetPermission)

	dialog.ShowInformation(
		ui.localization.GetText(i18n.KeySettingsTitle),
		ui.localization.GetText(i18n.KeySettingsSaved),
		ui.window,
	)
}

// TaskUpdated forwards a conversion task update to the notification
// dispatcher
func (ui *RootUI) TaskUpdated(task *model.ConversionTask) {
	if ui.dispatcher != nil {
		ui.dispatcher.OnTaskUpdate(task)
	}
}

// BatchUpdated forwards a batch update to the notification dispatcher
func (ui *RootUI) BatchUpdated(batch *model.Batch) {
	if ui.dispatcher != nil {
		ui.dispatcher.OnBatchUpdate(batch)
	}
}

// Localization returns the window's localization
func (ui *RootUI) Localization() *Localization {
	return ui.localization
}
