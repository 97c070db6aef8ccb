package i18n

// Message IDs
const (
	KeyAppTitle             = "app.title"
	KeyAppSubtitle          = "app.subtitle"
	KeyMenuFile             = "menu.file"
	KeyMenuLanguage         = "menu.language"
	KeyMenuSystemDefault    = "menu.system_default"
	KeyMenuDownloads        = "menu.downloads"
	KeyMenuSettings         = "menu.settings"
	KeySettingsTitle        = "settings.title"
	KeySettingsLanguage     = "settings.language"
	KeySettingsPrompt       = "settings.notify_prompt"
	KeyPromptEveryAttempt   = "settings.prompt_every_attempt"
	KeyPromptOnce           = "settings.prompt_once"
	KeyResetPermission      = "settings.reset_permission"
	KeySave                 = "settings.save"
	KeyCancel               = "settings.cancel"
	KeySettingsSaved        = "settings.saved"
	KeyOpenFailed           = "download.open_failed"
	KeyDownload             = "download.download"
	KeyDownloadWindows      = "download.windows"
	KeyDownloadMacOS        = "download.macos"
	KeyDownloadLinux        = "download.linux"
	KeyWindowsRequirement   = "download.window_requirement"
	KeyMacOSUniversal       = "download.macos_universal"
	KeyMacOSArm64           = "download.macos_arm64"
	KeyMacOSX64             = "download.macos_x64"
	KeyLinuxX64             = "download.linux_x64"
	KeyLinuxArm64           = "download.linux_arm64"
	KeyLinuxDeb             = "download.linux_deb"
	KeyLinuxRpm             = "download.linux_rpm"
	KeySelectPlatform       = "download.select_platform"
	KeyOtherPlatforms       = "download.other_platforms"
	KeyPermissionTitle      = "notification.permission.title"
	KeyPermissionMessage    = "notification.permission.message"
	KeyCompleteTitle        = "notification.complete.title"
	KeyCompleteMessage      = "notification.complete.message"
	KeyBatchCompleteTitle   = "notification.batch_complete.title"
	KeyBatchCompleteMessage = "notification.batch_complete.message"
	KeyErrorTitle           = "notification.error.title"
)
