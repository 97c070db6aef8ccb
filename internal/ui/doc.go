package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the platform download panel, the language menu and settings, and
// forwards conversion updates to the notification dispatcher. All UI strings
// are localized via Localization.
