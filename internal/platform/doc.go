package platform

// Package platform classifies client OS/architecture signals and maps them to
// release artifacts of the desktop application, plus small host helpers such
// as opening a download link.
