// Package config reads process configuration from the environment and keeps
// the desktop preferences (language, notification permission) in the Fyne
// preference store.
package config
