// Package i18n loads the UI message catalogs and renders messages for a
// resolved locale with a fixed English fallback.
package i18n
