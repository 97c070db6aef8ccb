// Package locale holds the closed set of UI locales and negotiates a raw
// client signal (browser language, OS locale, Accept-Language header, stored
// preference) down to exactly one of them.
package locale
