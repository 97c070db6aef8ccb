package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/hashicorp/go-hclog"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/logue/drop-compress-image/internal/locale"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Bundle holds the message catalogs of every supported locale. English is the
// fallback for any message a locale does not define.
type Bundle struct {
	messages *goi18n.Bundle
	logger   hclog.Logger
}

// LoadEmbedded loads the message files compiled into the binary.
func LoadEmbedded(logger hclog.Logger) (*Bundle, error) {
	return LoadFS(embeddedLocales, logger)
}

// LoadFS loads every locales/*.yaml file from fsys. The file name carries the
// BCP-47 tag ("zh-Hant.yaml").
func LoadFS(fsys fs.FS, logger hclog.Logger) (*Bundle, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob message files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no message files found")
	}
	sort.Strings(paths)

	messages := goi18n.NewBundle(locale.Default.Tag())
	messages.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read message file %s: %w", path, err)
		}
		if _, err := messages.ParseMessageFileBytes(data, path); err != nil {
			return nil, fmt.Errorf("parse message file %s: %w", path, err)
		}
	}

	if !hasTag(messages.LanguageTags(), locale.Default.Tag()) {
		return nil, fmt.Errorf("fallback locale %s has no message file", locale.Default)
	}

	return &Bundle{messages: messages, logger: logger.Named("i18n")}, nil
}

// Translator returns a translator for l.
func (b *Bundle) Translator(l locale.Locale) *Translator {
	if !locale.IsSupported(l) {
		l = locale.Default
	}
	return &Translator{
		locale:    l,
		localizer: goi18n.NewLocalizer(b.messages, l.Tag().String()),
		fallback:  goi18n.NewLocalizer(b.messages, locale.Default.Tag().String()),
		logger:    b.logger,
	}
}

// Tags returns the tags that have a message file.
func (b *Bundle) Tags() []language.Tag {
	return b.messages.LanguageTags()
}

func hasTag(tags []language.Tag, want language.Tag) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
