package i18n

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"medsite/internal/domain/language"
	"medsite/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Catalog files are named by BCP 47 tag, so Kyrgyz lives in active.ky.toml.
var catalogFiles = []string{"active.ru.toml", "active.ky.toml", "active.en.toml"}

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Code
	logger          *slog.Logger
}

// NewTranslator builds a Translator backed by the embedded catalogs. The
// default locale is a site code ("ru", "kg", "en").
func NewTranslator(defaultLocale string, logger *slog.Logger) *Translator {
	return NewTranslatorFS(localeFS, catalogFiles, defaultLocale, logger)
}

// NewTranslatorFS loads the given catalog files from fsys.
func NewTranslatorFS(fsys fs.FS, files []string, defaultLocale string, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.Default()
	}
	def := language.Parse(defaultLocale)
	bundle := i18n.NewBundle(def.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			logger.Error("i18n: failed to load catalog", slog.String("file", file), slog.Any("error", err))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: def,
		logger:          logger,
	}
}

// T renders the message identified by key for the given site locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	def := t.defaultLanguage.Tag().String()
	requested := def
	if locale != "" {
		requested = language.Parse(locale).Tag().String()
	}

	msg, err := t.localize(requested, key, data)
	var notFound *i18n.MessageNotFoundErr
	if err != nil && requested != def && errors.As(err, &notFound) {
		msg, err = t.localize(def, key, data)
	}
	if err != nil {
		t.logger.Debug("i18n: localize failed",
			slog.String("key", key), slog.String("locale", requested), slog.Any("error", err))
		return key
	}
	return msg
}

func (t *Translator) localize(tag, key string, data map[string]any) (string, error) {
	localizer := i18n.NewLocalizer(t.bundle, tag)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}
