package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys against the embedded locale catalog.
type Translator struct {
	Languages []string

	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads every embedded locale and selects lang.
func New(lang string) (*Translator, error) {
	if lang == "" {
		lang = config.DefaultLanguage
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	tr := &Translator{bundle: bundle}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		tr.Languages = append(tr.Languages, langCode)

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	if !slices.Contains(tr.Languages, lang) {
		return nil, fmt.Errorf("%s: %q", config.ErrLanguageUnsupp, lang)
	}
	tr.localizer = i18n.NewLocalizer(bundle, lang)
	return tr, nil
}

// Msg translates key. Optional data is passed to the message template.
// A missing key is returned as-is so the user still sees something.
func (tr *Translator) Msg(key string, data ...map[string]any) string {
	if tr == nil || tr.localizer == nil {
		return key
	}

	lc := &i18n.LocalizeConfig{MessageID: key}
	if len(data) > 0 {
		lc.TemplateData = data[0]
	}

	msg, err := tr.localizer.Localize(lc)
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
