// Package i18n loads the translation catalogue for the dashboard.
// Loading is best effort: when the catalogue for the wanted language is
// missing or malformed the caller keeps going with untranslated text.
package i18n

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// CatalogueBase is the catalogue file base name; the file for language
// "fr" is "main.fr.json" inside the search directory.
const CatalogueBase = "main"

// Translator resolves message IDs against a loaded catalogue.
type Translator struct {
	localizer *goi18n.Localizer
	lang      string
}

// Load reads the catalogue for lang from dir. An empty lang means the
// system locale. The returned error is recoverable: callers log it and
// continue with default text.
func Load(lang, dir string) (*Translator, error) {
	if lang == "" {
		lang = SystemLanguage()
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	path := filepath.Join(dir, fmt.Sprintf("%s.%s.json", CatalogueBase, tag.String()))
	if _, err := bundle.LoadMessageFile(path); err != nil {
		return nil, fmt.Errorf("failed to load translation catalogue %s: %w", path, err)
	}

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		lang:      tag.String(),
	}, nil
}

// SystemLanguage returns the base language of the system locale, or
// "en" when it cannot be determined.
func SystemLanguage() string {
	loc, err := locale.GetLocale()
	if err != nil {
		return "en"
	}
	tag, err := language.Parse(loc)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}

// Language returns the loaded catalogue's language tag.
func (t *Translator) Language() string { return t.lang }

// T resolves a message ID. A nil translator or an unknown ID yields the
// ID itself, which keeps untranslated runs readable.
func (t *Translator) T(id string) string {
	return t.Tf(id, nil)
}

// Tf resolves a message ID with template data.
func (t *Translator) Tf(id string, data map[string]any) string {
	if t == nil {
		return id
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
