package i18n

import (
	"io"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"fluentloc/internal/domain/entities"
	"fluentloc/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// NewBundle exports a resource table as a go-i18n bundle with one message
// per (resource, culture). Cultures that are not BCP 47 tags are skipped.
func NewBundle(m entities.Mappings, defaultCulture entities.Culture, logger *zap.Logger) *i18n.Bundle {
	tag, err := language.Parse(defaultCulture.Resolve().String())
	if err != nil {
		tag = language.AmericanEnglish
	}
	bundle := i18n.NewBundle(tag)

	byTag := make(map[language.Tag][]*i18n.Message)
	for name, entry := range m {
		for ci, value := range entry {
			t, err := language.Parse(ci.String())
			if err != nil || t == language.Und {
				logger.Debug("i18n: skipping culture", zap.String("culture", ci.String()), zap.String("resource", string(name)))
				continue
			}
			byTag[t] = append(byTag[t], &i18n.Message{ID: string(name), Other: templateSafe(value)})
		}
	}
	for t, msgs := range byTag {
		if err := bundle.AddMessages(t, msgs...); err != nil {
			logger.Warn("i18n: failed to add messages", zap.String("culture", t.String()), zap.Error(err))
		}
	}
	return bundle
}

// templateSafe returns value unchanged when it is a Go template that renders
// without data. Otherwise its "{{" are literal text and get escaped so
// go-i18n renders the value verbatim instead of failing.
func templateSafe(value string) string {
	if !strings.Contains(value, "{{") {
		return value
	}
	tmpl, err := template.New("").Parse(value)
	if err == nil && tmpl.Execute(io.Discard, nil) == nil {
		return value
	}
	return strings.ReplaceAll(value, "{{", `{{"{{"}}`)
}

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle         *i18n.Bundle
	defaultCulture entities.Culture
	logger         *zap.Logger
}

// NewTranslator builds a Translator over bundle. defaultCulture is tried after
// the requested locale.
func NewTranslator(bundle *i18n.Bundle, defaultCulture entities.Culture, logger *zap.Logger) *Translator {
	return &Translator{
		bundle:         bundle,
		defaultCulture: defaultCulture.Resolve(),
		logger:         logger,
	}
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default culture,
// then finally to the key itself.
func (t *Translator) T(locale entities.Culture, key entities.ResourceName, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if !locale.IsInvariant() {
		languages = append(languages, locale.String())
	}
	languages = append(languages, t.defaultCulture.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    string(key),
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug("i18n: localize failed", zap.String("key", string(key)), zap.Strings("locales", languages), zap.Error(err))
		return string(key)
	}
	return msg
}
