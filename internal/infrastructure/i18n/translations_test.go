package i18n

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"fluentloc/internal/domain/entities"
)

func testMappings() entities.Mappings {
	return entities.Mappings{
		"Greeting": {"en-US": "Hello {{.Name}}", "fr-FR": "Bonjour {{.Name}}"},
		"Settings": {"en-US": "Settings", "not a tag!": "ignored"},
		"Braces":   {"en-US": "Use {{ and }}", "fr-FR": "{{ {{.Name}}"},
	}
}

func TestNewBundle(t *testing.T) {
	bundle := NewBundle(testMappings(), entities.InvariantCulture, zaptest.NewLogger(t))

	assert.ElementsMatch(t, []language.Tag{
		language.MustParse("en-US"),
		language.MustParse("fr-FR"),
	}, bundle.LanguageTags())

	msg, err := i18n.NewLocalizer(bundle, "fr-FR").Localize(&i18n.LocalizeConfig{
		MessageID:    "Greeting",
		TemplateData: map[string]any{"Name": "Ada"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bonjour Ada", msg)
}

func TestTranslator_T(t *testing.T) {
	logger := zaptest.NewLogger(t)
	tr := NewTranslator(NewBundle(testMappings(), "en-US", logger), "en-US", logger)
	data := map[string]any{"Name": "Ada"}

	assert.Equal(t, "Bonjour Ada", tr.T("fr-FR", "Greeting", data))
	assert.Equal(t, "Hello Ada", tr.T("en-US", "Greeting", data))
	assert.Equal(t, "Hello Ada", tr.T(entities.InvariantCulture, "Greeting", data))
	assert.Equal(t, "Hello Ada", tr.T("de-DE", "Greeting", data), "falls back to the default culture")
	assert.Equal(t, "Settings", tr.T("en-US", "Settings", nil))
	assert.Equal(t, "Missing", tr.T("en-US", "Missing", nil), "unknown keys render as the key")
	assert.Equal(t, "", tr.T("en-US", "", nil))
}

func TestTranslator_LiteralBraces(t *testing.T) {
	logger := zaptest.NewLogger(t)
	tr := NewTranslator(NewBundle(testMappings(), "en-US", logger), "en-US", logger)

	assert.Equal(t, "Use {{ and }}", tr.T("en-US", "Braces", nil))
	assert.Equal(t, "{{ {{.Name}}", tr.T("fr-FR", "Braces", map[string]any{"Name": "Ada"}),
		"an unparsable value is rendered verbatim, actions included")
}

func TestTemplateSafe(t *testing.T) {
	assert.Equal(t, "plain", templateSafe("plain"))
	assert.Equal(t, "Hello {{.Name}}", templateSafe("Hello {{.Name}}"))
	assert.Equal(t, `Use {{"{{"}} and }}`, templateSafe("Use {{ and }}"))
}
