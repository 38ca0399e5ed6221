// Package culture converts host locale identifiers into catalog cultures and
// carries a per-request culture through a context.
package culture

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"fluentloc/internal/domain"
	"fluentloc/internal/domain/entities"
)

// localeEnv lists the POSIX variables consulted by Ambient, by precedence.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// scriptModifiers maps POSIX locale modifiers to the BCP 47 script they
// select, e.g. "sr_RS@latin" -> "sr-Latn-RS". Other modifiers are dropped.
var scriptModifiers = map[string]string{
	"latin":      "Latn",
	"cyrillic":   "Cyrl",
	"devanagari": "Deva",
}

// Parse canonicalizes s into a BCP 47 culture name ("en_us" -> "en-US").
// POSIX locales such as "fr_FR.UTF-8@euro" are accepted. The empty string and
// the "C", "POSIX" and "und" locales yield the invariant culture.
func Parse(s string) (entities.Culture, error) {
	raw, modifier, _ := strings.Cut(strings.TrimSpace(s), "@")
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	switch raw {
	case "", "C", "POSIX":
		return entities.InvariantCulture, nil
	}

	raw = strings.ReplaceAll(raw, "_", "-")
	if script, ok := scriptModifiers[strings.ToLower(modifier)]; ok {
		lang, rest, _ := strings.Cut(raw, "-")
		raw = lang + "-" + script
		if rest != "" {
			raw += "-" + rest
		}
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return entities.InvariantCulture, fmt.Errorf("%w: %q: %v", domain.ErrUnsupportedCulture, s, err)
	}
	if tag == language.Und {
		return entities.InvariantCulture, nil
	}
	return entities.Culture(tag.String()), nil
}

// Ambient returns the culture of the process environment, taken from
// LC_ALL, LC_MESSAGES or LANG. Unset or unparsable locales give the invariant
// culture.
func Ambient() entities.Culture {
	for _, key := range localeEnv {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		c, err := Parse(v)
		if err != nil {
			return entities.InvariantCulture
		}
		return c
	}
	return entities.InvariantCulture
}

type contextKey string

func (c contextKey) String() string {
	return "fluentloc/culture/" + string(c)
}

const ctxKeyCulture = contextKey("cultureKey")

// ToContext attaches c to ctx.
func ToContext(ctx context.Context, c entities.Culture) context.Context {
	return context.WithValue(ctx, ctxKeyCulture, c)
}

// FromContext extracts the culture attached by ToContext, if any.
func FromContext(ctx context.Context) (entities.Culture, bool) {
	c, ok := ctx.Value(ctxKeyCulture).(entities.Culture)
	return c, ok
}
