package output

import "fluentloc/internal/domain/entities"

// T renders templated resources for hosts that need placeholders. Unlike the
// catalog getters it may fall back to another culture or to the key itself.
type T interface {
	// T renders resource key for locale; data fills template placeholders and
	// may be nil.
	T(locale entities.Culture, key entities.ResourceName, data map[string]any) string
}
