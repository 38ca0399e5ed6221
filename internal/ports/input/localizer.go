package input

import (
	"context"

	"fluentloc/internal/domain/entities"
)

// Localizer is the contract UI controls consume. Every method returns the
// empty string when no translation exists; none of them fail.
type Localizer interface {
	GetLocalizedString(resourceName entities.ResourceName) string
	GetLocalizedStringFor(culture entities.Culture, resourceName entities.ResourceName) string
	GetLocalizedStringContext(ctx context.Context, resourceName entities.ResourceName) string
	// Lookup distinguishes an empty translation from a missing one.
	Lookup(culture entities.Culture, resourceName entities.ResourceName) (string, bool)
}
