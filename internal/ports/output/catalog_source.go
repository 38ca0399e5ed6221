package output

import (
	"context"

	"fluentloc/internal/domain/entities"
)

// CatalogSource provides the resource table a catalog is built from.
type CatalogSource interface {
	// Load reads the full resource table. It is called at most once per catalog.
	Load(ctx context.Context) (entities.Mappings, error)
	// String describes the source for logs and load errors.
	String() string
}
