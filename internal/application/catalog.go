package application

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"fluentloc/internal/domain"
	"fluentloc/internal/domain/entities"
	"fluentloc/internal/ports/input"
	"fluentloc/internal/ports/output"
	"fluentloc/pkg/culture"
)

var _ input.Localizer = (*Catalog)(nil)

// Catalog serves localized strings keyed by resource name and culture.
//
// The resource table is read from its source once, on Load or on the first
// lookup, whichever comes first. After that the table is never written, so
// lookups need no locking.
type Catalog struct {
	source  output.CatalogSource
	logger  *zap.Logger
	ambient entities.Culture

	once     sync.Once
	mappings entities.Mappings
	loadErr  error
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used to report load failures.
func WithLogger(l *zap.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAmbientCulture overrides the culture used by GetLocalizedString.
func WithAmbientCulture(ci entities.Culture) CatalogOption {
	return func(c *Catalog) {
		c.ambient = ci
	}
}

// NewCatalog creates a Catalog over source. No I/O happens here. Without
// WithAmbientCulture the ambient culture is read from the process locale now.
func NewCatalog(source output.CatalogSource, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		source:  source,
		logger:  zap.NewNop(),
		ambient: culture.Ambient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load builds the resource table if that has not happened yet and returns the
// outcome of the one and only load. A failure is a *domain.CatalogLoadError;
// the catalog then stays empty and every lookup returns "".
func (c *Catalog) Load(ctx context.Context) error {
	c.once.Do(func() {
		mappings, err := c.source.Load(ctx)
		if err != nil {
			c.loadErr = &domain.CatalogLoadError{Source: c.source.String(), Err: err}
			c.mappings = entities.Mappings{}
			c.logger.Warn("localization catalog unavailable, lookups will return empty strings",
				zap.String("source", c.source.String()),
				zap.Error(err),
			)
			return
		}
		c.mappings = mappings.Clone()
		c.logger.Debug("localization catalog loaded",
			zap.String("source", c.source.String()),
			zap.Int("resources", len(c.mappings)),
		)
	})
	return c.loadErr
}

// Err returns the load failure, or nil if the catalog loaded. It loads the
// catalog first if needed.
func (c *Catalog) Err() error {
	return c.Load(context.Background())
}

// GetLocalizedString resolves resourceName in the ambient culture, which is
// fixed when the catalog is constructed. Later changes to the process locale
// are not seen; use GetLocalizedStringContext for a per-call culture.
func (c *Catalog) GetLocalizedString(resourceName entities.ResourceName) string {
	return c.GetLocalizedStringFor(c.ambient, resourceName)
}

// GetLocalizedStringContext resolves resourceName in the culture attached to
// ctx, falling back to the ambient culture.
func (c *Catalog) GetLocalizedStringContext(ctx context.Context, resourceName entities.ResourceName) string {
	ci, ok := culture.FromContext(ctx)
	if !ok {
		ci = c.ambient
	}
	return c.GetLocalizedStringFor(ci, resourceName)
}

// GetLocalizedStringFor resolves resourceName in ci. The invariant culture is
// not supported and resolves to en-US. Unknown names and cultures give "".
func (c *Catalog) GetLocalizedStringFor(ci entities.Culture, resourceName entities.ResourceName) string {
	v, _ := c.Lookup(ci, resourceName)
	return v
}

// Lookup is GetLocalizedStringFor that also reports whether a translation
// exists, so an empty translation can be told apart from a missing one.
func (c *Catalog) Lookup(ci entities.Culture, resourceName entities.ResourceName) (string, bool) {
	_ = c.Load(context.Background())

	entry, ok := c.mappings[resourceName]
	if !ok {
		return "", false
	}
	v, ok := entry[ci.Resolve()]
	return v, ok
}

// Resources returns the sorted resource names of the catalog.
func (c *Catalog) Resources() []entities.ResourceName {
	_ = c.Load(context.Background())

	names := make([]entities.ResourceName, 0, len(c.mappings))
	for name := range c.mappings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Cultures returns every culture translated for at least one resource, sorted.
func (c *Catalog) Cultures() []entities.Culture {
	_ = c.Load(context.Background())

	seen := make(map[entities.Culture]struct{})
	for _, entry := range c.mappings {
		for ci := range entry {
			seen[ci] = struct{}{}
		}
	}
	out := make([]entities.Culture, 0, len(seen))
	for ci := range seen {
		out = append(out, ci)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Mappings returns a copy of the resource table.
func (c *Catalog) Mappings() entities.Mappings {
	_ = c.Load(context.Background())
	return c.mappings.Clone()
}
