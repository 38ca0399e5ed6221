package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUnsupportedCulture = errors.New("unsupported culture identifier")
	ErrEmptyResourcePath  = errors.New("resource path is empty")
	ErrUnsupportedFormat  = errors.New("unsupported resource file format")
	ErrMalformedResources = errors.New("malformed resource data")
)

// CatalogLoadError reports that the catalog could not be built from its
// source. The catalog stays usable and serves empty strings.
type CatalogLoadError struct {
	Source string
	Err    error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load catalog from %s: %v", e.Source, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// IsCatalogLoadError reports whether err carries a CatalogLoadError.
func IsCatalogLoadError(err error) bool {
	var loadErr *CatalogLoadError
	return errors.As(err, &loadErr)
}
