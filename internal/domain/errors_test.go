package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoadError(t *testing.T) {
	var err error = &CatalogLoadError{Source: "file a.json", Err: fs.ErrNotExist}

	assert.Equal(t, "load catalog from file a.json: file does not exist", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, IsCatalogLoadError(fmt.Errorf("startup: %w", err)))

	var loadErr *CatalogLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "file a.json", loadErr.Source)
}

func TestIsCatalogLoadError_Other(t *testing.T) {
	assert.False(t, IsCatalogLoadError(errors.New("boom")))
	assert.False(t, IsCatalogLoadError(nil))
}
