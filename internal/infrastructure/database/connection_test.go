package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	pool, err := NewPool(context.Background(), "postgres://user@localhost:notaport/fluentloc", zap.NewNop())
	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestRunMigrations_MissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	err := RunMigrations("postgres://user@localhost:5432/fluentloc?sslmode=disable", missing, zap.NewNop())
	assert.ErrorContains(t, err, "migration init")
}
