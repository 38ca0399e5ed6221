package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentloc/internal/domain"
	"fluentloc/internal/domain/entities"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FLUENTLOC_RESOURCE_PATH", "FLUENTLOC_CULTURE", "FLUENTLOC_DATABASE_URL",
		"FLUENTLOC_MIGRATIONS_PATH", "FLUENTLOC_ENV", "LC_ALL", "LC_MESSAGES", "LANG",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "localization/Localization_NavigationView.json", cfg.ResourcePath)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, entities.InvariantCulture, cfg.AmbientCulture)
	assert.False(t, cfg.UseDatabase())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FLUENTLOC_RESOURCE_PATH", "/srv/loc/strings.toml")
	t.Setenv("FLUENTLOC_CULTURE", "fr_fr")
	t.Setenv("FLUENTLOC_DATABASE_URL", "postgres://localhost:5432/fluentloc?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/loc/strings.toml", cfg.ResourcePath)
	assert.Equal(t, entities.Culture("fr-FR"), cfg.AmbientCulture)
	assert.True(t, cfg.UseDatabase())
}

func TestLoad_AmbientFromLocale(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "de_DE.UTF-8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, entities.Culture("de-DE"), cfg.AmbientCulture)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"empty resource path", Config{ResourcePath: "  "}, domain.ErrEmptyResourcePath},
		{"bad culture", Config{ResourcePath: "a.json", Culture: "not a culture!"}, domain.ErrUnsupportedCulture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.validate(), tt.want)
		})
	}
}

func TestValidate_DatabaseURL(t *testing.T) {
	clearEnv(t)

	cfg := Config{ResourcePath: "a.json", DatabaseURL: "localhost"}
	assert.ErrorContains(t, cfg.validate(), "missing scheme or host")

	cfg = Config{DatabaseURL: "postgres://db:5432/fluentloc"}
	assert.NoError(t, cfg.validate(), "a database source needs no resource file")
}
