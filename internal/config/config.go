package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"fluentloc/internal/domain"
	"fluentloc/internal/domain/entities"
	"fluentloc/pkg/culture"
)

type Config struct {
	ResourcePath   string `env:"FLUENTLOC_RESOURCE_PATH" envDefault:"localization/Localization_NavigationView.json"`
	Culture        string `env:"FLUENTLOC_CULTURE"`
	DatabaseURL    string `env:"FLUENTLOC_DATABASE_URL"`
	MigrationsPath string `env:"FLUENTLOC_MIGRATIONS_PATH" envDefault:"migrations"`
	Environment    string `env:"FLUENTLOC_ENV" envDefault:"development"`

	// AmbientCulture is Culture parsed, or the culture of the process
	// environment when Culture is empty.
	AmbientCulture entities.Culture
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UseDatabase reports whether resources come from Postgres instead of a file.
func (c *Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

func (c *Config) validate() error {
	c.ResourcePath = strings.TrimSpace(c.ResourcePath)
	if c.ResourcePath == "" && !c.UseDatabase() {
		return fmt.Errorf("config: FLUENTLOC_RESOURCE_PATH: %w", domain.ErrEmptyResourcePath)
	}

	if strings.TrimSpace(c.Culture) == "" {
		c.AmbientCulture = culture.Ambient()
	} else {
		ci, err := culture.Parse(c.Culture)
		if err != nil {
			return fmt.Errorf("config: FLUENTLOC_CULTURE: %w", err)
		}
		c.AmbientCulture = ci
	}

	if c.UseDatabase() {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: FLUENTLOC_DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: FLUENTLOC_DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}
