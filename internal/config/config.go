package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/AlexTLDR/partyplanner/internal/i18n"
)

// Config is the viewer configuration.
type Config struct {
	// Remote API
	BaseURL string `env:"PARTY_API_BASE_URL" envDefault:"https://fsa-crud-2aa9294fe819.herokuapp.com/api"`
	Cohort  string `env:"PARTY_API_COHORT" envDefault:"2506-Angel"`

	// Session
	SessionSecret string `env:"SESSION_SECRET" envDefault:"change-me-in-production"`

	// Presentation
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	PhoneRegion     string `env:"PHONE_REGION" envDefault:"US"`

	// App
	Port string `env:"PORT" envDefault:"8080"`
}

// APIConfig is the configuration of the local fixture API.
type APIConfig struct {
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite3"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"file:partyplanner.db?_foreign_keys=on"`
	Cohort         string `env:"PARTY_API_COHORT" envDefault:"2506-Angel"`
	Seed           bool   `env:"SEED" envDefault:"true"`
	PhoneRegion    string `env:"PHONE_REGION" envDefault:"US"`
	Port           string `env:"PORT" envDefault:"8081"`
}

// Load reads the viewer configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid PARTY_API_BASE_URL: must not be empty")
	}
	if _, ok := i18n.Parse(cfg.DefaultLanguage); !ok {
		return nil, fmt.Errorf("invalid DEFAULT_LANGUAGE %q: expected en or ro", cfg.DefaultLanguage)
	}

	return cfg, nil
}

// Language returns the configured default language.
func (c *Config) Language() i18n.Language {
	lang, _ := i18n.Parse(c.DefaultLanguage)
	return lang
}

// LoadAPI reads the fixture API configuration from the environment.
func LoadAPI() (*APIConfig, error) {
	cfg := &APIConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.DatabaseDriver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("invalid DATABASE_DRIVER %q: expected sqlite3 or postgres", cfg.DatabaseDriver)
	}

	return cfg, nil
}
