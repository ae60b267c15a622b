// Package config loads the pcq configuration: a YAML file, a .env file and
// environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/pcquote"
	"github.com/etnz/pcquote/store"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no configuration file is given.
const DefaultFile = "pcq.yaml"

// Environment variables overriding the file.
const (
	EnvCatalog     = "PCQ_CATALOG"
	EnvCatalogURL  = "PCQ_CATALOG_URL"
	EnvPresets     = "PCQ_PRESETS"
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "LOG_LEVEL"
)

// Config holds the pcq settings.
type Config struct {
	// CatalogFile is a local JSON catalog, it wins over CatalogURL.
	CatalogFile string `yaml:"catalog_file"`
	// CatalogURL is a published JSON catalog, fetched once a day.
	CatalogURL string `yaml:"catalog_url"`
	// CatalogSelector is a JSONPath expression selecting the parts in the
	// catalog document.
	CatalogSelector string `yaml:"catalog_selector"`

	// PresetsFile is a YAML list of presets.
	PresetsFile string `yaml:"presets_file"`

	// Currency is the ISO code used to format amounts.
	Currency string `yaml:"currency"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	Store store.Config `yaml:"store"`
}

// Default returns the configuration used when nothing is configured.
func Default() Config {
	return Config{
		Currency: pcquote.DefaultCurrency,
		LogLevel: "warn",
		Store:    store.Config{Kind: store.KindFile},
	}
}

// Load reads the configuration file, then the .env files, then the
// environment.
//
// An empty path reads DefaultFile if it exists. The .env files are optional,
// by default ".env" in the current directory.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	// existing variables are never overridden by .env files.
	_ = godotenv.Load(envFiles...)
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.CatalogFile, EnvCatalog)
	set(&c.CatalogURL, EnvCatalogURL)
	set(&c.PresetsFile, EnvPresets)
	set(&c.LogLevel, EnvLogLevel)
	set(&c.Store.DatabaseURL, EnvDatabaseURL)
}

// Validate checks the values that cannot be coerced.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	switch c.Store.Kind {
	case "", store.KindFile, store.KindPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}
	if c.Store.Kind == store.KindPostgres && c.Store.DatabaseURL == "" {
		errs = append(errs, fmt.Errorf("store kind postgres requires %s or store.database_url", EnvDatabaseURL))
	}
	return errors.Join(errs...)
}

// Level returns the zap level of LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("invalid log_level: %w", err)
	}
	return lvl, nil
}

// CatalogSource returns where to load the catalog from.
func (c Config) CatalogSource() pcquote.CatalogSource {
	return pcquote.CatalogSource{
		File:     c.CatalogFile,
		URL:      c.CatalogURL,
		Selector: c.CatalogSelector,
	}
}
