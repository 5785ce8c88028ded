// Package config assembles the dispatch service from environment
// configuration and the experiment override file. Everything loaded here is
// read once at process start and immutable afterwards.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"github.com/tendant/content-frontend/pkg/contentfront"
	"github.com/tendant/content-frontend/pkg/contentfront/render"
	"github.com/tendant/content-frontend/pkg/contentfront/store"
)

// AppConfig is the environment configuration for the frontend server.
type AppConfig struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	ContentStoreURL     string        `env:"CONTENT_STORE_URL" env-default:"http://localhost:8000"`
	ContentStoreTimeout time.Duration `env:"CONTENT_STORE_TIMEOUT" env-default:"10s"`

	// ExperimentsFile is the YAML override table; empty disables
	// experiment dispatch.
	ExperimentsFile string `env:"EXPERIMENTS_FILE" env-default:""`
}

// Load reads the configuration from the environment.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	return &cfg, nil
}

// BuildService assembles the fetcher, renderer, registry and experiment
// dispatcher into a Service.
func (c *AppConfig) BuildService(logger *slog.Logger) (contentfront.Service, error) {
	fetcher := store.NewClient(c.ContentStoreURL,
		store.WithTimeout(c.ContentStoreTimeout),
		store.WithLogger(logger),
	)

	engine, err := render.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}

	var overrides []contentfront.Override
	if c.ExperimentsFile != "" {
		overrides, err = LoadOverrides(c.ExperimentsFile)
		if err != nil {
			return nil, fmt.Errorf("load experiments: %w", err)
		}
	}

	return contentfront.New(
		contentfront.WithFetcher(fetcher),
		contentfront.WithRegistry(contentfront.DefaultRegistry()),
		contentfront.WithRenderer(engine),
		contentfront.WithExperiments(contentfront.NewDispatcher(overrides)),
		contentfront.WithLogger(logger),
	)
}

// overrideFile is the on-disk shape of the experiment override table.
type overrideFile struct {
	Overrides []contentfront.Override `yaml:"overrides"`
}

// LoadOverrides reads and validates the experiment override table from a
// YAML file.
func LoadOverrides(path string) ([]contentfront.Override, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, o := range file.Overrides {
		if err := validateOverride(o); err != nil {
			return nil, fmt.Errorf("override %d in %s: %w", i, path, err)
		}
	}
	return file.Overrides, nil
}

func validateOverride(o contentfront.Override) error {
	if o.Experiment == "" || o.Variant == "" {
		return fmt.Errorf("experiment and variant are required")
	}
	switch o.Kind {
	case contentfront.OverrideField:
		if o.Field == "" {
			return fmt.Errorf("field substitution needs a field name")
		}
	case contentfront.OverrideTemplate:
		if o.TemplateKey == "" {
			return fmt.Errorf("template substitution needs a template key")
		}
	case contentfront.OverrideHandler:
		if o.HandlerKey == "" {
			return fmt.Errorf("handler substitution needs a handler key")
		}
	default:
		return fmt.Errorf("unknown override kind %q", o.Kind)
	}
	return nil
}
