package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvConfigPath names the environment variable pointing at an optional
// YAML configuration file.
const EnvConfigPath = "AXOPLOT_CONFIG"

// Load builds a Config by layering, low to high:
//  1. defaults (New)
//  2. YAML file named by AXOPLOT_CONFIG or the path argument
//  3. environment variables with prefix AXOPLOT_
//
// A non-empty path argument overrides AXOPLOT_CONFIG.
func Load(ctx context.Context, path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrLoadConfig, path, err)
		}
	}

	// AXOPLOT_LOG_LEVEL -> log_level, AXOPLOT_METRICS_ADDR -> metrics_addr, ...
	envProvider := env.Provider("AXOPLOT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "axoplot_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Triggers) == 0 {
		return fmt.Errorf("%w: triggers must not be empty", ErrInvalidConfig)
	}
	if len(c.ScalarHists) == 0 && len(c.ObjectHists) == 0 {
		return fmt.Errorf("%w: no histograms requested", ErrInvalidConfig)
	}
	if c.ReferenceTrigger == "" {
		return fmt.Errorf("%w: reference_trigger must not be empty", ErrInvalidConfig)
	}
	return nil
}
