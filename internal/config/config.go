package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signalnine/benchpoints/internal/result"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when --config is not given; it may be absent.
const DefaultPath = "benchpoints.yaml"

type Config struct {
	Results Results `yaml:"results"`
	Convert Convert `yaml:"convert"`
	Report  Report  `yaml:"report"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

type Convert struct {
	Sort      bool `yaml:"sort"`
	KeepGoing bool `yaml:"keep_going"`
}

type Report struct {
	Format string `yaml:"format"`
}

var formats = map[string]bool{"table": true, "markdown": true, "json": true}

// ValidFormat reports whether f names a known report format.
func ValidFormat(f string) bool {
	return formats[f]
}

func Default() *Config {
	cfg := &Config{}
	validate(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when the file does not
// exist and missingOK is set.
func LoadOrDefault(path string, missingOK bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && missingOK && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func validate(cfg *Config) error {
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = result.DefaultBaseDir
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = "table"
	}
	if !ValidFormat(cfg.Report.Format) {
		return fmt.Errorf("report format %q: must be table, markdown or json", cfg.Report.Format)
	}
	return nil
}
