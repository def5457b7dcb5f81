package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NickyBoy89/methodmap/parsing"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatIdentity = "identity"
	FormatJNI      = "jni"
	FormatYAML     = "yaml"
)

// Config describes which features are composed and how the result is printed
type Config struct {
	// Features in composition order
	Features []FeatureConfig `yaml:"features"`
	// Glob patterns of the sources loaded from every feature
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
	// One of identity, jni or yaml
	Format string `yaml:"format"`
	// Whether to list signatures contributed by more than one feature
	Duplicates bool `yaml:"duplicates"`
}

// FeatureConfig names a feature directory. A relative path is relative to the
// config file.
type FeatureConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Include: []string{parsing.DefaultInclude},
		Format:  FormatIdentity,
	}
}

// LoadConfig reads a YAML config file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	base := filepath.Dir(path)
	for ind, feature := range config.Features {
		if feature.Path != "" && !filepath.IsAbs(feature.Path) {
			config.Features[ind].Path = filepath.Join(base, feature.Path)
		}
	}
	return config, nil
}

// Validate checks that the configuration can be run
func (c *Config) Validate() error {
	switch c.Format {
	case FormatIdentity, FormatJNI, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}

	if len(c.Features) == 0 {
		return fmt.Errorf("no features to compose")
	}

	names := make(map[string]bool)
	for _, feature := range c.Features {
		if feature.Name == "" || feature.Path == "" {
			return fmt.Errorf("feature %q needs both a name and a path", feature.Name)
		}
		if names[feature.Name] {
			return fmt.Errorf("feature %q is listed twice", feature.Name)
		}
		names[feature.Name] = true
	}
	return nil
}

// loadOptions returns the source selection of the config
func (c *Config) loadOptions() parsing.LoadOptions {
	return parsing.LoadOptions{Include: c.Include, Exclude: c.Exclude}
}

// features returns the configured features in composition order
func (c *Config) features() []parsing.Feature {
	features := make([]parsing.Feature, len(c.Features))
	for ind, feature := range c.Features {
		features[ind] = parsing.Feature{Name: feature.Name, Dir: feature.Path}
	}
	return features
}
