// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads project configuration from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"go.astrophena.name/pathbanner/internal/banner"
	"go.astrophena.name/pathbanner/internal/process"
)

// DefaultFile is the configuration file used when none is given explicitly.
const DefaultFile = ".pathbanner.yaml"

// Config is the project configuration. It extends the built-in registry
// and never replaces it.
type Config struct {
	// MaxSize is the largest file, in bytes, that gets processed.
	MaxSize int64 `yaml:"max_size"`
	// Blocklist lists additional basenames that never get a banner.
	Blocklist []string `yaml:"blocklist"`
	// Exclude lists glob patterns of slash-separated paths to skip.
	Exclude []string `yaml:"exclude"`
	// Styles adds or overrides file types. Keys starting with a dot are
	// extensions, other keys are exact basenames.
	Styles map[string]Style `yaml:"styles"`
}

// Style configures one file type.
type Style struct {
	Prefix     string                 `yaml:"prefix"`
	Suffix     string                 `yaml:"suffix"`
	Kind       banner.Kind            `yaml:"kind"`
	Directives []banner.DirectiveRule `yaml:"directives"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxSize == 0 {
		c.MaxSize = process.DefaultMaxSize
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive, got %d", c.MaxSize)
	}
	for _, name := range c.Blocklist {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("blocklist: %q is not a basename", name)
		}
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("exclude: invalid pattern %q", pattern)
		}
	}
	for key, s := range c.Styles {
		if key == "" || key == "." {
			return fmt.Errorf("styles: empty file type")
		}
		if strings.TrimSpace(s.Prefix) == "" {
			return fmt.Errorf("styles.%s: prefix is required", key)
		}
		if s.Kind == banner.Directive && len(s.Directives) == 0 {
			return fmt.Errorf("styles.%s: kind directive needs at least one directive", key)
		}
		for _, d := range s.Directives {
			if d.Prefix == "" {
				return fmt.Errorf("styles.%s: directive prefix is required", key)
			}
		}
	}
	return nil
}

// Registry returns the built-in registry extended by c.
func (c *Config) Registry() *banner.Registry {
	if len(c.Styles) == 0 && len(c.Blocklist) == 0 {
		return banner.Default()
	}
	o := banner.Overrides{
		Entries:   make(map[string]banner.Entry, len(c.Styles)),
		Blocklist: c.Blocklist,
	}
	for key, s := range c.Styles {
		o.Entries[key] = banner.Entry{
			Style:      banner.Style{Prefix: s.Prefix, Suffix: s.Suffix},
			Kind:       s.Kind,
			Directives: s.Directives,
		}
	}
	return banner.Default().With(o)
}

// Excluded reports whether the slash-separated path matches an exclude
// pattern.
func (c *Config) Excluded(path string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
