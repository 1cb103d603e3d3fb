// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// 🔄 Replacement represents a literal string replacement
type Replacement struct {
	Old string `yaml:"old"` // Literal to search for
	New string `yaml:"new"` // Literal to put in its place
}

// 📚 Config represents the complete configuration of a run
type Config struct {
	Root         string        `yaml:"root"`         // Directory to walk
	Suffixes     []string      `yaml:"suffixes"`     // Recognized file name endings
	Replacements []Replacement `yaml:"replacements"` // Replacements applied in order
}

// 🎯 Default returns the built-in configuration
func Default() (*Config, error) {
	cfg, err := Parse(defaultsYAML)
	if err != nil {
		return nil, errors.Errorf("loading built-in defaults: %w", err)
	}
	return cfg, nil
}

// 📝 Parse decodes and validates a YAML config document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}

	if len(cfg.Suffixes) == 0 {
		return errors.Errorf("at least one suffix is required")
	}
	for i, suffix := range cfg.Suffixes {
		if !strings.HasPrefix(suffix, ".") || len(suffix) < 2 {
			return errors.Errorf("suffix %d: %q must start with a dot", i, suffix)
		}
	}

	if len(cfg.Replacements) == 0 {
		return errors.Errorf("at least one replacement is required")
	}
	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacement %d: old is required", i)
		}
		// a New that contains its Old would keep matching on every run
		if strings.Contains(r.New, r.Old) {
			return errors.Errorf("replacement %d: new %q contains old %q", i, r.New, r.Old)
		}
	}

	cfg.Root = filepath.Clean(cfg.Root)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	pairs := make([]string, 0, len(cfg.Replacements))
	for _, r := range cfg.Replacements {
		pairs = append(pairs, fmt.Sprintf("%q -> %q", r.Old, r.New))
	}
	return fmt.Sprintf("%s [%s] %s", cfg.Root, strings.Join(cfg.Suffixes, ","), strings.Join(pairs, "; "))
}
