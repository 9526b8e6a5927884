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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/recolor/pkg/palette"
	"github.com/walteh/recolor/pkg/text"
)

// DefaultTarget is the document recolored when neither config nor flags name one
const DefaultTarget = "grade10/notes/Chemistry/Chapter-4-Carbon.html"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement represents a literal string replacement
type Replacement struct {
	Old  string  `json:"old" yaml:"old"`                       // Original string to replace
	New  string  `json:"new" yaml:"new"`                       // New string to use
	File *string `json:"file,omitempty" yaml:"file,omitempty"` // Optional glob the target must match
}

// 📚 Config represents the complete configuration
type Config struct {
	Target       string        `json:"target" yaml:"target"`
	Palette      string        `json:"palette,omitempty" yaml:"palette,omitempty"`
	Message      string        `json:"message,omitempty" yaml:"message,omitempty"`
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty"`
}

// 🏭 Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Target == "" {
		cfg.Target = DefaultTarget
	}
	cfg.Target = filepath.Clean(cfg.Target)

	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacements[%d].old is required", i)
		}
	}

	if len(cfg.Replacements) > 0 {
		if cfg.Message == "" {
			cfg.Message = "Colors updated successfully!"
		}
		return nil
	}

	if cfg.Palette == "" {
		cfg.Palette = palette.DefaultName
	}
	p, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return errors.Errorf("palette: %w", err)
	}
	if cfg.Message == "" {
		cfg.Message = p.Message
	}

	return nil
}

// 📋 Rules returns the replacement table: explicit replacements win over the palette
func (cfg *Config) Rules() ([]text.ReplacementRule, error) {
	if len(cfg.Replacements) > 0 {
		rules := make([]text.ReplacementRule, 0, len(cfg.Replacements))
		for _, r := range cfg.Replacements {
			rule := text.ReplacementRule{FromText: r.Old, ToText: r.New}
			if r.File != nil {
				rule.FileFilterGlob = *r.File
			}
			rules = append(rules, rule)
		}
		return rules, nil
	}

	p, err := palette.Lookup(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return p.Rules(), nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	source := cfg.Palette
	if len(cfg.Replacements) > 0 {
		source = fmt.Sprintf("%d replacements", len(cfg.Replacements))
	}
	return fmt.Sprintf("%s (%s)", cfg.Target, source)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}
