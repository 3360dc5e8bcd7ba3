// Copyright 2025 the mirrorpub authors
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
	"os"
	"path/filepath"

	"github.com/mirrorpub/mirrorpub/pkg/exclude"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

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

// 🚫 Exclusions lists the paths kept out of the public mirror. When the block
// is omitted from a config file the built-in defaults apply; when present it
// replaces them entirely.
type Exclusions struct {
	Dirs     []string `json:"dirs,omitempty" yaml:"dirs,omitempty"`
	Suffixes []string `json:"suffixes,omitempty" yaml:"suffixes,omitempty"`
	Names    []string `json:"names,omitempty" yaml:"names,omitempty"`
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
}

// 📚 Config represents the complete configuration of a release run.
type Config struct {
	Source        string      `json:"source,omitempty" yaml:"source,omitempty"`
	Destination   string      `json:"destination,omitempty" yaml:"destination,omitempty"`
	DefaultBranch string      `json:"default_branch,omitempty" yaml:"default_branch,omitempty"`
	CommitMessage string      `json:"commit_message,omitempty" yaml:"commit_message,omitempty"`
	Exclusions    *Exclusions `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
	Async         bool        `json:"async,omitempty" yaml:"async,omitempty"`
}

// 🏭 Default returns the configuration used when no file and no flags are
// given: mirror the current directory into a sibling resume_public checkout.
func Default() *Config {
	return &Config{
		Source:        ".",
		Destination:   filepath.Join("..", "resume_public"),
		DefaultBranch: "main",
		CommitMessage: "autocommit",
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.Source == "" {
		cfg.Source = "."
	}
	if cfg.Destination == "" {
		cfg.Destination = filepath.Join("..", "resume_public")
	}
	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = "main"
	}
	if cfg.CommitMessage == "" {
		cfg.CommitMessage = "autocommit"
	}

	// Clean up paths
	cfg.Source = filepath.Clean(cfg.Source)
	cfg.Destination = filepath.Clean(cfg.Destination)

	if err := cfg.Rules().Validate(); err != nil {
		return errors.Errorf("validating exclusions: %w", err)
	}

	return nil
}

// 🚫 Rules returns the exclusion rule set for this configuration.
func (cfg *Config) Rules() exclude.RuleSet {
	if cfg.Exclusions == nil {
		return exclude.Default()
	}
	return exclude.RuleSet{
		Dirs:     cfg.Exclusions.Dirs,
		Suffixes: cfg.Exclusions.Suffixes,
		Names:    cfg.Exclusions.Names,
		Patterns: cfg.Exclusions.Patterns,
	}
}
