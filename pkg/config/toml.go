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
	"strings"

	"github.com/BurntSushi/toml"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&TOMLParser{})
}

// 🔧 TOMLParser implements the Parser interface for TOML files
type TOMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *TOMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".toml")
}

// 📝 Parse parses the config from TOML
func (p *TOMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	// Define TOML schema
	type tomlExclusions struct {
		Dirs     []string `toml:"dirs"`
		Suffixes []string `toml:"suffixes"`
		Names    []string `toml:"names"`
		Patterns []string `toml:"patterns"`
	}
	type tomlConfig struct {
		Source        string          `toml:"source"`
		Destination   string          `toml:"destination"`
		DefaultBranch string          `toml:"default_branch"`
		CommitMessage string          `toml:"commit_message"`
		Exclusions    *tomlExclusions `toml:"exclusions"`
		Async         bool            `toml:"async"`
	}

	var tomlCfg tomlConfig
	if err := toml.Unmarshal(data, &tomlCfg); err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}

	// Convert to model
	cfg := &Config{
		Source:        tomlCfg.Source,
		Destination:   tomlCfg.Destination,
		DefaultBranch: tomlCfg.DefaultBranch,
		CommitMessage: tomlCfg.CommitMessage,
		Async:         tomlCfg.Async,
	}
	if tomlCfg.Exclusions != nil {
		cfg.Exclusions = &Exclusions{
			Dirs:     tomlCfg.Exclusions.Dirs,
			Suffixes: tomlCfg.Exclusions.Suffixes,
			Names:    tomlCfg.Exclusions.Names,
			Patterns: tomlCfg.Exclusions.Patterns,
		}
	}
	return cfg, nil
}
