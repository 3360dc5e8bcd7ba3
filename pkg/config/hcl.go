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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclExclusions struct {
		Dirs     []string `hcl:"dirs,optional"`
		Suffixes []string `hcl:"suffixes,optional"`
		Names    []string `hcl:"names,optional"`
		Patterns []string `hcl:"patterns,optional"`
	}
	type hclConfig struct {
		Source        string         `hcl:"source,optional"`
		Destination   string         `hcl:"destination,optional"`
		DefaultBranch string         `hcl:"default_branch,optional"`
		CommitMessage string         `hcl:"commit_message,optional"`
		Exclusions    *hclExclusions `hcl:"exclusions,block"`
		Async         bool           `hcl:"async,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Source:        hclCfg.Source,
		Destination:   hclCfg.Destination,
		DefaultBranch: hclCfg.DefaultBranch,
		CommitMessage: hclCfg.CommitMessage,
		Async:         hclCfg.Async,
	}
	if hclCfg.Exclusions != nil {
		cfg.Exclusions = &Exclusions{
			Dirs:     hclCfg.Exclusions.Dirs,
			Suffixes: hclCfg.Exclusions.Suffixes,
			Names:    hclCfg.Exclusions.Names,
			Patterns: hclCfg.Exclusions.Patterns,
		}
	}
	return cfg, nil
}
