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

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mirrorpub/mirrorpub/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// 🧪 TestLoadYAML checks YAML parsing with an exclusions override.
func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "release.yaml", `
source: /repos/resume
destination: /repos/resume_public
default_branch: master
commit_message: public release
exclusions:
  dirs: [.git, node_modules]
  suffixes: [.tmp]
  names: [secrets.env]
  patterns: ["**/*.log"]
`)

	cfg, err := config.Load(testContext(t), path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean("/repos/resume"), cfg.Source)
	assert.Equal(t, filepath.Clean("/repos/resume_public"), cfg.Destination)
	assert.Equal(t, "master", cfg.DefaultBranch)
	assert.Equal(t, "public release", cfg.CommitMessage)

	rules := cfg.Rules()
	assert.True(t, rules.Match("/repos/resume/node_modules/x.js"))
	assert.True(t, rules.Match("/repos/resume/secrets.env"))
	assert.True(t, rules.Match("/repos/resume/out/server.log"))
	assert.False(t, rules.Match("/repos/resume/.idea/x"), "file exclusions replace the defaults entirely")
}

// 🧪 TestLoadTOML checks TOML parsing.
func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "release.toml", `
source = "/repos/resume"
destination = "/repos/resume_public"

[exclusions]
dirs = [".git"]
suffixes = ["insyncdl"]
`)

	cfg, err := config.Load(testContext(t), path)
	require.NoError(t, err)

	assert.Equal(t, "main", cfg.DefaultBranch, "defaults fill unset fields")
	assert.Equal(t, "autocommit", cfg.CommitMessage)
	require.NotNil(t, cfg.Exclusions)
	assert.Equal(t, []string{".git"}, cfg.Exclusions.Dirs)
}

// 🧪 TestLoadHCL checks HCL parsing.
func TestLoadHCL(t *testing.T) {
	path := writeConfig(t, "release.hcl", `
source         = "/repos/resume"
destination    = "/repos/resume_public"
default_branch = "main"

exclusions {
  dirs     = [".git", ".idea"]
  patterns = ["**/*.insyncdl"]
}
`)

	cfg, err := config.Load(testContext(t), path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Exclusions)
	assert.Equal(t, []string{".git", ".idea"}, cfg.Exclusions.Dirs)
}

// 🧪 TestLoadUnknownFormat checks the no-parser error.
func TestLoadUnknownFormat(t *testing.T) {
	path := writeConfig(t, "release.ini", "source = x")

	_, err := config.Load(testContext(t), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parser found")
}

// 🧪 TestLoadInvalidPattern checks that a malformed exclusion glob is
// rejected at load time, not silently skipped at match time.
func TestLoadInvalidPattern(t *testing.T) {
	path := writeConfig(t, "release.yaml", `
exclusions:
  patterns: ["[unclosed"]
`)

	_, err := config.Load(testContext(t), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclusion pattern")
}

// 🧪 TestDefaults checks the zero-flag configuration.
func TestDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ".", cfg.Source)
	assert.Equal(t, filepath.Join("..", "resume_public"), cfg.Destination)
	assert.Equal(t, "main", cfg.DefaultBranch)
	assert.Equal(t, "autocommit", cfg.CommitMessage)

	rules := cfg.Rules()
	assert.True(t, rules.Match("/x/.git/config"))
	assert.True(t, rules.Match("/x/file.insyncdl"))
}
