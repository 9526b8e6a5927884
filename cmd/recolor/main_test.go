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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/recolor/pkg/fileio"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		config      func(t *testing.T, dir, target string) []string
		want        string
		wantErr     bool
		errContains string
		wantOutput  []string
	}{
		{
			name:  "positional_path",
			input: "background-color: #22c55e; box-shadow: rgba(34, 197, 94, 0.5);",
			config: func(t *testing.T, dir, target string) []string {
				return []string{target}
			},
			want: "background-color: #3b82f6; box-shadow: rgba(59, 130, 246, 0.5);",
			wantOutput: []string{
				"recolor • recoloring",
				"✅ Colors updated from green to blue successfully!",
			},
		},
		{
			name:  "no_matches_still_succeeds",
			input: "<p>nothing green here</p>",
			config: func(t *testing.T, dir, target string) []string {
				return []string{target}
			},
			want: "<p>nothing green here</p>",
			wantOutput: []string{
				"no match",
				"✅ Colors updated from green to blue successfully!",
			},
		},
		{
			name:  "yaml_config_target",
			input: "color:#16a34a",
			config: func(t *testing.T, dir, target string) []string {
				path := filepath.Join(dir, "recolor.yaml")
				content := "target: " + target + "\nmessage: all blue\n"
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
				return []string{"--config", path}
			},
			want:       "color:#2563eb",
			wantOutput: []string{"✅ all blue"},
		},
		{
			name:  "hcl_config_replacements",
			input: "a #ffffff b #22c55e",
			config: func(t *testing.T, dir, target string) []string {
				path := filepath.Join(dir, "recolor.hcl")
				content := `
replacement {
  old = "#ffffff"
  new = "#000000"
}
`
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
				return []string{"-c", path, target}
			},
			want:       "a #000000 b #22c55e",
			wantOutput: []string{"✅ Colors updated successfully!"},
		},
		{
			name:  "palette_flag_overrides_config",
			input: "#22c55e #ffffff",
			config: func(t *testing.T, dir, target string) []string {
				path := filepath.Join(dir, "recolor.json")
				content := `{"replacements": [{"old": "#ffffff", "new": "#000000"}]}`
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
				return []string{"-c", path, "-p", "green-to-blue", target}
			},
			want:       "#3b82f6 #ffffff",
			wantOutput: []string{"✅ Colors updated from green to blue successfully!"},
		},
		{
			name:  "unknown_palette",
			input: "#22c55e",
			config: func(t *testing.T, dir, target string) []string {
				return []string{"--palette", "sepia", target}
			},
			want:        "#22c55e",
			wantErr:     true,
			errContains: "unknown palette",
		},
		{
			name:  "too_many_args",
			input: "#22c55e",
			config: func(t *testing.T, dir, target string) []string {
				return []string{target, target}
			},
			want:        "#22c55e",
			wantErr:     true,
			errContains: "accepts at most 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			target := filepath.Join(dir, "Chapter-4-Carbon.html")
			require.NoError(t, os.WriteFile(target, []byte(tt.input), 0o644))

			out, err := runCmd(t, tt.config(t, dir, target)...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
			}

			got, err := os.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))

			for _, want := range tt.wantOutput {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRootCommandMissingFile(t *testing.T) {
	out, err := runCmd(t, filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fileio.ErrNotFound))
	assert.NotContains(t, out, "successfully")
}

func TestPalettesCommand(t *testing.T) {
	out, err := runCmd(t, "palettes")
	require.NoError(t, err)

	assert.Contains(t, out, "green-to-blue")
	assert.Contains(t, out, "rgba(34, 197, 94")
	assert.Contains(t, out, "#0c1e3d")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "recolor version info")
	assert.Contains(t, out, "Go:")
}
