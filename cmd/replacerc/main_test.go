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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/replacerc/pkg/config"
	"github.com/walteh/replacerc/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

func setupRoot(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))

	files := map[string]string{
		"a.ts":         `const img = "/images/demo/a.png";`,
		"nested/b.tsx": `<img src="/images/demo/b.png" />`,
		"c.ts":         `export const x = 1;`,
		"d.js":         `const img = "/images/demo/d.png";`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}

	return root
}

func newTestHandler(root string) (*handler, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &handler{
		stdout: stdout,
		stderr: stderr,
		loadConfig: func() (*config.Config, error) {
			cfg, err := config.Default()
			if err != nil {
				return nil, err
			}
			cfg.Root = root
			return cfg, nil
		},
	}, stdout, stderr
}

func TestRootCommand(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	root := setupRoot(t)
	h, stdout, stderr := newTestHandler(root)

	cmd := newRootCmd(h)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()), "run should succeed")

	want := "Updated " + filepath.Join(root, "a.ts") + "\n" +
		"Updated " + filepath.Join(root, "nested", "b.tsx") + "\n"
	assert.Equal(t, want, stdout.String(), "stdout should only list rewritten files")
	assert.Contains(t, stderr.String(), "2 of 3 files updated")

	got, err := os.ReadFile(filepath.Join(root, "d.js"))
	require.NoError(t, err)
	assert.Equal(t, `const img = "/images/demo/d.png";`, string(got), "non-candidates should be untouched")
}

func TestRootCommandSecondRunIsQuiet(t *testing.T) {
	root := setupRoot(t)

	h, _, _ := newTestHandler(root)
	cmd := newRootCmd(h)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	h, stdout, _ := newTestHandler(root)
	cmd = newRootCmd(h)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Empty(t, stdout.String(), "second run should rewrite nothing")
}

func TestRootCommandDebug(t *testing.T) {
	root := setupRoot(t)
	h, _, stderr := newTestHandler(root)

	cmd := newRootCmd(h)
	cmd.SetArgs([]string{"--debug"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.True(t, h.debug, "debug flag should be set")
	assert.Contains(t, stderr.String(), `"diff"`, "debug runs should log patches")
	assert.Contains(t, stderr.String(), `"level":"debug"`)
}

func TestRootCommandMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "src")
	h, stdout, stderr := newTestHandler(missing)

	cmd := newRootCmd(h)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, walk.ErrRootNotFound), "error should wrap ErrRootNotFound")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Run failed")
}

func TestRootCommandBadConfig(t *testing.T) {
	h, _, stderr := newTestHandler("")
	h.loadConfig = func() (*config.Config, error) {
		return nil, errors.New("broken defaults")
	}

	cmd := newRootCmd(h)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.Contains(t, stderr.String(), "Failed to initialize")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	h, stdout, _ := newTestHandler(setupRoot(t))

	cmd := newRootCmd(h)
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.ExecuteContext(context.Background()))
	assert.Empty(t, stdout.String())
}

func TestVersionCommand(t *testing.T) {
	h, stdout, _ := newTestHandler(t.TempDir())

	cmd := newRootCmd(h)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, stdout.String(), "replacerc version info")
	assert.Contains(t, stdout.String(), "Go:")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion(&VersionInfo{
		Version:   "v1.2.3",
		GoVersion: "go1.23.5",
		Platform:  "linux/amd64",
		Revision:  "abc123",
		Modified:  true,
	})

	assert.Contains(t, out, "Version:   v1.2.3")
	assert.Contains(t, out, "Revision:  abc123 (modified)")
	assert.Contains(t, out, "Platform:  linux/amd64")
}
