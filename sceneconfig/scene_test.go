// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
[buffer]
size = 16
z_near = 1
max_depth = 8

[[push]]
x0 = 0
x1 = 8
w0 = 0.1
w1 = 0.1
id = "A"

[[push]]
x0 = 4
x1 = 12
w0 = 0.5
w1 = 0.5
id = "B"
`

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAndReplay(t *testing.T) {
	path := writeScene(t, testScene)

	scene, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, scene.Buffer.Size)
	assert.Equal(t, float32(1), scene.Buffer.ZNear)
	require.Len(t, scene.Push, 2)

	buf, err := scene.NewBuffer()
	require.NoError(t, err)

	statuses, err := scene.Replay(buf)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.NotNil(t, buf.Root)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestReplayRejectsEmptyID(t *testing.T) {
	path := writeScene(t, `
[buffer]
size = 8
z_near = 1
max_depth = 8

[[push]]
x0 = 0
x1 = 4
w0 = 1
w1 = 1
id = ""
`)
	scene, err := Load(path)
	require.NoError(t, err)

	buf, err := scene.NewBuffer()
	require.NoError(t, err)

	_, err = scene.Replay(buf)
	assert.Error(t, err)
}
