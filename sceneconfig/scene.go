// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneconfig loads a scanline scenario from a TOML file: the
// buffer's dimensions plus an ordered list of spans to push onto it.
// It exists so cmd/hsrdemo and tests can describe a scanline
// declaratively instead of hand-assembling Push calls.
package sceneconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/scanplane/hsr/hsr"
)

// BufferSpec configures the buffer a Scene replays its pushes onto.
type BufferSpec struct {
	Size     int     `toml:"size"`
	ZNear    float32 `toml:"z_near"`
	MaxDepth int     `toml:"max_depth"`
}

// PushSpec is one [[push]] entry: a single call to Buffer.Push. ID
// takes only its first byte, so multi-character strings are truncated
// silently — callers wanting distinct spans should use single
// characters or digits.
type PushSpec struct {
	X0 float32 `toml:"x0"`
	X1 float32 `toml:"x1"`
	W0 float32 `toml:"w0"`
	W1 float32 `toml:"w1"`
	ID string  `toml:"id"`
}

// Scene is a buffer configuration plus the ordered pushes to replay
// against it.
type Scene struct {
	Buffer BufferSpec `toml:"buffer"`
	Push   []PushSpec `toml:"push"`
}

// Load reads and unmarshals a scene from a TOML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: reading %s: %w", path, err)
	}
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sceneconfig: parsing %s: %w", path, err)
	}
	return &s, nil
}

// NewBuffer allocates the hsr.Buffer described by s.Buffer.
func (s *Scene) NewBuffer() (*hsr.Buffer, error) {
	return hsr.NewBuffer(s.Buffer.Size, s.Buffer.ZNear, s.Buffer.MaxDepth)
}

// Replay pushes every span in s.Push onto b, in order, stopping at the
// first error.
func (s *Scene) Replay(b *hsr.Buffer) ([]hsr.Status, error) {
	statuses := make([]hsr.Status, 0, len(s.Push))
	for i, p := range s.Push {
		if p.ID == "" {
			return statuses, fmt.Errorf("sceneconfig: push %d: id must not be empty", i)
		}
		status, err := b.Push(p.X0, p.X1, p.W0, p.W1, p.ID[0])
		if err != nil {
			return statuses, fmt.Errorf("sceneconfig: push %d (%s): %w", i, p.ID, err)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
