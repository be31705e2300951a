// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx wraps log/slog with a leveled default:
// level_default.go sets defaultUserLevel for builds tagged neither
// debug nor release (this package has no file for those tags), and
// this file wires that level into a single package-level logger that
// cmd/hsrdemo logs through.
package logx

import (
	"log/slog"
	"os"
)

// Logger is the logger cmd/hsrdemo writes through; hsr, mathx and
// sceneconfig do not log. It
// starts at defaultUserLevel and can be raised or lowered with
// SetLevel, e.g. from a CLI flag in cmd/hsrdemo.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))

var level = defaultUserLevel

// SetLevel changes the level Logger emits at. It is safe to call before
// or after any log call; the handler reads level by pointer.
func SetLevel(l slog.Level) {
	level = l
}

// Level reports the level Logger currently emits at.
func Level() slog.Level {
	return level
}
