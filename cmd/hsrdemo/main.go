// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hsrdemo replays a scanline scenario described in a TOML
// scene file against an hsr.Buffer and prints the resulting spans: a
// structural dump of the balanced tree, and a colorized rasterization
// of the visible scanline.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/scanplane/hsr/logx"
	"github.com/scanplane/hsr/sceneconfig"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hsrdemo", flag.ContinueOnError)
	scenePath := fs.String("scene", "", "path to a scene TOML file (required)")
	verbose := fs.Bool("v", false, "log every push at debug level")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "hsrdemo: -scene is required")
		return 2
	}
	if *verbose {
		logx.SetLevel(slog.LevelDebug)
	}

	scene, err := sceneconfig.Load(*scenePath)
	if err != nil {
		logx.Logger.Error("loading scene", "error", err)
		return 1
	}

	buf, err := scene.NewBuffer()
	if err != nil {
		logx.Logger.Error("configuring buffer", "error", err)
		return 1
	}
	defer buf.Destroy()

	for i, p := range scene.Push {
		if p.ID == "" {
			logx.Logger.Error("push has empty id", "index", i)
			return 1
		}
		status, err := buf.Push(p.X0, p.X1, p.W0, p.W1, p.ID[0])
		if err != nil {
			logx.Logger.Error("push failed", "index", i, "id", p.ID, "error", err)
			return 1
		}
		logx.Logger.Debug("pushed span", "index", i, "id", p.ID, "status", status)
	}

	fmt.Print(buf.Dump())
	fmt.Println(colorize(buf.Print()))
	return 0
}

// colorize maps each distinct span id in a Print() line to a stable
// ANSI color so overlapping pushes are easy to tell apart in a
// terminal; empty pixels ('_') are left uncolored.
func colorize(line string) string {
	profile := termenv.ColorProfile()
	var b []byte
	for _, c := range []byte(line) {
		if c == '_' {
			b = append(b, c)
			continue
		}
		styled := termenv.String(string(c)).
			Foreground(profile.Color(fmt.Sprintf("%d", int(c)%8))).
			String()
		b = append(b, styled...)
	}
	return string(b)
}
