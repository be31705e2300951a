// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

import (
	"fmt"
	"math"
	"strings"
)

// InOrder visits every span left to right by screen-space x, using an
// explicit stack rather than recursion.
func (b *Buffer) InOrder(visit func(*Span)) {
	stack := make([]*Span, 0, b.MaxDepth+1)
	curr := b.Root
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.Left
		}
		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(curr)
		curr = curr.Right
	}
}

// Dump renders the tree's shape to a string, one span per line indented
// by its depth, in the format "[id] [x0, x1)".
func (b *Buffer) Dump() string {
	if b.Root == nil {
		return "empty buffer\n"
	}

	var out strings.Builder
	type frame struct {
		span  *Span
		depth int
	}
	stack := make([]frame, 0, b.MaxDepth+1)
	stack = append(stack, frame{b.Root, 0})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&out, "%s[%c] [%.3f, %.3f)\n", strings.Repeat(" ", f.depth*4), f.span.ID, f.span.X0, f.span.X1)
		if f.span.Right != nil {
			stack = append(stack, frame{f.span.Right, f.depth + 1})
		}
		if f.span.Left != nil {
			stack = append(stack, frame{f.span.Left, f.depth + 1})
		}
	}
	return out.String()
}

// Print rasterizes the buffer's visible spans into a Size-wide string,
// one byte per pixel: a span's ID fills its covered pixels, everything
// else is '_'.
func (b *Buffer) Print() string {
	line := make([]byte, b.Size)
	for i := range line {
		line[i] = '_'
	}
	b.InOrder(func(s *Span) {
		x0 := int(math.Ceil(float64(s.X0) - 0.5))
		x1 := int(math.Ceil(float64(s.X1) - 0.5))
		for x := x0; x < x1; x++ {
			if x >= 0 && x < b.Size {
				line[x] = s.ID
			}
		}
	})
	return string(line)
}
