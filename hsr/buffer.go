// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsr implements hidden-surface removal for a single
// horizontal scanline. A Buffer holds a self-balancing tree of
// disjoint, opaque, visible spans indexed by screen-space x; pushing a
// new span clips it against whatever already occupies its x-range,
// simultaneously clipping away the parts of existing spans that the
// newcomer occludes, and bisects at the crossover point when two
// spans interpenetrate along their shared x-extent.
//
// A Buffer is not safe for concurrent use; it is meant to be owned
// exclusively by the caller assembling one scanline's worth of
// geometry.
package hsr

// Status is the outcome of a successful Push call.
type Status int

const (
	// Inserted means the buffer's visible geometry changed.
	Inserted Status = iota
	// FullyOccluded means the pushed span was entirely behind
	// already-visible geometry; the buffer is unchanged. This is
	// informational, not an error.
	FullyOccluded
)

func (s Status) String() string {
	if s == FullyOccluded {
		return "fully_occluded"
	}
	return "inserted"
}

// Buffer is a scanline's worth of visible, non-overlapping spans plus
// the configuration used to interpret them.
type Buffer struct {
	Root *Span

	// Size is the buffer width in pixels; spans are clipped to
	// [0, Size].
	Size int
	// ZNear is the view-space distance from the eye to the
	// projection plane, used to lift screen-space endpoints back to
	// view space for the intersection test.
	ZNear float32
	// MaxDepth bounds the per-push descent stack. Exceeding it aborts
	// the push with ErrMaxDepthExceeded.
	MaxDepth int
}

// NewBuffer allocates an empty Buffer with the given configuration.
func NewBuffer(size int, zNear float32, maxDepth int) (*Buffer, error) {
	if size < 1 {
		return nil, wrapInvalid("size must be >= 1, got %d", size)
	}
	if zNear <= 0 {
		return nil, wrapInvalid("z_near must be positive, got %v", zNear)
	}
	if maxDepth < 1 {
		return nil, wrapInvalid("max_depth must be >= 1, got %d", maxDepth)
	}
	return &Buffer{Size: size, ZNear: zNear, MaxDepth: maxDepth}, nil
}

// Destroy releases the entire tree. It is safe to call on a buffer
// left in a partially mutated state by a push that aborted on
// ErrMaxDepthExceeded.
func (b *Buffer) Destroy() {
	destroy(b.Root)
	b.Root = nil
}

// destroy walks a subtree in post-order using an explicit stack (never
// recursing on tree depth, which can run into the thousands) and
// severs every child link on the way out. Go's collector reclaims the
// nodes; the pointer clearing exists so a caller holding a stray
// reference into the old tree can't observe a half-mutated shape.
func destroy(root *Span) {
	if root == nil {
		return
	}
	stack := []*Span{root}
	var lastVisited *Span
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		switch {
		case top.Left != nil && lastVisited != top.Left && lastVisited != top.Right:
			stack = append(stack, top.Left)
		case top.Right != nil && lastVisited != top.Right:
			stack = append(stack, top.Right)
		default:
			stack = stack[:len(stack)-1]
			lastVisited = top
			top.Left, top.Right = nil, nil
		}
	}
}
