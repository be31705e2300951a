// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

// Span is one currently visible, opaque interval on the scanline.
// X0 and X1 are screen-space endpoints (X0 < X1); W0 and W1 are the
// reciprocal view-space depths at those endpoints, with a larger W
// meaning closer to the eye. Left holds spans with strictly smaller
// X0, Right holds spans with strictly larger X0; the two subtrees
// never overlap in x with each other or with this span.
type Span struct {
	X0, X1 float32
	W0, W1 float32
	ID     byte

	Left, Right *Span
	Height      int
}

// newSpan allocates a leaf span: both children absent, height zero.
func newSpan(x0, x1, w0, w1 float32, id byte) *Span {
	return &Span{X0: x0, X1: x1, W0: w0, W1: w1, ID: id}
}

// height returns s.Height, treating a nil span as having height -1 so
// that an absent child contributes zero to 1+max(left,right).
func height(s *Span) int {
	if s == nil {
		return -1
	}
	return s.Height
}

// computeHeight recomputes s's cached height from its children's
// current heights. It does not recurse; callers are responsible for
// having already brought the children's own Height fields up to date.
func computeHeight(s *Span) int {
	l, r := height(s.Left), height(s.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// balanceFactor is height(Right) - height(Left). The tree invariant
// requires this to stay within [-1, 1] at every node.
func balanceFactor(s *Span) int {
	return height(s.Right) - height(s.Left)
}
