// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

import "github.com/scanplane/hsr/mathx"

// bisect replaces parent's visible extent with [visx0, visx1) of the
// incoming span (x0,w0)-(x1,w1), and re-inserts what parent used to
// cover on either side of that window as two new leaves: one hung off
// parent's Left holding parent's old [x0, visx0) remainder, one hung
// off parent's Right holding its old [visx1, x1) remainder. Each
// remainder takes parent's old subtree on its own side as its child.
// The left remainder is rebalanced in place when that leaves it more
// than one level left-heavy; the right remainder is not rebalanced
// here, whatever the height of the old Right subtree below it.
func (b *Buffer) bisect(parent *Span, x0, x1, w0, w1, visX0, visX1 float32, id byte) {
	size := x1 - x0
	oldSize := parent.X1 - parent.X0
	oldX0, oldX1 := parent.X0, parent.X1
	oldW0, oldW1 := parent.W0, parent.W1
	oldID := parent.ID

	parent.X0, parent.X1 = visX0, visX1
	parent.W0 = mathx.Lerp(w0, w1, visX0-x0, size)
	parent.W1 = mathx.Lerp(w0, w1, visX1-x0, size)
	parent.ID = id

	left := newSpan(oldX0, visX0, oldW0, mathx.Lerp(oldW0, oldW1, visX0-oldX0, oldSize), oldID)
	left.Left = parent.Left
	parent.Left = left
	if balanceFactor(left) < -1 {
		parent.Left = rebalance(left)
	} else {
		left.Height = computeHeight(left)
	}

	right := newSpan(visX1, oldX1, mathx.Lerp(oldW0, oldW1, visX1-oldX0, oldSize), oldW1, oldID)
	right.Right = parent.Right
	parent.Right = right
	right.Height = computeHeight(right)

	parent.Height = computeHeight(parent)
}
