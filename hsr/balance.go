// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

// rebalance restores the AVL invariant at a subtree whose root, oldParent,
// has drifted to a balance factor outside [-1, 1]. It performs a single
// or double rotation depending on the sign of the heavy child's own
// balance factor, refreshes the heights of every node whose height
// changed, and returns the new subtree root. The caller is responsible
// for re-linking that root into whatever pointed at oldParent.
func rebalance(oldParent *Span) (newParent *Span) {
	var child *Span

	if balanceFactor(oldParent) < 0 {
		newParent = oldParent.Left
		child = newParent.Left

		if balanceFactor(newParent) > 0 {
			child = newParent
			newParent = child.Right
			child.Right = newParent.Left
			newParent.Left = child
		}

		oldParent.Left = newParent.Right
		newParent.Right = oldParent
	} else {
		newParent = oldParent.Right
		child = newParent.Right

		if balanceFactor(newParent) < 0 {
			child = newParent
			newParent = child.Left
			child.Left = newParent.Right
			newParent.Right = child
		}

		oldParent.Right = newParent.Left
		newParent.Left = oldParent
	}

	oldParent.Height = computeHeight(oldParent)
	child.Height = computeHeight(child)
	newParent.Height = computeHeight(newParent)

	return newParent
}
