// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

import "github.com/scanplane/hsr/mathx"

// frame is one level of the descent stack a Push walks while looking
// for where a span belongs: the node visited at that level, and the
// [left, right) screen-space window that node was constrained to.
type frame struct {
	span        *Span
	left, right float32
}

// Push inserts the screen-space segment (x0,w0)-(x1,w1) as an opaque
// surface with the given id, clipping it against — and clipping away —
// whatever already occupies its x-range. w0 and w1 are reciprocal
// view-space depths (1/z), so a larger value means closer to the eye.
//
// Push returns Inserted if any visible geometry changed, FullyOccluded
// if the pushed span was entirely hidden behind what's already there.
// It returns ErrMaxDepthExceeded if the descent would exceed the
// buffer's configured MaxDepth, leaving the buffer in whatever state it
// reached before the limit was hit; Destroy remains safe to call
// afterward. It returns ErrInvalidInput if x1 <= x0 or if w0 or w1 is
// not positive.
func (b *Buffer) Push(x0, x1, w0, w1 float32, id byte) (Status, error) {
	if x1 <= x0 {
		return 0, wrapInvalid("x1 (%v) must be greater than x0 (%v)", x1, x0)
	}
	if w0 <= 0 || w1 <= 0 {
		return 0, wrapInvalid("w0 (%v) and w1 (%v) must be positive", w0, w1)
	}

	size := x1 - x0
	curr := b.Root

	if curr == nil {
		clipLeft := mathx.MaxPositive(-x0, 0)
		clipRight := mathx.MaxPositive(x1-float32(b.Size), 0)
		clipped := size - clipRight - clipLeft
		if clipped <= 0 {
			return FullyOccluded, nil
		}
		newX0 := x0 + clipLeft
		newX1 := newX0 + clipped
		b.Root = newSpan(newX0, newX1,
			mathx.Lerp(w0, w1, newX0-x0, size),
			mathx.Lerp(w0, w1, newX1-x0, size),
			id)
		return Inserted, nil
	}

	left, right := float32(0), float32(b.Size)
	x, remaining := x0, size
	pushed := false

	stack := make([]frame, b.MaxDepth)
	depth := 0

	for remaining > 0 {
		var parent *Span

		for curr != nil {
			if depth == b.MaxDepth {
				return 0, ErrMaxDepthExceeded
			}

			parent = curr
			stack[depth] = frame{parent, left, right}
			depth++

			parentSize := parent.X1 - parent.X0
			w := mathx.Lerp(w0, w1, x-x0, size)

			xi, leftness, res := b.intersect(x, w, x1, w1, parent.X0, parent.W0, parent.X1, parent.W1)
			intersecting := res == mathx.Intersecting

			if x < parent.X0 {
				if x1 > parent.X0 {
					switch {
					case intersecting && leftness > 0 && x1 < parent.X1:
						b.bisect(parent, x0, x1, w0, w1, xi, x1, id)
						pushed = true
					case intersecting && leftness > 0:
						parent.W1 = mathx.Lerp(parent.W0, parent.W1, xi-parent.X0, parentSize)
						parent.X1 = xi
					case intersecting:
						parent.W0 = mathx.Lerp(parent.W0, parent.W1, xi-parent.X0, parentSize)
						parent.X0 = xi
					default:
						wAtParentX0 := mathx.Lerp(w0, w1, parent.X0-x0, size)
						wAtParentX0Comp := mathx.IntegerDepth(wAtParentX0)
						parentW0Comp := mathx.IntegerDepth(parent.W0)

						if parentW0Comp < wAtParentX0Comp || (parentW0Comp == wAtParentX0Comp && leftness > 0) {
							if x1 < parent.X1 {
								parent.W0 = mathx.Lerp(parent.W0, parent.W1, x1-parent.X0, parentSize)
								parent.X0 = x1
							} else {
								parent.W0 = wAtParentX0
								parent.W1 = mathx.Lerp(w0, w1, parent.X1-x0, size)
								parent.ID = id
								pushed = true
							}
						}
					}
				}
				right = parent.X0
				curr = parent.Left
			} else {
				if x < parent.X1 {
					switch {
					case intersecting && leftness > 0 && x1 < parent.X1:
						b.bisect(parent, x0, x1, w0, w1, xi, x1, id)
						pushed = true
					case intersecting && leftness > 0:
						parent.W1 = mathx.Lerp(parent.W0, parent.W1, xi-parent.X0, parentSize)
						parent.X1 = xi
					case intersecting && x > parent.X0:
						b.bisect(parent, x0, x1, w0, w1, x, xi, id)
						pushed = true
					case intersecting:
						parent.W0 = mathx.Lerp(parent.W0, parent.W1, xi-parent.X0, parentSize)
						parent.X0 = xi
						right = parent.X0
						curr = parent.Left
						continue
					default:
						parentWAtX := mathx.Lerp(parent.W0, parent.W1, x-parent.X0, parentSize)
						parentWAtXComp := mathx.IntegerDepth(parentWAtX)
						wComp := mathx.IntegerDepth(w)

						if parentWAtXComp < wComp || (parentWAtXComp == wComp && leftness > 0) {
							switch {
							case x > parent.X0 && x1 < parent.X1:
								b.bisect(parent, x0, x1, w0, w1, x, x1, id)
								pushed = true
							case x > parent.X0:
								parent.W1 = mathx.Lerp(parent.W0, parent.W1, x-parent.X0, parentSize)
								parent.X1 = x
							case x1 < parent.X1:
								parent.W0 = mathx.Lerp(parent.W0, parent.W1, x1-parent.X0, parentSize)
								parent.X0 = x1
								right = parent.X0
								curr = parent.Left
								continue
							default:
								parent.W0 = w
								parent.W1 = mathx.Lerp(w0, w1, parent.X1-x0, size)
								parent.ID = id
								pushed = true
							}
						}
					}
				}
				left = parent.X1
				curr = parent.Right
			}
		}

		clipLeft := mathx.MaxPositive(left-x, 0)
		clipRight := mathx.MaxPositive(x+remaining-right, 0)
		clipped := remaining - clipLeft - clipRight

		if clipped > 0 {
			newX0 := x + clipLeft
			newX1 := newX0 + clipped
			leaf := newSpan(newX0, newX1,
				mathx.Lerp(w0, w1, newX0-x0, size),
				mathx.Lerp(w0, w1, newX1-x0, size),
				id)
			curr = leaf
			if x < parent.X0 {
				parent.Left = leaf
			} else {
				parent.Right = leaf
			}
			pushed = true
		}

		insertionBookmark := -1
		imbalanceBookmark := -1
		stackDepth := depth - 1
		tmpX := x

		for i := 0; i < depth; i++ {
			if insertionBookmark >= 0 && imbalanceBookmark >= 0 {
				break
			}

			parentSpan := stack[stackDepth].span

			if insertionBookmark < 0 && tmpX < parentSpan.X0 {
				insertionBookmark = stackDepth
			}
			tmpX = parentSpan.X0

			if imbalanceBookmark < 0 {
				bf := balanceFactor(parentSpan)
				if bf < -1 || bf > 1 {
					imbalanceBookmark = stackDepth
				} else if curr != nil {
					parentSpan.Height = max(parentSpan.Height, depth-stackDepth)
				}
			}

			stackDepth--
		}

		if insertionBookmark >= 0 {
			scope := stack[insertionBookmark]
			curr = scope.span
			left, right = scope.left, scope.right
			x = curr.X0
			remaining = clipRight
			depth = insertionBookmark
		} else {
			remaining = 0
		}

		if imbalanceBookmark >= 0 {
			var imbalanceParent *Span
			if imbalanceBookmark > 0 {
				imbalanceParent = stack[imbalanceBookmark-1].span
			}

			newParent := rebalance(stack[imbalanceBookmark].span)

			if imbalanceParent != nil {
				if newParent.X0 < imbalanceParent.X0 {
					imbalanceParent.Left = newParent
				} else {
					imbalanceParent.Right = newParent
				}
			} else {
				b.Root = newParent
			}

			if imbalanceBookmark <= insertionBookmark {
				i := imbalanceBookmark
				newLeft, newRight := float32(0), float32(b.Size)

				if i > 0 {
					parentScope := stack[i-1]
					newLeft, newRight = parentScope.left, parentScope.right
					if newParent.X0 < parentScope.span.X0 {
						newRight = parentScope.span.X0
					} else {
						newLeft = parentScope.span.X1
					}
				}

				for stackSpan := newParent; stackSpan != nil; {
					stack[i] = frame{stackSpan, newLeft, newRight}
					if stackSpan == curr {
						break
					}
					if x < stackSpan.X0 {
						newRight = stackSpan.X0
						stackSpan = stackSpan.Left
					} else {
						newLeft = stackSpan.X1
						stackSpan = stackSpan.Right
					}
					i++
				}

				left, right = newLeft, newRight
				depth = i
			}
		}
	}

	if !pushed {
		return FullyOccluded, nil
	}
	return Inserted, nil
}
