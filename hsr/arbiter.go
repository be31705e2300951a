// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

import "github.com/scanplane/hsr/mathx"

// intersect lifts the two screen-space segments u=(ux0,uw0)-(ux1,uw1) and
// v=(vx0,vw0)-(vx1,vw1) into view space and finds where they cross. When
// they do cross, x is the screen-space x of the crossover and res is
// mathx.Intersecting. Otherwise x is meaningless and leftness alone
// carries the front/back tie-break: leftness > 0 means u lies in front
// of v at the point the caller cares about.
func (b *Buffer) intersect(ux0, uw0, ux1, uw1, vx0, vw0, vx1, vw1 float32) (x, leftness float32, res mathx.Result) {
	size := float32(b.Size)
	a := mathx.Lift(ux0, uw0, size, b.ZNear)
	bb := mathx.Lift(ux1, uw1, size, b.ZNear)
	c := mathx.Lift(vx0, vw0, size, b.ZNear)
	d := mathx.Lift(vx1, vw1, size, b.ZNear)

	point, leftness, res := mathx.IntersectSpans(a, bb, c, d)
	if res != mathx.Intersecting {
		return 0, leftness, res
	}
	return mathx.Unlift(point, size, b.ZNear), leftness, res
}
