// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// eps bounds the parametric interval within which an intersection is
// accepted. Coincident endpoints (t or q outside (eps, 1-eps)) are
// deliberately excluded and resolved by the Leftness fallback instead
// of being reported as an intersection; widening this value turns
// near-endpoint brushes into bisections, narrowing it risks infinite
// re-descent on coincident inputs.
const eps = 1e-6

// Result classifies the outcome of IntersectSpans.
type Result int

const (
	// Intersecting means the two segments cross at a single interior
	// point, returned as the first result value.
	Intersecting Result = iota
	// Parallel means the segments have zero determinant and a
	// nonzero numerator: they never meet.
	Parallel
	// Degenerate means both the numerator and the determinant are
	// zero: the segments are collinear.
	Degenerate
	// NotIntersecting means the segments' supporting lines cross, but
	// outside the (eps, 1-eps) band of at least one parameter.
	NotIntersecting
)

// IntersectSpans computes the intersection of view-space segment a->b
// with view-space segment c->d, and additionally reports leftness: the
// sign of a cross product that indicates, when the segments do not
// properly intersect, whether a->b lies in front of c->d. leftness is
// zero for Parallel and Degenerate, since those two cases carry no
// well-defined front/back relationship from geometry alone and are
// left to the caller's depth-based tie-break.
func IntersectSpans(a, b, c, d Vec2) (point Vec2, leftness float32, result Result) {
	u := b.Sub(a)
	v := d.Sub(c)
	ca := c.Sub(a)

	numerT := Cross(ca, v)
	denom := Cross(u, v)

	if denom == 0 {
		if numerT != 0 {
			result = Parallel
		} else {
			result = Degenerate
		}
		return Vec2{}, 0, result
	}

	numerQ := Cross(ca, u)
	t := numerT / denom
	q := numerQ / denom

	if t <= eps || t >= 1-eps || q <= eps || q >= 1-eps {
		leftness = Cross(b.Sub(c), d.Sub(c))
		return Vec2{}, leftness, NotIntersecting
	}

	point = Vec2{X: t*u.X + a.X, Z: t*u.Z + a.Z}
	leftness = Cross(a.Sub(point), c.Sub(point))
	return point, leftness, Intersecting
}
