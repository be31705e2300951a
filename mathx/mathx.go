// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides the small float32 geometry kernel that the
// hsr package's visibility arbiter is built on: linear interpolation,
// perspective screen-to-view lifting, 2-D segment intersection, and
// the almost-equal and integer-depth-quantization predicates that
// keep tie-breaking deterministic.
//
// Based on the view-space lifting used by the S-Buffer FAQ
// (https://www.gamedev.net/articles/programming/graphics/s-buffer-faq-r668/).
package mathx

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Vec2 is a 2-D point or vector. In this package it is used both for
// screen-space coordinates and for the (x_view, z_view) pairs produced
// by Lift.
type Vec2 struct {
	X, Z float32
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Z - o.Z}
}

// Cross returns the 2-D cross product (scalar) of u and v.
func Cross(u, v Vec2) float32 {
	return u.X*v.Z - u.Z*v.X
}

// Lerp returns the linear interpolation of a value that is `a` at
// parameter 0 and `b` at parameter `t`, evaluated at `p`.
func Lerp(a, b, p, t float32) float32 {
	return (b-a)*p/t + a
}

// Clamp clamps x to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// MaxPositive returns the greater of a and b, treating a negative
// result as the amount by which a value has run past a clip boundary.
// It mirrors the `SB_MAX` clip-width helper from the original S-Buffer
// header: callers use it to turn "how far past the edge" into a
// non-negative clip width.
func MaxPositive(a, b float32) float32 {
	return math32.Max(a, b)
}

// Lift raises a screen-space endpoint (x, w), where w is the
// reciprocal of view-space depth, back into the 2-D (x_view, z_view)
// plane used for segment intersection. `size` is the buffer width in
// pixels and `zNear` is the distance from the eye to the near-clip
// plane.
func Lift(x, w, size, zNear float32) Vec2 {
	zView := 1 / w
	return Vec2{
		X: (x - size/2) * zView / zNear,
		Z: zView,
	}
}

// Unlift converts a view-space intersection point back to a
// screen-space x coordinate, the inverse of the x half of Lift.
func Unlift(p Vec2, size, zNear float32) float32 {
	return p.X*zNear/p.Z + size/2
}

// AlmostEqual reports whether x and y are within 1e-6 of each other.
// The comparison reinterprets the IEEE-754 bit pattern of the
// difference with the sign bit cleared, rather than calling a library
// Abs, matching the bit-level predicate the reference implementation
// relies on for determinism.
func AlmostEqual(x, y float32) bool {
	d := x - y
	bits := math.Float32bits(d) & 0x7fffffff
	d = math.Float32frombits(bits)
	return d < 1e-6
}

// IntegerDepth quantizes a reciprocal depth to micro-unit integer
// resolution for deterministic tie-breaking. Depths are always
// positive per the Buffer.Push precondition, so truncation and floor
// coincide.
func IntegerDepth(w float32) int64 {
	return int64(w * 1e6)
}
