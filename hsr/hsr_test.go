// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferValidation(t *testing.T) {
	_, err := NewBuffer(0, 1, 8)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewBuffer(8, 0, 8)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewBuffer(8, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	b, err := NewBuffer(8, 1, 8)
	require.NoError(t, err)
	assert.Nil(t, b.Root)
}

func TestPushRejectsDegenerateSpan(t *testing.T) {
	b, err := NewBuffer(8, 1, 8)
	require.NoError(t, err)
	_, err = b.Push(4, 4, 1, 1, 'A')
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPushEmptyBufferClipsToBounds(t *testing.T) {
	b, err := NewBuffer(10, 1, 8)
	require.NoError(t, err)

	status, err := b.Push(-2, 5, 1, 2, 'A')
	require.NoError(t, err)
	assert.Equal(t, Inserted, status)
	require.NotNil(t, b.Root)
	assert.Equal(t, float32(0), b.Root.X0)
	assert.Equal(t, float32(5), b.Root.X1)
	assert.InDelta(t, float32(9.0/7.0), b.Root.W0, 1e-4)
	assert.Equal(t, float32(2), b.Root.W1)
}

func TestPushEntirelyOffscreenIsFullyOccluded(t *testing.T) {
	b, err := NewBuffer(10, 1, 8)
	require.NoError(t, err)

	status, err := b.Push(-5, -1, 1, 1, 'A')
	require.NoError(t, err)
	assert.Equal(t, FullyOccluded, status)
	assert.Nil(t, b.Root)
}

// A nearer span dropped entirely inside a farther one bisects the
// farther span into a left remainder, the near span itself, and a
// right remainder — hand-traced against the constant-depth case where
// both segments lift to horizontal lines in view space, so the
// interpenetration test degenerates to Parallel (leftness 0) and the
// fallback integer-depth comparison alone decides the outcome.
func TestPushBisectsWhenNearerSpanCutsThroughFarther(t *testing.T) {
	b, err := NewBuffer(16, 1, 8)
	require.NoError(t, err)

	status, err := b.Push(0, 16, 0.1, 0.1, 'A')
	require.NoError(t, err)
	assert.Equal(t, Inserted, status)

	status, err = b.Push(4, 8, 0.5, 0.5, 'B')
	require.NoError(t, err)
	assert.Equal(t, Inserted, status)

	require.NotNil(t, b.Root)
	assert.Equal(t, byte('B'), b.Root.ID)
	assert.Equal(t, float32(4), b.Root.X0)
	assert.Equal(t, float32(8), b.Root.X1)

	require.NotNil(t, b.Root.Left)
	assert.Equal(t, byte('A'), b.Root.Left.ID)
	assert.Equal(t, float32(0), b.Root.Left.X0)
	assert.Equal(t, float32(4), b.Root.Left.X1)

	require.NotNil(t, b.Root.Right)
	assert.Equal(t, byte('A'), b.Root.Right.ID)
	assert.Equal(t, float32(8), b.Root.Right.X0)
	assert.Equal(t, float32(16), b.Root.Right.X1)

	assert.Equal(t, "AAAABBBBAAAAAAAA", b.Print())
}

func TestPushFullyObscuresIdenticalRange(t *testing.T) {
	b, err := NewBuffer(16, 1, 8)
	require.NoError(t, err)

	_, err = b.Push(0, 16, 0.1, 0.1, 'A')
	require.NoError(t, err)

	status, err := b.Push(0, 16, 0.5, 0.5, 'B')
	require.NoError(t, err)
	assert.Equal(t, Inserted, status)

	require.NotNil(t, b.Root)
	assert.Nil(t, b.Root.Left)
	assert.Nil(t, b.Root.Right)
	assert.Equal(t, byte('B'), b.Root.ID)
	assert.Equal(t, "BBBBBBBBBBBBBBBB", b.Print())
}

// Pushing a farther span into the exact range a nearer one already
// owns changes nothing: the depth comparison always favors the
// existing occupant, so no branch of the arbiter mutates the tree.
func TestPushBehindExistingSpanIsFullyOccluded(t *testing.T) {
	b, err := NewBuffer(16, 1, 8)
	require.NoError(t, err)

	_, err = b.Push(0, 16, 0.5, 0.5, 'A')
	require.NoError(t, err)

	status, err := b.Push(0, 16, 0.1, 0.1, 'B')
	require.NoError(t, err)
	assert.Equal(t, FullyOccluded, status)
	assert.Equal(t, byte('A'), b.Root.ID)
	assert.Nil(t, b.Root.Left)
	assert.Nil(t, b.Root.Right)
}

func TestPushDisjointSpansCoexist(t *testing.T) {
	b, err := NewBuffer(16, 1, 8)
	require.NoError(t, err)

	_, err = b.Push(0, 4, 1, 1, 'A')
	require.NoError(t, err)
	_, err = b.Push(4, 8, 1, 1, 'B')
	require.NoError(t, err)
	_, err = b.Push(8, 16, 1, 1, 'C')
	require.NoError(t, err)

	assert.Equal(t, "AAAABBBBCCCCCCCC", b.Print())
	assertBalanced(t, b.Root)
	assertSorted(t, b)
}

func TestDestroySeversAllLinks(t *testing.T) {
	b, err := NewBuffer(16, 1, 8)
	require.NoError(t, err)
	_, err = b.Push(0, 4, 1, 1, 'A')
	require.NoError(t, err)
	_, err = b.Push(4, 8, 1, 1, 'B')
	require.NoError(t, err)

	root := b.Root
	b.Destroy()

	assert.Nil(t, b.Root)
	assert.Nil(t, root.Left)
	assert.Nil(t, root.Right)
}

func TestDumpReportsEmptyBuffer(t *testing.T) {
	b, err := NewBuffer(8, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, "empty buffer\n", b.Dump())
}

// TestPushStressScenario replays a large batch of interpenetrating,
// out-of-order pushes and checks the tree-shape invariants that must
// hold regardless of exact placement: spans stay sorted and disjoint,
// clipped to the buffer bounds, and the tree stays height-balanced.
func TestPushStressScenario(t *testing.T) {
	b, err := NewBuffer(800, 128, 1024)
	require.NoError(t, err)

	id := byte('A')
	for _, seg := range stressSegments {
		x0, x1, w0, w1 := seg.x0, seg.x1, seg.w0, seg.w1
		if x1 < x0 {
			x0, x1 = x1, x0
			w0, w1 = w1, w0
		}
		if x1-x0 < 1e-4 {
			continue
		}
		_, err := b.Push(x0, x1, w0, w1, id)
		require.NoError(t, err)
		id++

		assertBalanced(t, b.Root)
		assertSorted(t, b)
	}
}

func assertBalanced(t *testing.T, s *Span) int {
	t.Helper()
	if s == nil {
		return -1
	}
	l := assertBalanced(t, s.Left)
	r := assertBalanced(t, s.Right)
	bf := r - l
	require.GreaterOrEqualf(t, bf, -1, "span [%v,%v) unbalanced", s.X0, s.X1)
	require.LessOrEqualf(t, bf, 1, "span [%v,%v) unbalanced", s.X0, s.X1)
	h := l
	if r > l {
		h = r
	}
	require.Equalf(t, h+1, s.Height, "span [%v,%v) has stale cached height", s.X0, s.X1)
	return h + 1
}

func assertSorted(t *testing.T, b *Buffer) {
	t.Helper()
	var prevX1 float32 = -1
	first := true
	b.InOrder(func(s *Span) {
		require.Truef(t, s.X0 < s.X1, "span [%v,%v) is degenerate", s.X0, s.X1)
		require.GreaterOrEqualf(t, s.X0, float32(0), "span [%v,%v) starts before buffer", s.X0, s.X1)
		require.LessOrEqualf(t, s.X1, float32(b.Size), "span [%v,%v) ends past buffer", s.X0, s.X1)
		if !first {
			require.GreaterOrEqualf(t, s.X0, prevX1, "span [%v,%v) overlaps the previous span", s.X0, s.X1)
		}
		prevX1 = s.X1
		first = false
	})
}

type segment struct{ x0, x1, w0, w1 float32 }

// stressSegments is a batch of screen-space pushes translated from a
// worklist that once tripped a balancing/height regression during
// development of this buffer's forebear: heavy interpenetration,
// shared endpoints, and spans arriving in no particular front-to-back
// order.
var stressSegments = func() []segment {
	const bufW, winH, projPlaneY = 800, 832, 704
	const zNear = winH - projPlaneY
	toScreen := func(x, y float32) (screenX, w float32) {
		const eyeX, eyeY = bufW / 2, winH
		viewX, viewY := x-eyeX, eyeY-y
		return viewX*zNear/viewY + eyeX, 1 / (winH - y)
	}
	raw := [][4]float32{
		{128, 192, 512, 176}, {512, 160, 704, 304}, {112, 160, 224, 384},
		{224, 368, 528, 256}, {480, 208, 576, 272}, {480, 288, 560, 256},
		{368, 272, 464, 336}, {272, 320, 368, 336}, {352, 320, 336, 352},
		{400, 320, 480, 304}, {448, 256, 544, 304}, {656, 224, 560, 336},
		{464, 304, 592, 320}, {272, 336, 272, 368}, {96, 512, 768, 432},
		{592, 432, 336, 528}, {208, 480, 256, 528}, {112, 560, 496, 592},
		{624, 512, 336, 608}, {480, 544, 544, 576}, {256, 544, 320, 592},
		{416, 560, 480, 576}, {448, 576, 464, 608}, {480, 576, 480, 608},
		{352, 560, 352, 592}, {192, 544, 240, 576}, {112, 608, 592, 624},
		{432, 608, 480, 640}, {480, 624, 448, 640}, {560, 608, 560, 640},
		{224, 608, 272, 640}, {160, 608, 208, 624}, {240, 624, 304, 624},
		{160, 624, 224, 624}, {128, 592, 176, 624}, {176, 624, 192, 640},
		{256, 608, 336, 656}, {416, 608, 416, 640},
	}
	segs := make([]segment, len(raw))
	for i, r := range raw {
		sx, sw := toScreen(r[0], r[1])
		dx, dw := toScreen(r[2], r[3])
		segs[i] = segment{x0: sx, x1: dx, w0: sw, w1: dw}
	}
	return segs
}()
