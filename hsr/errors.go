// Copyright 2026 The Scanplane Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsr

import (
	"errors"
	"fmt"
)

// ErrMaxDepthExceeded is returned by Push when the descent stack would
// grow past the buffer's configured MaxDepth. The buffer may already
// carry side effects from nodes visited before the limit was hit;
// Destroy remains safe to call.
var ErrMaxDepthExceeded = errors.New("hsr: max depth exceeded")

// ErrInvalidInput is the sentinel wrapped by Push and NewBuffer when
// caller-supplied parameters violate the documented preconditions.
var ErrInvalidInput = errors.New("hsr: invalid input")

// wrapInvalid annotates ErrInvalidInput with a call-specific reason,
// keeping errors.Is(err, ErrInvalidInput) true for callers that only
// care about the category.
func wrapInvalid(reason string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(reason, args...))
}
