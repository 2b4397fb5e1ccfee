// SPDX-License-Identifier: MIT
// Package: waytour/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the graph rejected a vertex or edge the
// constructor tried to insert (duplicate vertex, dangling edge, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadRange indicates an empty or negative weight range.
var ErrBadRange = errors.New("builder: invalid weight range")
