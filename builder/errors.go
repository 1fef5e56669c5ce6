// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach method context
// with %w.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, k, depth) is smaller
// than the minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an insertion the tree
// refused (for example a duplicate label from a non-injective ID scheme).
var ErrConstructFailed = errors.New("builder: construction failed")
