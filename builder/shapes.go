// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// shapes.go - Chain, Star, KAry and Random constructors.
//
// Emission order (all constructors): nodes are created in ascending label
// index, and children of one parent in the order they receive labels, so
// the first child created is the first child the strategies see.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

const (
	methodChain  = "Chain"
	methodStar   = "Star"
	methodKAry   = "KAry"
	methodRandom = "Random"
)

// Chain builds n nodes, each the only child of the previous one.
// n ≥ 1 (else ErrTooFewNodes). Height of the result is n-1 on an empty tree.
func Chain(n int) Constructor {
	return func(t *tree.Tree, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodChain, n, ErrTooFewNodes)
		}
		parent := ""
		for i := 0; i < n; i++ {
			label, err := attach(t, cfg, methodChain, parent)
			if err != nil {
				return err
			}
			parent = label
		}
		return nil
	}
}

// Star builds a center with n-1 leaves. n ≥ 2 (else ErrTooFewNodes).
func Star(n int) Constructor {
	return func(t *tree.Tree, cfg *builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodStar, n, ErrTooFewNodes)
		}
		center, err := attach(t, cfg, methodStar, "")
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if _, err = attach(t, cfg, methodStar, center); err != nil {
				return err
			}
		}
		return nil
	}
}

// KAry builds a complete k-ary tree of the given depth (depth 0 is a single
// node), labeling level by level. k ≥ 1 and depth ≥ 0 (else ErrTooFewNodes).
func KAry(k, depth int) Constructor {
	return func(t *tree.Tree, cfg *builderConfig) error {
		if k < 1 || depth < 0 {
			return fmt.Errorf("%s: k=%d depth=%d: %w", methodKAry, k, depth, ErrTooFewNodes)
		}
		top, err := attach(t, cfg, methodKAry, "")
		if err != nil {
			return err
		}
		level := []string{top}
		for d := 0; d < depth; d++ {
			next := make([]string, 0, len(level)*k)
			for _, parent := range level {
				for c := 0; c < k; c++ {
					label, err := attach(t, cfg, methodKAry, parent)
					if err != nil {
						return err
					}
					next = append(next, label)
				}
			}
			level = next
		}
		return nil
	}
}

// Random builds n nodes where node i ≥ 1 hangs under a node drawn uniformly
// from the 0..i-1 nodes of this construction. n ≥ 1 (else ErrTooFewNodes);
// requires an RNG (else ErrNeedRandSource).
func Random(n int) Constructor {
	return func(t *tree.Tree, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandom, n, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		labels := make([]string, 0, n)
		for i := 0; i < n; i++ {
			parent := ""
			if i > 0 {
				parent = labels[cfg.rng.Intn(i)]
			}
			label, err := attach(t, cfg, methodRandom, parent)
			if err != nil {
				return err
			}
			labels = append(labels, label)
		}
		return nil
	}
}
