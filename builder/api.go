// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// api.go - public entry point for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvltree/tree"
)

// Constructor applies a deterministic tree mutation using the resolved
// builderConfig. Constructors validate their parameters before touching
// the tree and return sentinel errors wrapped with their method name.
type Constructor func(t *tree.Tree, cfg *builderConfig) error

// BuildTree creates a new tree.Tree, resolves the builder configuration from
// bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildTree: %w" and returned immediately.
func BuildTree(bopts []BuilderOption, cons ...Constructor) (*tree.Tree, error) {
	t := tree.New()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildTree: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTree: %w", err)
		}
	}

	return t, nil
}

// attach adds one node. On an empty tree it becomes the root (parent is
// ignored and its cost is zero); otherwise it is inserted under parent, or
// under the root when parent is "". It returns the new label.
func attach(t *tree.Tree, cfg *builderConfig, method, parent string) (string, error) {
	label := cfg.nextID()
	h := cfg.heuristicFn(cfg.rng)

	if t.Empty() {
		if _, err := t.CreateRoot(label, h, 0); err != nil {
			return "", fmt.Errorf("%s: CreateRoot(%s): %v: %w", method, label, err, ErrConstructFailed)
		}
		return label, nil
	}

	if parent == "" {
		parent = t.Root().Label
	}
	cost := cfg.costFn(cfg.rng)
	if _, err := t.InsertChild(parent, label, h, cost); err != nil {
		return "", fmt.Errorf("%s: InsertChild(%s→%s): %v: %w", method, parent, label, err, ErrConstructFailed)
	}

	return label, nil
}
