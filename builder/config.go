// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = prefixedID ("N0","N1","N2",...)
//   • rng         = nil (pure/deterministic unless seeded)
//   • costFn      = ConstantFn(DefaultCost)
//   • heuristicFn = ConstantFn(0)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors. One value lives
// for the duration of a BuildTree call; next tracks the label index so
// constructors composed in one call never reuse a label.
type builderConfig struct {
	idFn        func(int) string
	rng         *rand.Rand
	costFn      ValueFn
	heuristicFn ValueFn

	next int
}

// DefaultCost is the edge cost used when no cost function is configured.
const DefaultCost float64 = 1

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		idFn:        prefixedID,
		costFn:      ConstantFn(DefaultCost),
		heuristicFn: ConstantFn(0),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// nextID returns the label for the next node and advances the index.
func (c *builderConfig) nextID() string {
	id := c.idFn(c.next)
	c.next++

	return id
}

func prefixedID(i int) string {
	return "N" + strconv.Itoa(i)
}
