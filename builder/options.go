// SPDX-License-Identifier: MIT
// Package: lvltree/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// ValueFn produces an edge cost or a heuristic given the (possibly nil) RNG.
// It must draw from rng only, never from a global source, to keep builds
// reproducible.
type ValueFn func(rng *rand.Rand) float64

// WithIDScheme sets the label generator: index -> label. The function must
// be injective. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-edge cost generator. Panics on nil.
func WithCostFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) { c.costFn = fn }
}

// WithHeuristicFn overrides the per-node heuristic generator. Panics on nil.
func WithHeuristicFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithHeuristicFn(nil)")
	}
	return func(c *builderConfig) { c.heuristicFn = fn }
}

// ConstantFn returns a ValueFn that always yields value.
// Panics if value < 0.
func ConstantFn(value float64) ValueFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformIntFn returns a ValueFn drawing an integer uniformly from
// [min, max] inclusive. With a nil rng it yields min.
// Panics if min < 0 or max < min.
func UniformIntFn(min, max int) ValueFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}
