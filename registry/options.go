// SPDX-License-Identifier: MIT
// Package: graymap/registry
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input
//     (programmer error). Build itself never panics.
//   • Later options override earlier ones.
//
// AI-Hints:
//   • WithWorkers(1) gives a serial build; results are identical for any k.
//   • Avoid WithFamily values that look like "0x..." structural names.
//   • WithoutLegacyAliases keeps the bare family alias of the canonical variant.

package registry

// Option customizes Build by mutating a buildConfig before construction.
type Option func(*buildConfig)

// WithWorkers bounds the number of goroutines deriving variants.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("registry: WithWorkers(k<1)")
	}
	return func(c *buildConfig) {
		c.workers = k
	}
}

// WithFamily overrides the family prefix taken from the base constellation.
// Panics on an empty name.
//
// A family shaped like a structural name can make aliases of one variant
// collide with names of another (e.g. "0x0_1" at n = 2: legacy alias
// "0x0_1_0" of index 0 is the structural name of index 4); Build then
// aborts with ErrDuplicateName. Repeats within one variant are harmless.
func WithFamily(name string) Option {
	if name == "" {
		panic("registry: WithFamily(\"\")")
	}
	return func(c *buildConfig) {
		c.family = name
	}
}

// WithoutLegacyAliases skips the "<family>_<index>" aliases. The canonical
// variant keeps its bare family alias.
func WithoutLegacyAliases() Option {
	return func(c *buildConfig) {
		c.legacyAliases = false
	}
}
