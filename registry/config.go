package registry

import "runtime"

// buildConfig aggregates the knobs used by Build. It is resolved once and
// passed by value.
type buildConfig struct {
	// workers bounds concurrent derivations; ≥ 1.
	workers int
	// family overrides Base.Family() when non-empty.
	family string
	// legacyAliases enables "<family>_<index>" aliases.
	legacyAliases bool
}

// newBuildConfig applies opts over deterministic defaults:
// workers = GOMAXPROCS, family = "" (use the base), legacy aliases on.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		workers:       runtime.GOMAXPROCS(0),
		legacyAliases: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg
}
