package registry

// Exported aliases of unexported helpers for the external test package.
var (
	DeriveAll = deriveAll
	ResolveAt = resolveAt
)
