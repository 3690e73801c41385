// Package registry builds and freezes the complete symmetry family of a
// base constellation.
//
// Build enumerates all 2^n·n! transforms, derives one labeling per transform
// (in parallel, bounded by WithWorkers), validates every labeling, stamps
// each with its catalog identity, and returns an immutable *Registry.
//
// Lookups:
//
//   - ByIndex(i)              — dense variant index.
//   - ByName(s)               — structural ("0x1_0_1"), full ("psk_4_0x1_0_1"),
//     legacy ("psk_4_1"), or bare family ("psk_4") name.
//   - ByTransform(mask, perm) — raw group element.
//
// A miss returns an error wrapping ErrNotFound; it never panics and never
// aborts the process. Build errors are all-or-nothing: no partially built
// registry is ever returned.
//
// Concurrency: a built Registry is never mutated, so any number of
// goroutines may read it without locking.
//
// Limits: Build accepts 1 ≤ n ≤ MaxBitWidth (7). A variant costs about
// 1.3 KB at n = 6, so n = 8 would need tens of gigabytes.
//
// Complexity:
//
//   - Build:   O(n·2^n · 2^n·n!) time, O(2^n · 2^n·n!) memory.
//   - ByIndex: O(1). ByName: O(1) average. ByTransform: O(n²).
package registry
