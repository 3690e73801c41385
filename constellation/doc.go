// Package constellation holds the immutable value types of the generator:
// a Base constellation supplied by the geometry collaborator and the Derived
// constellations produced from it by symmetry transforms.
//
// A Base pairs an ordered list of complex points with one symbol per point
// plus descriptive metadata (rotational symmetry, dimensionality, sectors).
// Every accessor returns copies; nothing reachable from a Base or Derived
// can be mutated after construction, which makes both safe for concurrent
// readers.
//
// BPSK and QPSK return the historical base tables. Higher orders are
// supplied by the caller through NewBase.
package constellation
