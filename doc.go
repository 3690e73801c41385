// Package graymap generates the full symmetry family of Gray-coded digital
// modulation constellations (BPSK, QPSK, PSK-N, QAM) for a symbol mapper.
//
// A constellation assigns each n-bit symbol a point in the signal plane. A
// variant relabels a base constellation with an element of the
// hyperoctahedral group (the automorphism group of the n-cube):
//
//	f(x) = k XOR pi(x)
//
// where pi relocates bit i of x to position pi(i) and k is an n-bit mask.
// There are 2^n·n! such elements; each keeps the geometry and Gray
// adjacency of the base, and only moves labels.
//
// Packages, leaves first:
//
//	bitperm/       — bit permutations and XOR masks: enumeration, rank/unrank
//	symmetry/      — Transform (mask, perm), Apply, Compose/Inverse, validators
//	constellation/ — Base and Derived value types, BPSK/QPSK base tables
//	naming/        — variant index, "0xN_x0_..._xM" names, legacy aliases
//	registry/      — Build once, look up by index, name, or transform
//
// Quick example:
//
//	r, err := registry.Build(constellation.QPSK(), 2)
//	if err != nil { ... }
//	d, _ := r.ByName("psk_4_0x1_0_1") // or "psk_4_1", or r.ByTransform(1, []int{0, 1})
//	for _, p := range d.Points() {
//		fmt.Println(p.Point, p.Symbol)
//	}
//
// Decision (nearest-point search), pulse shaping, and the radio front end
// are downstream consumers of Points() and live elsewhere.
//
//	go get github.com/katalvlaran/graymap
package graymap
