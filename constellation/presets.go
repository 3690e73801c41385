package constellation

// Family prefixes of the preset tables.
const (
	FamilyBPSK = "psk_2"
	FamilyQPSK = "psk_4"
)

// BPSK returns the canonical BPSK base:
//
//	0 | 1
//
// points [-1, 1], symbols [0, 1], rotational symmetry 1, dimensionality 1, 2 sectors.
func BPSK() *Base {
	return mustBase(FamilyBPSK,
		[]complex128{-1, 1},
		[]int{0, 1},
		Meta{RotationalSymmetry: 1, Dimensionality: 1, Sectors: 2},
	)
}

// QPSK returns the canonical Gray-coded QPSK base:
//
//	| 10 | 11
//	| -------
//	| 00 | 01
//
// points [-1-1j, 1-1j, -1+1j, 1+1j], symbols [0 1 2 3],
// rotational symmetry 2, dimensionality 1, 2 sectors.
func QPSK() *Base {
	return mustBase(FamilyQPSK,
		[]complex128{complex(-1, -1), complex(1, -1), complex(-1, 1), complex(1, 1)},
		[]int{0, 1, 2, 3},
		Meta{RotationalSymmetry: 2, Dimensionality: 1, Sectors: 2},
	)
}

// mustBase is used only for the literal tables above.
func mustBase(family string, points []complex128, symbols []int, meta Meta) *Base {
	b, err := NewBase(family, points, symbols, meta)
	if err != nil {
		panic(err)
	}

	return b
}
