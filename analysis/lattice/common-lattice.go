package lattice

import (
	log "github.com/sirupsen/logrus"
)

type Lattice interface {
	Top() Element
	Bot() Element

	String() string
	Eq(Lattice) bool

	// These methods allow for quick type conversions.
	// Suitable, if you know what lattice type to expect.
	IncDom() *IncDomLattice
	TwoElement() *TwoElementLattice
}

type lattice struct{}

func (*lattice) IncDom() *IncDomLattice {
	panic(errUnsupportedTypeConversion)
}

func (*lattice) TwoElement() *TwoElementLattice {
	panic(errUnsupportedTypeConversion)
}

func checkLatticeMatch(l1, l2 Lattice, binop string) {
	if !l1.Eq(l2) {
		log.Fatal(
			"Lattice error - Invalid ", binop,
			"\nOperand 1 ∈\n",
			l1.String(),
			"\nOperand 2 ∈\n",
			l2.String(),
		)
	}
}
