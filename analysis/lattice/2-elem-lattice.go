package lattice

// TwoElementLattice represents the two element lattice:
//
//	⊤
//	|
//	⊥
type TwoElementLattice struct {
	lattice
}

// TwoElement returns the two element lattice.
func (latticeFactory) TwoElement() *TwoElementLattice {
	return twoElementLattice
}

// twoElementLattice is a singleton instantiation of the two-element lattice.
var twoElementLattice *TwoElementLattice = &TwoElementLattice{}

// Top retrieves the ⊤ element of the two-element lattice.
func (*TwoElementLattice) Top() Element {
	return twoElemTop
}

// Bot retrieves the ⊥ element of the two-element lattice.
func (*TwoElementLattice) Bot() Element {
	return twoElemBot
}

// TwoElement converts the two-element lattice to its concrete type form.
// Is used when the two-element lattice is masked by the Lattice interface.
func (*TwoElementLattice) TwoElement() *TwoElementLattice {
	// Will always succeed.
	return twoElementLattice
}

// Eq checks that l2 is the two-element lattice.
func (l1 *TwoElementLattice) Eq(l2 Lattice) bool {
	_, ok := l2.(*TwoElementLattice)
	return ok
}

func (*TwoElementLattice) String() string {
	return colorize.Lattice("⌶")
}
