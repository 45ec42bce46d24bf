package lattice

import (
	"fmt"
	"strings"

	"github.com/cs-au-dk/incdom/utils"

	"golang.org/x/tools/container/intsets"
)

// IncDom is a set of include nodes. It is immutable: every operation
// returning a set returns a fresh element, or the receiver if the result
// would be equal to it.
type IncDom struct {
	element
	set  *intsets.Sparse
	hash uint32
}

func newIncDom(lat *IncDomLattice, set *intsets.Sparse) *IncDom {
	e := &IncDom{
		element: element{lat},
		set:     set,
	}

	var hs []uint32
	for _, n := range set.AppendTo(nil) {
		hs = append(hs, uint32(n))
	}
	e.hash = utils.HashCombine(hs...)
	return e
}

// IncDom creates the set of the given include nodes.
// Every member must be part of the lattice universe.
func (elementFactory) IncDom(lat *IncDomLattice, members ...int) *IncDom {
	set := &intsets.Sparse{}
	for _, n := range members {
		lat.mustContain(n)
		set.Insert(n)
	}
	return newIncDom(lat, set)
}

func (l *IncDomLattice) mustContain(n int) {
	if !l.universe.Has(n) {
		panic(fmt.Errorf("%s is not an include node of %s", l.name(n), l))
	}
}

func (e *IncDom) IncDom() *IncDom {
	return e
}

func (e *IncDom) incDomLattice() *IncDomLattice {
	return e.lattice.(*IncDomLattice)
}

// Add returns the set extended with the include node n.
// Adding a member returns the receiver.
func (e *IncDom) Add(n int) *IncDom {
	lat := e.incDomLattice()
	lat.mustContain(n)
	if e.set.Has(n) {
		return e
	}

	set := &intsets.Sparse{}
	set.Copy(e.set)
	set.Insert(n)
	return newIncDom(lat, set)
}

func (e *IncDom) Contains(n int) bool {
	return e.set.Has(n)
}

func (e *IncDom) Size() int {
	return e.set.Len()
}

func (e *IncDom) IsEmpty() bool {
	return e.set.IsEmpty()
}

// Members lists the include nodes in ascending order.
func (e *IncDom) Members() []int {
	return e.set.AppendTo(nil)
}

func (e *IncDom) ForEach(do func(int)) {
	for _, n := range e.Members() {
		do(n)
	}
}

func (e *IncDom) Hash() uint32 {
	return e.hash
}

func (e1 *IncDom) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

func (e1 *IncDom) eq(e2 Element) bool {
	switch e2 := e2.(type) {
	case *IncDom:
		return e1 == e2 || (e1.hash == e2.hash && e1.set.Equals(e2.set))
	default:
		panic(errInternal)
	}
}

func (e1 *IncDom) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq is reverse inclusion: e1 ⊑ e2 iff e1 ⊇ e2.
func (e1 *IncDom) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case *IncDom:
		return e2.set.SubsetOf(e1.set)
	default:
		panic(errInternal)
	}
}

func (e1 *IncDom) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

func (e1 *IncDom) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case *IncDom:
		return e1.set.SubsetOf(e2.set)
	default:
		panic(errInternal)
	}
}

func (e1 *IncDom) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join is set intersection.
func (e1 *IncDom) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case *IncDom:
		switch {
		case e1.set.SubsetOf(e2.set):
			return e1
		case e2.set.SubsetOf(e1.set):
			return e2
		}

		set := &intsets.Sparse{}
		set.Intersection(e1.set, e2.set)
		return newIncDom(e1.incDomLattice(), set)
	default:
		panic(errInternal)
	}
}

// MonoJoin is the typed variant of Join.
func (e1 *IncDom) MonoJoin(e2 *IncDom) *IncDom {
	return e1.Join(e2).(*IncDom)
}

func (e1 *IncDom) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet is set union.
func (e1 *IncDom) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case *IncDom:
		switch {
		case e2.set.SubsetOf(e1.set):
			return e1
		case e1.set.SubsetOf(e2.set):
			return e2
		}

		set := &intsets.Sparse{}
		set.Union(e1.set, e2.set)
		return newIncDom(e1.incDomLattice(), set)
	default:
		panic(errInternal)
	}
}

// Height is the number of universe members missing from the set.
func (e *IncDom) Height() int {
	return e.incDomLattice().Size() - e.set.Len()
}

func (e *IncDom) Copy() Element {
	set := &intsets.Sparse{}
	set.Copy(e.set)
	return &IncDom{
		element: e.element,
		set:     set,
		hash:    e.hash,
	}
}

func (e *IncDom) String() string {
	if e.set.IsEmpty() {
		return colorize.Const("∅")
	}

	lat := e.incDomLattice()
	strs := []string{}
	for _, n := range e.Members() {
		strs = append(strs, colorize.Element(lat.name(n)))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
