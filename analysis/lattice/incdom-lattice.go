package lattice

import (
	"strconv"
	"strings"

	"golang.org/x/tools/container/intsets"
)

// IncDomLattice is the lattice of include-dominator sets over a finite
// universe of include nodes. Sets are ordered by reverse inclusion:
//
//	⊤ = ∅
//	  |
//	⊥ = universe
//
// so the least upper bound of two sets is their intersection.
type IncDomLattice struct {
	lattice

	universe intsets.Sparse
	name     func(int) string

	top *IncDom
	bot *IncDom
}

// IncDom creates the include-dominator lattice over the given universe of
// include node IDs. The name function renders members when printing, and
// may be nil.
func (latticeFactory) IncDom(universe []int, name func(int) string) *IncDomLattice {
	l := &IncDomLattice{name: name}
	for _, n := range universe {
		l.universe.Insert(n)
	}
	if l.name == nil {
		l.name = strconv.Itoa
	}

	l.top = newIncDom(l, &intsets.Sparse{})

	bot := &intsets.Sparse{}
	bot.Copy(&l.universe)
	l.bot = newIncDom(l, bot)
	return l
}

func (l *IncDomLattice) IncDom() *IncDomLattice {
	return l
}

// Top returns the empty set.
func (l *IncDomLattice) Top() Element {
	return l.top
}

// Bot returns the universal set.
func (l *IncDomLattice) Bot() Element {
	return l.bot
}

// Empty is the typed variant of Top.
func (l *IncDomLattice) Empty() *IncDom {
	return l.top
}

// Universal is the typed variant of Bot.
func (l *IncDomLattice) Universal() *IncDom {
	return l.bot
}

// Contains checks whether a node is part of the universe.
func (l *IncDomLattice) Contains(n int) bool {
	return l.universe.Has(n)
}

// Size is the number of include nodes in the universe.
func (l *IncDomLattice) Size() int {
	return l.universe.Len()
}

func (l1 *IncDomLattice) Eq(l2 Lattice) bool {
	// First try to get away with referential equality
	if l1 == l2 {
		return true
	}
	switch l2 := l2.(type) {
	case *IncDomLattice:
		return l1.universe.Equals(&l2.universe)
	default:
		return false
	}
}

func (l *IncDomLattice) String() string {
	members := l.universe.AppendTo(nil)
	strs := make([]string, 0, len(members))
	for _, n := range members {
		strs = append(strs, l.name(n))
	}

	return colorize.Lattice("IncDom") + "(" + strings.Join(strs, ", ") + ")"
}
