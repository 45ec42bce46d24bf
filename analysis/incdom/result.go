package incdom

import (
	"fmt"
	"strings"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/dataflow"
	L "github.com/cs-au-dk/incdom/analysis/lattice"
)

// Result holds the include-dominator sets of every node.
type Result struct {
	res     *dataflow.Result[*L.IncDom]
	lattice *L.IncDomLattice
	reached map[cfg.NodeID]bool
}

func (r *Result) Graph() *cfg.Cfg {
	return r.res.G
}

// Dominators is the set of include nodes that executed on every path from
// the entry to n, excluding n itself.
func (r *Result) Dominators(n *cfg.Node) *L.IncDom {
	return r.res.In(n)
}

// After is the set of include nodes that executed on every path from the
// entry up to and including n.
func (r *Result) After(n *cfg.Node) *L.IncDom {
	return r.res.Out(n)
}

// Reachable checks whether n is reachable from the entry. Unreachable nodes
// keep the universal set, which is vacuously true of them.
func (r *Result) Reachable(n *cfg.Node) bool {
	return r.reached[n.ID()]
}

// Lattice is the lattice the sets belong to.
func (r *Result) Lattice() *L.IncDomLattice {
	return r.lattice
}

func (r *Result) Stats() dataflow.Stats {
	return r.res.Stats()
}

func (r *Result) String() string {
	var lines []string
	for _, n := range r.res.G.Nodes() {
		set := "unreachable"
		if r.Reachable(n) {
			set = r.Dominators(n).String()
		}
		lines = append(lines, fmt.Sprintf("%v: %s", n, set))
	}
	return strings.Join(lines, "\n")
}
