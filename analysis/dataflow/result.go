package dataflow

import (
	"github.com/cs-au-dk/incdom/analysis/cfg"
	L "github.com/cs-au-dk/incdom/analysis/lattice"

	"github.com/benbjohnson/immutable"
)

// Result is a read-only snapshot of the per-node states at the fixpoint.
type Result[E L.Element] struct {
	G     *cfg.Cfg
	in    *immutable.Map[cfg.NodeID, E]
	out   *immutable.Map[cfg.NodeID, E]
	stats Stats
}

func (r *Result[E]) get(m *immutable.Map[cfg.NodeID, E], n *cfg.Node) E {
	if e, ok := m.Get(n.ID()); ok {
		return e
	}
	panic(errNodeNotAnalyzed(n))
}

// In is the state on entry to the node.
func (r *Result[E]) In(n *cfg.Node) E {
	return r.get(r.in, n)
}

// Out is the state after the node.
func (r *Result[E]) Out(n *cfg.Node) E {
	return r.get(r.out, n)
}

// ForEach calls do for every node in ID order.
func (r *Result[E]) ForEach(do func(n *cfg.Node, in, out E)) {
	for _, n := range r.G.Nodes() {
		do(n, r.In(n), r.Out(n))
	}
}

func (r *Result[E]) Stats() Stats {
	return r.stats
}
