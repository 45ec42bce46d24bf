package report

import (
	"fmt"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/incdom"
	L "github.com/cs-au-dk/incdom/analysis/lattice"
)

// DominatorSet is the include-dominator set of a node. Set is nil for
// unreachable nodes.
type DominatorSet struct {
	Node *cfg.Node
	Set  *L.IncDom
}

func (d DominatorSet) Position() cfg.Position {
	return d.Node.Pos()
}

func (d DominatorSet) String() string {
	if d.Set == nil {
		return fmt.Sprintf("%v unreachable", d.Node)
	}
	return fmt.Sprintf("%v %s", d.Node, d.Set)
}

// Dominators lists the include-dominator set of every node in ID order.
func Dominators(res *incdom.Result) []Finding {
	var sets []DominatorSet
	for _, n := range res.Graph().Nodes() {
		d := DominatorSet{Node: n}
		if res.Reachable(n) {
			d.Set = res.Dominators(n)
		}
		sets = append(sets, d)
	}
	return findings(sets)
}
