package report

import (
	"fmt"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/incdom"
)

// Mismatch is a disagreement between the include-dominator analysis and the
// dominator tree of the CFG.
type Mismatch struct {
	Node *cfg.Node
	// Include is nil for disagreements about reachability.
	Include *cfg.Node
	// Analysis and Tree are the respective verdicts on whether Include
	// dominates Node, or on whether Node is reachable.
	Analysis, Tree bool
}

func (m Mismatch) Position() cfg.Position {
	return m.Node.Pos()
}

func (m Mismatch) String() string {
	if m.Include == nil {
		return fmt.Sprintf("%v reachable according to the analysis: %v, according to the dominator tree: %v",
			m.Node, m.Analysis, m.Tree)
	}
	return fmt.Sprintf("%v ∈ After(%v) is %v, but dominance is %v",
		m.Include, m.Node, m.Analysis, m.Tree)
}

// Verify cross-checks the result against the dominator tree: an include d
// belongs to After(n) exactly when d dominates n.
func Verify(res *incdom.Result) []Finding {
	G := res.Graph()
	D := G.Graph().DominatorTree(G.Entry().ID())

	var found []Mismatch
	for _, n := range G.Nodes() {
		reachable := D.Reachable(n.ID())
		if reachable != res.Reachable(n) {
			found = append(found, Mismatch{n, nil, res.Reachable(n), reachable})
		}
		if !reachable {
			continue
		}

		after := res.After(n)
		for _, inc := range G.Includes() {
			dominates := D.Reachable(inc.ID()) && D.Dominates(inc.ID(), n.ID())
			if inAfter := after.Contains(inc.ID()); inAfter != dominates {
				found = append(found, Mismatch{n, inc, inAfter, dominates})
			}
		}
	}
	return findings(found)
}
