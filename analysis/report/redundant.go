package report

import (
	"fmt"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/incdom"
)

// RedundantInclude is an include of a file that is certainly already
// included whenever the include executes.
type RedundantInclude struct {
	Node *cfg.Node
	// Witness is a dominating include of the same file.
	Witness *cfg.Node
}

func (r RedundantInclude) Position() cfg.Position {
	return r.Node.Pos()
}

func (r RedundantInclude) String() string {
	return fmt.Sprintf("%v includes %s already included by %v (%s)",
		r.Node, r.Node.Target(), r.Witness, r.Witness.Pos())
}

// Redundant finds reachable include nodes dominated by an include of the
// same target. The witness is the dominating include with the smallest ID.
func Redundant(res *incdom.Result) []Finding {
	G := res.Graph()

	var found []RedundantInclude
	for _, n := range G.Includes() {
		if !res.Reachable(n) {
			continue
		}

		for _, id := range res.Dominators(n).Members() {
			if d := G.Node(id); d.Target() == n.Target() {
				found = append(found, RedundantInclude{n, d})
				break
			}
		}
	}
	return findings(found)
}
