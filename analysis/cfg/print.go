package cfg

import (
	"fmt"
	"strings"
)

// String lists every node with its position and successors, in ID order.
func (G *Cfg) String() string {
	lines := make([]string, 0, len(G.nodes))
	for _, n := range G.nodes {
		succs := make([]string, 0, len(n.succs))
		for _, succ := range n.succs {
			succs = append(succs, succ.String())
		}

		line := fmt.Sprintf("%s (%s) %q", n, n.pos, n.label)
		if n.IsInclude() {
			line += " includes " + n.target
		}
		if n == G.entry {
			line += " [entry]"
		}
		if len(succs) > 0 {
			line += " -> " + strings.Join(succs, ", ")
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
