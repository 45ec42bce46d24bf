package cfg

import (
	"fmt"

	"github.com/cs-au-dk/incdom/utils/dot"
	"github.com/cs-au-dk/incdom/utils/graph"
)

// ToDotGraph renders the CFG, grouping straight-line blocks in clusters.
// The annotate callback may be nil. Otherwise its result is appended to the
// label of every node, e.g. to show analysis results.
func (G *Cfg) ToDotGraph(title string, annotate func(*Node) string) *dot.DotGraph {
	blocks := G.Blocks()

	ids := make([]NodeID, len(G.nodes))
	for i := range ids {
		ids[i] = i
	}

	return G.Graph().ToDotGraph(ids, &graph.VisualizationConfig[NodeID]{
		Title: title,
		NodeAttrs: func(id NodeID) (string, dot.DotAttrs) {
			n := G.nodes[id]
			label := n.label
			if annotate != nil {
				if extra := annotate(n); extra != "" {
					label += "\n" + extra
				}
			}

			attrs := dot.DotAttrs{"label": label}
			switch {
			case n == G.entry:
				attrs["shape"] = "doublecircle"
			case n.IsInclude():
				attrs["shape"] = "box"
				attrs["fillcolor"] = "#fff2cc"
			}
			return fmt.Sprintf("n%d", id), attrs
		},
		ClusterKey: func(id NodeID) any {
			return blocks.BlockOf(G.nodes[id])
		},
		ClusterAttrs: func(key any) (string, dot.DotAttrs) {
			idx := key.(int)
			return fmt.Sprintf("block%d", idx), dot.DotAttrs{
				"label":   fmt.Sprintf("Block %d", idx),
				"bgcolor": "#cce6ff",
			}
		},
		EdgeAttrs: func(from, to NodeID) dot.DotAttrs {
			if blocks.BlockOf(G.nodes[to]) == blocks.BlockOf(G.nodes[from]) {
				return nil
			}
			return dot.DotAttrs{"style": "bold"}
		},
	})
}
