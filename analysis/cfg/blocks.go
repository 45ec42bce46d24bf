package cfg

import (
	"sort"

	uf "github.com/spakin/disjoint"
)

// Blocks is a partition of the CFG into maximal straight-line blocks.
// Within a block, every node except the first has exactly one predecessor,
// and every node except the last has exactly one successor.
type Blocks struct {
	// List holds the blocks, each in ID order. Blocks are ordered by their
	// smallest node ID.
	List [][]*Node
	of   []int
}

// BlockOf returns the index of the block containing the node.
func (b Blocks) BlockOf(n *Node) int {
	return b.of[n.id]
}

// Blocks computes the straight-line block partition of the graph.
// Edges into the entry node always start a new block.
func (G *Cfg) Blocks() Blocks {
	elements := make([]*uf.Element, len(G.nodes))
	for i, n := range G.nodes {
		elements[i] = uf.NewElement()
		elements[i].Data = n
	}

	for _, n := range G.nodes {
		if len(n.succs) != 1 {
			continue
		}

		succ := n.succs[0]
		if succ != n && succ != G.entry && len(succ.preds) == 1 {
			uf.Union(elements[n.id], elements[succ.id])
		}
	}

	byRep := make(map[*uf.Element][]*Node)
	for i, el := range elements {
		rep := el.Find()
		byRep[rep] = append(byRep[rep], G.nodes[i])
	}

	blocks := Blocks{of: make([]int, len(G.nodes))}
	for _, block := range byRep {
		blocks.List = append(blocks.List, block)
	}
	sort.Slice(blocks.List, func(i, j int) bool {
		return blocks.List[i][0].id < blocks.List[j][0].id
	})

	for idx, block := range blocks.List {
		for _, n := range block {
			blocks.of[n.id] = idx
		}
	}

	return blocks
}
