package cfg

import (
	"github.com/cs-au-dk/incdom/utils/graph"
)

// Cfg is an immutable control flow graph handed to the analysis by the
// front-end. It is validated on construction.
type Cfg struct {
	// entry is the node at which execution starts.
	entry *Node
	// nodes is indexed by NodeID.
	nodes []*Node
	// includes lists the include nodes in ID order.
	includes []*Node
	// byName maps external node names to nodes.
	byName map[string]*Node
}

func (G *Cfg) Entry() *Node {
	return G.entry
}

// Nodes returns all nodes in ID order. The slice must not be modified.
func (G *Cfg) Nodes() []*Node {
	return G.nodes
}

// Node retrieves a node by identity, or nil if the ID is not part of the graph.
func (G *Cfg) Node(id NodeID) *Node {
	if id < 0 || id >= len(G.nodes) {
		return nil
	}
	return G.nodes[id]
}

// Lookup retrieves a node by its external name.
func (G *Cfg) Lookup(name string) (*Node, bool) {
	n, ok := G.byName[name]
	return n, ok
}

func (G *Cfg) Size() int {
	return len(G.nodes)
}

// Includes returns the include nodes in ID order.
func (G *Cfg) Includes() []*Node {
	return G.includes
}

// ForEach executes the given procedure for each node reachable from the entry.
// Node traversal is performed in depth-first order, visiting successors in
// edge insertion order.
func (G *Cfg) ForEach(do func(*Node)) {
	visited := make(map[*Node]struct{})

	var visit func(*Node)
	visit = func(n *Node) {
		if _, ok := visited[n]; !ok {
			visited[n] = struct{}{}

			do(n)

			for _, succ := range n.Successors() {
				visit(succ)
			}
		}
	}

	visit(G.entry)
}

// FindAll aggregates all CF-nodes that satisfy the given predicate.
func (G *Cfg) FindAll(pred func(*Node) bool) (found []*Node) {
	for _, n := range G.nodes {
		if pred(n) {
			found = append(found, n)
		}
	}
	return
}

// Graph exposes the successor relation over node IDs.
func (G *Cfg) Graph() graph.Graph[NodeID] {
	return graph.OfHashable(func(id NodeID) (ret []NodeID) {
		for _, succ := range G.nodes[id].succs {
			ret = append(ret, succ.id)
		}
		return
	})
}

// Reachable computes the set of nodes reachable from the entry.
func (G *Cfg) Reachable() map[NodeID]bool {
	reached := make(map[NodeID]bool, len(G.nodes))
	G.Graph().BFS(G.entry.id, func(id NodeID) bool {
		reached[id] = true
		return false
	})
	return reached
}

// ReversePostorder lists the nodes reachable from the entry in reverse
// post-order, followed by the unreachable nodes in ID order.
func (G *Cfg) ReversePostorder() []*Node {
	order := make([]*Node, 0, len(G.nodes))
	seen := make(map[NodeID]bool, len(G.nodes))
	for _, id := range G.Graph().ReversePostorder(G.entry.id) {
		order = append(order, G.nodes[id])
		seen[id] = true
	}

	for _, n := range G.nodes {
		if !seen[n.id] {
			order = append(order, n)
		}
	}
	return order
}
