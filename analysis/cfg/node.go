package cfg

import (
	"fmt"

	"github.com/cs-au-dk/incdom/utils"

	"github.com/fatih/color"
)

// NodeID is the stable identity of a CF-node. IDs are dense and assigned in
// creation order, starting at 0.
type NodeID = int

// Position is the source location a CF-node was derived from. It is purely
// informative.
type Position struct {
	File string
	Line int
}

func (p Position) String() string {
	switch {
	case p.File == "":
		return "-"
	case p.Line <= 0:
		return p.File
	default:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
}

var includeColor = func(is ...interface{}) string {
	return utils.CanColorize(color.New(color.FgHiYellow).SprintFunc())(is...)
}

// Node is a node in the control-flow graph. Nodes are owned by the graph that
// created them and never change after the graph is built.
type Node struct {
	id     NodeID
	name   string
	label  string
	target string
	pos    Position
	owner  *Cfg

	preds []*Node
	succs []*Node
}

// ID returns the identity of the node within its graph.
func (n *Node) ID() NodeID {
	return n.id
}

// Name is the external name of the node, e.g. the name used in a CFG file.
func (n *Node) Name() string {
	return n.name
}

// Label is a human readable description of the statement at the node.
func (n *Node) Label() string {
	return n.label
}

// IsInclude checks whether the node is an include statement.
func (n *Node) IsInclude() bool {
	return n.target != ""
}

// Target is the file pulled in by an include node, and empty otherwise.
func (n *Node) Target() string {
	return n.target
}

func (n *Node) Pos() Position {
	return n.pos
}

func (n *Node) Predecessors() []*Node {
	return n.preds
}

func (n *Node) Successors() []*Node {
	return n.succs
}

func (n *Node) String() string {
	if n.IsInclude() {
		return includeColor(n.name)
	}
	return n.name
}

func hasEdge(nodes []*Node, n *Node) bool {
	for _, m := range nodes {
		if m == n {
			return true
		}
	}
	return false
}
