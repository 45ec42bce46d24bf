package report

import (
	"fmt"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/dataflow"
	L "github.com/cs-au-dk/incdom/analysis/lattice"
)

type UnreachedNode struct {
	Node *cfg.Node
}

func (u UnreachedNode) Position() cfg.Position {
	return u.Node.Pos()
}

func (u UnreachedNode) String() string {
	return fmt.Sprintf("%v is unreachable", u.Node)
}

// reachability is a may-analysis on the two-element lattice, where ⊤ marks
// nodes reached from the entry.
func reachability(G *cfg.Cfg) (*dataflow.Result[L.Element], error) {
	lat := L.Create().Lattice().TwoElement()

	a, err := dataflow.New(G, dataflow.Config[L.Element]{
		Seed: lat.Top(),
		Init: lat.Bot(),
		Transfer: func(*cfg.Node) dataflow.TransferFunction[L.Element] {
			return dataflow.Identity[L.Element]{}
		},
	})
	if err != nil {
		return nil, err
	}
	return a.Run(), nil
}

// Unreached lists the nodes not reachable from the entry, in ID order.
func Unreached(G *cfg.Cfg) ([]Finding, error) {
	res, err := reachability(G)
	if err != nil {
		return nil, err
	}

	var found []UnreachedNode
	for _, n := range G.Nodes() {
		if !res.Out(n).TwoElement().AsBool() {
			found = append(found, UnreachedNode{n})
		}
	}
	return findings(found), nil
}
