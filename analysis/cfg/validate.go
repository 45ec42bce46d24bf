package cfg

import (
	"fmt"

	"github.com/pkg/errors"
)

// Structural errors. A graph exhibiting any of them is rejected before
// analysis.
var (
	ErrNoEntry        = errors.New("missing entry node")
	ErrDanglingEdge   = errors.New("dangling edge")
	ErrAsymmetricEdge = errors.New("asymmetric edge")
	ErrMissingTarget  = errors.New("include node without target")
	ErrUnknownNode    = errors.New("unknown node")
	ErrDuplicateNode  = errors.New("duplicate node")
)

// StructuralError reports a malformed CFG.
type StructuralError struct {
	// Where names the offending node or edge.
	Where string
	Err   error
}

func (e *StructuralError) Error() string {
	if e.Where == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Where)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structural(err error, where string) error {
	return errors.WithStack(&StructuralError{Where: where, Err: err})
}

// Validate checks that the graph has an entry node and that all edges are
// between nodes of the graph, with predecessor and successor lists mirroring
// each other. The first problem found, in node ID order, is returned.
func Validate(G *Cfg) error {
	if G.entry == nil {
		return structural(ErrNoEntry, "")
	}
	if G.entry.owner != G {
		return structural(ErrDanglingEdge, "entry "+G.entry.name)
	}

	owned := func(n *Node) bool {
		return n != nil && n.owner == G && G.Node(n.id) == n
	}

	for id, n := range G.nodes {
		if n.id != id || n.owner != G {
			return structural(ErrDanglingEdge, n.name)
		}

		for _, succ := range n.succs {
			if !owned(succ) {
				return structural(ErrDanglingEdge, edgeName(n, succ))
			}
			if !hasEdge(succ.preds, n) {
				return structural(ErrAsymmetricEdge, edgeName(n, succ))
			}
		}

		for _, pred := range n.preds {
			if !owned(pred) {
				return structural(ErrDanglingEdge, edgeName(pred, n))
			}
			if !hasEdge(pred.succs, n) {
				return structural(ErrAsymmetricEdge, edgeName(pred, n))
			}
		}
	}

	return nil
}
