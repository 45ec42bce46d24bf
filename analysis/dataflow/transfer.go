package dataflow

import (
	L "github.com/cs-au-dk/incdom/analysis/lattice"
)

// TransferFunction computes the output state of a node from its input state.
// Transfer functions must be deterministic and monotone, and must not have
// side effects apart from canonicalizing their result.
type TransferFunction[E L.Element] interface {
	Transfer(in E) E
}

// Identity is the transfer function of nodes that do not affect the state.
type Identity[E L.Element] struct{}

func (Identity[E]) Transfer(in E) E {
	return in
}

// TransferFunc adapts an ordinary function to a TransferFunction.
type TransferFunc[E L.Element] func(in E) E

func (f TransferFunc[E]) Transfer(in E) E {
	return f(in)
}
