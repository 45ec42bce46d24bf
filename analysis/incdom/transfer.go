package incdom

import (
	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/dataflow"
	L "github.com/cs-au-dk/incdom/analysis/lattice"
)

// IncDomTfAdd is the transfer function of include nodes: the node is added
// to the set of includes that certainly executed.
type IncDomTfAdd struct {
	node     *cfg.Node
	analysis *IncDomAnalysis
}

func (tf IncDomTfAdd) Transfer(in *L.IncDom) *L.IncDom {
	return tf.analysis.Recycle(in.Add(tf.node.ID()))
}

// IncDomTfIdentity is the transfer function of all other nodes.
type IncDomTfIdentity = dataflow.Identity[*L.IncDom]

var (
	_ dataflow.TransferFunction[*L.IncDom] = IncDomTfAdd{}
	_ dataflow.TransferFunction[*L.IncDom] = IncDomTfIdentity{}
)
