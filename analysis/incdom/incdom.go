package incdom

import (
	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/dataflow"
	L "github.com/cs-au-dk/incdom/analysis/lattice"
)

// IncDomAnalysis computes, for every CF-node, the include nodes that
// executed on every path from the entry to the node.
type IncDomAnalysis struct {
	G        *cfg.Cfg
	lattice  *L.IncDomLattice
	recycler *dataflow.Recycler[*L.IncDom]
	driver   *dataflow.Analysis[*L.IncDom]
}

type options struct {
	order      dataflow.Order
	maxUpdates int
}

type Option func(*options)

// WithOrder selects the worklist order. The default is dataflow.RPO.
func WithOrder(order dataflow.Order) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithMaxUpdates bounds the number of output updates of any node. Exceeding
// the bound panics.
func WithMaxUpdates(max int) Option {
	return func(o *options) {
		o.maxUpdates = max
	}
}

// New prepares the analysis of G. Malformed graphs are rejected with a
// *cfg.StructuralError.
func New(G *cfg.Cfg, opts ...Option) (*IncDomAnalysis, error) {
	o := options{order: dataflow.RPO}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(G); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(G.Includes()))
	for _, n := range G.Includes() {
		ids = append(ids, n.ID())
	}

	a := &IncDomAnalysis{
		G: G,
		lattice: L.Create().Lattice().IncDom(ids, func(id int) string {
			return G.Node(id).Name()
		}),
		recycler: dataflow.NewRecycler[*L.IncDom](),
	}

	driver, err := dataflow.New(G, dataflow.Config[*L.IncDom]{
		Seed:       a.lattice.Empty(),
		Init:       a.lattice.Universal(),
		Transfer:   a.transferFunction,
		Recycler:   a.recycler,
		Order:      o.order,
		MaxUpdates: o.maxUpdates,
	})
	if err != nil {
		return nil, err
	}
	a.driver = driver

	return a, nil
}

func (a *IncDomAnalysis) transferFunction(n *cfg.Node) dataflow.TransferFunction[*L.IncDom] {
	if n.IsInclude() {
		return IncDomTfAdd{node: n, analysis: a}
	}
	return IncDomTfIdentity{}
}

// Lattice is the include-dominator lattice over the includes of the graph.
func (a *IncDomAnalysis) Lattice() *L.IncDomLattice {
	return a.lattice
}

// Recycle returns the canonical instance of e.
func (a *IncDomAnalysis) Recycle(e *L.IncDom) *L.IncDom {
	return a.recycler.Recycle(e)
}

// Analyze runs the analysis to its fixpoint.
func (a *IncDomAnalysis) Analyze() *Result {
	return &Result{
		res:     a.driver.Run(),
		lattice: a.lattice,
		reached: a.G.Reachable(),
	}
}
