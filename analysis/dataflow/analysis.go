package dataflow

import (
	"fmt"
	"time"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	L "github.com/cs-au-dk/incdom/analysis/lattice"
	"github.com/cs-au-dk/incdom/utils"

	"github.com/benbjohnson/immutable"
	log "github.com/sirupsen/logrus"
)

// Config instantiates the forward fixpoint driver.
type Config[E L.Element] struct {
	// Seed is the input state of the entry node.
	Seed E
	// Init is the state of every other node before it is first updated.
	// It should be the neutral element of Join.
	Init E
	// Transfer creates the transfer function of a node. It is called once
	// per node when the analysis is created.
	Transfer func(*cfg.Node) TransferFunction[E]
	// Recycler canonicalizes output states. A fresh one is used if nil.
	Recycler *Recycler[E]
	Order    Order
	// MaxUpdates bounds the number of output updates of any single node.
	// Exceeding it is a defect and panics. Zero means unbounded.
	MaxUpdates int
	// OnUpdate, if set, is called whenever the output of a node changes.
	OnUpdate func(n *cfg.Node, prev, next E)
}

// Analysis is a forward monotone dataflow analysis over a CFG.
// An Analysis is single-threaded and must not be used concurrently, but
// independent instances may run in parallel.
type Analysis[E L.Element] struct {
	G    *cfg.Cfg
	conf Config[E]
	tfs  []TransferFunction[E]

	in  *immutable.Map[cfg.NodeID, E]
	out *immutable.Map[cfg.NodeID, E]

	stats Stats
}

// New validates the graph and creates the transfer function of every node.
func New[E L.Element](G *cfg.Cfg, conf Config[E]) (*Analysis[E], error) {
	if err := cfg.Validate(G); err != nil {
		return nil, err
	}
	if conf.Transfer == nil {
		return nil, fmt.Errorf("no transfer function factory")
	}
	if conf.Recycler == nil {
		conf.Recycler = NewRecycler[E]()
	}

	a := &Analysis[E]{
		G:    G,
		conf: conf,
		tfs:  make([]TransferFunction[E], G.Size()),
	}
	for _, n := range G.Nodes() {
		a.tfs[n.ID()] = conf.Transfer(n)
	}

	return a, nil
}

func (a *Analysis[E]) getOrInit(m *immutable.Map[cfg.NodeID, E], n *cfg.Node) E {
	if e, ok := m.Get(n.ID()); ok {
		return e
	}
	return a.conf.Init
}

// input joins the outputs of all predecessors. The entry always receives
// the seed.
func (a *Analysis[E]) input(n *cfg.Node) E {
	if n == a.G.Entry() {
		return a.conf.Seed
	}

	preds := n.Predecessors()
	if len(preds) == 0 {
		return a.conf.Init
	}

	in := a.getOrInit(a.out, preds[0])
	for _, pred := range preds[1:] {
		in = in.Join(a.getOrInit(a.out, pred)).(E)
	}
	return in
}

// Run computes the least fixpoint. Every node is visited at least once.
func (a *Analysis[E]) Run() *Result[E] {
	start := time.Now()
	recycler := a.conf.Recycler
	recycler.Clear()

	a.in = utils.NewIntMap[E]()
	a.out = utils.NewIntMap[E]()
	a.stats = newStats(a.G.Size())

	W := newQueue(a.G, a.conf.Order)
	for _, n := range a.G.ReversePostorder() {
		W.Add(n)
	}

	for !W.IsEmpty() {
		n := W.GetNext()
		a.stats.visit(n)

		in := recycler.Recycle(a.input(n))
		a.in = a.in.Set(n.ID(), in)

		prev, visited := a.out.Get(n.ID())
		if !visited {
			prev = a.conf.Init
		}

		out := recycler.Recycle(a.tfs[n.ID()].Transfer(in))
		changed := !out.Eq(prev)
		if changed || !visited {
			a.out = a.out.Set(n.ID(), out)
		}
		if !changed {
			continue
		}

		updates := a.stats.update(n)
		if max := a.conf.MaxUpdates; max > 0 && updates > max {
			panic(fmt.Errorf(
				"output of %v was updated %d times (bound %d): %v -> %v; the transfer functions are not monotone",
				n, updates, max, prev, out))
		}
		if a.conf.OnUpdate != nil {
			a.conf.OnUpdate(n, prev, out)
		}

		for _, succ := range n.Successors() {
			W.Add(succ)
		}
	}

	a.stats.PoolSize = recycler.Size()
	a.stats.PoolHits = recycler.Hits()
	a.stats.PoolMisses = recycler.Misses()
	a.stats.Duration = time.Since(start)
	a.stats.done = true
	recycler.Clear()

	log.Debugf("Fixpoint for %d nodes: %v", a.G.Size(), a.stats)

	return &Result[E]{
		G:     a.G,
		in:    a.in,
		out:   a.out,
		stats: a.stats,
	}
}

func errNodeNotAnalyzed(n *cfg.Node) error {
	return fmt.Errorf("%v was not analyzed", n)
}
