package dataflow

import (
	"fmt"
	"time"

	"github.com/cs-au-dk/incdom/analysis/cfg"
)

// NodeState is the progress of a node through the fixpoint computation.
type NodeState int

const (
	// Uninitialized nodes have not been visited.
	Uninitialized NodeState = iota
	// Provisional nodes have been visited, but their output may still change.
	Provisional
	// Stable nodes hold their final output.
	Stable
)

func (s NodeState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Provisional:
		return "provisional"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("NodeState(%d)", int(s))
	}
}

// Stats summarizes a fixpoint computation.
type Stats struct {
	Nodes   int
	Visits  int
	Updates int
	// MaxNodeUpdates is the largest number of output updates of a single node.
	MaxNodeUpdates int

	PoolSize   int
	PoolHits   int
	PoolMisses int

	Duration time.Duration

	done    bool
	visits  []int
	updates []int
}

func newStats(nodes int) Stats {
	return Stats{
		Nodes:   nodes,
		visits:  make([]int, nodes),
		updates: make([]int, nodes),
	}
}

func (s *Stats) visit(n *cfg.Node) {
	s.Visits++
	s.visits[n.ID()]++
}

func (s *Stats) update(n *cfg.Node) int {
	s.Updates++
	s.updates[n.ID()]++
	if k := s.updates[n.ID()]; k > s.MaxNodeUpdates {
		s.MaxNodeUpdates = k
	}
	return s.updates[n.ID()]
}

// NodeVisits is the number of times the node was visited.
func (s Stats) NodeVisits(n *cfg.Node) int {
	return s.visits[n.ID()]
}

// NodeUpdates is the number of times the output of the node changed.
func (s Stats) NodeUpdates(n *cfg.Node) int {
	return s.updates[n.ID()]
}

// State reports the progress of a node. After the fixpoint is reached, every
// node is stable.
func (s Stats) State(n *cfg.Node) NodeState {
	switch {
	case s.visits[n.ID()] == 0:
		return Uninitialized
	case s.done:
		return Stable
	default:
		return Provisional
	}
}

// HitRate is the fraction of recycled elements found in the pool.
func (s Stats) HitRate() float64 {
	if total := s.PoolHits + s.PoolMisses; total > 0 {
		return float64(s.PoolHits) / float64(total)
	}
	return 0
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"%d nodes, %d visits, %d updates (max %d per node), pool of %d elements (%d hits, %d misses), %v",
		s.Nodes, s.Visits, s.Updates, s.MaxNodeUpdates,
		s.PoolSize, s.PoolHits, s.PoolMisses, s.Duration)
}
