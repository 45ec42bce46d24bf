package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cs-au-dk/incdom/analysis/dataflow"
	"github.com/cs-au-dk/incdom/utils"

	"github.com/fatih/color"
)

// metrics aggregates fixpoint statistics over all analysed files.
type metrics struct {
	files    int
	nodes    int
	visits   int
	updates  int
	maxNode  int
	hits     int
	misses   int
	duration time.Duration
}

func (m *metrics) add(s dataflow.Stats) {
	m.files++
	m.nodes += s.Nodes
	m.visits += s.Visits
	m.updates += s.Updates
	if s.MaxNodeUpdates > m.maxNode {
		m.maxNode = s.MaxNodeUpdates
	}
	m.hits += s.PoolHits
	m.misses += s.PoolMisses
	m.duration += s.Duration
}

func (m *metrics) hitRate() float64 {
	if total := m.hits + m.misses; total > 0 {
		return float64(m.hits) / float64(total)
	}
	return 0
}

func (m *metrics) write(w io.Writer) error {
	if m.files == 0 {
		return nil
	}

	bold := utils.CanColorize(color.New(color.Bold).SprintFunc())
	num := utils.CanColorize(color.New(color.FgGreen).SprintFunc())

	_, err := fmt.Fprintf(w,
		"%s\n"+
			"  Files: %s\n"+
			"  Nodes: %s\n"+
			"  Visits: %s (%.2f per node)\n"+
			"  Updates: %s (at most %s per node)\n"+
			"  Recycling: %s hits, %s misses (%.1f%%)\n"+
			"  Time: %v\n",
		bold("Totals"),
		num(m.files),
		num(m.nodes),
		num(m.visits), perNode(m.visits, m.nodes),
		num(m.updates), num(m.maxNode),
		num(m.hits), num(m.misses), 100*m.hitRate(),
		m.duration)
	return err
}

func perNode(n, nodes int) float64 {
	if nodes == 0 {
		return 0
	}
	return float64(n) / float64(nodes)
}
