package dataflow

import (
	"fmt"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/utils/pq"
	"github.com/cs-au-dk/incdom/utils/worklist"
)

// Order determines which pending node is visited next.
type Order int

const (
	// RPO visits pending nodes in reverse post-order of the CFG.
	RPO Order = iota
	// FIFO visits pending nodes in the order they were enqueued.
	FIFO
)

func (o Order) String() string {
	switch o {
	case RPO:
		return "rpo"
	case FIFO:
		return "fifo"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "rpo":
		return RPO, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown worklist order %q", s)
	}
}

// nodeQueue holds the nodes pending a visit. A node is queued at most once
// at a time.
type nodeQueue interface {
	Add(*cfg.Node)
	GetNext() *cfg.Node
	IsEmpty() bool
}

type fifoQueue struct {
	list   worklist.Worklist[*cfg.Node]
	queued []bool
}

func (q *fifoQueue) Add(n *cfg.Node) {
	if !q.queued[n.ID()] {
		q.queued[n.ID()] = true
		q.list.Add(n)
	}
}

func (q *fifoQueue) GetNext() *cfg.Node {
	n := q.list.GetNext()
	q.queued[n.ID()] = false
	return n
}

func (q *fifoQueue) IsEmpty() bool {
	return q.list.IsEmpty()
}

func newQueue(G *cfg.Cfg, order Order) nodeQueue {
	switch order {
	case FIFO:
		return &fifoQueue{
			list:   worklist.Empty[*cfg.Node](),
			queued: make([]bool, G.Size()),
		}
	case RPO:
		priority := make([]int, G.Size())
		for i, n := range G.ReversePostorder() {
			priority[n.ID()] = i
		}

		q := pq.Empty[*cfg.Node](func(a, b *cfg.Node) bool {
			return priority[a.ID()] < priority[b.ID()]
		})
		return &q
	default:
		panic(fmt.Errorf("unknown worklist order %v", order))
	}
}
