package dataflow

import (
	L "github.com/cs-au-dk/incdom/analysis/lattice"
	"github.com/cs-au-dk/incdom/utils/hmap"
)

type elementHasher[E L.Element] struct{}

func (elementHasher[E]) Hash(e E) uint32 { return e.Hash() }

func (elementHasher[E]) Equal(a, b E) bool { return a.Eq(b) }

// Recycler is a pool of canonical lattice elements. Recycling an element
// returns the pooled instance equal to it, so that equal states computed at
// different nodes share their representation.
// A Recycler is owned by a single analysis and is not safe for concurrent use.
type Recycler[E L.Element] struct {
	pool   *hmap.Map[E, E]
	hits   int
	misses int
}

func NewRecycler[E L.Element]() *Recycler[E] {
	return &Recycler[E]{
		pool: hmap.NewMap[E, E](elementHasher[E]{}),
	}
}

// Recycle returns the canonical instance equal to e. If there is none, e
// becomes canonical.
func (r *Recycler[E]) Recycle(e E) E {
	if c, ok := r.pool.GetOk(e); ok {
		r.hits++
		return c
	}

	r.misses++
	r.pool.Set(e, e)
	return e
}

// Size is the number of canonical elements.
func (r *Recycler[E]) Size() int {
	return r.pool.Len()
}

func (r *Recycler[E]) Hits() int {
	return r.hits
}

func (r *Recycler[E]) Misses() int {
	return r.misses
}

// Clear empties the pool and resets the counters.
func (r *Recycler[E]) Clear() {
	r.pool.Clear()
	r.hits, r.misses = 0, 0
}
