package graph

import W "github.com/cs-au-dk/incdom/utils/worklist"

type traversalFunc[T any] func(node T) (stop bool)

// Performs a breadth-first search from the provided start nodes, calling the
// provided function (f) for every reachable node, stopping early if f returns
// true.
// Returns whether the search stopped early (as a result of f returning true).
func (G Graph[T]) BFSV(f traversalFunc[T], starts ...T) bool {
	visited := G.mapFactory()
	for _, start := range starts {
		visited.Set(start, true)
	}

	done := false
	W.StartV(starts, func(node T, add func(T)) {
		if done || f(node) {
			done = true
			return
		}

		for _, next := range G.Edges(node) {
			if _, found := visited.Get(next); !found {
				visited.Set(next, true)
				add(next)
			}
		}
	})

	return done
}

// Performs a breadth-first search from the provided start node, calling the
// provided function (f) for every reachable node, stopping early if f returns
// true.
// Returns whether the search stopped early (as a result of f returning true).
func (G Graph[T]) BFS(start T, f traversalFunc[T]) bool {
	return G.BFSV(f, start)
}

// Postorder returns the nodes reachable from root in depth-first post-order.
// Successors are visited in the order returned by Edges.
func (G Graph[T]) Postorder(root T) []T {
	seen := G.mapFactory()
	order := []T{}

	var dfs func(T)
	dfs = func(node T) {
		if _, found := seen.Get(node); found {
			return
		}
		seen.Set(node, true)

		for _, e := range G.Edges(node) {
			dfs(e)
		}

		order = append(order, node)
	}

	dfs(root)
	return order
}

// ReversePostorder returns the nodes reachable from root in reverse
// depth-first post-order. In an acyclic graph every node appears after all of
// its predecessors.
func (G Graph[T]) ReversePostorder(root T) []T {
	order := G.Postorder(root)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}
