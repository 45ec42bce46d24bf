package graph

import (
	"sort"
	"testing"
)

func TestSCC(t *testing.T) {
	scc := _sampleGraph.SCC([]int{0})

	sameComp := [][]int{{0, 1, 4}, {2, 3, 7}, {5, 6}}
	for _, group := range sameComp {
		for _, n := range group[1:] {
			if scc.ComponentOf(n) != scc.ComponentOf(group[0]) {
				t.Errorf("Expected %d and %d to be in the same component", n, group[0])
			}
		}
		if !scc.IsCyclic(scc.ComponentOf(group[0])) {
			t.Errorf("Expected component of %d to be cyclic", group[0])
		}
	}

	for _, n := range []int{8, 9, 10, 11, 12, 13} {
		comp := scc.ComponentOf(n)
		if len(scc.Components[comp]) != 1 || scc.IsCyclic(comp) {
			t.Errorf("Expected %d to be in an acyclic singleton component, got %v", n, scc.Components[comp])
		}
	}

	if len(scc.Components) != 9 {
		t.Errorf("Expected 9 components, got %d: %v", len(scc.Components), scc.Components)
	}

	if scc.ComponentOf(42) != -1 {
		t.Error("Unknown node should not belong to a component")
	}
}

func TestSCCSelfLoop(t *testing.T) {
	G := OfHashable(func(i int) []int {
		return map[int][]int{0: {1}, 1: {1}}[i]
	})

	scc := G.SCC([]int{0})
	if scc.IsCyclic(scc.ComponentOf(0)) {
		t.Error("0 is not on a cycle")
	}
	if !scc.IsCyclic(scc.ComponentOf(1)) {
		t.Error("1 has a self-loop")
	}
}

func TestSCCToGraph(t *testing.T) {
	scc := _sampleGraph.SCC([]int{0})
	G := scc.ToGraph()

	from := scc.ComponentOf(0)
	var targets []int
	for _, e := range G.Edges(from) {
		targets = append(targets, scc.Components[e]...)
	}
	sort.Ints(targets)

	// {0, 1, 4} has edges into {2, 3, 7}, {5, 6} and {8}.
	expected := []int{2, 3, 5, 6, 7, 8}
	if len(targets) != len(expected) {
		t.Fatalf("Expected edges to %v, got %v", expected, targets)
	}
	for i := range expected {
		if targets[i] != expected[i] {
			t.Fatalf("Expected edges to %v, got %v", expected, targets)
		}
	}
}
