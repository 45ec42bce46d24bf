package graph

import "testing"

func TestReversePostorder(t *testing.T) {
	diamond := OfHashable(func(i int) []int {
		return map[int][]int{
			0: {1, 2},
			1: {3},
			2: {3},
			3: {},
		}[i]
	})

	order := diamond.ReversePostorder(0)
	if len(order) != 4 {
		t.Fatalf("Expected 4 nodes, got %v", order)
	}
	if order[0] != 0 || order[3] != 3 {
		t.Errorf("Expected 0 first and 3 last, got %v", order)
	}

	order = _sampleGraph.ReversePostorder(0)
	if len(order) != 14 || order[0] != 0 {
		t.Errorf("Expected all 14 nodes starting from 0, got %v", order)
	}
}

func TestBFS(t *testing.T) {
	visited := map[int]bool{}
	stopped := _sampleGraph.BFS(9, func(n int) bool {
		visited[n] = true
		return false
	})

	if stopped {
		t.Error("BFS should not stop early")
	}
	if len(visited) != 5 {
		t.Errorf("Expected {9, 10, 11, 12, 13}, got %v", visited)
	}

	if !_sampleGraph.BFS(0, func(n int) bool { return n == 7 }) {
		t.Error("Expected BFS to stop at 7")
	}
}
