package set

import (
	"strings"
	"testing"
)

func compareResults(t *testing.T, found, expected map[string]struct{}) {
	t.Helper()

	for str := range expected {
		if _, ok := found[str]; !ok {
			t.Errorf("Subset %q expected but not found", str)
		}
	}

	for str := range found {
		if _, ok := expected[str]; !ok {
			t.Errorf("Subset %q found but not expected", str)
		}
	}
}

func collect(S Subsets[string]) map[string]struct{} {
	found := make(map[string]struct{})
	S.ForEach(func(subset []string) {
		found[strings.Join(subset, "")] = struct{}{}
	})
	return found
}

func TestSubset(t *testing.T) {
	S := SubsetsV("A", "B", "C", "D")

	expected := map[string]struct{}{
		"":     {},
		"A":    {},
		"B":    {},
		"C":    {},
		"D":    {},
		"AB":   {},
		"AC":   {},
		"AD":   {},
		"BC":   {},
		"BD":   {},
		"CD":   {},
		"ABC":  {},
		"ABD":  {},
		"ACD":  {},
		"BCD":  {},
		"ABCD": {},
	}

	compareResults(t, collect(S), expected)

	if n := len(S.All()); n != 16 {
		t.Errorf("Expected 16 subsets, got %d", n)
	}
}

func TestEmpty(t *testing.T) {
	S := SubsetsV[string]()

	expected := map[string]struct{}{
		"": {},
	}

	compareResults(t, collect(S), expected)
}

func TestSubsetsAreFresh(t *testing.T) {
	all := SubsetsV(1, 2, 3).All()
	// Lexicographic order: [], [1], [1 2], ...
	all[1][0] = 42

	if all[2][0] != 1 {
		t.Fatalf("Subsets share backing storage: %v", all)
	}
}
