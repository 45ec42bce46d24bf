package cfg

import (
	"testing"

	"github.com/cs-au-dk/incdom/utils"

	"github.com/pkg/errors"
)

func init() {
	utils.SetColorize(false)
}

// diamond builds entry -> cond -> {x, y} -> merge, where x includes x.php.
func diamond(t *testing.T) (*Cfg, map[string]*Node) {
	b := NewBuilder()
	nodes := map[string]*Node{
		"entry": b.AddNode("entry", "<entry>", Position{File: "index.php"}),
		"cond":  b.AddNode("cond", "", Position{File: "index.php", Line: 2}),
		"x":     b.AddInclude("x", "include 'x.php'", "x.php", Position{File: "index.php", Line: 3}),
		"y":     b.AddNode("y", "", Position{}),
		"merge": b.AddNode("merge", "", Position{}),
	}
	b.AddEdge(nodes["entry"], nodes["cond"])
	b.AddEdge(nodes["cond"], nodes["x"])
	b.AddEdge(nodes["cond"], nodes["y"])
	b.AddEdge(nodes["x"], nodes["merge"])
	b.AddEdge(nodes["y"], nodes["merge"])
	b.SetEntry(nodes["entry"])

	G, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return G, nodes
}

func TestBuild(t *testing.T) {
	G, nodes := diamond(t)

	if G.Size() != 5 {
		t.Errorf("Expected 5 nodes, got %d", G.Size())
	}
	if G.Entry() != nodes["entry"] {
		t.Errorf("Unexpected entry %v", G.Entry())
	}

	for i, n := range G.Nodes() {
		if n.ID() != i {
			t.Errorf("Node %v has ID %d at index %d", n, n.ID(), i)
		}
		if G.Node(i) != n {
			t.Errorf("Node(%d) = %v, expected %v", i, G.Node(i), n)
		}
	}

	if G.Node(-1) != nil || G.Node(G.Size()) != nil {
		t.Error("Node should return nil for IDs outside the graph")
	}

	if incs := G.Includes(); len(incs) != 1 || incs[0] != nodes["x"] {
		t.Errorf("Unexpected includes %v", incs)
	}

	if n, ok := G.Lookup("merge"); !ok || n != nodes["merge"] {
		t.Errorf("Lookup(merge) = %v, %v", n, ok)
	}
	if _, ok := G.Lookup("nope"); ok {
		t.Error("Lookup of unknown name succeeded")
	}

	if x := nodes["x"]; !x.IsInclude() || x.Target() != "x.php" {
		t.Errorf("%v should include x.php", x)
	}
	if y := nodes["y"]; y.IsInclude() || y.Target() != "" {
		t.Errorf("%v should not be an include", y)
	}

	if lbl := nodes["cond"].Label(); lbl != "cond" {
		t.Errorf("Default label should be the node name, got %q", lbl)
	}
	if pos := nodes["x"].Pos().String(); pos != "index.php:3" {
		t.Errorf("Unexpected position %q", pos)
	}
	if pos := nodes["y"].Pos().String(); pos != "-" {
		t.Errorf("Unexpected position %q", pos)
	}
}

func TestDuplicateEdgesAreIgnored(t *testing.T) {
	b := NewBuilder()
	a, c := b.AddNode("a", "", Position{}), b.AddNode("c", "", Position{})
	b.AddEdge(a, c)
	b.AddEdge(a, c)
	b.SetEntry(a)

	if _, err := b.Build(); err != nil {
		t.Fatal(err)
	}
	if len(a.Successors()) != 1 || len(c.Predecessors()) != 1 {
		t.Errorf("Expected a single edge, got succs %v and preds %v",
			a.Successors(), c.Predecessors())
	}
}

func TestDefaultNames(t *testing.T) {
	b := NewBuilder()
	n0 := b.AddNode("", "", Position{})
	n1 := b.AddNode("", "", Position{})
	b.AddEdge(n0, n1)
	b.SetEntry(n0)

	G, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if n0.Name() != "n0" || n1.Name() != "n1" {
		t.Errorf("Unexpected names %s, %s", n0.Name(), n1.Name())
	}
	if n, ok := G.Lookup("n1"); !ok || n != n1 {
		t.Errorf("Lookup(n1) = %v, %v", n, ok)
	}
}

func TestStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Cfg, error)
		cause error
	}{{
		"no entry",
		func() (*Cfg, error) {
			b := NewBuilder()
			b.AddNode("a", "", Position{})
			return b.Build()
		},
		ErrNoEntry,
	}, {
		"missing target",
		func() (*Cfg, error) {
			b := NewBuilder()
			b.SetEntry(b.AddInclude("a", "", "", Position{}))
			return b.Build()
		},
		ErrMissingTarget,
	}, {
		"duplicate name",
		func() (*Cfg, error) {
			b := NewBuilder()
			b.SetEntry(b.AddNode("a", "", Position{}))
			b.AddNode("a", "", Position{})
			return b.Build()
		},
		ErrDuplicateNode,
	}, {
		"nil edge endpoint",
		func() (*Cfg, error) {
			b := NewBuilder()
			a := b.AddNode("a", "", Position{})
			b.AddEdge(a, nil)
			b.SetEntry(a)
			return b.Build()
		},
		ErrDanglingEdge,
	}, {
		"foreign edge endpoint",
		func() (*Cfg, error) {
			other := NewBuilder()
			foreign := other.AddNode("f", "", Position{})

			b := NewBuilder()
			a := b.AddNode("a", "", Position{})
			b.AddEdge(a, foreign)
			b.SetEntry(a)
			return b.Build()
		},
		ErrDanglingEdge,
	}, {
		"foreign entry",
		func() (*Cfg, error) {
			other := NewBuilder()
			foreign := other.AddNode("f", "", Position{})

			b := NewBuilder()
			b.AddNode("a", "", Position{})
			b.SetEntry(foreign)
			return b.Build()
		},
		ErrDanglingEdge,
	}, {
		"asymmetric edge",
		func() (*Cfg, error) {
			b := NewBuilder()
			a, c := b.AddNode("a", "", Position{}), b.AddNode("c", "", Position{})
			b.SetEntry(a)
			a.succs = append(a.succs, c)
			return b.Build()
		},
		ErrAsymmetricEdge,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			G, err := test.build()
			if err == nil {
				t.Fatalf("Expected an error, got graph:\n%v", G)
			}
			if !errors.Is(err, test.cause) {
				t.Errorf("Expected %v, got %v", test.cause, err)
			}

			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Errorf("%v is not a structural error", err)
			}
		})
	}
}

func TestTraversals(t *testing.T) {
	b := NewBuilder()
	entry := b.AddNode("entry", "", Position{})
	a := b.AddNode("a", "", Position{})
	c := b.AddNode("c", "", Position{})
	dead := b.AddNode("dead", "", Position{})
	b.AddEdge(entry, a)
	b.AddEdge(a, c)
	b.AddEdge(c, a)
	b.AddEdge(dead, c)
	b.SetEntry(entry)

	G, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	reached := G.Reachable()
	for _, n := range []*Node{entry, a, c} {
		if !reached[n.ID()] {
			t.Errorf("%v should be reachable", n)
		}
	}
	if reached[dead.ID()] {
		t.Errorf("%v should not be reachable", dead)
	}

	var visited []*Node
	G.ForEach(func(n *Node) { visited = append(visited, n) })
	if len(visited) != 3 || visited[0] != entry || visited[1] != a || visited[2] != c {
		t.Errorf("Unexpected DFS order %v", visited)
	}

	rpo := G.ReversePostorder()
	expected := []*Node{entry, a, c, dead}
	if len(rpo) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, rpo)
	}
	for i := range expected {
		if rpo[i] != expected[i] {
			t.Errorf("Expected %v at position %d of %v", expected[i], i, rpo)
		}
	}

	found := G.FindAll(func(n *Node) bool { return len(n.Predecessors()) > 1 })
	if len(found) != 1 || found[0] != c {
		t.Errorf("FindAll found %v", found)
	}
}

func TestString(t *testing.T) {
	G, _ := diamond(t)

	expected := `entry (index.php) "<entry>" [entry] -> cond
cond (index.php:2) "cond" -> x, y
x (index.php:3) "include 'x.php'" includes x.php -> merge
y (-) "y" -> merge
merge (-) "merge"`
	if str := G.String(); str != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, str)
	}
}
