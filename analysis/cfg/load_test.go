package cfg

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	G, err := Parse([]byte(`
entry: n0
nodes:
  - {id: n0, label: "<entry>"}
  - {id: n1, label: "include 'a.php'", include: a.php, file: index.php, line: 3}
  - {id: n2}
edges:
  - [n0, n1]
  - [n1, n2]
`))
	if err != nil {
		t.Fatal(err)
	}

	if G.Size() != 3 {
		t.Fatalf("Expected 3 nodes, got %d", G.Size())
	}

	n1, _ := G.Lookup("n1")
	if !n1.IsInclude() || n1.Target() != "a.php" {
		t.Errorf("%v should include a.php", n1)
	}
	if n1.Pos() != (Position{File: "index.php", Line: 3}) {
		t.Errorf("Unexpected position %v", n1.Pos())
	}
	if G.Entry().Label() != "<entry>" {
		t.Errorf("Unexpected entry %v", G.Entry())
	}
	if n2, _ := G.Lookup("n2"); n2.Label() != "n2" || len(n2.Predecessors()) != 1 {
		t.Errorf("Unexpected node %v", n2)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
		where string
	}{{
		"unknown edge target",
		"entry: a\nnodes: [{id: a}]\nedges: [[a, b]]\n",
		ErrUnknownNode,
		"b",
	}, {
		"unknown entry",
		"entry: b\nnodes: [{id: a}]\n",
		ErrUnknownNode,
		"b",
	}, {
		"no entry",
		"nodes: [{id: a}]\n",
		ErrNoEntry,
		"",
	}, {
		"duplicate node",
		"entry: a\nnodes: [{id: a}, {id: a}]\n",
		ErrDuplicateNode,
		"a",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.input))
			if !errors.Is(err, test.cause) {
				t.Fatalf("Expected %v, got %v", test.cause, err)
			}

			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Fatalf("%v is not a structural error", err)
			}
			if serr.Where != test.where {
				t.Errorf("Expected error at %q, got %q", test.where, serr.Where)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"short edge":    "entry: a\nnodes: [{id: a}]\nedges: [[a]]\n",
		"unknown field": "entry: a\nnodes: [{id: a, color: red}]\n",
		"not yaml":      "entry: [\n",
	} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "cfgs", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("No example CFGs found")
	}

	for _, path := range paths {
		G, err := Load(path)
		if err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		if len(G.Includes()) == 0 {
			t.Errorf("%s has no include nodes", path)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading CFG") {
		t.Errorf("Unexpected error %v", err)
	}
}
