package cfg

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// The CFG interchange format emitted by front-ends:
//
//	entry: n0
//	nodes:
//	  - {id: n0, label: "<entry>"}
//	  - {id: n1, label: "include 'a.php'", include: a.php, file: index.php, line: 3}
//	edges:
//	  - [n0, n1]
type (
	fileNode struct {
		ID      string `yaml:"id"`
		Label   string `yaml:"label"`
		Include string `yaml:"include"`
		File    string `yaml:"file"`
		Line    int    `yaml:"line"`
	}

	fileCfg struct {
		Entry string     `yaml:"entry"`
		Nodes []fileNode `yaml:"nodes"`
		Edges [][]string `yaml:"edges"`
	}
)

// Load reads and validates a CFG file.
func Load(path string) (*Cfg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading CFG")
	}

	G, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return G, nil
}

// Parse decodes and validates a CFG in the interchange format.
// Unknown fields are rejected.
func Parse(data []byte) (*Cfg, error) {
	var f fileCfg
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "decoding CFG")
	}

	b := NewBuilder()
	for _, fn := range f.Nodes {
		if fn.ID == "" {
			return nil, structural(ErrUnknownNode, "node without id")
		}

		pos := Position{File: fn.File, Line: fn.Line}
		if fn.Include != "" {
			b.AddInclude(fn.ID, fn.Label, fn.Include, pos)
		} else {
			b.AddNode(fn.ID, fn.Label, pos)
		}
	}

	lookup := func(name string) (*Node, error) {
		if n, ok := b.g.byName[name]; ok {
			return n, nil
		}
		return nil, structural(ErrUnknownNode, name)
	}

	for _, e := range f.Edges {
		if len(e) != 2 {
			return nil, errors.Errorf("malformed edge %v: expected [from, to]", e)
		}

		from, err := lookup(e[0])
		if err != nil {
			return nil, err
		}
		to, err := lookup(e[1])
		if err != nil {
			return nil, err
		}
		b.AddEdge(from, to)
	}

	if f.Entry != "" {
		entry, err := lookup(f.Entry)
		if err != nil {
			return nil, err
		}
		b.SetEntry(entry)
	}

	return b.Build()
}
