package cfg

import (
	"fmt"
)

// Builder assembles a Cfg. A Builder must not be reused after Build.
type Builder struct {
	g *Cfg
	// errs records problems detected while adding nodes and edges.
	// They are reported by Build.
	errs []error
}

func NewBuilder() *Builder {
	return &Builder{
		g: &Cfg{
			byName: make(map[string]*Node),
		},
	}
}

func (b *Builder) add(name, label, target string, pos Position) *Node {
	n := &Node{
		id:     len(b.g.nodes),
		label:  label,
		target: target,
		pos:    pos,
		owner:  b.g,
	}
	if name == "" {
		name = fmt.Sprintf("n%d", n.id)
	}
	n.name = name
	if n.label == "" {
		n.label = name
	}

	if _, dup := b.g.byName[name]; dup {
		b.errs = append(b.errs, structural(ErrDuplicateNode, name))
	}

	b.g.nodes = append(b.g.nodes, n)
	b.g.byName[name] = n
	if n.IsInclude() {
		b.g.includes = append(b.g.includes, n)
	}
	return n
}

// AddNode creates a non-include node. The name may be empty, in which case
// one is derived from the node ID.
func (b *Builder) AddNode(name, label string, pos Position) *Node {
	return b.add(name, label, "", pos)
}

// AddInclude creates an include node pulling in the target file.
func (b *Builder) AddInclude(name, label, target string, pos Position) *Node {
	n := b.add(name, label, target, pos)
	if target == "" {
		b.errs = append(b.errs, structural(ErrMissingTarget, n.name))
	}
	return n
}

// AddEdge adds a control edge. Duplicate edges are ignored.
func (b *Builder) AddEdge(from, to *Node) {
	if from == nil || to == nil || from.owner != b.g || to.owner != b.g {
		b.errs = append(b.errs, structural(ErrDanglingEdge, edgeName(from, to)))
		return
	}
	if hasEdge(from.succs, to) {
		return
	}

	from.succs = append(from.succs, to)
	to.preds = append(to.preds, from)
}

func (b *Builder) SetEntry(n *Node) {
	b.g.entry = n
}

// Build validates and returns the graph.
func (b *Builder) Build() (*Cfg, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if err := Validate(b.g); err != nil {
		return nil, err
	}

	return b.g, nil
}

func edgeName(from, to *Node) string {
	name := func(n *Node) string {
		if n == nil {
			return "<nil>"
		}
		return n.name
	}
	return name(from) + " -> " + name(to)
}
