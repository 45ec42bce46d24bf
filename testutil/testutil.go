package testutil

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/cs-au-dk/incdom/analysis/cfg"
)

// endpoint is a node mention in a compact edge list: "name" or "name:target".
type endpoint struct {
	name   string
	target string
}

func parseEndpoint(t testing.TB, s string) endpoint {
	name, target, _ := strings.Cut(s, ":")
	if name == "" {
		t.Fatalf("empty node name in %q", s)
	}
	return endpoint{name, target}
}

// Compact builds a CFG from a whitespace separated list of edges such as
//
//	"entry->a a:x.php->b b->a"
//
// A mention of the form name:file makes the node an include of file. Isolated
// nodes are listed on their own. The first node mentioned is the entry.
func Compact(t testing.TB, edges string) *cfg.Cfg {
	t.Helper()

	var (
		order   []string
		targets = map[string]string{}
		pairs   [][2]string
	)

	mention := func(s string) string {
		ep := parseEndpoint(t, s)
		prev, seen := targets[ep.name]
		switch {
		case !seen:
			order = append(order, ep.name)
			targets[ep.name] = ep.target
		case ep.target != "" && prev == "":
			targets[ep.name] = ep.target
		case ep.target != "" && prev != ep.target:
			t.Fatalf("node %s includes both %s and %s", ep.name, prev, ep.target)
		}
		return ep.name
	}

	for _, tok := range strings.Fields(edges) {
		from, to, isEdge := strings.Cut(tok, "->")
		if !isEdge {
			mention(tok)
			continue
		}
		pairs = append(pairs, [2]string{mention(from), mention(to)})
	}

	if len(order) == 0 {
		t.Fatal("empty edge list")
	}

	b := cfg.NewBuilder()
	nodes := make(map[string]*cfg.Node, len(order))
	for _, name := range order {
		if target := targets[name]; target != "" {
			nodes[name] = b.AddInclude(name, "", target, cfg.Position{})
		} else {
			nodes[name] = b.AddNode(name, "", cfg.Position{})
		}
	}
	for _, p := range pairs {
		b.AddEdge(nodes[p[0]], nodes[p[1]])
	}
	b.SetEntry(nodes[order[0]])

	G, err := b.Build()
	if err != nil {
		t.Fatalf("building %q: %v", edges, err)
	}
	return G
}

// RandomConfig controls the shape of graphs produced by Random.
type RandomConfig struct {
	Nodes int
	// Edges is the number of edges added on top of a spanning chain.
	Edges int
	// IncludeRatio is the probability of a node being an include.
	IncludeRatio float64
	// Files is the number of distinct include targets.
	Files int
	// Unreachable is the number of extra nodes not connected to the entry.
	Unreachable int
}

// Random generates a CFG. Node i is labelled ni and n0 is the entry.
// All nodes but the unreachable ones are reachable from the entry.
func Random(rng *rand.Rand, conf RandomConfig) *cfg.Cfg {
	if conf.Files <= 0 {
		conf.Files = 1
	}

	b := cfg.NewBuilder()
	total := conf.Nodes + conf.Unreachable
	nodes := make([]*cfg.Node, total)
	for i := range nodes {
		if i > 0 && rng.Float64() < conf.IncludeRatio {
			target := fmt.Sprintf("f%d.php", rng.Intn(conf.Files))
			nodes[i] = b.AddInclude("", "", target, cfg.Position{})
		} else {
			nodes[i] = b.AddNode("", "", cfg.Position{})
		}
	}

	// Every reachable node gets an edge from an earlier node.
	for i := 1; i < conf.Nodes; i++ {
		b.AddEdge(nodes[rng.Intn(i)], nodes[i])
	}
	for i := 0; i < conf.Edges && conf.Nodes > 0; i++ {
		b.AddEdge(nodes[rng.Intn(conf.Nodes)], nodes[rng.Intn(conf.Nodes)])
	}
	// Unreachable nodes may still flow into reachable ones.
	for i := conf.Nodes; i < total; i++ {
		if conf.Nodes > 1 {
			b.AddEdge(nodes[i], nodes[1+rng.Intn(conf.Nodes-1)])
		}
	}

	b.SetEntry(nodes[0])
	G, err := b.Build()
	if err != nil {
		panic(fmt.Errorf("random graph is malformed: %w", err))
	}
	return G
}

// ListExamples returns the names of all example CFGs under
// examples/cfgs, relative to the repository root, in lexical order.
func ListExamples(t testing.TB, pathToRoot string) []string {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(pathToRoot, "examples", "cfgs", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(p), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadExample loads examples/cfgs/<name>.yaml.
func LoadExample(t testing.TB, pathToRoot string, name string) *cfg.Cfg {
	t.Helper()

	G, err := cfg.Load(filepath.Join(pathToRoot, "examples", "cfgs", name+".yaml"))
	if err != nil {
		t.Fatalf("loading example %s: %v", name, err)
	}
	return G
}

var loadLock sync.Mutex

// ParallelHelper runs f as a parallel subtest for every example CFG.
// Loading is serialized, the callbacks run concurrently.
func ParallelHelper(t *testing.T, pathToRoot string, f func(*testing.T, *cfg.Cfg)) {
	for _, name := range ListExamples(t, pathToRoot) {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			loadLock.Lock()
			G := LoadExample(t, pathToRoot, name)
			loadLock.Unlock()

			t.Logf("Running %v", t.Name())
			f(t, G)
		})
	}
}
