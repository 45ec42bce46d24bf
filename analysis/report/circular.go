package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/utils/graph"
)

// IncludeCycle is a set of files that (transitively) include each other.
type IncludeCycle struct {
	// Files is sorted.
	Files []string
}

func (c IncludeCycle) Position() cfg.Position {
	return cfg.Position{File: c.Files[0]}
}

func (c IncludeCycle) String() string {
	if len(c.Files) == 1 {
		return c.Files[0] + " includes itself"
	}
	return fmt.Sprintf("files %s include each other", strings.Join(c.Files, ", "))
}

// FileGraph is the file-level include graph: an edge from a to b means a
// contains an include of b. Includes without a source file are ignored.
func FileGraph(G *cfg.Cfg) (graph.Graph[string], []string) {
	edges := map[string]map[string]bool{}
	addFile := func(f string) {
		if _, ok := edges[f]; !ok {
			edges[f] = map[string]bool{}
		}
	}

	for _, n := range G.Includes() {
		from := n.Pos().File
		if from == "" {
			continue
		}

		addFile(from)
		addFile(n.Target())
		edges[from][n.Target()] = true
	}

	files := make([]string, 0, len(edges))
	succs := make(map[string][]string, len(edges))
	for f, tos := range edges {
		files = append(files, f)
		for to := range tos {
			succs[f] = append(succs[f], to)
		}
		sort.Strings(succs[f])
	}
	sort.Strings(files)

	return graph.OfHashable(func(f string) []string {
		return succs[f]
	}), files
}

// Circular finds the cycles of the file-level include graph, ordered by
// their first file.
func Circular(G *cfg.Cfg) []Finding {
	fg, files := FileGraph(G)
	scc := fg.SCC(files)

	var cycles []IncludeCycle
	for idx, comp := range scc.Components {
		if !scc.IsCyclic(idx) {
			continue
		}

		fs := append([]string(nil), comp...)
		sort.Strings(fs)
		cycles = append(cycles, IncludeCycle{fs})
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i].Files[0] < cycles[j].Files[0]
	})
	return findings(cycles)
}
