package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/cs-au-dk/incdom/analysis/dataflow"
	"github.com/cs-au-dk/incdom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.SetColorize(false)
}

func withTask(t *testing.T, name string) {
	t.Helper()
	prev := flag.Lookup("task").Value.String()
	require.NoError(t, flag.Set("task", name))
	t.Cleanup(func() { flag.Set("task", prev) })
}

func TestPipelineTasks(t *testing.T) {
	for _, test := range []struct {
		task string
		path string
		want []string
	}{
		{"dominators", "examples/cfgs/linear.yaml", []string{
			"include dominators: 4 finding(s)",
			"index.php:3: b {a}",
			"index.php: exit {a, b}",
		}},
		{"redundant", "examples/cfgs/linear.yaml", []string{
			"redundant includes: 1 finding(s)",
			"b includes config.php already included by a (index.php:2)",
		}},
		{"unreached", "examples/cfgs/linear.yaml", []string{
			"unreached nodes: 0 finding(s)",
		}},
		{"circular", "examples/cfgs/bootstrap.yaml", []string{
			"circular includes: 1 finding(s)",
			"config.php, defaults.php include each other",
		}},
		{"verify", "examples/cfgs/loop.yaml", []string{
			"dominator tree mismatches: 0 finding(s)",
		}},
		{"stats", "examples/cfgs/diamond.yaml", []string{
			"examples/cfgs/diamond.yaml\n  5 nodes",
		}},
	} {
		t.Run(test.task, func(t *testing.T) {
			withTask(t, test.task)

			pl := newPipeline(test.path)
			require.NoError(t, pl.run())

			out := pl.out.String()
			assert.Truef(t, strings.HasPrefix(out, test.path+"\n"),
				"Output does not start with the file name:\n%s", out)
			for _, want := range test.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPipelineStats(t *testing.T) {
	pl := newPipeline("examples/cfgs/loop.yaml")
	require.NoError(t, pl.run())
	require.NotNil(t, pl.stats, "Expected statistics after the analysis")

	assert.Equal(t, 5, pl.stats.Nodes)
	assert.GreaterOrEqual(t, pl.stats.Visits, 5)
}

func TestPipelineMissingFile(t *testing.T) {
	pl := newPipeline("examples/cfgs/does-not-exist.yaml")
	err := pl.run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
	assert.Zero(t, pl.out.Len())
}

func TestMetrics(t *testing.T) {
	var m metrics
	var buf bytes.Buffer
	require.NoError(t, m.write(&buf))
	assert.Zero(t, buf.Len(), "Empty metrics should print nothing")

	m.add(dataflow.Stats{Nodes: 4, Visits: 6, Updates: 4, MaxNodeUpdates: 1, PoolHits: 3, PoolMisses: 1, Duration: time.Millisecond})
	m.add(dataflow.Stats{Nodes: 6, Visits: 14, Updates: 8, MaxNodeUpdates: 2, PoolHits: 1, PoolMisses: 3, Duration: time.Millisecond})

	assert.Equal(t, 2, m.files)
	assert.Equal(t, 10, m.nodes)
	assert.Equal(t, 20, m.visits)
	assert.Equal(t, 12, m.updates)
	assert.Equal(t, 2, m.maxNode)
	assert.Equal(t, 0.5, m.hitRate())

	require.NoError(t, m.write(&buf))
	for _, want := range []string{
		"Files: 2",
		"Visits: 20 (2.00 per node)",
		"Updates: 12 (at most 2 per node)",
		"Recycling: 4 hits, 4 misses (50.0%)",
		"Time: 2ms",
	} {
		assert.Contains(t, buf.String(), want)
	}
}
