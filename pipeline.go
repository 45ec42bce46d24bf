package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/dataflow"
	"github.com/cs-au-dk/incdom/analysis/incdom"
	"github.com/cs-au-dk/incdom/analysis/report"
	"github.com/cs-au-dk/incdom/utils"
	"github.com/cs-au-dk/incdom/utils/dot"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// pipeline carries one input file through loading, analysis and reporting.
// Everything printed for the file is written to out, so that files analysed
// concurrently can be reported in input order.
type pipeline struct {
	path  string
	order dataflow.Order
	out   bytes.Buffer
	stats *dataflow.Stats
}

func newPipeline(path string) *pipeline {
	order := dataflow.RPO
	if opts.Order().IsFIFO() {
		order = dataflow.FIFO
	}
	return &pipeline{path: path, order: order}
}

func (pl *pipeline) load() (*cfg.Cfg, error) {
	defer utils.TimeTrack(time.Now(), "Loading "+pl.path)
	log.Debugf("Loading CFG from %s...", pl.path)

	G, err := cfg.Load(pl.path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d nodes, %d includes", G.Size(), len(G.Includes()))
	return G, nil
}

func (pl *pipeline) analyze(G *cfg.Cfg) (*incdom.Result, error) {
	defer utils.TimeTrack(time.Now(), "Include-dominator analysis of "+pl.path)
	log.Debugf("Performing include-dominator analysis of %s...", pl.path)

	a, err := incdom.New(G,
		incdom.WithOrder(pl.order),
		incdom.WithMaxUpdates(opts.MaxUpdates()))
	if err != nil {
		return nil, errors.Wrapf(err, "analysing %s", pl.path)
	}

	res := a.Analyze()
	stats := res.Stats()
	pl.stats = &stats
	utils.VerbosePrint("%s: %s", pl.path, stats)
	return res, nil
}

// run performs the selected task on the input file.
func (pl *pipeline) run() error {
	G, err := pl.load()
	if err != nil {
		return err
	}

	// Tasks on the structure of the graph do not need the fixpoint.
	switch {
	case task.IsCircular():
		return pl.write("circular includes", report.Circular(G))
	case task.IsUnreached():
		findings, err := report.Unreached(G)
		if err != nil {
			return errors.Wrapf(err, "analysing %s", pl.path)
		}
		return pl.write("unreached nodes", findings)
	}

	res, err := pl.analyze(G)
	if err != nil {
		return err
	}

	switch {
	case task.IsDominators():
		return pl.write("include dominators", report.Dominators(res))
	case task.IsRedundant():
		return pl.write("redundant includes", report.Redundant(res))
	case task.IsVerify():
		return pl.write("dominator tree mismatches", report.Verify(res))
	case task.IsStats():
		_, err := fmt.Fprintf(&pl.out, "%s\n  %s\n", pl.path, res.Stats())
		return err
	case task.IsCfgToDot():
		return pl.visualize(res)
	}
	return nil
}

func (pl *pipeline) write(kind string, findings []report.Finding) error {
	if _, err := fmt.Fprintln(&pl.out, pl.path); err != nil {
		return err
	}
	return report.Write(&pl.out, kind, findings)
}

func (pl *pipeline) visualize(res *incdom.Result) error {
	G := res.Graph()
	dg := G.ToDotGraph(filepath.Base(pl.path), func(n *cfg.Node) string {
		if !res.Reachable(n) {
			return "unreachable"
		}
		return res.Dominators(n).String()
	})

	if opts.Visualize() {
		dg.ShowDot()
		return nil
	}

	var buf bytes.Buffer
	if err := dg.WriteDot(&buf); err != nil {
		return errors.Wrap(err, "writing dot graph")
	}

	img, err := dot.DotToImage(pl.outputName(), opts.OutputFormat(), buf.Bytes())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(&pl.out, "%s: rendered to %s\n", pl.path, img)
	return err
}

// outputName derives the image name for the input file. With several input
// files, the base name of each file is appended to -out.
func (pl *pipeline) outputName() string {
	out := opts.Output()
	if len(utils.InputFiles()) == 1 {
		return out
	}
	base := strings.TrimSuffix(filepath.Base(pl.path), filepath.Ext(pl.path))
	if out == "" {
		return filepath.Join(os.TempDir(), "incdom_"+base)
	}
	return out + "-" + base
}
