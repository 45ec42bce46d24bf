package utils

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type options struct {
	jobs         uint
	maxUpdates   uint
	minlen       uint
	nodesep      float64
	order        string
	outputFormat string
	output       string
	task         string
	noColorize   bool
	paranoid     bool
	verbose      bool
	visualize    bool
}

const (
	_DOMINATORS = iota
	_REDUNDANT
	_CIRCULAR
	_UNREACHED
	_VERIFY
	_CFG_TO_DOT
	_STATS
)

const (
	_ORDER_RPO = iota
	_ORDER_FIFO
)

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var task = []struct{ flag, explanation string }{{
	"dominators",
	"Print the include-dominator set of every CFG node",
}, {
	"redundant",
	"Report include statements whose target file is already included on every path",
}, {
	"circular",
	"Report cycles in the file-level include graph",
}, {
	"unreached",
	"Report CFG nodes that are not reachable from the entry node",
}, {
	"verify",
	"Cross-check include-dominator sets against the dominator tree of the CFG",
}, {
	"cfg-to-dot",
	"Create a graph for the control-flow graph, annotated with include-dominator sets",
}, {
	"stats",
	"Print fixpoint and recycling statistics",
}}

var orders = []struct{ flag, explanation string }{{
	"rpo",
	"Priority worklist ordered by reverse post-order of the CFG",
}, {
	"fifo",
	"First-in first-out worklist",
}}

var opts = &options{}

type optInterface struct{}

type taskInterface struct{}

type orderInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) Jobs() int {
	if opts.jobs == 0 {
		return 1
	}
	return int(opts.jobs)
}

// MaxUpdates is the bound on output updates per node enforced in paranoid mode.
// Zero means unbounded.
func (optInterface) MaxUpdates() int {
	if !opts.paranoid {
		return 0
	}
	return int(opts.maxUpdates)
}

func (optInterface) Minlen() uint {
	return opts.minlen
}
func (optInterface) Nodesep() float64 {
	return opts.nodesep
}
func (optInterface) OutputFormat() string {
	return opts.outputFormat
}
func (optInterface) Output() string {
	return opts.output
}
func (optInterface) Verbose() bool {
	return opts.verbose
}
func (optInterface) Visualize() bool {
	return opts.visualize
}
func (optInterface) Order() orderInterface {
	return orderInterface{}
}
func (orderInterface) IsRPO() bool {
	return opts.order == orders[_ORDER_RPO].flag
}
func (orderInterface) IsFIFO() bool {
	return opts.order == orders[_ORDER_FIFO].flag
}
func (optInterface) Task() taskInterface {
	return taskInterface{}
}
func (taskInterface) IsDominators() bool {
	return opts.task == task[_DOMINATORS].flag
}
func (taskInterface) IsRedundant() bool {
	return opts.task == task[_REDUNDANT].flag
}
func (taskInterface) IsCircular() bool {
	return opts.task == task[_CIRCULAR].flag
}
func (taskInterface) IsUnreached() bool {
	return opts.task == task[_UNREACHED].flag
}
func (taskInterface) IsVerify() bool {
	return opts.task == task[_VERIFY].flag
}
func (taskInterface) IsCfgToDot() bool {
	return opts.task == task[_CFG_TO_DOT].flag
}
func (taskInterface) IsStats() bool {
	return opts.task == task[_STATS].flag
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"
	orderFlag := "\n"
	for _, order := range orders {
		orderFlag += order.flag + " -- " + order.explanation + "\n"
	}
	orderFlag += "\n"

	flag.UintVar(&(opts.minlen), "minlen", 2, "Minimum edge length (for wider output).")
	flag.Float64Var(&(opts.nodesep), "nodesep", 0.35, "Minimum space between two adjacent nodes in the same rank (for taller output).")
	flag.UintVar(&(opts.jobs), "j", 1, "Number of CFG files analyzed concurrently.")
	flag.UintVar(&(opts.maxUpdates), "max-updates", 10000, "Per-node update bound enforced with -paranoid.")
	flag.StringVar(&(opts.order), "order", orders[_ORDER_RPO].flag, "Worklist iteration order. Options:"+orderFlag)
	flag.StringVar(&(opts.outputFormat), "format", "svg", "output file format [svg | png | jpg | dot]")
	flag.StringVar(&(opts.output), "out", "", "output file name (without extension) for -task cfg-to-dot")
	flag.StringVar(&(opts.task), "task", task[_DOMINATORS].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.paranoid), "paranoid", false, "Abort when a node's output is updated more than -max-updates times")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
	flag.BoolVar(&(opts.visualize), "visualize", false, "enable visualization via XDot")

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validTask := false
	for _, task := range task {
		if task.flag == opts.task {
			validTask = true
			break
		}
	}

	if !validTask {
		log.Fatalf("Value \"%s\" is not valid for -task", opts.task)
	}

	if !Opts().Order().IsRPO() && !Opts().Order().IsFIFO() {
		log.Fatalf("Value \"%s\" is not valid for -order", opts.order)
	}

	if Opts().Task().IsCfgToDot() {
		opts.noColorize = true
	}
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// SetColorize toggles pretty printer colorization. Used by tests that compare
// printed output.
func SetColorize(on bool) {
	opts.noColorize = !on
}
