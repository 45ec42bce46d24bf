package report

import (
	"fmt"
	"io"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/utils"

	"github.com/fatih/color"
)

// Finding is a single line of a report.
type Finding interface {
	fmt.Stringer
	Position() cfg.Position
}

var header = func(is ...interface{}) string {
	return utils.CanColorize(color.New(color.Bold).SprintFunc())(is...)
}

// Write renders the findings of one kind, in the given order.
func Write(w io.Writer, kind string, findings []Finding) error {
	if _, err := fmt.Fprintf(w, "%s: %d finding(s)\n", header(kind), len(findings)); err != nil {
		return err
	}

	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", f.Position(), f); err != nil {
			return err
		}
	}
	return nil
}

func findings[F Finding](fs []F) []Finding {
	res := make([]Finding, len(fs))
	for i, f := range fs {
		res[i] = f
	}
	return res
}
