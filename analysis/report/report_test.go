package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cs-au-dk/incdom/analysis/cfg"
	"github.com/cs-au-dk/incdom/analysis/incdom"
	"github.com/cs-au-dk/incdom/testutil"
	"github.com/cs-au-dk/incdom/utils"

	"github.com/sebdah/goldie/v2"
)

func init() {
	utils.SetColorize(false)
}

func analyze(t *testing.T, G *cfg.Cfg) *incdom.Result {
	t.Helper()

	a, err := incdom.New(G)
	if err != nil {
		t.Fatal(err)
	}
	return a.Analyze()
}

func render(t *testing.T, G *cfg.Cfg) []byte {
	t.Helper()

	res := analyze(t, G)
	unreached, err := Unreached(G)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	for _, section := range []struct {
		kind     string
		findings []Finding
	}{
		{"dominators", Dominators(res)},
		{"redundant", Redundant(res)},
		{"unreached", unreached},
		{"circular", Circular(G)},
		{"verify", Verify(res)},
	} {
		if err := Write(&buf, section.kind, section.findings); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestExampleReports(t *testing.T) {
	g := goldie.New(t)

	for _, name := range testutil.ListExamples(t, "../..") {
		t.Run(name, func(t *testing.T) {
			G := testutil.LoadExample(t, "../..", name)
			g.Assert(t, name, render(t, G))
		})
	}
}

func TestVerifyExamples(t *testing.T) {
	testutil.ParallelHelper(t, "../..", func(t *testing.T, G *cfg.Cfg) {
		if mismatches := Verify(analyze(t, G)); len(mismatches) > 0 {
			var buf bytes.Buffer
			Write(&buf, "verify", mismatches)
			t.Error(buf.String())
		}
	})
}

func TestRedundant(t *testing.T) {
	G := testutil.Compact(t, "e->a:x.php a->b:y.php a->c:x.php b->d:x.php c->d d->e2:y.php")
	found := Redundant(analyze(t, G))

	var strs []string
	for _, f := range found {
		strs = append(strs, f.String())
	}

	// b includes y.php but does not dominate e2.
	expected := []string{
		"c includes x.php already included by a (-)",
		"d includes x.php already included by a (-)",
	}
	if strings.Join(strs, "\n") != strings.Join(expected, "\n") {
		t.Errorf("Expected:\n%s\ngot:\n%s", strings.Join(expected, "\n"), strings.Join(strs, "\n"))
	}
}

func TestCircularSelfInclude(t *testing.T) {
	G, err := cfg.Parse([]byte(`
entry: e
nodes:
  - {id: e}
  - {id: a, include: a.php, file: a.php, line: 1}
  - {id: b, include: c.php, file: b.php, line: 1}
  - {id: c, include: b.php, file: c.php, line: 1}
  - {id: d, include: z.php}
edges:
  - [e, a]
`))
	if err != nil {
		t.Fatal(err)
	}

	var strs []string
	for _, f := range Circular(G) {
		strs = append(strs, f.Position().String()+": "+f.String())
	}

	expected := []string{
		"a.php: a.php includes itself",
		"b.php: files b.php, c.php include each other",
	}
	if strings.Join(strs, "\n") != strings.Join(expected, "\n") {
		t.Errorf("Expected:\n%s\ngot:\n%s", strings.Join(expected, "\n"), strings.Join(strs, "\n"))
	}
}

func TestUnreached(t *testing.T) {
	G := testutil.Compact(t, "e->a a->b x->y y->x")
	found, err := Unreached(G)
	if err != nil {
		t.Fatal(err)
	}

	if len(found) != 2 || found[0].String() != "x is unreachable" || found[1].String() != "y is unreachable" {
		t.Errorf("Unexpected findings %v", found)
	}
}
