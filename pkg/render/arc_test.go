package render

import (
	"strings"
	"testing"

	"github.com/linarr-project/linarr/pkg/graph"
	"github.com/linarr-project/linarr/pkg/linarr"
)

func TestToDOT(t *testing.T) {
	g := graph.Cycle(4)
	arr, _ := linarr.FromOrder([]int{0, 2, 1, 3})

	dot := ToDOT(g, arr, Options{})

	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("DOT output is not a digraph block:\n%s", dot)
	}
	for _, want := range []string{"rankdir=LR", "splines=curved", "v0", "v1", "v2", "v3"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	// spine follows the arrangement order
	if !strings.Contains(dot, "v0 -> v2 -> v1 -> v3 [style=invis") {
		t.Errorf("spine should pin the arrangement order:\n%s", dot)
	}
	// one drawn edge per graph edge
	if got := strings.Count(dot, "constraint=false"); got != g.NumEdges() {
		t.Errorf("drawn %d edges, want %d", got, g.NumEdges())
	}
}

func TestToDOTEdgeDirection(t *testing.T) {
	g := graph.MustUndirected(3)
	_ = g.AddEdge(0, 2)
	arr, _ := linarr.FromOrder([]int{2, 1, 0}) // vertex 2 left of vertex 0

	dot := ToDOT(g, arr, Options{})
	if !strings.Contains(dot, "v2 -> v0 [constraint=false]") {
		t.Errorf("arcs should run left to right in arrangement order:\n%s", dot)
	}
}

func TestToDOTLabels(t *testing.T) {
	g := graph.Path(3)
	dot := ToDOT(g, linarr.Identity(3), Options{Labels: []string{"a", "b"}})

	if !strings.Contains(dot, `v0 [label="a"]`) || !strings.Contains(dot, `v1 [label="b"]`) {
		t.Errorf("custom labels missing:\n%s", dot)
	}
	// vertex without a label falls back to its ID
	if !strings.Contains(dot, `v2 [label="2"]`) {
		t.Errorf("fallback label missing:\n%s", dot)
	}
}

func TestToDOTCrossingCaption(t *testing.T) {
	g := graph.MustUndirected(4)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(1, 3)

	dot := ToDOT(g, linarr.Identity(4), Options{ShowCrossings: true})
	if !strings.Contains(dot, `label="1 crossings"`) {
		t.Errorf("caption missing:\n%s", dot)
	}

	dot = ToDOT(g, linarr.Identity(4), Options{})
	if strings.Contains(dot, "crossings") {
		t.Errorf("caption should be off by default:\n%s", dot)
	}
}

func TestToDOTSingleVertex(t *testing.T) {
	dot := ToDOT(graph.MustUndirected(1), linarr.Identity(1), Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("single vertex graph should have no edges or spine:\n%s", dot)
	}
}

func TestSVG(t *testing.T) {
	g := graph.Cycle(5)
	dot := ToDOT(g, linarr.Identity(5), Options{})

	svg, err := SVG(dot)
	if err != nil {
		t.Fatalf("SVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Errorf("output is not SVG: %.100s", svg)
	}
}

func TestSVGRejectsMalformedDOT(t *testing.T) {
	if _, err := SVG("this is not dot"); err == nil {
		t.Error("SVG() should fail on malformed DOT")
	}
}
