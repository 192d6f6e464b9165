package search

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/checkers/eval"
)

const graphName = "search"

// Graph renders the root of the last completed iteration: one node per root move, labelled with
// its score, the chosen move highlighted.
func (r Result) Graph() (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return nil, errors.WithStack(err)
	}

	rootLabel := fmt.Sprintf("%q", fmt.Sprintf("%v\ndepth %d\n%s", r.Move.Player, r.Depth, scoreLabel(r.Score)))
	if err := g.AddNode(graphName, "root", map[string]string{"label": rootLabel, "shape": "box"}); err != nil {
		return nil, errors.WithStack(err)
	}

	for i, rs := range r.Root {
		name := fmt.Sprintf("m%d", i)
		attrs := map[string]string{
			"label": fmt.Sprintf("%q", fmt.Sprintf("%v\n%s", rs.Move, scoreLabel(rs.Score))),
		}
		if rs.Move == r.Move {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "lightblue"
		}
		if err := g.AddNode(graphName, name, attrs); err != nil {
			return nil, errors.WithStack(err)
		}
		if err := g.AddEdge("root", name, true, nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return g, nil
}

// DOT returns the Graphviz source of r.Graph.
func (r Result) DOT() (string, error) {
	g, err := r.Graph()
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

func scoreLabel(s int) string {
	switch s {
	case eval.MinScore:
		return "loss"
	case eval.MaxScore:
		return "win"
	}
	return fmt.Sprintf("%+d", s)
}
