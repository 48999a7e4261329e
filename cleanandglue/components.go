package cleanandglue

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treewidth/bfs"
	"github.com/katalvlaran/treewidth/bitgraph"
	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/treedecomp"
)

// SolveGraph computes an exact minimum-width tree decomposition of a
// core.Graph. It first splits g into connected components with bfs.BFS:
// the treewidth of a disjoint union is the max width over its components,
// so solving each one separately searches a strictly smaller configuration
// space per component than running the engine over the whole vertex set at
// once. Solve is then run once per component and the results are glued back
// into a single tree with treedecomp.Merge.
func SolveGraph(ctx context.Context, g *core.Graph, opts ...Option) (*treedecomp.Decomposition, error) {
	comps, err := connectedComponents(g)
	if err != nil {
		return nil, err
	}
	if len(comps) <= 1 {
		bg, err := bitgraph.FromCoreGraph(g)
		if err != nil {
			return nil, err
		}
		return Solve(ctx, bg, opts...)
	}

	decomps := make([]*treedecomp.Decomposition, 0, len(comps))
	for _, vs := range comps {
		sub, err := inducedSubgraph(g, vs)
		if err != nil {
			return nil, err
		}
		bg, err := bitgraph.FromCoreGraph(sub)
		if err != nil {
			return nil, err
		}
		d, err := Solve(ctx, bg, opts...)
		if err != nil {
			return nil, err
		}
		decomps = append(decomps, d)
	}
	return treedecomp.Merge(decomps), nil
}

// connectedComponents partitions g's vertices using repeated BFS scans,
// one per not-yet-visited vertex.
func connectedComponents(g *core.Graph) ([][]string, error) {
	visited := make(map[string]bool, len(g.Vertices()))
	var comps [][]string
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		res, err := bfs.BFS(g, v)
		if err != nil {
			return nil, fmt.Errorf("cleanandglue: connectivity scan from %q: %w", v, err)
		}
		for _, id := range res.Order {
			visited[id] = true
		}
		comps = append(comps, res.Order)
	}
	return comps, nil
}

// inducedSubgraph builds a fresh core.Graph containing exactly vertices and
// the edges of g with both endpoints in vertices.
func inducedSubgraph(g *core.Graph, vertices []string) (*core.Graph, error) {
	sub := core.NewGraph()
	in := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		in[v] = true
		if err := sub.AddVertex(v); err != nil {
			return nil, fmt.Errorf("cleanandglue: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if in[e.From] && in[e.To] {
			if _, err := sub.AddEdge(e.From, e.To, 0); err != nil {
				return nil, fmt.Errorf("cleanandglue: %w", err)
			}
		}
	}
	return sub, nil
}
