// Package upperbound implements the min-fill-in heuristic: greedily
// eliminate the vertex whose elimination adds the fewest fill edges,
// producing both an elimination ordering and, from it, a feasible tree
// decomposition. This mirrors MinFillInDecomposer.java's GreedyFillIn mode
// and its companion EliminationOrderDecomposer.
//
// The decomposition returned is a valid upper bound: exact search
// (package cleanandglue) can be seeded with its width via
// cleanandglue.WithUpperBound to short-circuit trial widths that cannot
// improve on it.
package upperbound

import (
	"github.com/katalvlaran/treewidth/bitgraph"
	"github.com/katalvlaran/treewidth/bitset"
	"github.com/katalvlaran/treewidth/treedecomp"
)

// MinFillIn returns a heuristic tree decomposition of g and its width.
func MinFillIn(g *bitgraph.Graph) (*treedecomp.Decomposition, int) {
	n := g.N()
	if n == 0 {
		b := treedecomp.NewBuilder()
		root := b.CreateBag(nil)
		return b.Finish(root, treedecomp.QualityUpper), 0
	}

	adj := make([]*bitset.Set, n)
	alive := bitset.New(n)
	for v := 0; v < n; v++ {
		adj[v] = g.Neighbourhood(v)
		alive.Set(v)
	}

	order := make([]int, 0, n)
	neighboursAtElimination := make([]*bitset.Set, n)
	pos := make([]int, n)

	for i := 0; i < n; i++ {
		v := bestFillInVertex(alive, adj)
		neighboursAtElimination[v] = adj[v].Clone()
		pos[v] = i
		order = append(order, v)
		eliminate(v, alive, adj)
	}

	width := 0
	for _, v := range order {
		if s := neighboursAtElimination[v].Cardinality(); s > width {
			width = s
		}
	}

	return buildDecomposition(g, order, pos, neighboursAtElimination), width
}

// bestFillInVertex returns the smallest-id vertex among those minimising
// fill-in cost: the number of missing edges among its current neighbours.
func bestFillInVertex(candidates *bitset.Set, adj []*bitset.Set) int {
	best, bestCost := -1, -1
	for v := candidates.NextSet(0); v >= 0; v = candidates.NextSet(v + 1) {
		cost := fillInCost(v, adj)
		if best == -1 || cost < bestCost {
			best, bestCost = v, cost
		}
	}
	return best
}

// fillInCost counts pairs of neighbours of v that are not already adjacent.
func fillInCost(v int, adj []*bitset.Set) int {
	nb := adj[v]
	cost := 0
	for u := nb.NextSet(0); u >= 0; u = nb.NextSet(u + 1) {
		missing := nb.Clone()
		missing.Difference(adj[u])
		missing.Clear(u)
		cost += missing.Cardinality()
	}
	return cost / 2
}

// eliminate turns v's neighbourhood into a clique (fill-in edges) and
// removes v from the working graph.
func eliminate(v int, alive *bitset.Set, adj []*bitset.Set) {
	nb := adj[v]
	for u := nb.NextSet(0); u >= 0; u = nb.NextSet(u + 1) {
		adj[u].Union(nb)
		adj[u].Clear(u)
		adj[u].Clear(v)
	}
	alive.Clear(v)
	adj[v].ClearAll()
}

// buildDecomposition assembles bags {v} ∪ neighboursAtElimination[v] into a
// tree: the parent of v's bag is the earliest-eliminated-after-v neighbour,
// since that neighbour inherits v's fill edges. Components with no later
// neighbour become separate roots, glued under one synthetic empty root so
// callers always see a single Decomposition.
func buildDecomposition(g *bitgraph.Graph, order, pos []int, neighboursAtElimination []*bitset.Set) *treedecomp.Decomposition {
	b := treedecomp.NewBuilder()
	n := len(order)
	bags := make([]*treedecomp.Bag, n)

	for _, v := range order {
		vertices := append([]string{g.Label(v)}, g.VertexSet(neighboursAtElimination[v])...)
		bags[v] = b.CreateBag(vertices)
	}

	var roots []*treedecomp.Bag
	for _, v := range order {
		parent := -1
		for u := neighboursAtElimination[v].NextSet(0); u >= 0; u = neighboursAtElimination[v].NextSet(u + 1) {
			if pos[u] <= pos[v] {
				continue
			}
			if parent == -1 || pos[u] < pos[parent] {
				parent = u
			}
		}
		if parent == -1 {
			roots = append(roots, bags[v])
		} else {
			b.AddTreeEdge(bags[parent], bags[v])
		}
	}

	if len(roots) == 1 {
		return b.Finish(roots[0], treedecomp.QualityUpper)
	}

	synthetic := b.CreateBag(nil)
	for _, r := range roots {
		b.AddTreeEdge(synthetic, r)
	}
	return b.Finish(synthetic, treedecomp.QualityUpper)
}
