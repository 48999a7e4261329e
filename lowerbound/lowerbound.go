// Package lowerbound implements the minor-min-width heuristic of Gogate and
// Dechter: repeatedly contract an edge incident to a minimum-degree vertex,
// tracking the largest degree seen. Since tw(H) ≤ tw(G) for every minor H of
// G, the largest degree observed along any contraction sequence is a valid
// lower bound on tw(G).
//
// This mirrors MinorMinWidthLowerbound.java, with random tie-breaking
// replaced by "smallest vertex id" so results are reproducible without an
// injected source of randomness, matching the engine's own determinism
// discipline.
package lowerbound

import (
	"github.com/katalvlaran/treewidth/bitgraph"
	"github.com/katalvlaran/treewidth/bitset"
)

// MinorMinWidth returns a lower bound on the treewidth of g, seedable
// directly as cleanandglue.WithLowerBound(lb).
func MinorMinWidth(g *bitgraph.Graph) int {
	n := g.N()
	if n == 0 {
		return 0
	}

	adj := make([]*bitset.Set, n)
	alive := bitset.New(n)
	for v := 0; v < n; v++ {
		adj[v] = g.Neighbourhood(v)
		alive.Set(v)
	}

	lb := 0
	for !alive.IsEmpty() {
		v := minDegreeVertex(alive, adj)
		deg := adj[v].Cardinality()
		if deg > lb {
			lb = deg
		}

		u := minDegreeVertex(adj[v], adj)
		if u == -1 {
			break // v is isolated: nothing left to contract
		}

		contract(v, u, alive, adj)
	}

	return lb
}

// minDegreeVertex returns the smallest-id vertex in candidates with minimum
// degree in adj, or -1 if candidates is empty.
func minDegreeVertex(candidates *bitset.Set, adj []*bitset.Set) int {
	best, bestDeg := -1, -1
	for v := candidates.NextSet(0); v >= 0; v = candidates.NextSet(v + 1) {
		deg := adj[v].Cardinality()
		if best == -1 || deg < bestDeg {
			best, bestDeg = v, deg
		}
	}
	return best
}

// contract merges u into v: v inherits u's neighbours (minus v and u
// themselves), every neighbour of u is repointed to v, and u is removed
// from the working graph.
func contract(v, u int, alive *bitset.Set, adj []*bitset.Set) {
	for w := adj[u].NextSet(0); w >= 0; w = adj[u].NextSet(w + 1) {
		if w == v {
			continue
		}
		adj[w].Clear(u)
		adj[w].Set(v)
	}
	adj[v].Union(adj[u])
	adj[v].Clear(v)
	adj[v].Clear(u)
	alive.Clear(u)
	adj[u].ClearAll()
}
