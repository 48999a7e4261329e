// Package bitgraph adapts a core.Graph into the dense bit-set representation
// the tree-decomposition search operates on: vertices become integers in
// [0, n), and every query the search needs — neighbourhood, exterior
// border, saturation, absorbability — is answered directly against
// bitset.Set adjacency rather than the string-keyed core.Graph API.
//
// A Graph is built once from an input core.Graph and is read-only for the
// remainder of the search; only the bitset.Set values passed to its methods
// are mutated.
package bitgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/bitset"
	"github.com/katalvlaran/treewidth/core"
)

// Sentinel errors describing why an input graph cannot be decomposed.
var (
	// ErrNilGraph is returned when the input core.Graph pointer is nil.
	ErrNilGraph = errors.New("bitgraph: graph is nil")

	// ErrNegativeUniverse is returned when the graph reports a negative
	// vertex count; this cannot happen through core.Graph but guards
	// against future or foreign implementations of the ingestion boundary.
	ErrNegativeUniverse = errors.New("bitgraph: negative vertex count")

	// ErrDirectedEdge is returned when an edge carries direction; the
	// engine only decomposes simple undirected graphs.
	ErrDirectedEdge = errors.New("bitgraph: directed edges are not supported")

	// ErrSelfLoop is returned when an edge connects a vertex to itself.
	ErrSelfLoop = errors.New("bitgraph: self-loops are not supported")
)

// Graph is the immutable adjacency of an n-vertex simple undirected graph,
// stored as one bitset.Set per vertex.
type Graph struct {
	n      int
	adj    []*bitset.Set // adj[v] = open neighbourhood of v, excluding v
	labels []string      // labels[v] = external id of internal vertex v
	index  map[string]int
}

// FromCoreGraph builds a Graph from g, assigning internal ids 0..n-1 to
// g's vertices in the same ascending order core.Graph.Vertices() already
// guarantees, so the mapping is deterministic across runs.
//
// FromCoreGraph rejects directed edges and self-loops: the search only
// covers simple undirected graphs (see package doc). A nil graph is
// rejected with ErrNilGraph. An empty vertex set is valid input — the
// zero-vertex graph has treewidth 0 and decomposes to a single empty bag.
func FromCoreGraph(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	labels := g.Vertices() // sorted, per core's determinism guarantee
	n := len(labels)
	if n < 0 {
		return nil, ErrNegativeUniverse
	}

	index := make(map[string]int, n)
	for i, id := range labels {
		index[id] = i
	}

	adj := make([]*bitset.Set, n)
	for i := range adj {
		adj[i] = bitset.New(n)
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e.From)
		}
		if e.Directed {
			return nil, fmt.Errorf("%w: %s->%s", ErrDirectedEdge, e.From, e.To)
		}
		u, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("bitgraph: edge references unknown vertex %q", e.From)
		}
		v, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("bitgraph: edge references unknown vertex %q", e.To)
		}
		adj[u].Set(v)
		adj[v].Set(u)
	}

	return &Graph{n: n, adj: adj, labels: labels, index: index}, nil
}

// N returns the number of vertices, |V|.
func (g *Graph) N() int { return g.n }

// Label returns the external id of internal vertex v.
func (g *Graph) Label(v int) string { return g.labels[v] }

// Index returns the internal id of external vertex id, and whether id exists.
func (g *Graph) Index(id string) (int, bool) {
	v, ok := g.index[id]
	return v, ok
}

// Neighbourhood returns a fresh copy of N(v), the open neighbourhood of v.
func (g *Graph) Neighbourhood(v int) *bitset.Set {
	return g.adj[v].Clone()
}

// ExteriorBorder returns N(S): the vertices in V\S adjacent to some
// vertex of S.
func (g *Graph) ExteriorBorder(s *bitset.Set) *bitset.Set {
	border := bitset.New(g.n)
	for v := s.NextSet(0); v >= 0; v = s.NextSet(v + 1) {
		border.Union(g.adj[v])
	}
	border.Difference(s)
	return border
}

// VertexSet maps a bitset over the internal universe to the sorted slice
// of external labels it represents.
func (g *Graph) VertexSet(s *bitset.Set) []string {
	bits := s.Bits()
	out := make([]string, len(bits))
	for i, v := range bits {
		out[i] = g.labels[v]
	}
	return out
}

// Saturate grows s in place into the unique maximal saturated set S' ⊇ s
// with N(S') = N(s): every connected component of G[V\(s∪N(s))] that has
// an edge into N(s) is absorbed, since including it cannot enlarge the
// border the searchers must guard. Components with no edge into N(s) — a
// separate connected piece of the whole graph — are left untouched; those
// can only be joined to s later through an explicit split-glue move.
//
// Saturate is idempotent: calling it again on its own result is a no-op.
func (g *Graph) Saturate(s *bitset.Set) *bitset.Set {
	border := g.ExteriorBorder(s)
	closed := s.Clone().Union(border)

	absorbed, _ := g.floodAbsorbable(closed, border, -1)
	s.Union(absorbed)
	return s
}

// Absorbable reports the smallest vertex id v outside t∪N(t) whose
// connected component in G[V\(t∪N(t))] has an edge into N(t) — i.e. the
// smallest vertex that Saturate would still pull into t. It returns -1
// once no such vertex remains, meaning t is already saturated.
//
// The decomposer uses this as a canonicalisation test while glueing two
// configurations together: a merge is only explored along the one call
// order that reaches its absorbable witness, so equivalent merges are not
// rediscovered along every permutation of predecessors.
func (g *Graph) Absorbable(t *bitset.Set) int {
	border := g.ExteriorBorder(t)
	closed := t.Clone().Union(border)

	_, witness := g.floodAbsorbable(closed, border, findFirst)
	return witness
}

// mode flag for floodAbsorbable: accumulate every absorbable component, or
// stop at the first one found and report its smallest vertex.
const findFirst = 1

// floodAbsorbable scans vertices outside `closed` in ascending order,
// flood-filling each connected component of G[V\closed] it has not yet
// visited. A component is absorbable when some vertex in it has a
// neighbour in `border`. When mode == findFirst, the scan stops at the
// first absorbable component and returns its entry vertex as the second
// result; otherwise it accumulates every absorbable component into the
// first result and returns witness == -1.
func (g *Graph) floodAbsorbable(closed, border *bitset.Set, mode int) (*bitset.Set, int) {
	n := g.n
	visited := closed.Clone()
	absorbed := bitset.New(n)

	stack := make([]int, 0, n)
	comp := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if visited.Test(start) {
			continue
		}

		comp = comp[:0]
		touches := false
		stack = append(stack[:0], start)
		visited.Set(start)

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			if !touches && g.adj[v].Intersects(border) {
				touches = true
			}
			nb := g.adj[v]
			for w := nb.NextSet(0); w >= 0; w = nb.NextSet(w + 1) {
				if visited.Test(w) {
					continue
				}
				visited.Set(w)
				stack = append(stack, w)
			}
		}

		if !touches {
			continue
		}

		if mode == findFirst {
			return nil, start
		}
		for _, v := range comp {
			absorbed.Set(v)
		}
	}

	if mode == findFirst {
		return nil, -1
	}
	return absorbed, -1
}
