// Package treedecomp defines the output of the tree-decomposition engine:
// a tree of bags, each a set of external vertex labels, together with the
// declared quality of the decomposition.
package treedecomp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treewidth/core"
)

// Quality classifies how a decomposition was produced. The exact engine in
// package cleanandglue only ever returns QualityExact; heuristic upper- and
// lower-bound collaborators (package upperbound) may tag their own results
// differently once wired into a caller that mixes exact and heuristic runs.
type Quality string

// Declared quality tags.
const (
	QualityExact Quality = "exact"
	QualityUpper Quality = "upper-bound"
)

// Bag is one node of the decomposition tree.
type Bag struct {
	// ID uniquely identifies this bag within its Decomposition, in
	// creation order.
	ID int

	// Vertices holds the external labels contained in this bag.
	Vertices []string

	// Children are the bags directly below this one in the tree.
	Children []*Bag
}

// Decomposition is a tree decomposition (T, {B_t}) together with the width
// it achieves and how it was obtained.
type Decomposition struct {
	Width   int
	Quality Quality
	Root    *Bag
	Bags    []*Bag
}

// Builder accumulates bags and tree edges while a decomposition is being
// reconstructed, assigning each bag a stable creation-order ID.
type Builder struct {
	bags []*Bag
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// CreateBag allocates a new bag containing vertices and returns it.
func (b *Builder) CreateBag(vertices []string) *Bag {
	bag := &Bag{ID: len(b.bags), Vertices: vertices}
	b.bags = append(b.bags, bag)
	return bag
}

// AddTreeEdge attaches child as a child of parent.
func (b *Builder) AddTreeEdge(parent, child *Bag) {
	parent.Children = append(parent.Children, child)
}

// Finish computes width from the accumulated bags and returns the
// completed Decomposition rooted at root.
func (b *Builder) Finish(root *Bag, quality Quality) *Decomposition {
	width := 0
	for _, bag := range b.bags {
		if s := len(bag.Vertices) - 1; s > width {
			width = s
		}
	}
	return &Decomposition{Width: width, Quality: quality, Root: root, Bags: b.bags}
}

// Merge glues one Decomposition per connected component into a single
// tree: each component's root becomes a child of a new synthetic empty
// bag, since no vertex is shared across components and any spanning tree
// over their bags satisfies the three defining properties regardless of
// which bags the new edges connect. Bag IDs are renumbered to stay unique
// across the merged tree. A single component is returned unchanged.
func Merge(components []*Decomposition) *Decomposition {
	if len(components) == 1 {
		return components[0]
	}

	root := &Bag{ID: 0}
	all := []*Bag{root}
	width := 0
	nextID := 1

	var renumber func(b *Bag)
	renumber = func(b *Bag) {
		b.ID = nextID
		nextID++
		all = append(all, b)
		if w := len(b.Vertices) - 1; w > width {
			width = w
		}
		for _, c := range b.Children {
			renumber(c)
		}
	}

	quality := QualityExact
	if len(components) > 0 {
		quality = components[0].Quality
	}
	for _, d := range components {
		renumber(d.Root)
		root.Children = append(root.Children, d.Root)
	}

	return &Decomposition{Width: width, Quality: quality, Root: root, Bags: all}
}

// Sentinel errors returned by Validate.
var (
	ErrVertexUncovered = errors.New("treedecomp: vertex not covered by any bag")
	ErrEdgeUncovered   = errors.New("treedecomp: edge not covered by any single bag")
	ErrDisconnectedBag = errors.New("treedecomp: vertex's bags do not form a connected subtree")
	ErrWidthExceeded   = errors.New("treedecomp: bag exceeds declared width")
)

// Validate checks the three defining properties of a tree decomposition of
// g against d: every vertex is covered, every edge shares a bag, and each
// vertex's bags form a connected subtree. It also confirms every bag
// respects d.Width. This is the reference check exercised by the exact
// engine's own test suite and is exported for callers that want to verify
// a decomposition independently of how it was produced.
func (d *Decomposition) Validate(g *core.Graph) error {
	if d.Root == nil {
		if len(g.Vertices()) == 0 {
			return nil
		}
		return fmt.Errorf("%w: empty decomposition for non-empty graph", ErrVertexUncovered)
	}

	occurrences := make(map[string][]*Bag)
	var walk func(b *Bag, parent *Bag)
	walk = func(b *Bag, parent *Bag) {
		if len(b.Vertices)-1 > d.Width {
			panic(fmt.Errorf("%w: bag %d has %d vertices, width %d", ErrWidthExceeded, b.ID, len(b.Vertices), d.Width))
		}
		for _, v := range b.Vertices {
			occurrences[v] = append(occurrences[v], b)
		}
		for _, c := range b.Children {
			walk(c, b)
		}
	}

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
					return
				}
				panic(r)
			}
		}()
		walk(d.Root, nil)
	}()
	if err != nil {
		return err
	}

	for _, v := range g.Vertices() {
		if _, ok := occurrences[v]; !ok {
			return fmt.Errorf("%w: %s", ErrVertexUncovered, v)
		}
	}

	for _, e := range g.Edges() {
		if !shareABag(occurrences[e.From], occurrences[e.To]) {
			return fmt.Errorf("%w: %s-%s", ErrEdgeUncovered, e.From, e.To)
		}
	}

	parent := parentMap(d.Root, nil, map[*Bag]*Bag{})
	for v, bags := range occurrences {
		if !isConnectedSubtree(bags, parent) {
			return fmt.Errorf("%w: %s", ErrDisconnectedBag, v)
		}
	}

	return nil
}

func shareABag(a, b []*Bag) bool {
	set := make(map[*Bag]struct{}, len(a))
	for _, bag := range a {
		set[bag] = struct{}{}
	}
	for _, bag := range b {
		if _, ok := set[bag]; ok {
			return true
		}
	}
	return false
}

func parentMap(b, parent *Bag, out map[*Bag]*Bag) map[*Bag]*Bag {
	out[b] = parent
	for _, c := range b.Children {
		parentMap(c, b, out)
	}
	return out
}

// isConnectedSubtree reports whether the given bags induce a connected
// subtree of the whole decomposition tree: the set of bags containing a
// vertex v is connected in T iff, for the bag m closest to the root among
// them, every other bag in the set has a path to m that stays entirely
// within the set.
func isConnectedSubtree(bags []*Bag, parent map[*Bag]*Bag) bool {
	if len(bags) <= 1 {
		return true
	}
	in := make(map[*Bag]bool, len(bags))
	for _, b := range bags {
		in[b] = true
	}
	depth := func(b *Bag) int {
		d := 0
		for p := parent[b]; p != nil; p = parent[p] {
			d++
		}
		return d
	}
	root := bags[0]
	for _, b := range bags[1:] {
		if depth(b) < depth(root) {
			root = b
		}
	}
	for _, b := range bags {
		cur := b
		for cur != root {
			cur = parent[cur]
			if cur == nil {
				return false
			}
			if !in[cur] && cur != root {
				return false
			}
		}
	}
	return true
}
