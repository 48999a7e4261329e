package cleanandglue

import (
	"context"
	"errors"

	"github.com/katalvlaran/treewidth/bitgraph"
	"github.com/katalvlaran/treewidth/bitset"
	"github.com/katalvlaran/treewidth/treedecomp"
)

// ErrInterrupted is returned when the context was cancelled mid-search; no
// decomposition is emitted for that outcome.
var ErrInterrupted = errors.New("cleanandglue: search interrupted")

// Solve computes an exact minimum-width tree decomposition of g. It tries
// increasing trial widths starting at the lower-bound hint (default 1)
// until one succeeds, or until the upper-bound hint (if set) is reached, or
// until ctx is cancelled.
//
// g.N() == 0 is valid input and returns the trivial single-empty-bag
// decomposition of width 0 without entering the search: §7 of the design
// only rejects a negative vertex count, and the empty graph is exercised
// directly by the engine's own test scenarios.
func Solve(ctx context.Context, g *bitgraph.Graph, opts ...Option) (*treedecomp.Decomposition, error) {
	if g.N() == 0 {
		b := treedecomp.NewBuilder()
		root := b.CreateBag(nil)
		return b.Finish(root, treedecomp.QualityExact), nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	k := o.lowerBound
	if k < 1 {
		k = 1
	}

	for {
		if o.upperBound > 0 && k >= o.upperBound {
			return nil, errors.New("cleanandglue: no decomposition found within upper-bound hint")
		}

		select {
		case <-ctx.Done():
			return nil, ErrInterrupted
		default:
		}

		if o.onTrial != nil {
			o.onTrial(k)
		}

		d := newDecomposer(g, k, o.nodeBudget)
		outcome, rec := d.run(ctx)

		switch outcome {
		case OutcomeSuccess:
			return reconstruct(g, rec), nil
		case OutcomeInterrupted:
			return nil, ErrInterrupted
		case OutcomeFailure:
			k++
		}
	}
}

// reconstruct walks rec from its root and builds a treedecomp.Decomposition,
// mirroring the recursive bag construction of §4.5: each call allocates one
// fresh bag, so the result is a tree by construction even though the
// underlying glue record is a DAG shared across many reconstructions.
func reconstruct(g *bitgraph.Graph, rec *Record) *treedecomp.Decomposition {
	b := treedecomp.NewBuilder()

	var walk func(s *bitset.Set) *treedecomp.Bag
	walk = func(s *bitset.Set) *treedecomp.Bag {
		parents := rec.Parents(s)

		delta := s.Clone()
		for _, p := range parents {
			delta.Difference(p)
		}
		bagSet := delta.Union(g.ExteriorBorder(s))
		bag := b.CreateBag(g.VertexSet(bagSet))

		for _, p := range parents {
			child := walk(p)
			b.AddTreeEdge(bag, child)
		}
		return bag
	}

	root := walk(rec.Root())
	return b.Finish(root, treedecomp.QualityExact)
}
