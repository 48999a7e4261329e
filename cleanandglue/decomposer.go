package cleanandglue

import (
	"context"
	"iter"

	"github.com/katalvlaran/treewidth/bitgraph"
	"github.com/katalvlaran/treewidth/bitset"
	"github.com/katalvlaran/treewidth/trie"
)

// hasAny reports whether seq yields at least one value, without materialising it.
func hasAny(seq iter.Seq[*bitset.Set]) bool {
	found := false
	for range seq {
		found = true
		break
	}
	return found
}

// maxGlueStepsPerPop is the default bound on how many transitive split-glue
// merges a single frontier pop may perform before giving up on that pop's
// glue expansion, used when the caller does not set WithNodeBudget. The
// reference algorithm glues transitively without limit (see the open
// question in the design notes): left completely unbounded, a pathological
// input can make one pop's glue stack grow without bound before the
// decomposer ever returns to check cancellation. This cap is generous
// enough to never bind on the worst case actually exercised by the test
// suite (n ≤ 12) while still giving embedders a hard ceiling.
const maxGlueStepsPerPop = 1 << 20

// decomposer runs the clean-and-glue search for one trial width k.
type decomposer struct {
	g            *bitgraph.Graph
	n            int
	k            int
	maxGlueSteps int
	memory       *trie.Trie   // every configuration enqueued or pruned by P3/P4
	tries        []*trie.Trie // tries[v]: win-configurations with v in their border, at time of insertion
	record       *Record
	front        *frontier
}

// newDecomposer builds a decomposer for trial width k. maxGlueSteps bounds
// expandGlue's per-pop transitive merge count; 0 falls back to
// maxGlueStepsPerPop (see config.Config.NodeBudget).
func newDecomposer(g *bitgraph.Graph, k, maxGlueSteps int) *decomposer {
	n := g.N()
	tries := make([]*trie.Trie, n)
	for v := range tries {
		tries[v] = trie.New(n)
	}
	if maxGlueSteps <= 0 {
		maxGlueSteps = maxGlueStepsPerPop
	}
	return &decomposer{
		g:            g,
		n:            n,
		k:            k,
		maxGlueSteps: maxGlueSteps,
		memory:       trie.New(n),
		tries:        tries,
		record:       newRecord(),
		front:        newFrontier(),
	}
}

// run executes the decomposer loop and reports the outcome. ctx is polled
// between frontier pops and (by the caller, Solve) between trial widths.
func (d *decomposer) run(ctx context.Context) (Outcome, *Record) {
	for v := 0; v < d.n; v++ {
		s := bitset.FromBits(d.n, v)
		d.g.Saturate(s)
		if d.offer(s, nil) {
			return OutcomeSuccess, d.record
		}
	}

	for !d.front.empty() {
		select {
		case <-ctx.Done():
			return OutcomeInterrupted, nil
		default:
		}

		s := d.front.pop()
		border := d.g.ExteriorBorder(s)

		for v := border.NextSet(0); v >= 0; v = border.NextSet(v + 1) {
			d.tries[v].Insert(s)

			fly := s.Clone()
			fly.Set(v)
			d.g.Saturate(fly)
			if d.offer(fly, []*bitset.Set{s}) {
				return OutcomeSuccess, d.record
			}

			if d.expandGlue(v, s) {
				return OutcomeSuccess, d.record
			}
		}
	}

	return OutcomeFailure, nil
}

// expandGlue runs the glue-stack expansion of step 3 for the pair (s, v):
// it repeatedly merges s (and its transitive glue products) with disjoint
// configurations found in tries[v], attempting a fly-glue at each step.
func (d *decomposer) expandGlue(v int, s *bitset.Set) bool {
	stack := []*bitset.Set{s}
	steps := 0

	for len(stack) > 0 {
		steps++
		if steps > d.maxGlueSteps {
			return false
		}

		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mask := bitset.Full(d.n)
		mask.Difference(c)
		mask.Difference(d.g.ExteriorBorder(c))

		cBorder := d.g.ExteriorBorder(c)

		for t := range d.tries[v].SubsetsOf(mask) {
			b := cBorder.Clone().Union(d.g.ExteriorBorder(t))
			if b.Cardinality() > d.k+1 {
				continue
			}

			u := c.Clone().Union(t)
			a := d.g.Absorbable(u)

			if a == -1 || a == v {
				uPlus := u.Clone()
				uPlus.Set(v)
				d.g.Saturate(uPlus)
				if d.offer(uPlus, []*bitset.Set{c, t}) {
					return true
				}
			}

			if a == -1 {
				d.record.set(u, []*bitset.Set{c, t})
				stack = append(stack, u)
			}
		}
	}

	return false
}

// offer applies the five pruning rules of §4.4 and, if s survives them,
// records its glue entry and either enqueues it or declares success.
func (d *decomposer) offer(s *bitset.Set, parents []*bitset.Set) bool {
	if d.memory.Contains(s) {
		return false // P1
	}

	deltaOut := s.Clone()
	for _, p := range parents {
		deltaOut.Difference(p)
	}
	border := d.g.ExteriorBorder(s)
	if border.Cardinality()+deltaOut.Cardinality() > d.k+1 {
		return false // P2
	}

	closed := s.Clone().Union(border)
	if hasAny(d.memory.SupersetsOf(closed)) {
		d.memory.Insert(s)
		return false // P3
	}

	for candidate := range d.memory.SupersetsOf(s) {
		if d.g.ExteriorBorder(candidate).IsSubsetOf(border) {
			d.memory.Insert(s)
			return false // P4
		}
	}

	d.record.set(s, parents)

	if s.Cardinality() >= d.n-d.k-1 {
		if s.Cardinality() < d.n {
			whole := bitset.Full(d.n)
			d.record.set(whole, []*bitset.Set{s})
			d.record.root = whole
		} else {
			d.record.root = s
		}
		return true // P5: done
	}

	d.front.push(s)
	d.memory.Insert(s)
	return false
}
