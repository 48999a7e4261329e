// Package cleanandglue implements the clean-and-glue exact tree-decomposition
// search: for a fixed trial width k, it plays out the helicopter
// cops-and-robber node-search game over a bitgraph.Graph, recording every
// winning configuration's predecessors so treedecomp can reconstruct a bag
// tree once the search succeeds.
//
// The search runs on a single cooperative goroutine: none of its internal
// structures (frontier, memory, per-vertex tries, glue record) are safe for
// concurrent mutation. Cancellation is cooperative, polled between frontier
// pops and between trial widths (see Solve).
package cleanandglue

import "github.com/katalvlaran/treewidth/bitset"

// glueEntry is one row of the configuration store (C3): the ordered tuple
// of predecessor configurations S was glued from. len(parents) == 1 marks
// a fly move; len(parents) == 2 marks a split-glue move; the terminal
// record synthesised at success has parents = {S*}, S = the whole universe.
type glueEntry struct {
	config  *bitset.Set
	parents []*bitset.Set
}

// Outcome classifies how Solve concluded.
type Outcome int

const (
	// OutcomeSuccess means a decomposition of the requested width was found.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means no decomposition of the requested width exists.
	OutcomeFailure
	// OutcomeInterrupted means the cancellation signal fired mid-search.
	OutcomeInterrupted
)

// Record is the glue map produced by a successful trial: every configuration
// offered en route to the terminal witness, mapped to its predecessors. It is
// read-only once returned and is the sole input to treedecomp reconstruction.
type Record struct {
	entries map[string]*glueEntry
	root    *bitset.Set // the whole universe V, key into entries
}

func newRecord() *Record {
	return &Record{entries: make(map[string]*glueEntry)}
}

func (r *Record) has(s *bitset.Set) bool {
	_, ok := r.entries[s.String()]
	return ok
}

func (r *Record) set(s *bitset.Set, parents []*bitset.Set) {
	key := s.String()
	if _, ok := r.entries[key]; ok {
		return // never overwrite an existing glue record, per design notes
	}
	r.entries[key] = &glueEntry{config: s, parents: parents}
}

// Parents returns the predecessor tuple recorded for s, or nil if s has no
// entry (s is a leaf singleton created directly from a vertex).
func (r *Record) Parents(s *bitset.Set) []*bitset.Set {
	e, ok := r.entries[s.String()]
	if !ok {
		return nil
	}
	return e.parents
}

// Root returns the terminal whole-universe configuration of a successful
// search, or nil if the search did not succeed.
func (r *Record) Root() *bitset.Set { return r.root }
