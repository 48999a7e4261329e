// Package trie implements a bit-set trie: an ordered prefix tree keyed by
// the ascending sequence of set-bit indices of a bitset.Set, supporting
// subset and superset queries over the stored collection.
//
// The trie is built for a single cooperative-threaded search (see the
// cleanandglue package): reads are safe to interleave with each other, but
// a mutation (Insert/Clear) must never run concurrently with a read or
// another mutation on the same Trie.
package trie

import (
	"iter"
	"sort"

	"github.com/katalvlaran/treewidth/bitset"
)

// edge is one (label, child) pair out of a node, where label is the next
// set-bit index a stored key passes through at this point in the trie.
type edge struct {
	label int
	child *node
}

// node is an internal trie node. Children are kept sorted ascending by
// label so traversal order is deterministic and reproducible across runs.
type node struct {
	children []edge
	isEnd    bool
	value    *bitset.Set // populated only when isEnd
}

// childAt returns the index of the child edge labelled b, and whether it
// was found, via binary search over the sorted children slice.
func (nd *node) childAt(b int) (int, bool) {
	i := sort.Search(len(nd.children), func(i int) bool { return nd.children[i].label >= b })
	if i < len(nd.children) && nd.children[i].label == b {
		return i, true
	}
	return i, false
}

// childOrCreate returns the child labelled b, creating and inserting it in
// sorted position if absent.
func (nd *node) childOrCreate(b int) *node {
	i, ok := nd.childAt(b)
	if ok {
		return nd.children[i].child
	}
	c := &node{}
	nd.children = append(nd.children, edge{})
	copy(nd.children[i+1:], nd.children[i:])
	nd.children[i] = edge{label: b, child: c}
	return c
}

// Trie stores a collection of bitset.Set values over a common universe
// size n, keyed by their ascending bit sequence.
type Trie struct {
	root *node
	n    int
}

// New returns an empty Trie over universe size n.
func New(n int) *Trie {
	return &Trie{root: &node{}, n: n}
}

// Clear discards every stored value, resetting the trie to empty.
func (t *Trie) Clear() {
	t.root = &node{}
}

// Insert adds s to the trie. Insert does not clone s: callers must not
// mutate s afterward, since Contains/SubsetsOf/SupersetsOf return the
// exact value that was inserted.
func (t *Trie) Insert(s *bitset.Set) {
	cur := t.root
	for _, b := range s.Bits() {
		cur = cur.childOrCreate(b)
	}
	cur.isEnd = true
	cur.value = s
}

// Contains reports whether s was previously inserted (by value).
func (t *Trie) Contains(s *bitset.Set) bool {
	cur := t.root
	for _, b := range s.Bits() {
		i, ok := cur.childAt(b)
		if !ok {
			return false
		}
		cur = cur.children[i].child
	}
	return cur.isEnd
}

// SubsetsOf returns every stored S with S ⊆ mask, each exactly once.
// Traversal only follows edges whose label bit is present in mask, since
// any key reaching a different edge would necessarily contain a bit
// outside mask.
func (t *Trie) SubsetsOf(mask *bitset.Set) iter.Seq[*bitset.Set] {
	return func(yield func(*bitset.Set) bool) {
		t.walkSubsets(t.root, mask, yield)
	}
}

func (t *Trie) walkSubsets(nd *node, mask *bitset.Set, yield func(*bitset.Set) bool) bool {
	if nd.isEnd {
		if !yield(nd.value) {
			return false
		}
	}
	for _, e := range nd.children {
		if !mask.Test(e.label) {
			continue
		}
		if !t.walkSubsets(e.child, mask, yield) {
			return false
		}
	}
	return true
}

// SupersetsOf returns every stored S with S ⊇ mask, each exactly once.
// Because keys are stored as strictly ascending bit sequences, once a
// path's next label overtakes the smallest unmatched mask bit, that mask
// bit can never appear further down the path and the branch is pruned;
// labels smaller than the next unmatched mask bit are "extra" elements of
// S and are simply descended into without advancing the match.
func (t *Trie) SupersetsOf(mask *bitset.Set) iter.Seq[*bitset.Set] {
	need := mask.Bits()
	return func(yield func(*bitset.Set) bool) {
		t.walkSupersets(t.root, need, yield)
	}
}

func (t *Trie) walkSupersets(nd *node, need []int, yield func(*bitset.Set) bool) bool {
	if len(need) == 0 {
		return t.walkAll(nd, yield)
	}
	// need[0] is the smallest mask bit not yet matched on this path.
	for _, e := range nd.children {
		switch {
		case e.label == need[0]:
			if !t.walkSupersets(e.child, need[1:], yield) {
				return false
			}
		case e.label < need[0]:
			if !t.walkSupersets(e.child, need, yield) {
				return false
			}
		default:
			// e.label > need[0]: need[0] can never be matched below here.
		}
	}
	return true
}

// walkAll yields every stored value in the subtree rooted at nd, used
// once a superset query has matched every mask bit and any further
// elements of S are unconstrained.
func (t *Trie) walkAll(nd *node, yield func(*bitset.Set) bool) bool {
	if nd.isEnd {
		if !yield(nd.value) {
			return false
		}
	}
	for _, e := range nd.children {
		if !t.walkAll(e.child, yield) {
			return false
		}
	}
	return true
}
