package cleanandglue

import (
	"container/heap"

	"github.com/katalvlaran/treewidth/bitset"
)

// frontierItem pairs a configuration with its insertion sequence number, so
// that equal-cardinality ties break by insertion order and runs stay
// reproducible (§5 of the design: "fix one order").
type frontierItem struct {
	config *bitset.Set
	seq    int
}

// frontierPQ is a max-heap ordered by |config| descending, then by seq
// ascending (earlier insertions pop first among equal-cardinality items).
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	ci, cj := pq[i].config.Cardinality(), pq[j].config.Cardinality()
	if ci != cj {
		return ci > cj
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// frontier is the priority queue of accepted configurations (C4), popping
// the largest configuration first.
type frontier struct {
	pq     frontierPQ
	nextSeq int
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(&f.pq)
	return f
}

func (f *frontier) push(s *bitset.Set) {
	heap.Push(&f.pq, &frontierItem{config: s, seq: f.nextSeq})
	f.nextSeq++
}

func (f *frontier) empty() bool { return f.pq.Len() == 0 }

func (f *frontier) pop() *bitset.Set {
	item := heap.Pop(&f.pq).(*frontierItem)
	return item.config
}
