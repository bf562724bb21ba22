package exact

import (
	"container/heap"
	"sort"

	"github.com/spinglass/qubo/bqm"
)

// rankedRecord pairs a record with its enumeration index so that top-k
// selection breaks energy ties exactly like the full stable sort does.
type rankedRecord struct {
	rec Record
	ord uint64
}

// worstFirst is a max-heap on (energy, enumeration order): the root is the
// record that leaves the kept set first.
type worstFirst []rankedRecord

func (h worstFirst) Len() int { return len(h) }

func (h worstFirst) Less(i, j int) bool {
	if h[i].rec.Energy != h[j].rec.Energy {
		return h[i].rec.Energy > h[j].rec.Energy
	}
	return h[i].ord > h[j].ord
}

func (h worstFirst) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *worstFirst) Push(x interface{}) { *h = append(*h, x.(rankedRecord)) }

func (h *worstFirst) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// solveTopK enumerates all 2ⁿ assignments but retains only the k best in a
// bounded heap, then emits them in ascending (energy, enumeration) order —
// identical to the k-prefix of the full ranking.
//
// Complexity: O(2ⁿ·(n + log k)) time, O(k) memory.
func solveTopK(m *bqm.Model, vars []string, lo int8, total uint64, k int) (SampleSet, error) {
	kept := make(worstFirst, 0, k)
	heap.Init(&kept)

	for mask := uint64(0); mask < total; mask++ {
		s := assignmentFor(mask, vars, lo)
		e, err := m.Energy(s)
		if err != nil {
			return SampleSet{}, err
		}
		rr := rankedRecord{rec: Record{Sample: s, Energy: e}, ord: mask}

		if kept.Len() < k {
			heap.Push(&kept, rr)
			continue
		}
		// Replace the current worst only when rr ranks strictly ahead of it.
		worst := kept[0]
		if e < worst.rec.Energy { // ties keep the earlier enumeration, i.e. the incumbent
			kept[0] = rr
			heap.Fix(&kept, 0)
		}
	}

	out := make([]rankedRecord, len(kept))
	copy(out, kept)
	sort.Slice(out, func(i, j int) bool {
		if out[i].rec.Energy != out[j].rec.Energy {
			return out[i].rec.Energy < out[j].rec.Energy
		}
		return out[i].ord < out[j].ord
	})

	records := make([]Record, len(out))
	for i, rr := range out {
		records[i] = rr.rec
	}

	return SampleSet{Records: records}, nil
}
