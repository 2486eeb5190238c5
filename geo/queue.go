// Package geo provides the priority queues used for searches on the map graph.
package geo

import "container/heap"

// QueueEntry is a single entry in the priority queue.
type QueueEntry struct {
	Index       int     // index of the item in the heap.
	Score       float64 // priority of the item in the queue.
	Cost        float64 // path cost accumulated up to this entry.
	Seq         int     // insertion order, breaks ties between equal scores.
	Origin      int     // origin (parent) corner / ID
	Destination int     // destination corner / ID
}

// AscPriorityQueue implements heap.Interface and holds Items.
// Priority is ascending (lowest score first).
type AscPriorityQueue []*QueueEntry

func (pq AscPriorityQueue) Len() int { return len(pq) }

func (pq AscPriorityQueue) Less(i, j int) bool {
	// We want Pop to give us the lowest, not highest, priority so we use less than here.
	if pq[i].Score != pq[j].Score {
		return pq[i].Score < pq[j].Score // 1, 2, 3
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq *AscPriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.Index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

func (pq *AscPriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*QueueEntry)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq AscPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index, pq[j].Index = i, j
}

// OpenList is the open set of a best-first search. Entries are keyed by
// their destination, so a queued node can be found and relaxed in place.
type OpenList struct {
	pq      AscPriorityQueue
	entries map[int]*QueueEntry
	seq     int
}

// NewOpenList returns an empty open list.
func NewOpenList() *OpenList {
	return &OpenList{entries: make(map[int]*QueueEntry)}
}

// Len returns the number of queued entries.
func (o *OpenList) Len() int {
	return o.pq.Len()
}

// Contains returns true if dest is queued.
func (o *OpenList) Contains(dest int) bool {
	_, ok := o.entries[dest]
	return ok
}

// Upsert queues dest, or relaxes the queued entry of dest if the new score
// is lower. It returns false if the queue was not changed.
func (o *OpenList) Upsert(dest, origin int, cost, score float64) bool {
	if e, ok := o.entries[dest]; ok {
		if score >= e.Score {
			return false
		}
		e.Origin = origin
		e.Cost = cost
		e.Score = score
		heap.Fix(&o.pq, e.Index)
		return true
	}
	e := &QueueEntry{
		Score:       score,
		Cost:        cost,
		Seq:         o.seq,
		Origin:      origin,
		Destination: dest,
	}
	o.seq++
	o.entries[dest] = e
	heap.Push(&o.pq, e)
	return true
}

// Pop removes and returns the entry with the lowest score.
func (o *OpenList) Pop() *QueueEntry {
	e := heap.Pop(&o.pq).(*QueueEntry)
	delete(o.entries, e.Destination)
	return e
}
