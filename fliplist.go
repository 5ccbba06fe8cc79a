package qcmdpc

// noPosition marks an empty next/prev slot (the original uses -1 for the
// same purpose, since its index_t is unsigned only up to the cast).
const noPosition int32 = -1

// FlipList is an intrusive doubly-linked list over the fixed universe
// [0, capacity): every position is a node that is either on the list
// (reachable from first) or off it (next/prev/tod untouched), with no
// separate allocation per entry. This mirrors the original's struct
// flip_list: parallel next/prev/tod arrays indexed by position, not a
// generic container.
type FlipList struct {
	first int32
	next  []int32
	prev  []int32
	tod   []uint8
	// length is the number of positions currently linked, tracked
	// incrementally since walking the list to count it would defeat the
	// point of O(1) Add/Remove.
	length int32
}

// NewFlipList allocates a FlipList over positions [0, capacity).
func NewFlipList(capacity int32) *FlipList {
	fl := &FlipList{
		first: noPosition,
		next:  make([]int32, capacity),
		prev:  make([]int32, capacity),
		tod:   make([]uint8, capacity),
	}
	fl.Reset()
	return fl
}

// Reset empties the list without reallocating.
func (fl *FlipList) Reset() {
	fl.first = noPosition
	for i := range fl.next {
		fl.next[i] = noPosition
		fl.prev[i] = noPosition
	}
	fl.length = 0
}

// Len returns the number of linked positions.
func (fl *FlipList) Len() int32 {
	return fl.length
}

// First returns the head position, or noPosition if the list is empty.
func (fl *FlipList) First() int32 {
	return fl.first
}

// Next returns the position following p, or noPosition at the tail.
func (fl *FlipList) Next(p int32) int32 {
	return fl.next[p]
}

// TOD returns the time-of-death (TTL ring slot) recorded for position p.
// Only meaningful while p is linked.
func (fl *FlipList) TOD(p int32) uint8 {
	return fl.tod[p]
}

// Add links position p at the head of the list with time-of-death tod,
// mirroring the original's fl_add. p must not already be linked.
func (fl *FlipList) Add(p int32, tod uint8) {
	fl.tod[p] = tod
	fl.prev[p] = noPosition
	fl.next[p] = fl.first
	if fl.first != noPosition {
		fl.prev[fl.first] = p
	}
	fl.first = p
	fl.length++
}

// Remove unlinks position p, which must currently be linked. Removing the
// node a live traversal is sitting on is safe: Next was already read from
// the node's own next pointer before Remove mutates its neighbors, the
// pattern the decoder's expiry sweep depends on (see decoder.go).
func (fl *FlipList) Remove(p int32) {
	if fl.prev[p] != noPosition {
		fl.next[fl.prev[p]] = fl.next[p]
	} else {
		fl.first = fl.next[p]
	}
	if fl.next[p] != noPosition {
		fl.prev[fl.next[p]] = fl.prev[p]
	}
	fl.next[p] = noPosition
	fl.prev[p] = noPosition
	fl.length--
}
