// Package binheap implements the indexed binary min-heap behind the
// Prim/Binary kernel: a slice-backed heap of (vertex, via, weight) items plus
// a vertex→slot index, giving O(log n) push, pop, and decrease-key.
//
// The positions index is what makes decrease-key possible without scanning:
// for every live item at slot i, positions[item.Vertex] == i, and absent
// vertices hold Unset. Every swap during sifting keeps the index in sync.
//
// Vertex ids must be dense in [0, V) where V is the capacity passed to New;
// pushing the same vertex twice, or a vertex outside the range, is a
// programmer error.
package binheap

import (
	"errors"
	"fmt"
)

// Unset marks a vertex with no live heap slot.
const Unset int32 = -1

// ErrBadCapacity indicates a non-positive vertex capacity.
var ErrBadCapacity = errors.New("binheap: vertex capacity must be positive")

// Item is one heap entry: a frontier vertex, the tree vertex it is cheapest
// to reach it from, and that cheapest weight.
type Item struct {
	Vertex int32
	Via    int32
	Weight int32
}

// Heap is an indexed binary min-heap ordered by Item.Weight.
type Heap struct {
	items     []Item
	positions []int32
}

// New creates an empty heap able to index vertices in [0, vertices).
// Returns ErrBadCapacity when vertices < 1.
// Complexity: O(V) time and memory.
func New(vertices int) (*Heap, error) {
	if vertices < 1 {
		return nil, fmt.Errorf("binheap.New(%d): %w", vertices, ErrBadCapacity)
	}
	positions := make([]int32, vertices)
	for i := range positions {
		positions[i] = Unset
	}

	return &Heap{
		items:     make([]Item, 0, vertices),
		positions: positions,
	}, nil
}

// Len returns the number of live items. Complexity: O(1).
func (h *Heap) Len() int { return len(h.items) }

// Contains reports whether v currently has a heap slot. Complexity: O(1).
func (h *Heap) Contains(v int32) bool { return h.positions[v] != Unset }

// Push appends (v, via, w) at the tail, records its position, and sifts up.
// Complexity: O(log n), amortized O(1) growth.
func (h *Heap) Push(v, via, w int32) {
	h.positions[v] = int32(len(h.items))
	h.items = append(h.items, Item{Vertex: v, Via: via, Weight: w})
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum item. The second return is false on an
// empty heap.
//
// Steps:
//  1. Snapshot the root and clear its position.
//  2. Move the last item into slot 0 and shrink.
//  3. Sift the relocated item down.
//
// Complexity: O(log n).
func (h *Heap) Pop() (Item, bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}
	top := h.items[0]
	h.positions[top.Vertex] = Unset

	last := len(h.items) - 1
	if last > 0 {
		h.items[0] = h.items[last]
		h.positions[h.items[0].Vertex] = 0
	}
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top, true
}

// DecreaseKey lowers v's stored weight to w (recording via as the new
// predecessor) and sifts the item up. A v that is absent, or whose stored
// weight does not strictly exceed w, leaves the heap untouched.
// Complexity: O(log n); the position lookup is O(1).
func (h *Heap) DecreaseKey(v, via, w int32) {
	pos := h.positions[v]
	if pos == Unset || h.items[pos].Weight <= w {
		return
	}
	h.items[pos].Via = via
	h.items[pos].Weight = w
	h.siftUp(int(pos))
}

// siftUp bubbles slot i toward the root while it undercuts its parent.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].Weight <= h.items[i].Weight {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown sinks slot i below its smaller child until the heap order holds.
func (h *Heap) siftDown(i int) {
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < len(h.items) && h.items[left].Weight < h.items[smallest].Weight {
			smallest = left
		}
		if right < len(h.items) && h.items[right].Weight < h.items[smallest].Weight {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and their position records.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.positions[h.items[i].Vertex] = int32(i)
	h.positions[h.items[j].Vertex] = int32(j)
}
