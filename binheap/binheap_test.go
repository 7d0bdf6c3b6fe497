package binheap

import (
	"math/rand"
	"sort"
	"testing"
)

// checkInvariants asserts the heap order and positions laws after every
// mutation in these tests.
func checkInvariants(t *testing.T, h *Heap) {
	t.Helper()
	for i := 1; i < len(h.items); i++ {
		parent := (i - 1) / 2
		if h.items[i].Weight < h.items[parent].Weight {
			t.Fatalf("heap order broken at slot %d: %d < parent %d",
				i, h.items[i].Weight, h.items[parent].Weight)
		}
	}
	for i, it := range h.items {
		if h.positions[it.Vertex] != int32(i) {
			t.Fatalf("positions out of sync: vertex %d at slot %d, positions says %d",
				it.Vertex, i, h.positions[it.Vertex])
		}
	}
	for v, pos := range h.positions {
		if pos != Unset && h.items[pos].Vertex != int32(v) {
			t.Fatalf("positions[%d]=%d points at vertex %d", v, pos, h.items[pos].Vertex)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("New(0) should fail")
	}
	h, err := New(4)
	if err != nil {
		t.Fatalf("New(4): %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("fresh heap has Len %d", h.Len())
	}
}

// TestPushPop_Order pushes shuffled weights and verifies pops come out in
// ascending order with invariants intact throughout.
func TestPushPop_Order(t *testing.T) {
	const n = 64
	h, _ := New(n)
	r := rand.New(rand.NewSource(3))

	weights := make([]int, n)
	for v := 0; v < n; v++ {
		weights[v] = r.Intn(1000)
		h.Push(int32(v), Unset, int32(weights[v]))
		checkInvariants(t, h)
	}
	sort.Ints(weights)

	for i := 0; i < n; i++ {
		it, ok := h.Pop()
		if !ok {
			t.Fatalf("pop %d: heap empty early", i)
		}
		if int(it.Weight) != weights[i] {
			t.Fatalf("pop %d: weight %d, want %d", i, it.Weight, weights[i])
		}
		checkInvariants(t, h)
	}
	if _, ok := h.Pop(); ok {
		t.Fatal("pop on empty heap returned an item")
	}
}

// TestDecreaseKey covers the three contract cases: strict improvement sifts
// up, equal-or-worse is a no-op, absent vertex is a no-op.
func TestDecreaseKey(t *testing.T) {
	h, _ := New(8)
	for v := int32(0); v < 8; v++ {
		h.Push(v, Unset, 100+v)
	}

	// Strict improvement: vertex 7 becomes the new minimum.
	h.DecreaseKey(7, 3, 1)
	checkInvariants(t, h)
	it, _ := h.Pop()
	if it.Vertex != 7 || it.Via != 3 || it.Weight != 1 {
		t.Fatalf("pop after decrease = %+v, want vertex 7 via 3 weight 1", it)
	}

	// Equal weight: no-op.
	h.DecreaseKey(4, 9, 104)
	checkInvariants(t, h)
	if h.positions[4] != Unset && h.items[h.positions[4]].Via == 9 {
		t.Fatal("decrease-key with equal weight mutated the item")
	}

	// Absent vertex: no-op (7 was popped above).
	h.DecreaseKey(7, 0, 0)
	checkInvariants(t, h)
	if h.Contains(7) {
		t.Fatal("decrease-key resurrected a popped vertex")
	}
}
