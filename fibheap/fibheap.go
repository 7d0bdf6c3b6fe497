// Package fibheap implements the Fibonacci min-heap behind the
// Prim/Fibonacci kernel: amortized O(1) push and decrease-key, amortized
// O(log n) pop.
//
// # Structure
//
// The heap is a circular, doubly linked list of trees, each obeying the
// min-heap property on weight, with a handle on the overall minimum root.
// Every node carries (vertex, via, weight), a mark bit, its child count, and
// four links: parent, one arbitrary child, and the left/right siblings of
// its circular sibling ring. A vertex→node index gives decrease-key its O(1)
// lookup, mirroring the positions array of package binheap.
//
// Nodes are plain heap allocations; sibling and parent links are non-owning
// back references and the collector reclaims detached nodes, so pop only
// needs to unlink, never to free.
//
// # Operations
//
// Push splices a singleton into the root ring. Pop moves the minimum's
// children up to the root ring, unlinks the minimum, then consolidates:
// roots of equal child count are linked pairwise until all root degrees are
// distinct, which is what keeps the root ring at O(log n) trees. DecreaseKey
// cuts a node that undercuts its parent and cascades through marked
// ancestors — a non-root is marked exactly when it has lost one child since
// becoming a non-root.
package fibheap

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadCapacity indicates a non-positive vertex capacity.
var ErrBadCapacity = errors.New("fibheap: vertex capacity must be positive")

// Item is one heap payload: a frontier vertex, its cheapest predecessor, and
// that cheapest weight. Identical to the binheap payload so the two Prim
// variants stay interchangeable.
type Item struct {
	Vertex int32
	Via    int32
	Weight int32
}

// node is one tree node. All links are internal; callers only ever see Item.
type node struct {
	vertex int32
	via    int32
	weight int32

	marked bool
	degree int

	parent *node
	child  *node
	left   *node
	right  *node
}

// Heap is a Fibonacci min-heap ordered by weight.
type Heap struct {
	minimum   *node
	positions []*node
	size      int
}

// New creates an empty heap able to index vertices in [0, vertices).
// Returns ErrBadCapacity when vertices < 1.
// Complexity: O(V) time and memory.
func New(vertices int) (*Heap, error) {
	if vertices < 1 {
		return nil, fmt.Errorf("fibheap.New(%d): %w", vertices, ErrBadCapacity)
	}

	return &Heap{positions: make([]*node, vertices)}, nil
}

// Len returns the number of live nodes. Complexity: O(1).
func (h *Heap) Len() int { return h.size }

// Contains reports whether v currently has a live node. Complexity: O(1).
func (h *Heap) Contains(v int32) bool { return h.positions[v] != nil }

// Push inserts (v, via, w) as a singleton root, spliced to the left of the
// minimum, and updates the minimum handle when w undercuts it.
// Complexity: O(1).
func (h *Heap) Push(v, via, w int32) {
	n := &node{vertex: v, via: via, weight: w}
	n.left = n
	n.right = n

	h.spliceRoot(n)
	if n.weight < h.minimum.weight {
		h.minimum = n
	}
	h.positions[v] = n
	h.size++
}

// Pop removes and returns the minimum item. The second return is false on an
// empty heap.
//
// Steps:
//  1. Snapshot the minimum's payload.
//  2. Splice each child into the root ring, clearing its parent link.
//  3. Unlink the minimum from the root ring and drop its index slot.
//  4. Consolidate the root ring and re-locate the minimum.
//
// Complexity: amortized O(log n).
func (h *Heap) Pop() (Item, bool) {
	z := h.minimum
	if z == nil {
		return Item{}, false
	}
	snapshot := Item{Vertex: z.vertex, Via: z.via, Weight: z.weight}

	// 2. Children become roots. Collect first: splicing relinks the ring
	//    we would otherwise be iterating.
	if z.child != nil {
		children := make([]*node, 0, z.degree)
		c := z.child
		for {
			children = append(children, c)
			c = c.right
			if c == z.child {
				break
			}
		}
		for _, c := range children {
			c.parent = nil
			c.left = c
			c.right = c
			h.spliceRoot(c)
		}
		z.child = nil
	}

	// 3. Unlink z itself.
	if z.right == z {
		h.minimum = nil
	} else {
		z.left.right = z.right
		z.right.left = z.left
		h.minimum = z.right
	}
	h.positions[z.vertex] = nil
	h.size--

	// 4. Restore the distinct-degree invariant and the true minimum.
	if h.size > 0 {
		h.consolidate()
	}

	return snapshot, true
}

// DecreaseKey lowers v's weight to w (recording via as the new predecessor).
// A v that is absent, or whose stored weight is already ≤ w, leaves the heap
// untouched. A root just refreshes the minimum handle; a non-root that now
// undercuts its parent is cut to the root ring, cascading through marked
// ancestors.
// Complexity: amortized O(1).
func (h *Heap) DecreaseKey(v, via, w int32) {
	n := h.positions[v]
	if n == nil || n.weight <= w {
		return
	}
	n.via = via
	n.weight = w

	if n.parent == nil {
		if n.weight < h.minimum.weight {
			h.minimum = n
		}

		return
	}
	if n.weight < n.parent.weight {
		h.cut(n)
	}
}

// spliceRoot inserts a detached singleton ring into the root ring, to the
// left of the minimum. Establishes the ring when the heap is empty.
func (h *Heap) spliceRoot(n *node) {
	if h.minimum == nil {
		h.minimum = n

		return
	}
	n.right = h.minimum
	n.left = h.minimum.left
	h.minimum.left.right = n
	h.minimum.left = n
}

// cut detaches n from its parent's child ring, splices it into the root
// ring unmarked, and then walks up: a marked non-root parent is cut in turn,
// an unmarked one is marked.
func (h *Heap) cut(n *node) {
	p := n.parent

	// Detach n from the child ring.
	if n.right == n {
		p.child = nil
	} else {
		n.left.right = n.right
		n.right.left = n.left
		if p.child == n {
			p.child = n.right
		}
	}
	p.degree--

	// n becomes an unmarked root.
	n.parent = nil
	n.marked = false
	n.left = n
	n.right = n
	h.spliceRoot(n)
	if n.weight < h.minimum.weight {
		h.minimum = n
	}

	// Cascade: a marked non-root has already lost one child and must move
	// up as well; an unmarked parent just records the loss.
	if p.parent != nil && p.marked {
		h.cut(p)
	} else if p.parent != nil {
		p.marked = true
	}
}

// consolidate links roots of equal degree until every root degree is
// distinct, then rebuilds the root ring from the degree table and points the
// minimum handle at the smallest surviving root.
func (h *Heap) consolidate() {
	// Degree table sized for the Fibonacci degree bound.
	table := make([]*node, int(math.Ceil(2*math.Log2(float64(h.size))))+1)

	// Snapshot the root ring: linking edits the ring mid-walk.
	roots := make([]*node, 0, len(table))
	cur := h.minimum
	for {
		roots = append(roots, cur)
		cur = cur.right
		if cur == h.minimum {
			break
		}
	}

	for _, x := range roots {
		d := x.degree
		for {
			for d >= len(table) {
				table = append(table, nil)
			}
			y := table[d]
			if y == nil {
				break
			}
			table[d] = nil
			// The heavier root becomes a child of the lighter.
			if y.weight < x.weight {
				x, y = y, x
			}
			h.link(y, x)
			d = x.degree
		}
		table[d] = x
	}

	// Rebuild the root ring from the surviving trees.
	h.minimum = nil
	for _, n := range table {
		if n == nil {
			continue
		}
		n.parent = nil
		n.left = n
		n.right = n
		h.spliceRoot(n)
		if n.weight < h.minimum.weight {
			h.minimum = n
		}
	}
}

// link makes y a child of x: y joins x's child ring unmarked and x's degree
// grows by one. Both must be detached from the root ring's bookkeeping
// beforehand (consolidate rebuilds the ring afterwards).
func (h *Heap) link(y, x *node) {
	x.degree++
	y.parent = x
	y.marked = false
	y.left = y
	y.right = y
	if x.child == nil {
		x.child = y

		return
	}
	y.right = x.child
	y.left = x.child.left
	x.child.left.right = y
	x.child.left = y
}
