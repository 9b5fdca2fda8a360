// Package registry implements the diffusing-species registry (spec.md
// section 4.C): append and O(1) remove, with traversal in strict
// insertion order that tolerates removing the node currently being
// visited.
//
// spec.md's data model describes this as a doubly-linked list; the
// Design Notes (section 9) ask for an arena-with-generational-indices
// re-architecture instead. The two are reconciled here: Registry is a
// slice-backed arena (no pointer chasing, O(1) reuse of freed slots via
// a free list, stale-ref detection via a generation counter on each
// slot) but its slots are linked by explicit prev/next indices, so
// traversal order is exactly insertion order — the ordering guarantee
// in spec.md section 5 ("registry traversal order is FIFO over
// insertion order... implementations MUST NOT reorder registry
// traversal") holds even though removal never shifts other slots, the
// way a swap-with-back removal would.
package registry

import "github.com/jwbullard/VCCTL-sub005/catalog"

// Node is one diffusing-species entry: a lattice position, its phase
// id, and the cycle at which it was enlisted.
type Node struct {
	X, Y, Z  int
	ID       catalog.PhaseID
	CycBirth int
}

// Ref identifies a Node across Append/Remove calls. A Ref obtained
// before a Remove of the same slot becomes invalid (Get reports
// ok=false) once the slot is reused by a later Append — the generation
// counter is exactly what Design Notes section 9 calls "stale-detection
// becomes equality-check", generalized to survive slot reuse.
type Ref struct {
	idx int
	gen uint32
}

type slot struct {
	node       Node
	gen        uint32
	alive      bool
	prev, next int // -1 sentinel; valid only while alive
}

// Registry is a doubly-linked list of diffusing-species nodes backed
// by a reusable slice arena. The zero value is ready to use.
type Registry struct {
	slots     []slot
	free      []int
	head, tail int
	count     int
}

const none = -1

// New returns an empty Registry.
func New() *Registry {
	return &Registry{head: none, tail: none}
}

// Len returns the number of live nodes.
func (r *Registry) Len() int { return r.count }

// Append adds node to the tail of the registry (most recently
// enlisted) and returns its Ref.
func (r *Registry) Append(node Node) Ref {
	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, slot{})
		idx = len(r.slots) - 1
	}
	s := &r.slots[idx]
	s.node = node
	s.alive = true
	s.prev = r.tail
	s.next = none
	if r.tail != none {
		r.slots[r.tail].next = idx
	} else {
		r.head = idx
	}
	r.tail = idx
	r.count++
	return Ref{idx: idx, gen: s.gen}
}

// Get returns the node at ref and true, or the zero Node and false if
// ref is stale (already removed, and possibly reused).
func (r *Registry) Get(ref Ref) (Node, bool) {
	if ref.idx < 0 || ref.idx >= len(r.slots) {
		return Node{}, false
	}
	s := &r.slots[ref.idx]
	if !s.alive || s.gen != ref.gen {
		return Node{}, false
	}
	return s.node, true
}

// Update mutates the node at ref in place via fn. Returns false if ref
// is stale.
func (r *Registry) Update(ref Ref, fn func(*Node)) bool {
	if ref.idx < 0 || ref.idx >= len(r.slots) {
		return false
	}
	s := &r.slots[ref.idx]
	if !s.alive || s.gen != ref.gen {
		return false
	}
	fn(&s.node)
	return true
}

// Remove unlinks ref from the registry in O(1) and recycles its slot.
// Removing an already-removed or stale ref is a no-op.
func (r *Registry) Remove(ref Ref) {
	if ref.idx < 0 || ref.idx >= len(r.slots) {
		return
	}
	s := &r.slots[ref.idx]
	if !s.alive || s.gen != ref.gen {
		return
	}
	if s.prev != none {
		r.slots[s.prev].next = s.next
	} else {
		r.head = s.next
	}
	if s.next != none {
		r.slots[s.next].prev = s.prev
	} else {
		r.tail = s.prev
	}
	s.alive = false
	s.gen++
	r.free = append(r.free, ref.idx)
	r.count--
}

// ForEach visits every live node in insertion order, calling fn(ref,
// node) for each. fn may call Remove on the ref it was just given
// without disrupting the traversal: the next link is captured before
// fn runs. Removing the node that follows it from inside fn is not
// supported, since the walk still steps to that captured slot.
func (r *Registry) ForEach(fn func(ref Ref, node Node)) {
	r.ForEachUntil(func(ref Ref, node Node) bool {
		fn(ref, node)
		return true
	})
}

// ForEachUntil is ForEach with an early-exit: traversal stops as soon
// as fn returns false, or at the end of the list, whichever comes
// first. The walk follows the links as it goes, so a node fn appends
// is visited too, unless it was appended while fn was visiting the
// last node.
func (r *Registry) ForEachUntil(fn func(ref Ref, node Node) bool) {
	idx := r.head
	for idx != none {
		s := &r.slots[idx]
		next := s.next
		ref := Ref{idx: idx, gen: s.gen}
		if !fn(ref, s.node) {
			return
		}
		idx = next
	}
}
