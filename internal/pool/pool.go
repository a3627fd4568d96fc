// Package pool implements the per-node-type arena described in spec.md
// §4.1: a growing set of fixed-size slabs with a lock-free bump cursor,
// backed by a lock-free free-list for released cells, giving amortised
// O(1) acquire/release safe for concurrent use by independent parsers.
//
// No library in the retrieval pack implements a slab/arena allocator —
// every example repo relies on the Go garbage collector directly for its
// AST nodes. This package exists because spec.md §4.1 and §5 make the
// allocator's concurrency-safety and O(1) behavior part of the contract,
// not an implementation detail; spec.md's own Design Notes explicitly
// sanction building it on a general-purpose allocation strategy
// ("A straight general-purpose allocator is allowed").
package pool

import (
	"sync"
	"sync/atomic"
)

// slabBytes is the fixed slab size spec.md §4.1 mandates (2 MiB).
const slabBytes = 2 << 20

// slab is one fixed-capacity block of T, bump-allocated from a single
// atomic cursor. Once the cursor exceeds len(cells) the slab is full and
// callers must move to the next slab in the chain (or create one).
type slab[T any] struct {
	cells  []T
	cursor atomic.Uint32
	next   atomic.Pointer[slab[T]]
}

func newSlab[T any](capacity uint32) *slab[T] {
	return &slab[T]{cells: make([]T, capacity)}
}

// freeNode links a released cell back into the free-list. Go's garbage
// collector keeps released-but-unreleased-to-the-OS cells alive as long as
// a freeNode points at them, which sidesteps the classic ABA hazard a
// manual allocator has to guard against with a tagged pointer: the same
// *T can never be handed out by two concurrent Acquire calls while a
// freeNode for it is still reachable.
type freeNode[T any] struct {
	ptr  *T
	next atomic.Pointer[freeNode[T]]
}

// Pool is a lock-free arena for values of type T. The zero value is not
// usable; construct with New.
type Pool[T any] struct {
	slabCap uint32
	head    atomic.Pointer[slab[T]]
	free    atomic.Pointer[freeNode[T]]

	// freeNodePool supplies freeNode wrappers to Release. Popped wrappers
	// are never put back: a wrapper is only reused once the garbage
	// collector has reclaimed it, which is what keeps the free-list free of
	// ABA.
	freeNodePool sync.Pool
}

// New builds a Pool for T, sizing each slab to hold as many T as fit in a
// 2 MiB block (spec.md §4.1).
func New[T any]() *Pool[T] {
	var zero T
	size := int(unsafeSizeof(zero))
	if size <= 0 {
		size = 1
	}
	cap := slabBytes / size
	if cap < 1 {
		cap = 1
	}
	p := &Pool[T]{slabCap: uint32(cap)}
	p.freeNodePool.New = func() any { return new(freeNode[T]) }
	p.head.Store(newSlab[T](p.slabCap))
	return p
}

// Acquire returns a pointer to storage for one T, aligned at least to T
// (Go's allocator already guarantees alignment). Fresh slab cells are
// zero; a cell reused from the free-list holds whatever Release left in
// it. The caller is responsible for constructing a valid T at the
// returned address.
func (p *Pool[T]) Acquire() *T {
	// 1. Try the free-list first (Treiber stack pop).
	for {
		top := p.free.Load()
		if top == nil {
			break
		}
		if p.free.CompareAndSwap(top, top.next.Load()) {
			return top.ptr
		}
	}

	// 2. Bump-allocate from the current head slab, walking/growing the
	// slab chain as needed.
	for {
		s := p.head.Load()
		idx := s.cursor.Add(1) - 1
		if idx < uint32(len(s.cells)) {
			return &s.cells[idx]
		}

		// This slab is exhausted. If another goroutine already linked a
		// fresh one in, use it; otherwise race to install one.
		if next := s.next.Load(); next != nil {
			p.head.CompareAndSwap(s, next)
			continue
		}
		fresh := newSlab[T](p.slabCap)
		if s.next.CompareAndSwap(nil, fresh) {
			p.head.CompareAndSwap(s, fresh)
			continue
		}
		// Someone else installed a slab first; retry the load above.
	}
}

// Release returns ptr to the pool. The caller guarantees the pointee has
// already been destroyed/reset; Release never zeroes it itself so a
// caller that wants deterministic zeroing (e.g. to drop child pointers
// for the garbage collector) must do so before calling Release.
func (p *Pool[T]) Release(ptr *T) {
	node, _ := p.freeNodePool.Get().(*freeNode[T])
	node.ptr = ptr
	for {
		top := p.free.Load()
		node.next.Store(top)
		if p.free.CompareAndSwap(top, node) {
			return
		}
	}
}

// unsafeSizeof avoids importing unsafe at call sites scattered through the
// package; it is the one place pool.go reaches for it.
func unsafeSizeof[T any](v T) uintptr {
	return sizeofImpl(v)
}
