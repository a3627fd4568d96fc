package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-lang/zc/internal/pool"
)

type cell struct {
	value int
}

func TestAcquireReturnsDistinctCells(t *testing.T) {
	p := pool.New[cell]()
	a := p.Acquire()
	b := p.Acquire()
	assert.NotSame(t, a, b)
}

// Property 6 (spec.md §8): after dropping a tree, the pooled cell count is
// conserved — releasing N cells and acquiring N again must not grow the
// arena, since the free-list satisfies the new acquisitions first.
func TestReleaseConservesCells(t *testing.T) {
	p := pool.New[cell]()

	const n = 64
	acquired := make([]*cell, n)
	for i := range acquired {
		acquired[i] = p.Acquire()
	}
	for _, c := range acquired {
		p.Release(c)
	}

	reacquired := make(map[*cell]bool, n)
	for i := 0; i < n; i++ {
		reacquired[p.Acquire()] = true
	}

	// Every freshly acquired pointer must have come from the set just
	// released: the free-list is LIFO but closed over the same n cells.
	require.Len(t, reacquired, n)
	for _, c := range acquired {
		assert.True(t, reacquired[c], "released cell was not reused")
	}
}

func TestHandleReleaseIsIdempotent(t *testing.T) {
	p := pool.New[cell]()
	h := pool.Acquire(p)
	require.True(t, h.Valid())
	h.Release()
	assert.False(t, h.Valid())
	h.Release() // must not panic
}

func TestHandleClone(t *testing.T) {
	p := pool.New[cell]()
	h := pool.Acquire(p)
	h.Get().value = 7

	clone := pool.Clone(h, func(dst, src *cell) { *dst = *src })
	assert.NotSame(t, h.Get(), clone.Get())
	assert.Equal(t, h.Get().value, clone.Get().value)
}

func TestConcurrentAcquireRelease(t *testing.T) {
	p := pool.New[cell]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 256; j++ {
				c := p.Acquire()
				c.value = j
				p.Release(c)
			}
		}()
	}
	wg.Wait()
}
