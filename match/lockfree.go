// SPDX-License-Identifier: MIT
// Package: vf3go/match
package match

import "sync/atomic"

// LockFreeStack is a Treiber-style LIFO of Pair-path jobs, backed by a
// fixed-capacity slab of preallocated nodes rather than per-push heap
// allocation.
//
// The original C++ engine's LockFreeStack tags its head pointer with a
// counter to defeat ABA when freed nodes are reused; Go has no manual
// free, so the classic ABA hazard (a reclaimed-and-reused pointer
// comparing equal to a stale one) cannot occur on pointers. The analogous
// hazard here is slab-slot reuse: slot i can be popped, returned to the
// free list, and pushed again with different contents while another
// goroutine's CAS is still in flight against a stale head reading that
// slot. A single monotonically increasing generation counter, folded
// into both the data-stack and free-list head words, makes every CAS
// comparand unique across the stack's lifetime, so a stale CAS always
// fails instead of silently succeeding against recycled state.
type LockFreeStack struct {
	slab []lfNode
	head atomic.Uint64 // packed (generation, dataIdx+1); 0 index means empty
	free atomic.Uint64 // packed (generation, freeIdx+1)
	gen  atomic.Uint32
}

type lfNode struct {
	job  []Pair
	next uint64 // index+1 of the next node in whichever list holds this slot
}

// NewLockFreeStack preallocates a slab of the given capacity. Push
// returns false once the slab is exhausted; callers size capacity to the
// worst-case number of concurrently live stack entries for their search
// (bounded by workers * (G_limit+L_limit) in practice).
func NewLockFreeStack(capacity int) *LockFreeStack {
	s := &LockFreeStack{slab: make([]lfNode, capacity)}
	for i := 0; i < capacity; i++ {
		if i+1 < capacity {
			s.slab[i].next = uint64(i + 2)
		}
	}
	if capacity > 0 {
		s.free.Store(pack(0, 1))
	}

	return s
}

func pack(gen uint32, idx1 uint32) uint64 { return uint64(gen)<<32 | uint64(idx1) }
func unpack(v uint64) (gen uint32, idx1 uint32) {
	return uint32(v >> 32), uint32(v)
}

// Push places job on top of the stack. It returns false only if the
// backing slab is exhausted.
func (s *LockFreeStack) Push(job []Pair) bool {
	idx1, ok := s.popFree()
	if !ok {
		return false
	}
	idx := idx1 - 1
	s.slab[idx].job = job

	for {
		old := s.head.Load()
		_, headIdx1 := unpack(old)
		s.slab[idx].next = uint64(headIdx1)
		next := pack(s.gen.Add(1), idx1)
		if s.head.CompareAndSwap(old, next) {
			return true
		}
	}
}

// Pop removes and returns the top of the stack, or (nil, false) if empty.
func (s *LockFreeStack) Pop() ([]Pair, bool) {
	for {
		old := s.head.Load()
		_, idx1 := unpack(old)
		if idx1 == 0 {
			return nil, false
		}
		idx := idx1 - 1
		nextIdx1 := uint32(s.slab[idx].next)
		next := pack(s.gen.Add(1), nextIdx1)
		if s.head.CompareAndSwap(old, next) {
			job := s.slab[idx].job
			s.slab[idx].job = nil
			s.pushFree(idx1)

			return job, true
		}
	}
}

func (s *LockFreeStack) popFree() (uint32, bool) {
	for {
		old := s.free.Load()
		_, idx1 := unpack(old)
		if idx1 == 0 {
			return 0, false
		}
		idx := idx1 - 1
		nextIdx1 := uint32(s.slab[idx].next)
		next := pack(s.gen.Add(1), nextIdx1)
		if s.free.CompareAndSwap(old, next) {
			return idx1, true
		}
	}
}

func (s *LockFreeStack) pushFree(idx1 uint32) {
	idx := idx1 - 1
	for {
		old := s.free.Load()
		_, freeIdx1 := unpack(old)
		s.slab[idx].next = uint64(freeIdx1)
		next := pack(s.gen.Add(1), idx1)
		if s.free.CompareAndSwap(old, next) {
			return
		}
	}
}
