// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

// memory holds the program array ("array 0") and the heap of
// allocated arrays.  Identifiers come from a counter that is never
// rewound, so an abandoned identifier is never handed out again.
type memory struct {
	prog []Platter
	heap map[Platter][]Platter
	next Platter
}

func newMemory(prog []Platter) memory {
	return memory{
		prog: prog,
		heap: make(map[Platter][]Platter),
		next: 1,
	}
}

func (m *memory) fetch(pc Platter) (Platter, bool) {
	if uint64(pc) >= uint64(len(m.prog)) {
		return 0, false
	}
	return m.prog[pc], true
}

// array returns the array named by id; 0 is the program array.
func (m *memory) array(id Platter) ([]Platter, bool) {
	if id == 0 {
		return m.prog, true
	}
	a, ok := m.heap[id]
	return a, ok
}

func (m *memory) index(id, i Platter) (Platter, error) {
	a, ok := m.array(id)
	if !ok || uint64(i) >= uint64(len(a)) {
		return 0, InvalidArrayAccess
	}
	return a[i], nil
}

func (m *memory) amend(id, i, v Platter) error {
	a, ok := m.array(id)
	if !ok || uint64(i) >= uint64(len(a)) {
		return InvalidArrayAccess
	}
	a[i] = v
	return nil
}

// alloc returns a fresh identifier.  After 2^32-1 allocations the
// counter wraps; it then skips 0 and every identifier still active,
// so a live array is never replaced.
func (m *memory) alloc(n Platter) Platter {
	for m.next == 0 || m.active(m.next) {
		m.next++
	}
	id := m.next
	m.heap[id] = make([]Platter, n)
	m.next++
	return id
}

func (m *memory) abandon(id Platter) error {
	if _, ok := m.heap[id]; id == 0 || !ok {
		return InvalidArrayAbandonment
	}
	delete(m.heap, id)
	return nil
}

// load replaces the program array with a copy of array id.
// Loading array 0 leaves the program untouched.
func (m *memory) load(id Platter) error {
	if id == 0 {
		return nil
	}
	a, ok := m.heap[id]
	if !ok {
		return InvalidLoad
	}
	m.prog = append(make([]Platter, 0, len(a)), a...)
	return nil
}

func (m *memory) active(id Platter) bool {
	_, ok := m.heap[id]
	return ok
}

func (m *memory) size(id Platter) (int, bool) {
	a, ok := m.array(id)
	return len(a), ok
}
