// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import (
	"strings"
	"testing"
)

func TestStateDump(t *testing.T) {
	m := New([]Platter{EncodeImm(1, 0x2A), Encode(Division, 3, 4, 5)}, nil, nil)
	mustStep(t, m, 1)
	want := `ef: 0x00000001
OPCODE: DIV 0x500000E5
a: 3    b: 4    c: 5
0: 0x00000000
1: 0x0000002A
2: 0x00000000
3: 0x00000000
4: 0x00000000
5: 0x00000000
6: 0x00000000
7: 0x00000000
`
	if got := m.State().String(); got != want {
		t.Errorf("dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestStateOutOfBounds(t *testing.T) {
	m := New([]Platter{EncodeImm(0, 1)}, nil, nil)
	mustStep(t, m, 1)
	m.Step()
	before := m.Finger()
	s := m.State()
	if s.InBounds {
		t.Errorf("InBounds at finger %d", s.Finger)
	}
	got := s.String()
	if !strings.Contains(got, "Execution finger out of bounds\n") {
		t.Errorf("dump:\n%s", got)
	}
	if strings.Contains(got, "OPCODE") {
		t.Errorf("decoded past the end:\n%s", got)
	}
	if m.Finger() != before {
		t.Errorf("State moved the finger")
	}
}

func TestStateInvalidAndOrthography(t *testing.T) {
	m := New([]Platter{0xF0000000, EncodeImm(2, 0x1234)}, nil, nil)
	if got := m.State().String(); !strings.Contains(got, "OPCODE: 0xF0000000 (INVALID)\n") {
		t.Errorf("dump:\n%s", got)
	}
	m.finger = 1
	if got := m.State().String(); !strings.Contains(got, "OPCODE: ORTH 0xD4001234\nreg: 2    imm: 0x0001234\n") {
		t.Errorf("dump:\n%s", got)
	}
}

func TestStateDoesNotMutate(t *testing.T) {
	m := New([]Platter{Encode(Allocation, 0, 1, 2), Encode(Halt, 0, 0, 0)}, nil, nil)
	m.reg[2] = 2
	mustStep(t, m, 1)
	prog := m.Program()
	s := m.State()
	if s.Arrays != 1 || s.NextID != 2 || s.Registers[1] != 1 {
		t.Errorf("snapshot = %+v", s)
	}
	s.Registers[1] = 99
	if m.Register(1) != 1 {
		t.Errorf("snapshot aliases registers")
	}
	if got := m.Program(); len(got) != len(prog) || got[0] != prog[0] {
		t.Errorf("program changed")
	}
	if running, err := m.Step(); running || err != nil {
		t.Errorf("Step() = %v, %v", running, err)
	}
}
