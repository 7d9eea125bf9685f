// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import (
	"bytes"
	"fmt"
	"io"
)

// State is a read-only snapshot of a machine, taken for
// diagnostics.
type State struct {
	Finger    Platter
	InBounds  bool    // Finger indexes the program array
	Platter   Platter // platter at Finger, if InBounds
	Instr     Instr   // Platter decoded, if InBounds
	Registers [8]Platter
	Arrays    int     // active heap arrays
	NextID    Platter // identifier of the next allocation
}

// State takes a snapshot of the machine.  It does not change the
// machine.
func (m *Machine) State() State {
	s := State{
		Finger:    m.finger,
		Registers: m.reg,
		Arrays:    len(m.mem.heap),
		NextID:    m.mem.next,
	}
	if p, ok := m.mem.fetch(m.finger); ok {
		s.InBounds = true
		s.Platter = p
		s.Instr = Decode(p)
	}
	return s
}

// WriteTo writes the register and next-instruction dump.
func (s State) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "ef: 0x%08X\n", s.Finger)
	if s.InBounds {
		if s.Instr.Valid() {
			fmt.Fprintf(&b, "OPCODE: %v 0x%08X\n", s.Instr.Op, s.Platter)
		} else {
			fmt.Fprintf(&b, "OPCODE: 0x%08X (INVALID)\n", s.Platter)
		}
		if s.Instr.Op == Orthography {
			fmt.Fprintf(&b, "reg: %d    imm: 0x%07X\n", s.Instr.Reg, s.Instr.Imm)
		} else {
			fmt.Fprintf(&b, "a: %d    b: %d    c: %d\n", s.Instr.A, s.Instr.B, s.Instr.C)
		}
	} else {
		fmt.Fprintln(&b, "Execution finger out of bounds")
	}
	for i, r := range s.Registers {
		fmt.Fprintf(&b, "%d: 0x%08X\n", i, r)
	}
	return b.WriteTo(w)
}

func (s State) String() string {
	var b bytes.Buffer
	s.WriteTo(&b)
	return b.String()
}
