// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import "testing"

func TestDecode(t *testing.T) {
	for _, it := range []struct {
		p    Platter
		want Instr
	}{
		{0x70000000, Instr{Op: Halt}},
		{0x30000081, Instr{Op: Addition, A: 2, B: 0, C: 1, Imm: 0x81}},
		{0xD000002A, Instr{Op: Orthography, C: 2, B: 5, Imm: 42}},
		{0xD200000C, Instr{Op: Orthography, Reg: 1, B: 1, C: 4, Imm: 12}},
		{0x0FFFFFFF, Instr{Op: CondMove, A: 7, B: 7, C: 7, Reg: 7, Imm: 0x1FFFFFF}},
		{0xF0000000, Instr{Op: 15}},
	} {
		if got := Decode(it.p); got != it.want {
			t.Errorf("Decode(%#08x) = %+v, want %+v", it.p, got, it.want)
		}
	}
}

func TestEncode(t *testing.T) {
	for _, it := range []struct {
		got, want Platter
	}{
		{Encode(Halt, 0, 0, 0), 0x70000000},
		{Encode(Addition, 2, 0, 1), 0x30000081},
		{Encode(NotAnd, 7, 7, 7), 0x600001FF},
		{EncodeImm(0, 42), 0xD000002A},
		{EncodeImm(7, MaxImmediate), 0xDFFFFFFF},
		{EncodeImm(1, 1<<25|3), 0xD2000003}, // truncated
	} {
		if it.got != it.want {
			t.Errorf("got %#08x, want %#08x", it.got, it.want)
		}
	}
}

func TestValid(t *testing.T) {
	for op := Opcode(0); op < 16; op++ {
		if got, want := Decode(Platter(op)<<28).Valid(), op < 14; got != want {
			t.Errorf("opcode %d: Valid() = %v", op, got)
		}
	}
}

func TestOpcodeNames(t *testing.T) {
	for op := CondMove; op <= Orthography; op++ {
		got, ok := ParseOpcode(op.String())
		if !ok || got != op {
			t.Errorf("ParseOpcode(%q) = %v, %v", op.String(), got, ok)
		}
	}
	if _, ok := ParseOpcode("OP14"); ok {
		t.Errorf("OP14 parsed")
	}
	if s := Opcode(14).String(); s != "OP14" {
		t.Errorf("Opcode(14) = %q", s)
	}
}

func TestInstrString(t *testing.T) {
	for _, it := range []struct {
		p    Platter
		want string
	}{
		{Encode(Addition, 2, 0, 1), "ADD r2, r0, r1"},
		{Encode(Halt, 0, 0, 0), "HALT"},
		{Encode(Allocation, 0, 3, 4), "ALLOC r3, r4"},
		{Encode(Output, 0, 0, 5), "OUTP r5"},
		{Encode(LoadProgram, 0, 1, 2), "LD r1, r2"},
		{EncodeImm(6, 0x41), "ORTH r6, 0x41"},
		{0xE0000000, "OP14 (invalid)"},
	} {
		if got := Decode(it.p).String(); got != it.want {
			t.Errorf("%#08x: got %q, want %q", it.p, got, it.want)
		}
	}
}
