// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import "fmt"

// Platter is a 32-bit instruction or data word.
type Platter uint32

// Opcode is the operator number held in the top 4 bits of a platter.
type Opcode uint8

const (
	CondMove Opcode = iota
	ArrayIndex
	ArrayAmendment
	Addition
	Multiplication
	Division
	NotAnd
	Halt
	Allocation
	Abandonment
	Output
	Input
	LoadProgram
	Orthography

	numOpcodes = iota
)

const (
	opShift  = 28
	regMask  = 7
	aShift   = 6
	bShift   = 3
	orthReg  = 25
	orthMask = 1<<orthReg - 1
)

// MaxImmediate is the largest value Orthography can load.
const MaxImmediate = Platter(orthMask)

func (op Opcode) String() string {
	if op < numOpcodes {
		return operators[op].name
	}
	return fmt.Sprintf("OP%d", uint8(op))
}

// ParseOpcode looks up an operator by its mnemonic.
func ParseOpcode(name string) (Opcode, bool) {
	for i, o := range operators {
		if o.name == name {
			return Opcode(i), true
		}
	}
	return 0, false
}

// Instr is a decoded platter.  A, B and C are the register
// selectors of the standard operators; Reg and Imm belong to
// Orthography.  Every field is filled in for every platter.
type Instr struct {
	Op      Opcode
	A, B, C int
	Reg     int
	Imm     Platter
}

// Decode splits a platter into its bit fields:
//
//	standard:    oooo .... .... .... .... ...a aabb bccc
//	orthography: oooo rrri iiii iiii iiii iiii iiii iiii
func Decode(p Platter) Instr {
	return Instr{
		Op:  Opcode(p >> opShift),
		A:   int(p >> aShift & regMask),
		B:   int(p >> bShift & regMask),
		C:   int(p & regMask),
		Reg: int(p >> orthReg & regMask),
		Imm: p & orthMask,
	}
}

// Valid reports whether the operator has a handler.
func (i Instr) Valid() bool {
	return i.Op < numOpcodes
}

func (i Instr) String() string {
	switch i.Op {
	case Halt:
		return "HALT"
	case Allocation, LoadProgram:
		return fmt.Sprintf("%v r%d, r%d", i.Op, i.B, i.C)
	case Abandonment, Output, Input:
		return fmt.Sprintf("%v r%d", i.Op, i.C)
	case Orthography:
		return fmt.Sprintf("ORTH r%d, %#x", i.Reg, uint32(i.Imm))
	}
	if !i.Valid() {
		return fmt.Sprintf("%v (invalid)", i.Op)
	}
	return fmt.Sprintf("%v r%d, r%d, r%d", i.Op, i.A, i.B, i.C)
}

// Encode builds a standard platter.  Selectors are masked to 3 bits.
func Encode(op Opcode, a, b, c int) Platter {
	return Platter(op&0xf)<<opShift |
		Platter(a&regMask)<<aShift |
		Platter(b&regMask)<<bShift |
		Platter(c&regMask)
}

// EncodeImm builds an Orthography platter loading imm into
// register reg.  imm is truncated to 25 bits.
func EncodeImm(reg int, imm Platter) Platter {
	return Platter(Orthography)<<opShift |
		Platter(reg&regMask)<<orthReg |
		imm&orthMask
}
