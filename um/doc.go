// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

// Package um implements the Universal Machine.
//
// The machine has eight 32-bit registers, a program array
// ("array 0") and a heap of word arrays named by 32-bit
// identifiers.  Identifiers are handed out by a counter starting
// at 1 and are never reused.
//
// Each instruction ("platter") occupies a 32-bit word.  The most
// significant 4 bits contain the opcode.  All operators but
// Orthography name up to three registers in the low 9 bits:
//
//	Bit field: (oooo) .... .... .... .... ...a  aabb bccc
//
// Orthography names one register and a 25-bit immediate:
//
//	Bit field: (1101) rrri iiii iiii iiii iiii  iiii iiii
//
// The execution finger is advanced past an instruction before
// the instruction runs.  Arithmetics wrap modulo 2^32.
//
//	Opcode	Name	Effect
//
//	0	CMOV	if r[c] != 0 then r[a] = r[b]
//	1	IDX	r[a] = array(r[b])[r[c]]
//	2	AMD	array(r[a])[r[b]] = r[c]
//	3	ADD	r[a] = r[b] + r[c]
//	4	MUL	r[a] = r[b] * r[c]
//	5	DIV	r[a] = r[b] / r[c]		\ unsigned; traps if r[c] == 0
//	6	NAND	r[a] = ^(r[b] & r[c])
//	7	HALT	stop the machine
//	8	ALLOC	r[b] = id of a new array of r[c] zero words
//	9	ABND	abandon array r[c]
//	A	OUTP	write byte r[c]			\ traps if r[c] > 255
//	B	INP	r[c] = input byte		\ unchanged at end of input
//	C	LD	program = copy of array r[b]	\ unless r[b] == 0
//		 	finger = r[c]
//	D	ORTH	r[r] = i
//
// Array 0 is the program array; the heap has no array 0.
// Opcodes E and F are invalid.  Any trap stops the machine.
package um
