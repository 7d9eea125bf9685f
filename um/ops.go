// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import "errors"

// errHalt is returned by the Halt operator and stops Step cleanly.
var errHalt = errors.New("halt")

// cmov: if r[c] != 0 then r[a] = r[b]
func (m *Machine) condMove(i Instr) error {
	if m.reg[i.C] != 0 {
		m.reg[i.A] = m.reg[i.B]
	}
	return nil
}

// idx: r[a] = array(r[b])[r[c]]
func (m *Machine) arrayIndex(i Instr) error {
	v, err := m.mem.index(m.reg[i.B], m.reg[i.C])
	if err != nil {
		return err
	}
	m.reg[i.A] = v
	return nil
}

// amd: array(r[a])[r[b]] = r[c]
func (m *Machine) arrayAmendment(i Instr) error {
	return m.mem.amend(m.reg[i.A], m.reg[i.B], m.reg[i.C])
}

func (m *Machine) binaryOp(i Instr, op func(x, y Platter) Platter) error {
	m.reg[i.A] = op(m.reg[i.B], m.reg[i.C])
	return nil
}

// add: r[a] = r[b] + r[c]
func (m *Machine) addition(i Instr) error {
	return m.binaryOp(i, func(x, y Platter) Platter { return x + y })
}

// mul: r[a] = r[b] * r[c]
func (m *Machine) multiplication(i Instr) error {
	return m.binaryOp(i, func(x, y Platter) Platter { return x * y })
}

// div: r[a] = r[b] / r[c], unsigned
func (m *Machine) division(i Instr) error {
	if m.reg[i.C] == 0 {
		return DivideByZero
	}
	return m.binaryOp(i, func(x, y Platter) Platter { return x / y })
}

// nand: r[a] = ^(r[b] & r[c])
func (m *Machine) notAnd(i Instr) error {
	return m.binaryOp(i, func(x, y Platter) Platter { return ^(x & y) })
}

// halt
func (m *Machine) halt(Instr) error {
	return errHalt
}

// alloc: r[b] = new array of r[c] zero words
func (m *Machine) allocation(i Instr) error {
	m.reg[i.B] = m.mem.alloc(m.reg[i.C])
	return nil
}

// abnd: abandon array r[c]
func (m *Machine) abandonment(i Instr) error {
	return m.mem.abandon(m.reg[i.C])
}

// outp: write byte r[c]
func (m *Machine) output(i Instr) error {
	c := m.reg[i.C]
	if c > 0xff {
		return InvalidOutput
	}
	if _, err := m.out.Write([]byte{byte(c)}); err != nil {
		m.log.WithError(err).Warn("output failed")
		return nil
	}
	if f, ok := m.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			m.log.WithError(err).Warn("output flush failed")
		}
	}
	return nil
}

// inp: r[c] = next input byte; unchanged at end of input
func (m *Machine) input(i Instr) error {
	switch b, err := m.in.ReadByte(); err {
	case nil:
		m.reg[i.C] = Platter(b)
	default:
		m.trace("input: %v", err)
	}
	return nil
}

// ld: program = copy of array r[b]; finger = r[c]
func (m *Machine) loadProgram(i Instr) error {
	if err := m.mem.load(m.reg[i.B]); err != nil {
		return err
	}
	m.finger = m.reg[i.C]
	return nil
}

// orth: r[reg] = imm
func (m *Machine) orthography(i Instr) error {
	m.reg[i.Reg] = i.Imm
	return nil
}

var operators = [numOpcodes]struct {
	name string
	f    func(*Machine, Instr) error
}{
	{"CMOV", (*Machine).condMove},
	{"IDX", (*Machine).arrayIndex},
	{"AMD", (*Machine).arrayAmendment},
	// arithmetics
	{"ADD", (*Machine).addition},
	{"MUL", (*Machine).multiplication},
	{"DIV", (*Machine).division},
	{"NAND", (*Machine).notAnd},
	{"HALT", (*Machine).halt},
	// arrays
	{"ALLOC", (*Machine).allocation},
	{"ABND", (*Machine).abandonment},
	// io
	{"OUTP", (*Machine).output},
	{"INP", (*Machine).input},
	{"LD", (*Machine).loadProgram},
	{"ORTH", (*Machine).orthography},
}
