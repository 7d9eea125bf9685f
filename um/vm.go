// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type flusher interface {
	Flush() error
}

// Machine is a Universal Machine.  It is not safe for concurrent
// use; the caller drives it one Step at a time.
type Machine struct {
	in         io.ByteReader
	out        io.Writer
	reg        [8]Platter
	mem        memory
	finger     Platter
	lastFinger Platter
	platter    Platter // platter being executed
	halted     bool
	err        error
	debug      bool
	log        logrus.FieldLogger
}

// New returns a machine running program, reading Input bytes
// from in and writing Output bytes to out.  The machine owns
// program from now on.  A nil in is an empty stream and a nil
// out discards output.
func New(program []Platter, in io.Reader, out io.Writer) *Machine {
	if in == nil {
		in = eofReader{}
	}
	if out == nil {
		out = io.Discard
	}
	br, ok := in.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Machine{
		in:  br,
		out: out,
		mem: newMemory(program),
		log: logrus.StandardLogger(),
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
func (eofReader) ReadByte() (byte, error) { return 0, io.EOF }

// SetTrace turns per-step tracing on or off.  Trace output goes
// to the logger at debug level.
func (m *Machine) SetTrace(on bool) {
	m.debug = on
}

// SetLogger replaces the logger, logrus.StandardLogger() by default.
func (m *Machine) SetLogger(l logrus.FieldLogger) {
	m.log = l
}

func (m *Machine) trace(format string, a ...interface{}) {
	if m.debug {
		m.log.Debugf(format, a...)
	}
}

// Step executes exactly one instruction.  It returns false once
// the machine has halted or failed; a failure is returned as
// *Error and is returned again by every later call.
func (m *Machine) Step() (bool, error) {
	if m.halted {
		return false, m.err
	}
	m.lastFinger = m.finger
	p, ok := m.mem.fetch(m.finger)
	if !ok {
		m.platter = 0
		return m.fail(ExecutionFingerOutOfBounds)
	}
	m.platter = p
	m.finger++
	i := Decode(p)
	if m.debug {
		m.log.WithFields(logrus.Fields{
			"finger":  fmt.Sprintf("%08x", m.lastFinger),
			"platter": fmt.Sprintf("%08x", p),
			"op":      i.String(),
		}).Debug("step")
	}
	if !i.Valid() {
		return m.fail(InvalidInstruction)
	}
	switch err := operators[i.Op].f(m, i); err {
	case nil:
		return true, nil
	case errHalt:
		m.halted = true
		return false, nil
	default:
		return m.fail(err.(Errno))
	}
}

func (m *Machine) fail(errno Errno) (bool, error) {
	m.halted = true
	m.err = m.newError(errno)
	return false, m.err
}

// Run steps the machine until it halts or fails.
func (m *Machine) Run() error {
	for {
		if running, err := m.Step(); !running {
			return err
		}
	}
}

// Halted reports whether the machine has stopped, by Halt or by
// a failure.
func (m *Machine) Halted() bool {
	return m.halted
}

// Err returns the failure that stopped the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

// Finger returns the execution finger.
func (m *Machine) Finger() Platter {
	return m.finger
}

// Register returns the value of register r, 0 <= r < 8.
func (m *Machine) Register(r int) Platter {
	return m.reg[r]
}

// Program returns a copy of the program array.
func (m *Machine) Program() []Platter {
	return append([]Platter(nil), m.mem.prog...)
}

// Active reports whether id names an allocated heap array.
func (m *Machine) Active(id Platter) bool {
	return m.mem.active(id)
}

// ArraySize returns the length of array id, 0 being the program.
func (m *Machine) ArraySize(id Platter) (int, bool) {
	return m.mem.size(id)
}
