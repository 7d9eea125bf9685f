// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import "fmt"

// List of machine traps for Errno
const (
	InvalidInstruction = Errno(iota)
	InvalidArrayAccess
	InvalidArrayAbandonment
	DivideByZero
	InvalidLoad
	InvalidOutput
	ExecutionFingerOutOfBounds
)

var errnoNames = []string{
	"InvalidInstruction",
	"InvalidArrayAccess",
	"InvalidArrayAbandonment",
	"DivideByZero",
	"InvalidLoad",
	"InvalidOutput",
	"ExecutionFingerOutOfBounds",
}

var strError = []string{
	"Execution Finger does not indicate a platter that describes a valid instruction",
	"Indexed or amended array that is not active",
	"Abandoned '0' array or an array that was not active",
	"Divided by zero",
	"Loaded program from array that is not active",
	"Output a value greater than 255",
	"Execution Finger aims outside the bounds of the '0' array",
}

// Errno describes the reason for a machine trap.
type Errno int

// String returns the name of the trap.
func (e Errno) String() string {
	if e < 0 || int(e) >= len(errnoNames) {
		return fmt.Sprintf("Errno(%d)", int(e))
	}
	return errnoNames[e]
}

// Error returns a human-readable description of the trap.
func (e Errno) Error() string {
	if e < 0 || int(e) >= len(strError) {
		return e.String()
	}
	return strError[e]
}

// Error describes the cause and the context of a machine trap.
type Error struct {
	Errno     Errno      // nature of the trap
	Finger    Platter    // execution finger before the trap
	Platter   Platter    // instruction that raised the trap
	Registers [8]Platter // registers after the trap
}

func (e *Error) Error() string {
	return fmt.Sprintf("um: %s (%s) at 0x%08X", e.Errno.Error(), e.Errno.String(), e.Finger)
}

// Unwrap returns the Errno, so errors.Is(err, DivideByZero) works.
func (e *Error) Unwrap() error {
	return e.Errno
}

func (m *Machine) newError(errno Errno) error {
	return &Error{
		Errno:     errno,
		Finger:    m.lastFinger,
		Platter:   m.platter,
		Registers: m.reg,
	}
}
