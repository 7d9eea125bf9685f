// Copyright 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

// Package pretty sets up pp for the commands' debugging output.
package pretty

import (
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// New returns a pretty printer writing to f, colouring only
// when f is a terminal.
func New(f *os.File) *pp.PrettyPrinter {
	p := pp.New()
	if isTerminal(f) {
		p.SetOutput(colorable.NewColorable(f))
	} else {
		p.SetColoringEnabled(false)
		p.SetOutput(f)
	}
	return p
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
