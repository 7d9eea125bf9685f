// Copyright 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"universal/um"
)

func TestList(t *testing.T) {
	var b bytes.Buffer
	prog := []um.Platter{
		um.EncodeImm(0, 'A'),
		um.Encode(um.Addition, 2, 0, 1),
		0x48692100,
		0xE0000000,
	}
	if err := list(&b, prog); err != nil {
		t.Fatal(err)
	}
	want := "00000000: d0000041  ...A  ORTH r0, 0x41\n" +
		"00000001: 30000081  0...  ADD r2, r0, r1\n" +
		"00000002: 48692100  Hi!.  MUL r4, r0, r0\n" +
		"00000003: e0000000  ....  OP14 (invalid)\n"
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}
