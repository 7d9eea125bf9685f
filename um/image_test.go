// Copyright 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadProgram(t *testing.T) {
	for _, it := range []struct {
		name string
		in   string
		want []Platter
		err  error
	}{
		{"empty", "", nil, nil},
		{"one", "\x70\x00\x00\x00", []Platter{0x70000000}, nil},
		{"two", "\xd0\x00\x00\x2a\x01\x02\x03\x04", []Platter{0xD000002A, 0x01020304}, nil},
		{"one byte", "\x70", nil, ErrUnaligned},
		{"five bytes", "\x70\x00\x00\x00\x01", nil, ErrUnaligned},
		{"seven bytes", "\x70\x00\x00\x00\x01\x02\x03", nil, ErrUnaligned},
	} {
		got, err := ReadProgram(strings.NewReader(it.in))
		if !errors.Is(err, it.err) {
			t.Errorf("%s: err = %v, want %v", it.name, err, it.err)
			continue
		}
		if len(got) != len(it.want) {
			t.Errorf("%s: got %#x, want %#x", it.name, got, it.want)
			continue
		}
		for i := range got {
			if got[i] != it.want[i] {
				t.Errorf("%s: [%d] = %#x, want %#x", it.name, i, got[i], it.want[i])
			}
		}
	}
}

func TestReadProgramShortReads(t *testing.T) {
	in := "\xd0\x00\x00\x2a\x70\x00\x00\x00"
	got, err := ReadProgram(iotest.OneByteReader(strings.NewReader(in)))
	if err != nil || len(got) != 2 || got[1] != 0x70000000 {
		t.Errorf("got %#x, %v", got, err)
	}
}

func TestReadProgramError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := ReadProgram(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
}

func TestWriteProgram(t *testing.T) {
	var b bytes.Buffer
	prog := []Platter{0xD000002A, 0x30000081, 0x70000000}
	if err := WriteProgram(&b, prog); err != nil {
		t.Fatal(err)
	}
	if b.String() != "\xd0\x00\x00\x2a\x30\x00\x00\x81\x70\x00\x00\x00" {
		t.Errorf("image = %q", b.String())
	}
}
