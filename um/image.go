// Copyright 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package um

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrUnaligned is returned by ReadProgram when the image ends
// with a partial platter.
var ErrUnaligned = errors.New("program image not aligned to 4 bytes")

// ReadProgram reads a program image: big-endian platters, back
// to back.  An empty image is a valid, empty program.
func ReadProgram(r io.Reader) ([]Platter, error) {
	var (
		prog []Platter
		buf  [4]byte
		br   = bufio.NewReader(r)
	)
	for {
		switch n, err := io.ReadFull(br, buf[:]); err {
		case nil:
			prog = append(prog, Platter(binary.BigEndian.Uint32(buf[:])))
		case io.EOF:
			return prog, nil
		case io.ErrUnexpectedEOF:
			return nil, fmt.Errorf("%w: %d trailing bytes", ErrUnaligned, n)
		default:
			return nil, fmt.Errorf("reading program: %w", err)
		}
	}
}

// WriteProgram writes prog in the format read by ReadProgram.
func WriteProgram(w io.Writer, prog []Platter) error {
	bw := bufio.NewWriter(w)
	var buf [4]byte
	for _, p := range prog {
		binary.BigEndian.PutUint32(buf[:], uint32(p))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
