// Copyright 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

/*
Dis lists a Universal Machine program image.

Usage:

	dis [image.um] >listing
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"universal/um"
)

func printable(c um.Platter) rune {
	if c >= 0x20 && c < 0x7f {
		return rune(c)
	}
	return '.'
}

// list writes one line per platter: address, value, the four
// bytes as text and the disassembly.
func list(w io.Writer, prog []um.Platter) error {
	bw := bufio.NewWriter(w)
	for a, v := range prog {
		fmt.Fprintf(bw, "%08x: %08x  %c%c%c%c  %v\n",
			a, uint32(v), printable(v>>24&0xff), printable(v>>16&0xff),
			printable(v>>8&0xff), printable(v&0xff), um.Decode(v))
	}
	return bw.Flush()
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	var in io.Reader = os.Stdin
	if len(os.Args) == 2 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			logrus.Fatalln(err)
		}
		defer f.Close()
		in = f
	}
	prog, err := um.ReadProgram(in)
	if err != nil {
		logrus.Fatalln(err)
	}
	if err := list(os.Stdout, prog); err != nil {
		logrus.Fatalln(err)
	}
}
