// Copyright 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

/*
As assembles Universal Machine programs.

Usage:

	as [-o image.um] [-v] [source.uma]

Source is read from the named file or stdin, one instruction or
directive per line:

	\ comment
	.L name             label the next word
	.C value            store a raw word
	.S "text"           store one word per byte of text
	ADD r2, r0, r1      CMOV IDX AMD ADD MUL DIV NAND
	ALLOC r1, r2        ALLOC LD: b and c registers
	OUTP r0             ABND OUTP INP: c register
	ORTH r0, 'A'        register and 25-bit immediate
	HALT

Numbers are decimal, 0x hex, 0 octal or quoted characters.  A
value that is not a number is a label; labels may be used before
they are defined.  "." is the address of the next word.
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"universal/pretty"
	"universal/um"
)

type (
	dict map[string]um.Platter

	instr struct {
		c um.Platter
		s string
	}

	unres struct {
		a   um.Platter // address
		s   string     // unresolved symbol
		imm bool       // ORTH operand, limited to 25 bits
	}

	parser struct {
		l int        // line number
		s string     // source line
		a um.Platter // address
		d dict       // dictionary of labels
		u []unres    // unresolved
		i []instr    // assembled words
	}
)

var (
	parseError       = errors.New("parse error")
	labelExistsError = errors.New("label already exists")
	registerError    = errors.New("bad register")
	rangeError       = errors.New("immediate does not fit in 25 bits")
)

func (p *parser) defLabel(lbl string) error {
	if _, ok := p.d[lbl]; ok {
		return labelExistsError
	}
	p.d[lbl] = p.a
	return nil
}

func (p *parser) parseNum(num string) (um.Platter, error) {
	if num == "." {
		return p.a + 1, nil
	}
	if c, ok := p.d[num]; ok {
		return c, nil
	}
	if len(num) > 2 && num[0] == '\'' {
		s, err := strconv.Unquote(num)
		if err != nil || len(s) != 1 {
			return 0, parseError
		}
		return um.Platter(s[0]), nil
	}
	n, err := strconv.ParseUint(num, 0, 32)
	return um.Platter(n), err
}

func isNumber(s string) bool {
	return s[0] >= '0' && s[0] <= '9' || s[0] == '\''
}

func parseReg(s string) (int, error) {
	if len(s) != 2 || s[0] != 'r' && s[0] != 'R' || s[1] < '0' || s[1] > '7' {
		return 0, registerError
	}
	return int(s[1] - '0'), nil
}

func (p *parser) store(c um.Platter) {
	p.i = append(p.i, instr{c, strings.TrimSpace(p.s)})
	p.a++
}

func (p *parser) storeUnresolved(c um.Platter, s string, imm bool) {
	p.u = append(p.u, unres{a: p.a, s: s, imm: imm})
	p.store(c)
}

func (p *parser) resolve() []string {
	var syms []string
	for _, v := range p.u {
		c, ok := p.d[v.s]
		switch {
		case !ok:
			syms = append(syms, v.s)
		case v.imm && c > um.MaxImmediate:
			syms = append(syms, v.s+" (out of range)")
		default:
			p.i[v.a].c |= c
		}
	}
	return syms
}

func (p *parser) cell(num string) error {
	n, err := p.parseNum(num)
	if err != nil {
		if isNumber(num) {
			return err
		}
		p.storeUnresolved(0, num, false)
		return nil
	}
	p.store(n)
	return nil
}

func (p *parser) str(quoted string) error {
	s, err := strconv.Unquote(quoted)
	if err != nil {
		return parseError
	}
	for i := 0; i < len(s); i++ {
		p.store(um.Platter(s[i]))
	}
	return nil
}

func (p *parser) orthography(f []string) error {
	if len(f) != 2 {
		return parseError
	}
	r, err := parseReg(f[0])
	if err != nil {
		return err
	}
	n, err := p.parseNum(f[1])
	switch {
	case err != nil && isNumber(f[1]):
		return err
	case err != nil:
		p.storeUnresolved(um.EncodeImm(r, 0), f[1], true)
		return nil
	case n > um.MaxImmediate:
		return rangeError
	}
	p.store(um.EncodeImm(r, n))
	return nil
}

func (p *parser) operator(op um.Opcode, f []string) error {
	if op == um.Orthography {
		return p.orthography(f)
	}
	var n int
	switch op {
	case um.Halt:
		n = 0
	case um.Allocation, um.LoadProgram:
		n = 2
	case um.Abandonment, um.Output, um.Input:
		n = 1
	default:
		n = 3
	}
	if len(f) != n {
		return parseError
	}
	// right-align the operands: missing ones are a and b
	var r [3]int
	for k, s := range f {
		j, err := parseReg(s)
		if err != nil {
			return err
		}
		r[3-n+k] = j
	}
	p.store(um.Encode(op, r[0], r[1], r[2]))
	return nil
}

func isSep(c byte) bool {
	return c == ',' || c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// fields splits a line on blanks and commas, dropping comments.
// A quoted character is one field even if it is a blank or a comma.
func fields(s string) []string {
	var f []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSep(c):
			i++
			continue
		case c == '\\':
			return f
		}
		j := i + 1
		if c == '\'' {
			for j < len(s) && s[j] != '\'' {
				if s[j] == '\\' {
					j++
				}
				j++
			}
			j++
			if j > len(s) {
				j = len(s)
			}
		} else {
			for j < len(s) && !isSep(s[j]) {
				j++
			}
		}
		f = append(f, s[i:j])
		i = j
	}
	return f
}

func (p *parser) doLine() error {
	if t := strings.TrimSpace(p.s); strings.HasPrefix(t, ".S") {
		return p.str(strings.TrimSpace(t[2:]))
	}
	f := fields(p.s)
	if len(f) == 0 {
		return nil
	}
	switch f[0] {
	case ".C":
		if len(f) != 2 {
			return parseError
		}
		return p.cell(f[1])
	case ".L": // label
		if len(f) != 2 {
			return parseError
		}
		return p.defLabel(f[1])
	}
	op, ok := um.ParseOpcode(strings.ToUpper(f[0]))
	if !ok {
		return parseError
	}
	return p.operator(op, f[1:])
}

func (p *parser) program() []um.Platter {
	prog := make([]um.Platter, len(p.i))
	for k, v := range p.i {
		prog[k] = v.c
	}
	return prog
}

// assemble reads source from r and resolves its labels.
func assemble(r io.Reader) (*parser, error) {
	var p = &parser{d: make(dict)}
	in := bufio.NewReader(r)
	for {
		var err error
		p.l++
		p.s, err = in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%d: %w", p.l, err)
		}
		if p.s != "" {
			if lerr := p.doLine(); lerr != nil {
				return nil, fmt.Errorf("%d: %w: %s", p.l, lerr, strings.TrimSpace(p.s))
			}
		}
		if err == io.EOF {
			break
		}
	}
	if syms := p.resolve(); len(syms) != 0 {
		return nil, fmt.Errorf("unresolved symbols: %s", strings.Join(syms, ", "))
	}
	return p, nil
}

var (
	outFile = flag.String("o", "", "write the image to this file instead of stdout")
	verbose = flag.Bool("v", false, "dump the assembled words and labels to stderr")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			logrus.Fatalln(err)
		}
		defer f.Close()
		in = f
	}
	p, err := assemble(in)
	if err != nil {
		logrus.Fatalln(err)
	}
	if *verbose {
		pr := pretty.New(os.Stderr)
		pr.Println(p.d)
		for k, v := range p.i {
			fmt.Fprintf(os.Stderr, "%08x: %08x  %-24s %s\n", k, uint32(v.c), um.Decode(v.c), v.s)
		}
	}

	var out io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			logrus.Fatalln(err)
		}
		defer f.Close()
		out = f
	}
	if err := um.WriteProgram(out, p.program()); err != nil {
		logrus.Fatalln(err)
	}
}
