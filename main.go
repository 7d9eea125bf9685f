// Copyright 2011 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"universal/pretty"
	"universal/um"
)

var (
	traceFlag  = flag.Bool("trace", false, "log every instruction at debug level")
	maxSteps   = flag.Int("max", 0, "stop after this many steps (nonpositive means no limit)")
	prettyFlag = flag.Bool("pretty", false, "pretty-print the trap context on failure")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE\n", os.Args[0])
	flag.PrintDefaults()
}

// programFile picks the image from the command line: the first
// argument, the rest being ignored.
func programFile(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	return args[0], true
}

func readProgram(name string) ([]um.Platter, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return um.ReadProgram(f)
}

// report prints a failure and the machine state.
func report(w io.Writer, m *um.Machine, err error) {
	var e *um.Error
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", e.Errno.Error())
	fmt.Fprintln(w, "UM State:")
	m.State().WriteTo(w)
	if *prettyFlag {
		pretty.New(os.Stderr).Println(e)
	}
}

// run steps m until it halts, fails or uses up maxSteps.
func run(w io.Writer, m *um.Machine, maxSteps int) {
	for n := 0; maxSteps <= 0 || n < maxSteps; n++ {
		running, err := m.Step()
		if err != nil {
			report(w, m, err)
			return
		}
		if !running {
			return
		}
	}
	logrus.WithField("finger", m.Finger()).Warnf("stopped after %d steps", maxSteps)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	name, ok := programFile(flag.Args())
	if !ok {
		flag.Usage()
		os.Exit(2)
	}
	prog, err := readProgram(name)
	if err != nil {
		logrus.Fatalf("%s: %s: %v", os.Args[0], name, err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	m := um.New(prog, os.Stdin, out)
	if *traceFlag {
		logrus.SetLevel(logrus.DebugLevel)
		m.SetTrace(true)
	}

	fmt.Fprintf(out, "Running program %s\n", name)
	out.Flush()
	run(out, m, *maxSteps)
	fmt.Fprintln(out, "Program finished")
}
