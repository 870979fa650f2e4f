// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/as/mute"
)

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

// Config is the resolved command line. It is built once by parseArgs
// and never modified afterwards.
type Config struct {
	Sources        []string
	NumberAll      bool
	NumberNonblank bool
	Debug          bool
}

// UsageError is a malformed or conflicting argument list.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// parseArgs resolves a into a Config. Flags and file operands may be
// interleaved; "--" ends flag parsing. The file system is not touched.
func parseArgs(a []string) (Config, error) {
	var (
		c       Config
		h, v    bool
		sources []string
	)
	f := flag.NewFlagSet("main", flag.ContinueOnError)
	f.BoolVar(&c.NumberAll, "n", false, "")
	f.BoolVar(&c.NumberAll, "number", false, "")
	f.BoolVar(&c.NumberNonblank, "b", false, "")
	f.BoolVar(&c.NumberNonblank, "number-nonblank", false, "")
	f.BoolVar(&c.Debug, "D", false, "")
	f.BoolVar(&h, "h", false, "")
	f.BoolVar(&h, "?", false, "")
	f.BoolVar(&h, "help", false, "")
	f.BoolVar(&v, "V", false, "")
	f.BoolVar(&v, "version", false, "")

	flags, operands := splitArgs(a)
	if err := mute.Parse(f, append(append(flags, "--"), operands...)); err != nil {
		return Config{}, &UsageError{err}
	}
	sources = f.Args()

	switch {
	case h:
		return Config{}, errHelp
	case v:
		return Config{}, errVersion
	case c.NumberAll && c.NumberNonblank:
		return Config{}, &UsageError{fmt.Errorf("the argument '-n' cannot be used with '-b'")}
	}
	if len(sources) == 0 {
		sources = []string{"-"}
	}
	c.Sources = sources
	return c, nil
}

// splitArgs separates flag tokens from file operands so the flag set
// is parsed once. A lone "-" is an operand; everything after "--" is.
func splitArgs(a []string) (flags, operands []string) {
	for i, s := range a {
		switch {
		case s == "--":
			return flags, append(operands, a[i+1:]...)
		case len(s) > 1 && s[0] == '-':
			flags = append(flags, s)
		default:
			operands = append(operands, s)
		}
	}
	return flags, operands
}
