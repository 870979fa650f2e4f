// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.
//
// Cat writes the lines of each named file to stdout, optionally
// numbering every line [ -n ] or only the non-blank ones [ -b ].

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

const (
	Name    = "cat"
	Version = "0.1.0"
	Prefix  = Name + ": "
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program. It returns the process exit status:
// 0 on completion, even when some files were skipped, 1 when a read
// or write failed mid-stream, 2 on a usage error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lg := log.New(stderr, Prefix, 0)

	cfg, err := parseArgs(args)
	switch {
	case errors.Is(err, errHelp):
		usage(stdout)
		return 0
	case errors.Is(err, errVersion):
		fmt.Fprintln(stdout, Name, Version)
		return 0
	case err != nil:
		lg.Println(err)
		fmt.Fprintln(stderr, Synopsis)
		return 2
	}

	tr := newTracer(stderr, cfg.Debug)
	defer tr.close()

	e := &emitter{stdin: stdin, stdout: stdout, stderr: stderr, trace: tr}
	if _, err := e.run(cfg); err != nil {
		lg.Println(err)
		return 1
	}
	return 0
}

const Synopsis = "usage: cat [-n | -b] [-D] [file ...]"

func usage(w io.Writer) {
	fmt.Fprintln(w, `
NAME
	cat - catenate files, optionally numbering lines

SYNOPSIS
	cat [-n | -b] [-D] [file ...]

DESCRIPTION
	Cat writes the lines of each named file to stdout. The
	file - names stdin, which is also read when no files are
	named. Flags may come before or after the files; -- ends
	the flags.

	-n, --number            Number every line
	-b, --number-nonblank   Number only non-empty lines
	-D                      Trace each file to stderr as JSON
	-V, --version           Print the version
	-h, -?, --help          Print this text

	Numbers are right aligned in six columns and followed by
	a tab. Numbering starts over at 1 for each file. The -n
	and -b flags can not be used together.

	A file that can not be opened is reported and skipped. A
	read error, or a line that is not UTF-8, stops cat.

EXAMPLE
	cat -n file1 file2
	ls | cat -b - file3

BUGS
	This leaves you with an empty file1:
	cat file1 file2 > file1`)
}
