// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.

package main

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

var ErrUTF8 = errors.New("stream did not contain valid UTF-8")

// lineReader walks a stream one line at a time, like bufio.Scanner
// but without a limit on the length of a line.
type lineReader struct {
	br   *bufio.Reader
	line string
	n    int
	err  error
	done bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at the end of the
// stream or on the first error, which is then reported by Err.
func (l *lineReader) Next() bool {
	if l.done {
		return false
	}
	s, err := l.br.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
			return false
		}
		if s == "" {
			return false
		}
	}
	if strings.HasSuffix(s, "\n") {
		s = strings.TrimSuffix(s[:len(s)-1], "\r")
	}
	if !utf8.ValidString(s) {
		l.done = true
		l.err = ErrUTF8
		return false
	}
	l.line = s
	l.n++
	return true
}

// Line returns the current line without its terminator.
func (l *lineReader) Line() string { return l.line }

// N is the 1-based position of the current line.
func (l *lineReader) N() int { return l.n }

func (l *lineReader) Err() error { return l.err }
