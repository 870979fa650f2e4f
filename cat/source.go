// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.

package main

import (
	"io"
	"io/ioutil"
	"os"
)

// Source is one input operand: a named stream that can be opened once.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type stdinSource struct {
	r io.Reader
}

func (s stdinSource) Name() string { return "-" }

// Open never fails. Closing the result leaves the process's stdin open,
// so "-" may be named more than once.
func (s stdinSource) Open() (io.ReadCloser, error) {
	return ioutil.NopCloser(s.r), nil
}

type fileSource string

func (s fileSource) Name() string { return string(s) }

func (s fileSource) Open() (io.ReadCloser, error) {
	return os.OpenFile(string(s), os.O_RDONLY, 0666)
}

func sourceFor(name string, stdin io.Reader) Source {
	if name == "-" {
		return stdinSource{stdin}
	}
	return fileSource(name)
}
