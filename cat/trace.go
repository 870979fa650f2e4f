// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.

package main

import (
	"io"

	"github.com/as/io/count"
	jsonlog "github.com/as/log"
)

// tracer counts the lines written to stdout and, under -D, reports
// per-source and summary records to stderr as JSON.
type tracer struct {
	on  bool
	cnt *count.Writer

	oldOut io.Writer
	oldOn  bool
}

func newTracer(w io.Writer, on bool) *tracer {
	t := &tracer{on: on, cnt: count.NewWriter("\n")}
	if on {
		jsonlog.Service = Name
		t.oldOut = jsonlog.SetOutput(w)
		t.oldOn, jsonlog.DebugOn = jsonlog.DebugOn, true
	}
	return t
}

// counter is written to alongside stdout.
func (t *tracer) counter() io.Writer { return t.cnt }

func (t *tracer) written() int64 { return t.cnt.N }

func (t *tracer) source(name string, lines, numbered int) {
	if !t.on {
		return
	}
	jsonlog.Debug.Add("source", name, "lines", lines, "numbered", numbered).Printf("emitted")
}

func (t *tracer) summary(r Result) {
	if !t.on {
		return
	}
	jsonlog.Debug.Add("lines", r.Lines, "skipped", len(r.Skipped)).Printf("done")
}

// close puts the json log back the way newTracer found it.
func (t *tracer) close() {
	if !t.on {
		return
	}
	jsonlog.SetOutput(t.oldOut)
	jsonlog.DebugOn = t.oldOn
}
