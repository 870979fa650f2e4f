// Copyright 2015 "as". All rights reserved. The program and its corresponding
// gotools package is governed by an MIT license.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// OpenError is a source that could not be opened. It is reported and
// skipped; the run goes on.
type OpenError struct {
	Source string
	Err    error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("Failed to open %s: %v", e.Source, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError is a failure on a stream that was already open. It ends
// the run.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string { return e.Source + ": " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// Result summarizes a run. Skipped holds the recoverable failures;
// fatal ones are returned as errors alongside it.
type Result struct {
	Lines   int64
	Skipped []*OpenError
}

type emitter struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	trace  *tracer
}

// run copies every source in cfg to stdout, numbering lines as cfg
// asks. Open failures are written to stderr and collected in the
// Result; the returned error is non-nil only for fatal failures.
func (e *emitter) run(cfg Config) (res Result, err error) {
	out := bufio.NewWriter(io.MultiWriter(e.stdout, e.trace.counter()))
	defer func() {
		if ferr := out.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("stdout: %w", ferr)
		}
		res.Lines = e.trace.written()
		e.trace.summary(res)
	}()

	for _, name := range cfg.Sources {
		src := sourceFor(name, e.stdin)
		rc, oerr := src.Open()
		if oerr != nil {
			operr := &OpenError{Source: src.Name(), Err: cause(oerr)}
			if err := out.Flush(); err != nil {
				return res, fmt.Errorf("stdout: %w", err)
			}
			fmt.Fprintln(e.stderr, operr)
			res.Skipped = append(res.Skipped, operr)
			continue
		}
		err = e.emit(out, src.Name(), rc, cfg)
		rc.Close()
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// emit writes the lines of one open stream. The nonblank counter
// belongs to this stream alone.
func (e *emitter) emit(out *bufio.Writer, name string, r io.Reader, cfg Config) error {
	var (
		lr      = newLineReader(r)
		lastNum int
		werr    error
	)
	for lr.Next() {
		line := lr.Line()
		switch {
		case cfg.NumberAll:
			_, werr = fmt.Fprintf(out, "%6d\t%s\n", lr.N(), line)
		case cfg.NumberNonblank:
			if line == "" {
				werr = out.WriteByte('\n')
				break
			}
			lastNum++
			_, werr = fmt.Fprintf(out, "%6d\t%s\n", lastNum, line)
		default:
			_, werr = fmt.Fprintln(out, line)
		}
		if werr != nil {
			return fmt.Errorf("stdout: %w", werr)
		}
	}
	if err := lr.Err(); err != nil {
		return &ReadError{Source: name, Err: err}
	}
	numbered := lastNum
	if cfg.NumberAll {
		numbered = lr.N()
	}
	e.trace.source(name, lr.N(), numbered)
	return nil
}

// cause strips the "open <path>:" decoration os.Open puts on its errors;
// OpenError already names the source.
func cause(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
