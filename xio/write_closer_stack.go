// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides tools to handle I/O operations. It converts
// writers into the byte sinks the fpaq coder works on, counts written
// bytes and contains the [WriteCloserStack] type, which closes a
// compressor before the file it writes to.
package xio

import (
	"errors"
	"io"
)

// WriteCloserStack combines multiple WriteClosers into a single
// WriteCloser. Writes go to the top of the stack; Close closes from top
// to bottom.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// Write writes data to the top WriteCloser in the stack. If the stack is
// empty Write will always succeed.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(w.Stack)
	if k == 0 {
		return len(p), nil
	}
	return w.Stack[k-1].Write(p)
}

// Close closes all writers on the stack, even if one of them fails,
// and combines the errors. It clears the stack.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		if err := w.Stack[k].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push adds a new WriteCloser to the top of the stack. It panics if the
// WriteCloser is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: cannot push nil WriteCloser onto stack")
	}
	w.Stack = append(w.Stack, wc)
}

// nopCloser adds a Close method doing nothing to a writer.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser whose Close method does nothing. It
// allows to push stdout on the stack.
func NopCloser(w io.Writer) io.WriteCloser { return nopCloser{w} }

// FlushCloser returns a WriteCloser that flushes w on Close. It doesn't
// close the underlying writer of w.
func FlushCloser(w io.Writer) io.WriteCloser { return flushCloser{w} }

type flushCloser struct {
	io.Writer
}

func (f flushCloser) Close() error { return Flush(f.Writer) }
