// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio

import "io"

// bwriter implements a ByteWriter on top of a Writer.
type bwriter struct {
	w   io.Writer
	buf []byte
}

// WriteByte writes a byte using the standard writer. Note that the
// function is not thread-safe.
func (bw *bwriter) WriteByte(c byte) error {
	bw.buf[0] = c
	n, err := bw.w.Write(bw.buf)
	if n < 1 && err == nil {
		err = io.ErrShortWrite
	}
	return err
}

// ByteWriter converts a Writer to a ByteWriter. If the Writer doesn't
// support the ByteWriter interface directly a new structure will be
// allocated and a non-thread-safe ByteWriter will be returned.
func ByteWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return &bwriter{w, make([]byte, 1)}
}

// Flusher is implemented by byte sinks buffering their output, for
// instance bufio.Writer.
type Flusher interface {
	Flush() error
}

// Flush flushes w if it supports the Flusher interface.
func Flush(w interface{}) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// CountWriter counts the bytes written to the underlying writer. The
// writer W may be nil; then all bytes are discarded.
type CountWriter struct {
	W io.Writer
	N int64
}

// Write writes p to the underlying writer and adds the number of bytes
// written to N.
func (cw *CountWriter) Write(p []byte) (n int, err error) {
	if cw.W == nil {
		n = len(p)
	} else {
		n, err = cw.W.Write(p)
	}
	cw.N += int64(n)
	return n, err
}

// WriteByte supports the io.ByteWriter interface.
func (cw *CountWriter) WriteByte(c byte) error {
	if cw.W != nil {
		if err := ByteWriter(cw.W).WriteByte(c); err != nil {
			return err
		}
	}
	cw.N++
	return nil
}
