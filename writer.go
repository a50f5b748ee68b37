// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fpaq

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/ulikunitz/fpaq/cm"
	"github.com/ulikunitz/fpaq/rc"
	"github.com/ulikunitz/fpaq/xio"
	"github.com/ulikunitz/fpaq/xlog"
)

// Writer compresses the data written to it. The compressed stream is
// only complete after Close has been called.
type Writer struct {
	cfg WriterConfig
	bw  io.ByteWriter
	e   *rc.Encoder
	p   cm.Predictor
	// uncompressed bytes
	n   int64
	err error
}

// NewWriter creates a new writer using the APM method.
//
// Don't forget to call Close for the writer after all data has been
// written.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a new writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	return cfg.NewWriter(w)
}

// NewWriter creates a new writer using the configuration. If w doesn't
// support io.ByteWriter the writer buffers its output.
func (cfg WriterConfig) NewWriter(w io.Writer) (*Writer, error) {
	if w == nil {
		return nil, errors.New("fpaq: writer must not be nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	p, err := cm.NewPredictor(cfg.Method)
	if err != nil {
		return nil, err
	}
	bw, ok := w.(io.ByteWriter)
	if !ok {
		bw = bufio.NewWriterSize(w, cfg.BufSize)
	}
	z := &Writer{
		cfg: cfg,
		bw:  bw,
		e:   rc.NewEncoder(bw),
		p:   p,
	}
	return z, nil
}

// Config returns the configuration of the writer.
func (z *Writer) Config() WriterConfig { return z.cfg }

// encodeBit encodes a single bit and informs the predictor.
func (z *Writer) encodeBit(bit int) error {
	err := z.e.Encode(bit, rc.Prob(z.p.P()))
	z.p.Update(bit)
	return err
}

// writeByte encodes the continuation bit and the bits of c.
func (z *Writer) writeByte(c byte) error {
	if err := z.encodeBit(1); err != nil {
		return err
	}
	for i := 7; i >= 0; i-- {
		if err := z.encodeBit(int(c>>uint(i)) & 1); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte compresses a single byte.
func (z *Writer) WriteByte(c byte) error {
	if z.err != nil {
		return z.err
	}
	if err := z.writeByte(c); err != nil {
		z.err = wrap(err, "write")
		return z.err
	}
	z.n++
	return nil
}

// Write compresses the bytes of p.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	for _, c := range p {
		if err = z.writeByte(c); err != nil {
			z.err = wrap(err, "write")
			break
		}
		n++
	}
	z.n += int64(n)
	return n, z.err
}

// Close terminates the stream and flushes the output. It doesn't close
// the underlying writer.
func (z *Writer) Close() error {
	if z.err != nil {
		return z.err
	}
	if err := z.encodeBit(0); err != nil {
		z.err = wrap(err, "close")
		return z.err
	}
	if err := z.e.Flush(); err != nil {
		z.err = wrap(err, "flush")
		return z.err
	}
	if err := xio.Flush(z.bw); err != nil {
		z.err = wrap(err, "flush")
		return z.err
	}
	xlog.Printf(debug, "%s: %d bytes -> %d bytes",
		z.cfg.Method, z.n, z.e.Compressed())
	z.err = ErrClosed
	return nil
}

// Uncompressed returns the number of bytes written to the writer.
func (z *Writer) Uncompressed() int64 { return z.n }

// Compressed returns the number of bytes the compressed stream has so
// far.
func (z *Writer) Compressed() int64 { return z.e.Compressed() }
