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
	"github.com/ulikunitz/fpaq/xlog"
)

// Reader decompresses an fpaq stream.
type Reader struct {
	cfg ReaderConfig
	d   *rc.Decoder
	p   cm.Predictor
	// uncompressed bytes
	n   int64
	err error
}

// NewReader creates a reader for a stream compressed with the APM
// method.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a new reader using the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	return cfg.NewReader(r)
}

// NewReader creates a new reader using the configuration. If r doesn't
// support io.ByteReader the reader buffers the input and may read
// beyond the end of the compressed stream. Even with an io.ByteReader
// up to three bytes following the stream are consumed.
func (cfg ReaderConfig) NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, errors.New("fpaq: reader must not be nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	p, err := cm.NewPredictor(cfg.Method)
	if err != nil {
		return nil, err
	}
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReaderSize(r, cfg.BufSize)
	}
	d, err := rc.NewDecoder(br)
	if err != nil {
		return nil, wrap(err, "read")
	}
	return &Reader{cfg: cfg, d: d, p: p}, nil
}

// Config returns the configuration of the reader.
func (z *Reader) Config() ReaderConfig { return z.cfg }

// decodeBit decodes a single bit and informs the predictor.
func (z *Reader) decodeBit() (bit int, err error) {
	bit, err = z.d.Decode(rc.Prob(z.p.P()))
	z.p.Update(bit)
	return bit, err
}

// readByte decodes the next byte. It returns io.EOF if the
// continuation bit signals the end of the stream.
func (z *Reader) readByte() (c byte, err error) {
	bit, err := z.decodeBit()
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		xlog.Printf(debug, "%s: %d bytes -> %d bytes",
			z.cfg.Method, z.d.Compressed(), z.n)
		return 0, io.EOF
	}
	x := 1
	for x < 256 {
		if bit, err = z.decodeBit(); err != nil {
			return 0, err
		}
		x += x + bit
	}
	return byte(x - 256), nil
}

// ReadByte decompresses a single byte.
func (z *Reader) ReadByte() (c byte, err error) {
	if z.err != nil {
		return 0, z.err
	}
	if c, err = z.readByte(); err != nil {
		z.err = wrap(err, "read")
		return 0, z.err
	}
	z.n++
	return c, nil
}

// Read decompresses data into p. It returns io.EOF at the end of the
// stream. A truncated stream may be reported as io.ErrUnexpectedEOF.
func (z *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		var c byte
		if c, err = z.ReadByte(); err != nil {
			return n, err
		}
		p[n] = c
		n++
	}
	return n, nil
}

// Uncompressed returns the number of bytes decompressed so far.
func (z *Reader) Uncompressed() int64 { return z.n }

// Compressed returns the number of bytes consumed from the compressed
// stream.
func (z *Reader) Compressed() int64 { return z.d.Compressed() }
