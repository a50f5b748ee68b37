// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rc implements the carryless binary arithmetic coder used by
// fpaq. The coder narrows the 32-bit interval [low,high] for each bit
// according to a 12-bit probability and writes out the leading byte as
// soon as low and high share it.
package rc

import "io"

// ProbBits defines the number of bits of a probability value.
const ProbBits = 12

// Prob is the probability that the coded bit is 1, scaled to
// [0,1<<ProbBits).
type Prob uint16

// topMask selects the leading byte of low and high.
const topMask = 0xff000000

// split computes the point dividing [low,high] into the interval for a
// 1 bit, [low,mid], and the interval for a 0 bit, [mid+1,high]. The
// probability is adjusted away from zero. The second term reduces the
// bias of the truncated multiplication.
func split(low, high uint32, p Prob) uint32 {
	if p >= 1<<ProbBits {
		panic("rc: probability out of range")
	}
	q := uint32(p)
	if q < 1<<(ProbBits-1) {
		q++
	}
	r := high - low
	return low + (r>>ProbBits)*q + ((r&(1<<ProbBits-1))*q)>>ProbBits
}

// Encoder encodes bits into a byte stream.
type Encoder struct {
	w    io.ByteWriter
	low  uint32
	high uint32
	// number of bytes written
	n int64
}

// NewEncoder creates a new encoder writing to w.
func NewEncoder(w io.ByteWriter) *Encoder {
	return &Encoder{w: w, high: 0xffffffff}
}

// Compressed returns the number of bytes written so far.
func (e *Encoder) Compressed() int64 { return e.n }

// shift writes the leading byte shared by low and high.
func (e *Encoder) shift() error {
	if err := e.w.WriteByte(byte(e.high >> 24)); err != nil {
		return err
	}
	e.n++
	e.high = e.high<<8 | 0xff
	e.low <<= 8
	return nil
}

// normalize writes all leading bytes low and high agree on.
func (e *Encoder) normalize() error {
	for (e.low^e.high)&topMask == 0 {
		if err := e.shift(); err != nil {
			return err
		}
	}
	return nil
}

// Encode encodes bit with probability p for a 1 bit.
func (e *Encoder) Encode(bit int, p Prob) error {
	mid := split(e.low, e.high, p)
	switch bit {
	case 1:
		e.high = mid
	case 0:
		e.low = mid + 1
	default:
		panic("rc: bit must be 0 or 1")
	}
	return e.normalize()
}

// Flush writes the pending bytes and the leading byte of high. The
// decoder needs it to find a value inside the final interval. The
// encoder must not be used after Flush.
func (e *Encoder) Flush() error {
	if err := e.normalize(); err != nil {
		return err
	}
	if err := e.w.WriteByte(byte(e.high >> 24)); err != nil {
		return err
	}
	e.n++
	return nil
}
