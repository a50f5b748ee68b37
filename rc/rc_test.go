// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"
)

type codedBit struct {
	bit int
	p   Prob
}

func randomBits(n int, seed int64) []codedBit {
	r := rand.New(rand.NewSource(seed))
	s := make([]codedBit, n)
	for i := range s {
		var p Prob
		switch r.Intn(8) {
		case 0:
			p = 0
		case 1:
			p = 1<<ProbBits - 1
		default:
			p = Prob(r.Intn(1 << ProbBits))
		}
		bit := 0
		if r.Intn(1<<ProbBits) < int(p) {
			bit = 1
		}
		if r.Intn(50) == 0 {
			bit ^= 1
		}
		s[i] = codedBit{bit, p}
	}
	return s
}

func encode(t *testing.T, s []codedBit) []byte {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	for i, c := range s {
		if err := e.Encode(c.bit, c.p); err != nil {
			t.Fatalf("Encode error %s", err)
		}
		if e.low > e.high {
			t.Fatalf("bit %d: low %#08x > high %#08x",
				i, e.low, e.high)
		}
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("Flush error %s", err)
	}
	if e.Compressed() != int64(buf.Len()) {
		t.Fatalf("Compressed() = %d; want %d", e.Compressed(),
			buf.Len())
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000, 100000} {
		s := randomBits(n, int64(n))
		data := encode(t, s)
		d, err := NewDecoder(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("NewDecoder error %s", err)
		}
		for i, c := range s {
			bit, err := d.Decode(c.p)
			if err != nil {
				t.Fatalf("n=%d: Decode error %s", n, err)
			}
			if bit != c.bit {
				t.Fatalf("n=%d: bit %d: got %d; want %d",
					n, i, bit, c.bit)
			}
			if d.low > d.high {
				t.Fatalf("n=%d: bit %d: low %#08x > high %#08x",
					n, i, d.low, d.high)
			}
		}
		if d.Compressed() != int64(len(data)) {
			t.Fatalf("n=%d: Compressed() = %d; want %d",
				n, d.Compressed(), len(data))
		}
	}
}

func TestEmptyStream(t *testing.T) {
	data := encode(t, nil)
	if !bytes.Equal(data, []byte{0xff}) {
		t.Fatalf("empty stream % x; want ff", data)
	}
	_, err := NewDecoder(bytes.NewReader(nil))
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("NewDecoder(empty) error %v; want %v", err,
			io.ErrUnexpectedEOF)
	}
}

func TestTruncatedStream(t *testing.T) {
	s := make([]codedBit, 2000)
	r := rand.New(rand.NewSource(7))
	for i := range s {
		s[i] = codedBit{r.Intn(2), 1 << (ProbBits - 1)}
	}
	data := encode(t, s)
	d, err := NewDecoder(bytes.NewReader(data[:len(data)/2]))
	if err != nil {
		t.Fatalf("NewDecoder error %s", err)
	}
	for _, c := range s {
		if _, err = d.Decode(c.p); err != nil {
			break
		}
	}
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("Decode error %v; want %v", err, io.ErrUnexpectedEOF)
	}
}

var errWrite = errors.New("write failed")

type failingWriter struct{ n int }

func (w *failingWriter) WriteByte(c byte) error {
	if w.n <= 0 {
		return errWrite
	}
	w.n--
	return nil
}

func TestEncoderWriteError(t *testing.T) {
	e := NewEncoder(&failingWriter{n: 10})
	var err error
	for _, c := range randomBits(10000, 3) {
		if err = e.Encode(c.bit, c.p); err != nil {
			break
		}
	}
	if err != errWrite {
		t.Fatalf("Encode error %v; want %v", err, errWrite)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		low, high uint32
		p         Prob
		mid       uint32
	}{
		{0, 0xffffffff, 2048, 0x7fffffff},
		{0, 0xffffffff, 0, 0x000fffff},
		{0, 0xffffffff, 4095, 0xffefffff},
		{0x100, 0x1ff, 2048, 0x17f},
	}
	for _, tc := range tests {
		mid := split(tc.low, tc.high, tc.p)
		if mid != tc.mid {
			t.Errorf("split(%#x, %#x, %d) = %#x; want %#x",
				tc.low, tc.high, tc.p, mid, tc.mid)
		}
	}
}
