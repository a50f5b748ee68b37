package rc

import "io"

// maxPadding gives the number of bytes the decoder reads beyond the
// stream written by Encoder. It reads 4 bytes at initialization while
// the encoder writes a single byte at Flush.
const maxPadding = 3

// Decoder decodes the bits from a byte stream created by Encoder.
type Decoder struct {
	r    io.ByteReader
	low  uint32
	high uint32
	// code value
	x uint32
	// bytes read
	n int64
	// bytes substituted after the end of the stream
	pad int
}

// NewDecoder creates a new decoder reading from r. It reads the first
// four bytes of the stream. An empty stream is reported as
// io.ErrUnexpectedEOF.
func NewDecoder(r io.ByteReader) (d *Decoder, err error) {
	d = &Decoder{r: r, high: 0xffffffff}
	for i := 0; i < 4; i++ {
		if err = d.updateCode(); err != nil {
			return nil, err
		}
	}
	if d.n == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return d, nil
}

// Compressed returns the number of bytes consumed from the underlying
// reader.
func (d *Decoder) Compressed() int64 { return d.n }

// updateCode shifts the next byte into the code value. Missing bytes at
// the end of the stream are replaced by zeros. The encoder never
// requires more than maxPadding of them; needing more means that the
// stream is truncated.
func (d *Decoder) updateCode() error {
	b, err := d.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			return err
		}
		if d.pad >= maxPadding {
			return io.ErrUnexpectedEOF
		}
		d.pad++
		b = 0
	} else {
		d.n++
	}
	d.x = d.x<<8 | uint32(b)
	return nil
}

// Decode decodes a bit with probability p for a 1 bit. The probability
// must be the one used to encode the bit.
func (d *Decoder) Decode(p Prob) (bit int, err error) {
	mid := split(d.low, d.high, p)
	if d.x <= mid {
		bit = 1
		d.high = mid
	} else {
		d.low = mid + 1
	}
	for (d.low^d.high)&topMask == 0 {
		d.high = d.high<<8 | 0xff
		d.low <<= 8
		if err = d.updateCode(); err != nil {
			return bit, err
		}
	}
	return bit, nil
}
