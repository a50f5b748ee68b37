package fpaq

import (
	"bufio"
	"io"
)

// isEOF reports the end-of-stream errors passed through unwrapped.
func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

// Compress compresses all data from src and writes the compressed stream
// to dst. It returns the number of bytes read from src and written to
// dst.
func Compress(dst io.Writer, src io.Reader, cfg WriterConfig) (n, m int64, err error) {
	if err = cfg.Verify(); err != nil {
		return 0, 0, err
	}
	bw := bufio.NewWriterSize(dst, cfg.BufSize)
	z, err := NewWriterConfig(bw, cfg)
	if err != nil {
		return 0, 0, err
	}
	br := bufio.NewReaderSize(src, cfg.BufSize)
	if _, err = io.Copy(z, br); err != nil {
		return z.Uncompressed(), z.Compressed(), err
	}
	if err = z.Close(); err != nil {
		return z.Uncompressed(), z.Compressed(), err
	}
	return z.Uncompressed(), z.Compressed(), nil
}

// Decompress decompresses the stream from src and writes the data to
// dst. It returns the number of compressed bytes consumed and the number
// of bytes written to dst.
func Decompress(dst io.Writer, src io.Reader, cfg ReaderConfig) (n, m int64, err error) {
	if err = cfg.Verify(); err != nil {
		return 0, 0, err
	}
	z, err := NewReaderConfig(bufio.NewReaderSize(src, cfg.BufSize), cfg)
	if err != nil {
		return 0, 0, err
	}
	bw := bufio.NewWriterSize(dst, cfg.BufSize)
	m, err = io.Copy(bw, z)
	if err != nil {
		return z.Compressed(), m, err
	}
	if err = bw.Flush(); err != nil {
		return z.Compressed(), m, wrap(err, "flush")
	}
	return z.Compressed(), m, nil
}
