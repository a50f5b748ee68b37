package fpaq

import (
	"github.com/pkg/errors"
	"github.com/ulikunitz/fpaq/cm"
)

// defaultBufSize defines the size of the I/O buffers.
const defaultBufSize = 4096

// minBufSize is the smallest buffer size supported by package bufio.
const minBufSize = 16

// WriterConfig defines the parameters for a Writer.
type WriterConfig struct {
	// Method selects the predictor. (default: cm.MethodAPM)
	Method cm.Method

	// BufSize is the size of the output buffer, which is used if the
	// underlying writer doesn't support io.ByteWriter.
	// (default: 4096)
	BufSize int
}

// ApplyDefaults replaces zero values with the default values.
func (c *WriterConfig) ApplyDefaults() {
	if c.BufSize == 0 {
		c.BufSize = defaultBufSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("fpaq: writer configuration is nil")
	}
	c.ApplyDefaults()
	if err := c.Method.Verify(); err != nil {
		return err
	}
	if c.BufSize < minBufSize {
		return errors.Errorf("fpaq: BufSize %d out of range", c.BufSize)
	}
	return nil
}

// ReaderConfig defines the parameters for a Reader.
type ReaderConfig struct {
	// Method selects the predictor. It must be the method used for
	// compression. (default: cm.MethodAPM)
	Method cm.Method

	// BufSize is the size of the input buffer, which is used if the
	// underlying reader doesn't support io.ByteReader.
	// (default: 4096)
	BufSize int
}

// ApplyDefaults replaces zero values with the default values.
func (c *ReaderConfig) ApplyDefaults() {
	if c.BufSize == 0 {
		c.BufSize = defaultBufSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("fpaq: reader configuration is nil")
	}
	c.ApplyDefaults()
	if err := c.Method.Verify(); err != nil {
		return err
	}
	if c.BufSize < minBufSize {
		return errors.Errorf("fpaq: BufSize %d out of range", c.BufSize)
	}
	return nil
}
