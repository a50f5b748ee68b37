package fpaq

import "github.com/pkg/errors"

// ErrClosed is returned if a closed Writer is used.
var ErrClosed = errors.New("fpaq: writer is closed")

// wrap annotates I/O errors with the operation that failed. It returns
// nil for a nil error and leaves io.EOF and io.ErrUnexpectedEOF
// untouched, so that callers can compare them directly.
func wrap(err error, op string) error {
	if err == nil || isEOF(err) {
		return err
	}
	return errors.Wrap(err, "fpaq: "+op)
}
