// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/ulikunitz/fpaq"
	"github.com/ulikunitz/fpaq/internal/term"
	"github.com/ulikunitz/fpaq/xio"
	"github.com/ulikunitz/fpaq/xlog"
)

// ext is the file name extension of compressed files.
const ext = ".fpaq"

// signalHandler establishes the signal handler for the termination
// signals and handles them in its own go routine. The returned quit
// channel must be closed to terminate the signal handler go routine.
func signalHandler(w *writer) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, termsigs...)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			w.removeTmpFile()
			os.Exit(7)
		}
	}()
	return quit
}

// targetName finds the correct target name taking the options into
// account.
func targetName(path string, opts *options) (target string, err error) {
	if opts.output != "" {
		return opts.output, nil
	}
	if path == "-" {
		panic("path name - not supported")
	}
	if len(path) == 0 {
		return "", errors.New("empty file name not supported")
	}
	if !opts.decompress {
		if strings.HasSuffix(path, ext) {
			return "", &userPathError{Path: path,
				Err: errors.Errorf("already has %s suffix", ext)}
		}
		return path + ext, nil
	}
	if !strings.HasSuffix(path, ext) {
		return "", &userPathError{Path: path,
			Err: errors.New("unknown suffix -- ignored")}
	}
	target = path[:len(path)-len(ext)]
	if len(target) == 0 || strings.HasSuffix(target, "/") {
		return "", errors.Errorf("file name %s has no base part", path)
	}
	return target, nil
}

// tmpName converts the path string into a temporary name by appending
// .decompress or .compress to the file path.
func tmpName(path string, decompress bool) string {
	if decompress {
		return path + ".decompress"
	}
	return path + ".compress"
}

// writer is used as file writer for decompression and file compressor
// for compression.
type writer struct {
	f    *os.File
	name string
	// counts the bytes written to f
	cw *xio.CountWriter
	// compressor on top of the buffer flusher
	stack   xio.WriteCloserStack
	success bool
}

// errTerminal prevents compressed data from being written to or read
// from a terminal.
var errTerminal = errors.New(
	"compressed data not written to or read from a terminal; use -f to force")

// newWriter creates a new file writer. The path is the input path.
func newWriter(path string, perm os.FileMode, opts *options,
) (w *writer, err error) {
	w = &writer{}
	if opts.stdout || (path == "-" && opts.output == "") {
		if !opts.decompress && !opts.force && term.IsTerminal(os.Stdout) {
			return nil, errTerminal
		}
		w.f = os.Stdout
		w.name = "-"
	} else {
		name, err := targetName(path, opts)
		if err != nil {
			return nil, err
		}
		if _, err = os.Stat(name); !os.IsNotExist(err) {
			if !opts.force {
				return nil, &userPathError{
					Path: name,
					Err:  errors.New("file exists")}
			}
			if err = os.Remove(name); err != nil {
				return nil, err
			}
		}
		tmp := tmpName(name, opts.decompress)
		if w.f, err = os.OpenFile(tmp,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm); err != nil {
			return nil, err
		}
		w.name = name
	}
	w.cw = &xio.CountWriter{W: w.f}
	bw := bufio.NewWriter(w.cw)
	w.stack.Push(xio.FlushCloser(bw))
	if opts.decompress {
		return w, nil
	}
	z, err := fpaq.WriterConfig{Method: opts.method}.NewWriter(bw)
	if err != nil {
		if w.f != os.Stdout {
			w.f.Close()
			os.Remove(w.f.Name())
		}
		return nil, err
	}
	w.stack.Push(z)
	return w, nil
}

// Write writes to the compressor or the file buffer.
func (w *writer) Write(p []byte) (n int, err error) {
	return w.stack.Write(p)
}

// Written returns the number of bytes written to the output file.
func (w *writer) Written() int64 { return w.cw.N }

var errInval = errors.New("invalid value")

// Close closes the writer. Note that the behaviour depends whether
// success has been set for the writer.
func (w *writer) Close() error {
	var err error

	if w.f == nil {
		return errInval
	}
	defer func() { w.f = nil }()

	if !w.success {
		if w.f == os.Stdout {
			return nil
		}
		if err = w.f.Close(); err != nil {
			return err
		}
		return os.Remove(w.f.Name())
	}
	if err = w.stack.Close(); err != nil {
		return err
	}
	if w.f == os.Stdout {
		return nil
	}
	if err = w.f.Close(); err != nil {
		return err
	}
	return os.Rename(w.f.Name(), w.name)
}

// removeTmpFile removes the temporary file for the writer. It is used
// by the signal handler goroutine.
func (w *writer) removeTmpFile() {
	if w.f != os.Stdout {
		os.Remove(w.f.Name())
	}
}

// SetSuccess sets the success variable to true.
func (w *writer) SetSuccess() { w.success = true }

// reader is used as a file reader.
type reader struct {
	f *os.File
	io.Reader
	// decompressor; nil for compression
	z       *fpaq.Reader
	success bool
	keep    bool
}

// errNoRegular indicates that a file is not regular.
var errNoRegular = errors.New("no regular file")

// specialBits contain the special bits, which are not supported by fpaq.
const specialBits = os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// openFile opens the given path with the given options.
func openFile(path string, opts *options) (f *os.File, err error) {
	if path == "-" {
		if opts.decompress && !opts.force && term.IsTerminal(os.Stdin) {
			return nil, errTerminal
		}
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	fm := fi.Mode()
	if !fm.IsRegular() {
		if !opts.force || fm&os.ModeSymlink == 0 {
			return nil, &userPathError{Path: path,
				Err: errNoRegular}
		}
	}
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	if fi, err = f.Stat(); err != nil {
		f.Close()
		return nil, err
	}
	fm = fi.Mode()
	if !fm.IsRegular() {
		f.Close()
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	if fm&specialBits != 0 && !opts.force {
		f.Close()
		return nil, &userPathError{Path: path,
			Err: errors.New("setuid, setgid and/or sticky bit set")}
	}
	return f, nil
}

// newReader creates a new reader for files.
func newReader(path string, opts *options) (r *reader, err error) {
	f, err := openFile(path, opts)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	r = &reader{f: f, Reader: br, keep: opts.keep || opts.stdout}
	if !opts.decompress {
		return r, nil
	}
	if r.z, err = (fpaq.ReaderConfig{Method: opts.method}).NewReader(br); err != nil {
		if f != os.Stdin {
			f.Close()
		}
		return nil, err
	}
	r.Reader = r.z
	return r, nil
}

// Close closes the reader. The behaviour can be influenced by the
// success attribute of reader.
func (r *reader) Close() error {
	if r.f == nil {
		return errInval
	}
	defer func() { r.f = nil }()
	if r.f == os.Stdin {
		return nil
	}
	if err := r.f.Close(); err != nil {
		return err
	}
	if r.keep || !r.success {
		return nil
	}
	return os.Remove(r.f.Name())
}

func (r *reader) SetSuccess() { r.success = true }

func (r *reader) Perm() os.FileMode {
	const defaultPerm os.FileMode = 0666

	fi, err := r.f.Stat()
	if err != nil {
		return defaultPerm
	}

	return fi.Mode() & defaultPerm
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError converts path error to an error message that is
// acceptable for fpaq users. The operation information of
// os.PathError, for instance lstat, is removed.
func userError(err error) error {
	pe, ok := errors.Cause(err).(*os.PathError)
	if !ok {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func printErr(err error) {
	if err != nil {
		xlog.Warn(userError(err))
	}
}

// processFile processes the file with the given path applying the
// provided options.
func processFile(path string, opts *options) (err error) {
	start := time.Now()
	r, err := newReader(path, opts)
	if err != nil {
		printErr(err)
		return err
	}
	defer r.Close()
	w, err := newWriter(path, r.Perm(), opts)
	if err != nil {
		printErr(err)
		return err
	}
	defer w.Close()
	quitSignalHandler := signalHandler(w)
	n, err := io.Copy(w, r)
	close(quitSignalHandler)
	if err != nil {
		printErr(err)
		return err
	}
	w.SetSuccess()
	if err = w.Close(); err != nil {
		printErr(err)
		return err
	}
	r.SetSuccess()
	if err = r.Close(); err != nil {
		printErr(err)
		return err
	}
	if r.z != nil {
		n = r.z.Compressed()
	}
	xlog.Print(fmt.Sprintf("%s: %d bytes -> %d bytes in %s",
		path, n, w.Written(), time.Since(start).Round(time.Millisecond)))
	return nil
}
