// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a simple logging package that allows to disable
certain message categories. It defines a type, Logger, with multiple
methods for formatting output. The package has also a predefined
'standard' Logger accessible through helper function Print[f|ln],
Fatal[f|ln], Panic[f|ln], Warn[f|ln], Debug[f|ln]. The standard logger
writes to standard error and prints the date and time of each logged
message, which can be configured using the function SetFlags.

The Fatal functions call os.Exit(1) after the message is output unless
not suppressed by the flags. The Panic functions call panic after the
writing the log message unless suppressed.

Packages that want to support optional debug output hold a value of the
Outputer interface, which may be nil. The functions Printf and Println
on such a value don't do anything for nil.
*/
package xlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

// The flags define what information is prefixed to each log entry
// generated by the Logger. The Lno* versions allow the suppression of
// specific output. The default is Lstdflags.
const (
	Ldate = 1 << iota
	Ltime
	Lmicroseconds
	Llongfile
	Lshortfile
	Lnoprefix
	Lnodebug
	Lnoprint
	Lnowarn
	Lnofatal
	Lnopanic
	Lstdflags = Ldate | Ltime | Lnodebug
)

// Logger represents an active logging object. It may be used
// simultaneously from multiple goroutines.
type Logger struct {
	mu     sync.Mutex
	prefix string
	flag   int
	out    io.Writer
	buf    []byte
}

// std is the standard logger used by the package scope functions.
var std = New(os.Stderr, "", Lstdflags)

// New creates a new logger. The out variable sets the destination to
// which the log data will be written. The prefix appears at the
// beginning of each log line. The flag argument defines the logging
// properties.
func New(out io.Writer, prefix string, flag int) *Logger {
	return &Logger{out: out, prefix: prefix, flag: flag}
}

// itoa converts the integer to ASCII. A negative widths will avoid
// zero-padding. The function supports only non-negative integers.
func itoa(buf *[]byte, i int, wid int) {
	var u = uint(i)
	if u == 0 && wid <= 1 {
		*buf = append(*buf, '0')
		return
	}
	var b [32]byte
	bp := len(b)
	for ; u > 0 || wid > 0; u /= 10 {
		bp--
		wid--
		b[bp] = byte(u%10) + '0'
	}
	*buf = append(*buf, b[bp:]...)
}

// formatHeader creates the header for a log line.
func (l *Logger) formatHeader(t time.Time, file string, line int) {
	if l.flag&Lnoprefix == 0 {
		l.buf = append(l.buf, l.prefix...)
	}
	if l.flag&(Ldate|Ltime|Lmicroseconds) != 0 {
		if l.flag&Ldate != 0 {
			year, month, day := t.Date()
			itoa(&l.buf, year, 4)
			l.buf = append(l.buf, '/')
			itoa(&l.buf, int(month), 2)
			l.buf = append(l.buf, '/')
			itoa(&l.buf, day, 2)
			l.buf = append(l.buf, ' ')
		}
		if l.flag&(Ltime|Lmicroseconds) != 0 {
			hour, min, sec := t.Clock()
			itoa(&l.buf, hour, 2)
			l.buf = append(l.buf, ':')
			itoa(&l.buf, min, 2)
			l.buf = append(l.buf, ':')
			itoa(&l.buf, sec, 2)
			if l.flag&Lmicroseconds != 0 {
				l.buf = append(l.buf, '.')
				itoa(&l.buf, t.Nanosecond()/1e3, 6)
			}
			l.buf = append(l.buf, ' ')
		}
	}
	if l.flag&(Lshortfile|Llongfile) != 0 {
		if l.flag&Lshortfile != 0 {
			short := file
			for i := len(file) - 1; i > 0; i-- {
				if file[i] == '/' {
					short = file[i+1:]
					break
				}
			}
			file = short
		}
		l.buf = append(l.buf, file...)
		l.buf = append(l.buf, ':')
		itoa(&l.buf, line, -1)
		l.buf = append(l.buf, ": "...)
	}
}

// Output writes the string s with the header controlled by the flags
// to the l.out writer. A newline will be appended if s doesn't end in a
// newline. Calldepth is used to recover the PC, although all current
// calls of Output use the call depth 2. Access to the function is
// serialized.
func (l *Logger) Output(calldepth, noflag int, s string) error {
	now := time.Now()
	var file string
	var line int
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.flag&noflag != 0 {
		return nil
	}
	if l.flag&(Lshortfile|Llongfile) != 0 {
		l.mu.Unlock()
		var ok bool
		_, file, line, ok = runtime.Caller(calldepth)
		if !ok {
			file = "???"
			line = 0
		}
		l.mu.Lock()
	}
	l.buf = l.buf[:0]
	l.formatHeader(now, file, line)
	l.buf = append(l.buf, s...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		l.buf = append(l.buf, '\n')
	}
	_, err := l.out.Write(l.buf)
	return err
}

// Printf prints the message like fmt.Printf. The message will be
// suppressed if Lnoprint is set.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.Output(2, Lnoprint, fmt.Sprintf(format, v...))
}

// Print prints the message like fmt.Print. The message will be
// suppressed if Lnoprint is set.
func (l *Logger) Print(v ...interface{}) {
	l.Output(2, Lnoprint, fmt.Sprint(v...))
}

// Println prints the message like fmt.Println. The message will be
// suppressed if Lnoprint is set.
func (l *Logger) Println(v ...interface{}) {
	l.Output(2, Lnoprint, fmt.Sprintln(v...))
}

// Fatal prints the message like fmt.Print and calls os.Exit(1). The
// printing might be suppressed by the flag Lnofatal.
func (l *Logger) Fatal(v ...interface{}) {
	l.Output(2, Lnofatal, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the message like fmt.Printf and calls os.Exit(1). The
// printing might be suppressed by the flag Lnofatal.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.Output(2, Lnofatal, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Fatalln prints the message like fmt.Println and calls os.Exit(1). The
// printing might be suppressed by the flag Lnofatal.
func (l *Logger) Fatalln(v ...interface{}) {
	l.Output(2, Lnofatal, fmt.Sprintln(v...))
	os.Exit(1)
}

// Panic prints the message like fmt.Print and calls panic. The printing
// might be suppressed by the flag Lnopanic.
func (l *Logger) Panic(v ...interface{}) {
	s := fmt.Sprint(v...)
	l.Output(2, Lnopanic, s)
	panic(s)
}

// Panicf prints the message like fmt.Printf and calls panic. The
// printing might be suppressed by the flag Lnopanic.
func (l *Logger) Panicf(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	l.Output(2, Lnopanic, s)
	panic(s)
}

// Warn prints the message like fmt.Print. The printing might be
// suppressed by the flag Lnowarn.
func (l *Logger) Warn(v ...interface{}) {
	l.Output(2, Lnowarn, fmt.Sprint(v...))
}

// Warnf prints the message like fmt.Printf. The printing might be
// suppressed by the flag Lnowarn.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.Output(2, Lnowarn, fmt.Sprintf(format, v...))
}

// Warnln prints the message like fmt.Println. The printing might be
// suppressed by the flag Lnowarn.
func (l *Logger) Warnln(v ...interface{}) {
	l.Output(2, Lnowarn, fmt.Sprintln(v...))
}

// Debug prints the message like fmt.Print. Debug messages are
// suppressed by default; the flag Lnodebug must be cleared.
func (l *Logger) Debug(v ...interface{}) {
	l.Output(2, Lnodebug, fmt.Sprint(v...))
}

// Debugf prints the message like fmt.Printf. Debug messages are
// suppressed by default; the flag Lnodebug must be cleared.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.Output(2, Lnodebug, fmt.Sprintf(format, v...))
}

// Flags returns the current flags used by the logger.
func (l *Logger) Flags() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flag
}

// SetFlags sets the flags of the logger.
func (l *Logger) SetFlags(flag int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flag = flag
}

// Prefix returns the prefix used by the logger.
func (l *Logger) Prefix() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prefix
}

// SetPrefix sets the prefix used by the logger.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

// SetOutput sets the output of the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetOutput sets the output for the standard logger.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetFlags sets the flags for the standard logger.
func SetFlags(flag int) { std.SetFlags(flag) }

// Flags returns the flags of the standard logger.
func Flags() int { return std.Flags() }

// SetPrefix sets the prefix for the standard logger.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// Prefix returns the prefix of the standard logger.
func Prefix() string { return std.Prefix() }

// Print prints the message like fmt.Print using the standard logger.
func Print(v ...interface{}) {
	std.Output(2, Lnoprint, fmt.Sprint(v...))
}

// Warn prints the message like fmt.Print using the standard logger.
func Warn(v ...interface{}) {
	std.Output(2, Lnowarn, fmt.Sprint(v...))
}

// Warnf prints the message like fmt.Printf using the standard logger.
func Warnf(format string, v ...interface{}) {
	std.Output(2, Lnowarn, fmt.Sprintf(format, v...))
}

// Debugf prints the message like fmt.Printf using the standard logger.
func Debugf(format string, v ...interface{}) {
	std.Output(2, Lnodebug, fmt.Sprintf(format, v...))
}

// Fatal prints the message like fmt.Print using the standard logger
// and calls os.Exit(1).
func Fatal(v ...interface{}) {
	std.Output(2, Lnofatal, fmt.Sprint(v...))
	os.Exit(1)
}

// Fatalf prints the message like fmt.Printf using the standard logger
// and calls os.Exit(1).
func Fatalf(format string, v ...interface{}) {
	std.Output(2, Lnofatal, fmt.Sprintf(format, v...))
	os.Exit(1)
}

// Panicf prints the message like fmt.Printf using the standard logger
// and calls panic.
func Panicf(format string, v ...interface{}) {
	s := fmt.Sprintf(format, v...)
	std.Output(2, Lnopanic, s)
	panic(s)
}

// Outputer is implemented by *log.Logger of the standard library.
// Packages may hold a nil Outputer to disable debug output.
type Outputer interface {
	Output(calldepth int, s string) error
}

// Printf writes the formatted message to o. Nothing happens if o is
// nil.
func Printf(o Outputer, format string, v ...interface{}) {
	if o != nil {
		o.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println writes the message to o and adds a newline. Nothing happens
// if o is nil.
func Println(o Outputer, v ...interface{}) {
	if o != nil {
		o.Output(2, fmt.Sprintln(v...))
	}
}
