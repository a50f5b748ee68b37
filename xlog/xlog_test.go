// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLoggerFlags(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test: ", Lnodebug)
	l.Print("print")
	l.Debug("debug")
	l.Warnf("warn %d", 1)
	if s := buf.String(); s != "test: print\ntest: warn 1\n" {
		t.Fatalf("output %q", s)
	}

	buf.Reset()
	l.SetFlags(Lnoprint | Lnowarn | Lnoprefix)
	l.Print("print")
	l.Warn("warn")
	l.Debugf("debug %s", "on")
	if s := buf.String(); s != "debug on\n" {
		t.Fatalf("output %q", s)
	}
	if f := l.Flags(); f != Lnoprint|Lnowarn|Lnoprefix {
		t.Fatalf("Flags() = %#x", f)
	}
}

func TestLoggerShortfile(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", Lshortfile)
	l.Println("x")
	if s := buf.String(); !strings.HasPrefix(s, "xlog_test.go:") {
		t.Fatalf("output %q", s)
	}
}

func TestLoggerPanic(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", Lnopanic)
	defer func() {
		if r := recover(); r != "boom 1" {
			t.Fatalf("recovered %v; want %q", r, "boom 1")
		}
		if buf.Len() != 0 {
			t.Fatalf("output %q", buf.String())
		}
	}()
	l.Panicf("boom %d", 1)
}

func TestOutputer(t *testing.T) {
	Printf(nil, "nothing %d", 1)
	Println(nil, "nothing")

	var buf bytes.Buffer
	Printf(log.New(&buf, "std ", 0), "value %d", 2)
	Println(log.New(&buf, "x ", 0), "line")
	if s := buf.String(); s != "std value 2\nx line\n" {
		t.Fatalf("output %q", s)
	}
}
