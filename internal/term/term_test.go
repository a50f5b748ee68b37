// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"os"
	"testing"
)

func TestIsTerminalFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "term")
	if err != nil {
		t.Fatalf("os.CreateTemp error %s", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Fatalf("IsTerminal(%q) returned true", f.Name())
	}
}
