// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fpaq supports the compression and decompression of byte
// streams with the fpaq context-mixing compressors.
//
// Each byte is coded as a continuation bit 1 followed by its eight bits,
// most significant bit first. A single 0 bit terminates the stream.
// Every bit is coded by a carryless arithmetic coder using the
// prediction of a context model from package cm. The compressed stream
// has neither a header nor a footer; the reader must be configured with
// the method the writer used.
//
// The compressed format cannot be used for random access and the
// decompressor detects truncation only if the stream ends early enough
// for the decoder to run out of bytes.
package fpaq
