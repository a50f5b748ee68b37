// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cm implements the context models of the fpaq compressors.
//
// A Predictor estimates the probability that the next bit is 1 as a
// 12-bit integer. All arithmetic is integer arithmetic, so that the
// compressor and the decompressor compute exactly the same predictions
// for the same bit sequence. The building blocks are the logistic
// functions Squash and Stretch, the bit-history state machine, the
// StateMap and the adaptive probability map APM.
//
// The models are derived from fpaq0 and fpaq0f by Matt Mahoney.
package cm
