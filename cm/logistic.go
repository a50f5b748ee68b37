// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cm

// squashTable samples the logistic function at 33 points between -2048
// and 2048 in steps of 128.
var squashTable = [33]int{
	1, 2, 3, 6, 10, 16, 27, 45, 73, 120, 194, 310, 488, 747, 1101,
	1546, 2047, 2549, 2994, 3348, 3607, 3785, 3901, 3975, 4022,
	4050, 4068, 4079, 4085, 4089, 4092, 4093, 4094}

// Squash maps a stretched value d to a 12-bit probability. It computes
// 4096/(1+exp(-d/256)) by interpolation of squashTable. Values outside of
// [-2047,2047] saturate.
func Squash(d int) int {
	if d > 2047 {
		return 4095
	}
	if d < -2047 {
		return 0
	}
	w := d & 127
	d = (d >> 7) + 16
	return (squashTable[d]*(128-w) + squashTable[d+1]*w + 64) >> 7
}

// stretchTable is the inverse of Squash.
var stretchTable = makeStretchTable()

func makeStretchTable() (t [4096]int16) {
	pi := 0
	for x := -2047; x <= 2047; x++ {
		i := Squash(x)
		for j := pi; j <= i; j++ {
			t[j] = int16(x)
		}
		pi = i + 1
	}
	t[4095] = 2047
	return t
}

// Stretch returns ln(p/(1-p)) scaled to the range [-2047,2047]. The
// probability p must be in the range [0,4096).
func Stretch(p int) int {
	if !(0 <= p && p < 4096) {
		panic("cm: probability out of range")
	}
	return int(stretchTable[p])
}
