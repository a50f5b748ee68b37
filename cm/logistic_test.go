package cm

import "testing"

func TestSquash(t *testing.T) {
	tests := []struct{ d, p int }{
		{-5000, 0},
		{-2048, 0},
		{-2047, 1},
		{0, 2047},
		{2047, 4094},
		{2048, 4095},
		{5000, 4095},
	}
	for _, tc := range tests {
		if p := Squash(tc.d); p != tc.p {
			t.Errorf("Squash(%d) = %d; want %d", tc.d, p, tc.p)
		}
	}
	// Squash(-2048) saturates to 0 instead of returning squashTable[0].
	for j := 1; j < 32; j++ {
		d := (j - 16) * 128
		if p := Squash(d); p != squashTable[j] {
			t.Errorf("Squash(%d) = %d; want %d", d, p, squashTable[j])
		}
	}
	q := Squash(-2048)
	for d := -2047; d <= 2048; d++ {
		p := Squash(d)
		if p < q {
			t.Fatalf("Squash(%d) = %d; less than Squash(%d) = %d",
				d, p, d-1, q)
		}
		q = p
	}
}

func TestStretch(t *testing.T) {
	if s := Stretch(0); s != -2047 {
		t.Errorf("Stretch(0) = %d; want %d", s, -2047)
	}
	if s := Stretch(4095); s != 2047 {
		t.Errorf("Stretch(4095) = %d; want %d", s, 2047)
	}
	if s := Stretch(2048); s != 1 {
		t.Errorf("Stretch(2048) = %d; want %d", s, 1)
	}
	r := Stretch(0)
	for p := 0; p < 4096; p++ {
		s := Stretch(p)
		if !(-2047 <= s && s <= 2047) {
			t.Fatalf("Stretch(%d) = %d; out of range", p, s)
		}
		if s < r {
			t.Fatalf("Stretch(%d) = %d; less than Stretch(%d) = %d",
				p, s, p-1, r)
		}
		r = s
		if p == 4095 {
			break
		}
		q := Squash(s)
		if !(p <= q && q <= p+4) {
			t.Fatalf("Squash(Stretch(%d)) = %d; want value in [%d,%d]",
				p, q, p, p+4)
		}
	}
}

func TestStretchPanics(t *testing.T) {
	for _, p := range []int{-1, 4096} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Stretch(%d) didn't panic", p)
				}
			}()
			Stretch(p)
		}()
	}
}
