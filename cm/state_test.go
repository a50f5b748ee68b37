package cm

import "testing"

func TestNextState(t *testing.T) {
	tests := []struct {
		s    uint8
		bit  int
		next uint8
	}{
		{0, 0, 1},
		{0, 1, 2},
		{252, 0, 140},
		{252, 1, 252},
		{253, 0, 0},
		{255, 1, 0},
	}
	for _, tc := range tests {
		if n := NextState(tc.s, tc.bit); n != tc.next {
			t.Errorf("NextState(%d, %d) = %d; want %d",
				tc.s, tc.bit, n, tc.next)
		}
	}
}

func TestStateReachability(t *testing.T) {
	var reached [256]bool
	reached[0] = true
	queue := []uint8{0}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for bit := 0; bit < 2; bit++ {
			n := NextState(s, bit)
			if !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	for s := 253; s < 256; s++ {
		if reached[s] {
			t.Errorf("state %d is reachable", s)
		}
	}
	if !reached[252] {
		t.Errorf("state 252 is not reachable")
	}
}

func TestNextStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NextState(0, 2) didn't panic")
		}
	}()
	NextState(0, 2)
}
