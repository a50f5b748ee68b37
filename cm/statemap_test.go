package cm

import "testing"

func TestStateMapInit(t *testing.T) {
	sm := NewStateMap()
	// Every call updates the cell of the previous call, so each context
	// is read before it is updated. Context 0 is updated by the first
	// call and read last.
	for _, cx := range []int{1, 300, smContexts - 1} {
		if p := sm.P(0, cx); p != 2048 {
			t.Errorf("P(0, %d) = %d; want %d", cx, p, 2048)
		}
	}
	if p := sm.P(0, 0); p != 1228 {
		t.Errorf("P(0, 0) after update = %d; want %d", p, 1228)
	}
}

func TestStateMapAdaptation(t *testing.T) {
	for bit := 0; bit < 2; bit++ {
		sm := NewStateMap()
		q := sm.P(0, 5)
		for i := 0; i < 1000; i++ {
			p := sm.P(bit, 5)
			if !(0 <= p && p < 4096) {
				t.Fatalf("P(%d, 5) = %d; out of range", bit, p)
			}
			if bit == 1 && p < q || bit == 0 && p > q {
				t.Fatalf("bit %d: probability moved from %d to %d",
					bit, q, p)
			}
			q = p
		}
		if bit == 1 && q < 4000 || bit == 0 && q > 96 {
			t.Errorf("bit %d: final probability %d", bit, q)
		}
		if n := sm.cells[5] & countMask; n != limit {
			t.Errorf("bit %d: count %d; want %d", bit, n, limit)
		}
	}
}

func TestStateMapUpdateBeforeSwitch(t *testing.T) {
	sm := NewStateMap()
	sm.P(0, 1)
	// The bit is applied to context 1 and not to context 2.
	if p := sm.P(1, 2); p != 2048 {
		t.Fatalf("P(1, 2) = %d; want %d", p, 2048)
	}
	if p := sm.P(0, 1); p <= 2048 {
		t.Fatalf("P(0, 1) = %d; want value larger than %d", p, 2048)
	}
	if p := sm.P(0, 2); p >= 2048 {
		t.Fatalf("P(0, 2) = %d; want value less than %d", p, 2048)
	}
}

func TestStateMapPanics(t *testing.T) {
	sm := NewStateMap()
	for _, cx := range []int{-1, smContexts} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("P(0, %d) didn't panic", cx)
				}
			}()
			sm.P(0, cx)
		}()
	}
}
