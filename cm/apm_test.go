package cm

import (
	"math/rand"
	"testing"
)

func TestNewAPM(t *testing.T) {
	a := NewAPM(3)
	if n := a.Contexts(); n != 3 {
		t.Fatalf("Contexts() = %d; want %d", n, 3)
	}
	for c := 0; c < 3; c++ {
		for j := 0; j < apmBins; j++ {
			want := uint16(Squash((j-16)*128) * 16)
			if b := a.bins[c*apmBins+j]; b != want {
				t.Fatalf("bin[%d][%d] = %d; want %d", c, j, b, want)
			}
		}
	}
	if a.bins[0] != 0 || a.bins[apmBins-1] != 4095*16 {
		t.Fatalf("outer bins %d and %d", a.bins[0], a.bins[apmBins-1])
	}
}

func TestAPMIdentity(t *testing.T) {
	for pr := 0; pr < 4096; pr += 7 {
		a := NewAPM(2)
		q := a.Refine(0, pr, 1, apmRate)
		if !(pr-8 <= q && q <= pr+8) {
			t.Fatalf("Refine(0, %d, 1, %d) = %d", pr, apmRate, q)
		}
	}
}

func TestAPMAdaptation(t *testing.T) {
	for bit := 0; bit < 2; bit++ {
		a := NewAPM(4)
		q := a.Refine(0, 2048, 3, apmRate)
		for i := 0; i < 2000; i++ {
			p := a.Refine(bit, 2048, 3, apmRate)
			if !(0 <= p && p < 4096) {
				t.Fatalf("Refine = %d; out of range", p)
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
	}
}

func TestAPMRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	a := NewAPM(16)
	bit := 0
	for i := 0; i < 100000; i++ {
		pr := r.Intn(4096)
		rate := uint(1 + r.Intn(9))
		p := a.Refine(bit, pr, r.Intn(16), rate)
		if !(0 <= p && p < 4096) {
			t.Fatalf("Refine = %d; out of range", p)
		}
		bit = r.Intn(2)
	}
}

func TestAPMPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"contexts", func() { NewAPM(0) }},
		{"probability", func() { NewAPM(1).Refine(0, 4096, 0, 7) }},
		{"context", func() { NewAPM(1).Refine(0, 0, 1, 7) }},
		{"rate", func() { NewAPM(1).Refine(0, 0, 0, 0) }},
		{"bit", func() { NewAPM(1).Refine(2, 0, 0, 7) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("no panic")
				}
			}()
			tc.f()
		})
	}
}
