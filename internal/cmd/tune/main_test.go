package main

import (
	"math"
	"testing"
	"time"
)

func TestMetrics(t *testing.T) {
	r := testing.BenchmarkResult{
		N:     2,
		T:     time.Second,
		Bytes: 1e6,
		Extra: map[string]float64{"c/u": 0.25},
	}
	if v := mbPerSec(r); v != 2 {
		t.Errorf("mbPerSec = %g; want %g", v, 2.0)
	}
	if v := ratio(r); v != 0.25 {
		t.Errorf("ratio = %g; want %g", v, 0.25)
	}
	if v := ratio(testing.BenchmarkResult{}); !math.IsNaN(v) {
		t.Errorf("ratio of empty result = %g; want NaN", v)
	}
	if v := mbPerSec(testing.BenchmarkResult{}); v != 0 {
		t.Errorf("mbPerSec of empty result = %g; want 0", v)
	}
}
