package main

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/kr/pretty"
	"github.com/ogier/pflag"
	"github.com/ulikunitz/fpaq"
	"github.com/ulikunitz/fpaq/cm"
	"github.com/ulikunitz/fpaq/xlog"
)

var maxSize = pflag.IntP("max-size", "s", 1<<20,
	"maximum number of bytes used per corpus file")

type result struct {
	Method cm.Method
	Ratio  float64
	MBps   float64
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

func main() {
	testing.Init()
	xlog.SetFlags(0)
	xlog.SetPrefix("tune: ")
	pflag.Parse()
	if *maxSize <= 0 {
		xlog.Fatalf("max-size %d must be positive", *maxSize)
	}

	var results []result
	for _, m := range cm.Methods {
		r := testing.Benchmark(writerBenchmark(fpaq.WriterConfig{Method: m}))
		fmt.Printf("%s %s\n", m, r)
		results = append(results, result{
			Method: m,
			Ratio:  ratio(r),
			MBps:   mbPerSec(r),
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Ratio < results[j].Ratio
	})

	fmt.Printf("\n\n### Result ###\n\n")
	for _, r := range results {
		fmt.Printf("%s - \t%.3f c/u\t%.2f MB/s\n", r.Method, r.Ratio,
			r.MBps)
	}
	pretty.Println(results)
}
