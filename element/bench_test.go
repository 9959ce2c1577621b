// Package element_test provides benchmarks for Redefine over every kind,
// using deterministic random operands.
package element_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/semigroups/element"
)

// benchSizes are the degrees to benchmark; matrices stop at 32 (cubic products).
var benchSizes = []int{8, 32, 128}

// sink to defeat dead-code elimination
var sinkE element.Element

func BenchmarkRedefine(b *testing.B) {
	for _, fam := range families(b) {
		for _, n := range benchSizes {
			if fam.kind.IsMatrix() && n > 32 {
				continue
			}
			b.Run(fmt.Sprintf("%s/n=%d", fam.name, n), func(b *testing.B) {
				b.ReportAllocs()
				s := newSampler(int64(n))
				x, y := fam.sample(b, s, n), fam.sample(b, s, n)
				dst := x.Identity()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					dst.Redefine(x, y)
				}
				sinkE = dst
			})
		}
	}
}

func BenchmarkCopy(b *testing.B) {
	s := newSampler(7)
	for _, fam := range families(b) {
		x := fam.sample(b, s, 16)
		b.Run(fam.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkE = x.Copy(1)
			}
		})
	}
}
