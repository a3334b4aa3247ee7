package euler_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eulerwalk/euler"
	"github.com/katalvlaran/eulerwalk/incidence"
	"github.com/katalvlaran/eulerwalk/samples"
)

// BenchmarkSearch_TwoOddVertices measures full enumeration of the nine-edge
// sample (32 trails, 602 steps per run).
func BenchmarkSearch_TwoOddVertices(b *testing.B) {
	g := samples.TwoOddVertices()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = euler.Search(g, euler.AnyPath)
	}
}

// BenchmarkSearch_Ring measures a ring of n vertices: 2n circuits and
// exactly one branch point per start, so cost is linear in n per start.
func BenchmarkSearch_Ring(b *testing.B) {
	for _, n := range []int{8, 64, 256} {
		g := ring(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = euler.Search(g, euler.Circuit)
			}
		})
	}
}

// ring builds v0 -e0- v1 -e1- ... v(n-1) -e(n-1)- v0.
func ring(n int) *incidence.Graph {
	b := incidence.NewBuilder()
	for i := 0; i < n; i++ {
		prev := (i + n - 1) % n
		b.Add(fmt.Sprintf("v%d", i), fmt.Sprintf("e%d", prev), fmt.Sprintf("e%d", i))
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}
