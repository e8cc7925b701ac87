package orient_test

import (
	"testing"

	"github.com/mangara/graphcore/adjlist"
	"github.com/mangara/graphcore/builder"
	"github.com/mangara/graphcore/orient"
)

// BenchmarkOrient_Grid orients a 100×100 lattice, rebuilding the mutable
// graph outside the timer on each iteration.
func BenchmarkOrient_Grid(b *testing.B) {
	src, err := builder.Build(builder.Grid(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g, _, err := adjlist.FromGraph(src)
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if _, err := orient.Orient(g); err != nil {
			b.Fatal(err)
		}
	}
}
