package dcel_test

import (
	"testing"

	"github.com/mangara/graphcore/dcel"
)

// BenchmarkBuild measures embedding a fan-triangulated 1000-gon.
func BenchmarkBuild(b *testing.B) {
	g := fanPolygon(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dcel.Build(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVerify measures the self-check on the same embedding.
func BenchmarkVerify(b *testing.B) {
	em, err := dcel.Build(fanPolygon(b, 1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := em.Verify(); err != nil {
			b.Fatal(err)
		}
	}
}
