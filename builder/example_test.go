package builder_test

import (
	"fmt"

	"github.com/mangara/graphcore/builder"
)

// ExampleWheel builds W₆: a pentagon rim plus a hub joined to every rim vertex.
func ExampleWheel() {
	g, err := builder.Build(builder.Wheel(6), builder.WithCenter(0, 0), builder.WithRadius(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	hub := g.VertexCount() - 1
	deg, _ := g.Degree(hub)
	fmt.Printf("V=%d E=%d hubDegree=%d\n", g.VertexCount(), g.EdgeCount(), deg)
	// Output:
	// V=6 E=10 hubDegree=5
}

// ExampleBuildGraph composes two constructors into one drawing.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSpacing(2)},
		builder.Grid(3),
		builder.ConvexPolygon(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("V=%d E=%d\n", g.VertexCount(), g.EdgeCount())
	// Output:
	// V=13 E=16
}
