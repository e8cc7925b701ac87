package orient_test

import (
	"fmt"

	"github.com/mangara/graphcore/builder"
	"github.com/mangara/graphcore/orient"
)

// ExampleOrientGraph orients a wheel whose hub starts with degree 6.
func ExampleOrientGraph() {
	g, err := builder.Build(builder.Wheel(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, res, err := orient.OrientGraph(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	fmt.Println("out-degrees:", orient.OutDegrees(out))
	// Output:
	// order: [0 1 2 3 4 5 6]
	// out-degrees: [3 2 2 2 2 1 0]
}
