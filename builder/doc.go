// Package builder provides deterministic generators for plane straight-line
// drawings used as fixtures, benchmarks and CLI input.
//
// What:
//
//   - Grid(size): size×size lattice, the usual benchmark input.
//   - ConvexPolygon(n): n points on a circle joined as a cycle.
//   - TriangulatedPolygon(n): ConvexPolygon(n) plus a fan of n-3 chords.
//   - Wheel(n): convex (n-1)-gon rim plus a hub at the center.
//   - RandomTriangulation(n, triangularOuterFace): maximal plane graph on
//     random points, optionally inside a fixed enclosing triangle.
//
// Composition:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7)},
//	    builder.Wheel(8),
//	    builder.RandomTriangulation(20, false),
//	)
//
// Every constructor appends after the vertices already in g, so the
// composed drawing may contain crossings between parts; each part alone is
// always crossing-free.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomTriangulation (required there).
//   - WithCenter, WithRadius: placement of polygons and wheels.
//   - WithSpacing: grid step.
//
// Errors:
//
//   - ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed.
package builder
