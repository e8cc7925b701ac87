package graph_test

import (
	"math"
	"sort"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"

	"github.com/mangara/graphcore/graph"
)

func TestClockwiseAngle(t *testing.T) {
	o := geom.Coord{}
	cases := []struct {
		name string
		p    geom.Coord
		want float64
	}{
		{"Up", geom.Coord{X: 0, Y: 1}, 0},
		{"Right", geom.Coord{X: 1, Y: 0}, math.Pi / 2},
		{"Down", geom.Coord{X: 0, Y: -1}, math.Pi},
		{"Left", geom.Coord{X: -1, Y: 0}, -math.Pi / 2},
		{"UpRight", geom.Coord{X: 2, Y: 2}, math.Pi / 4},
		{"DownLeft", geom.Coord{X: -3, Y: -3}, -3 * math.Pi / 4},
		{"Coincident", geom.Coord{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, graph.ClockwiseAngle(o, tc.p), 1e-12)
		})
	}
}

// TestClockwiseAngle_Order checks that sorting by angle walks clockwise.
func TestClockwiseAngle_Order(t *testing.T) {
	center := geom.Coord{X: 10, Y: 10}
	pts := []geom.Coord{
		{X: 10, Y: 11}, // N
		{X: 9, Y: 10},  // W
		{X: 11, Y: 10}, // E
		{X: 10, Y: 9},  // S
		{X: 9, Y: 9},   // SW
		{X: 11, Y: 11}, // NE
	}
	sort.SliceStable(pts, func(i, j int) bool {
		return graph.ClockwiseAngle(center, pts[i]) < graph.ClockwiseAngle(center, pts[j])
	})
	want := []geom.Coord{
		{X: 9, Y: 9},   // SW
		{X: 9, Y: 10},  // W
		{X: 10, Y: 11}, // N
		{X: 11, Y: 11}, // NE
		{X: 11, Y: 10}, // E
		{X: 10, Y: 9},  // S
	}
	assert.Equal(t, want, pts)
}

func TestCompareXY(t *testing.T) {
	assert.Equal(t, -1, graph.CompareXY(geom.Coord{X: 0, Y: 5}, geom.Coord{X: 1, Y: 0}))
	assert.Equal(t, 1, graph.CompareXY(geom.Coord{X: 1, Y: 2}, geom.Coord{X: 1, Y: 1}))
	assert.Equal(t, 0, graph.CompareXY(geom.Coord{X: 3, Y: 3}, geom.Coord{X: 3, Y: 3}))
}

func TestSegmentsIntersect(t *testing.T) {
	c := func(x, y float64) geom.Coord { return geom.Coord{X: x, Y: y} }
	cases := []struct {
		name           string
		p1, p2, q1, q2 geom.Coord
		want           bool
	}{
		{"Cross", c(0, 0), c(2, 2), c(0, 2), c(2, 0), true},
		{"Disjoint", c(0, 0), c(1, 0), c(0, 1), c(1, 1), false},
		{"TouchEndpoint", c(0, 0), c(1, 1), c(1, 1), c(2, 0), true},
		{"TouchInterior", c(0, 0), c(2, 0), c(1, 0), c(1, 5), true},
		{"CollinearOverlap", c(0, 0), c(2, 0), c(1, 0), c(3, 0), true},
		{"CollinearApart", c(0, 0), c(1, 0), c(2, 0), c(3, 0), false},
		{"NearMiss", c(0, 0), c(1, 1), c(1, 0), c(2, -1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, graph.SegmentsIntersect(tc.p1, tc.p2, tc.q1, tc.q2))
			assert.Equal(t, tc.want, graph.SegmentsIntersect(tc.q1, tc.q2, tc.p1, tc.p2), "symmetric")
		})
	}
}
