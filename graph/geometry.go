// SPDX-License-Identifier: MIT
// Package: graphcore/graph
//
// geometry.go — pure coordinate predicates shared by the embedding and the
// generators. None of these functions capture state; all are safe to call
// from comparators passed to stable sorts.

package graph

import (
	"math"

	"github.com/jbeda/geom"
)

// ClockwiseAngle returns the angle of the direction center→p measured
// clockwise from the positive y-axis, in [−π, π].
//
// The value is arccos(Δy/|Δ|), negated when Δx < 0. Sorting directions by
// increasing ClockwiseAngle walks around center clockwise, starting just
// after straight down. Straight down itself maps to +π. Coincident points
// map to 0.
func ClockwiseAngle(center, p geom.Coord) float64 {
	dx, dy := p.X-center.X, p.Y-center.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0
	}
	// Clamp against rounding drift outside acos's domain.
	cos := math.Max(-1, math.Min(1, dy/length))
	angle := math.Acos(cos)
	if dx < 0 {
		return -angle
	}

	return angle
}

// CompareXY orders points by x, then by y. It returns -1, 0 or +1.
func CompareXY(a, b geom.Coord) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}

	return 0
}

// SegmentsIntersect reports whether the closed segments p1p2 and q1q2 share
// at least one point, touching and collinear overlap included.
func SegmentsIntersect(p1, p2, q1, q2 geom.Coord) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}

	return false
}

// orientation returns the sign of the cross product (b−a)×(c−a):
// positive for a counter-clockwise turn a→b→c, negative for clockwise.
func orientation(a, b, c geom.Coord) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, known to be collinear with ab, lies within its bounding box.
func onSegment(a, b, c geom.Coord) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}
