// SPDX-License-Identifier: MIT
// Package: graphcore/dcel
//
// verify.go — structural self-check. Diagnostic only; Build never calls it.

package dcel

// Verify checks every structural invariant of the embedding and returns the
// first violation as an *InvariantError (matching ErrInvariant), or nil.
//
// Order of checks: dart links, face boundaries, vertex rotations.
// Every walk is bounded by the dart count.
// Complexity: O(n + m).
func (em *Embedding) Verify() error {
	if err := em.verifyDarts(); err != nil {
		return err
	}
	if err := em.verifyFaces(); err != nil {
		return err
	}

	return em.verifyVertices()
}

func (em *Embedding) violation(kind InvariantKind, d DartID, v VertexID, f FaceID) error {
	return &InvariantError{Kind: kind, Dart: d, Vertex: v, Face: f}
}

func (em *Embedding) validDart(d DartID) bool { return d >= 0 && int(d) < len(em.darts) }

func (em *Embedding) verifyDarts() error {
	for i, rec := range em.darts {
		d := DartID(i)
		if !em.validDart(rec.twin) || !em.validDart(rec.next) || !em.validDart(rec.prev) ||
			rec.origin < 0 || int(rec.origin) >= len(em.vertices) ||
			rec.face < 0 || int(rec.face) >= len(em.faces) {
			return em.violation(KindHandleRange, d, rec.origin, rec.face)
		}
	}
	for i, rec := range em.darts {
		d := DartID(i)
		switch {
		case rec.twin == d:
			return em.violation(KindTwinSelf, d, rec.origin, rec.face)
		case em.darts[rec.twin].twin != d:
			return em.violation(KindTwinInvolute, d, rec.origin, rec.face)
		case rec.next == d:
			return em.violation(KindNextSelf, d, rec.origin, rec.face)
		case rec.prev == d:
			return em.violation(KindPrevSelf, d, rec.origin, rec.face)
		case em.darts[rec.prev].next != d:
			return em.violation(KindNextPrev, d, rec.origin, rec.face)
		case em.darts[rec.next].prev != d:
			return em.violation(KindPrevNext, d, rec.origin, rec.face)
		case em.darts[rec.next].origin != em.darts[rec.twin].origin:
			return em.violation(KindNextOrigin, d, rec.origin, rec.face)
		}
	}

	return nil
}

func (em *Embedding) verifyFaces() error {
	covered := make([]bool, len(em.darts))
	for i, fc := range em.faces {
		f := FaceID(i)
		if !em.validDart(fc.dart) {
			return em.violation(KindHandleRange, fc.dart, -1, f)
		}
		d, closed := fc.dart, false
		for steps := 0; steps < len(em.darts); steps++ {
			if em.darts[d].face != f {
				return em.violation(KindFaceOwner, d, em.darts[d].origin, f)
			}
			covered[d] = true
			d = em.darts[d].next
			if d == fc.dart {
				closed = true
				break
			}
		}
		if !closed {
			return em.violation(KindFaceCycle, fc.dart, -1, f)
		}
	}
	for i, ok := range covered {
		if !ok {
			d := DartID(i)
			return em.violation(KindFaceCover, d, em.darts[d].origin, em.darts[d].face)
		}
	}

	return nil
}

func (em *Embedding) verifyVertices() error {
	out := make([]int, len(em.vertices))
	for _, rec := range em.darts {
		out[rec.origin]++
	}
	for i, vx := range em.vertices {
		v := VertexID(i)
		if vx.dart == NoDart {
			if out[v] > 0 {
				return em.violation(KindVertexCover, NoDart, v, NoFace)
			}
			continue
		}
		if !em.validDart(vx.dart) {
			return em.violation(KindHandleRange, vx.dart, v, NoFace)
		}
		if em.darts[vx.dart].origin != v {
			return em.violation(KindVertexDart, vx.dart, v, NoFace)
		}
		d, n, closed := vx.dart, 0, false
		for n < len(em.darts) {
			if em.darts[d].origin != v {
				return em.violation(KindVertexDart, d, v, NoFace)
			}
			n++
			d = em.darts[em.darts[d].twin].next
			if d == vx.dart {
				closed = true
				break
			}
		}
		if !closed {
			return em.violation(KindVertexCycle, vx.dart, v, NoFace)
		}
		// A closed walk visits distinct darts, so matching counts means
		// every dart leaving v is on the cycle.
		if n != out[v] {
			return em.violation(KindVertexCover, vx.dart, v, NoFace)
		}
	}

	return nil
}
