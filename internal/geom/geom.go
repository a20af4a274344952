// Package geom provides the primitive 2D geometry used by the path planner:
// points, distances, arc-length parameterization and discrete curvature.
// All functions are pure and unit-agnostic; callers state whether coordinates
// are drawing-surface pixels or arena millimetres.
package geom

import "math"

// Point is a location in the 2D plane. The coordinate space (surface pixels
// or arena millimetres) is stated by every function signature that uses it.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PathLength returns the cumulative polyline length of pts.
// Paths with fewer than two points have zero length.
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Dist(pts[i-1], pts[i])
	}
	return total
}

// ChordParameters returns the cumulative chord-length parameterization of pts
// normalized to [0, 1]. The first value is always 0 and the last is 1.
// If the polyline has zero total length the parameters are spread uniformly
// so callers never see a degenerate (all-zero) parameterization.
func ChordParameters(pts []Point) []float64 {
	if len(pts) == 0 {
		return nil
	}
	t := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		t[i] = t[i-1] + Dist(pts[i-1], pts[i])
	}
	total := t[len(t)-1]
	if total <= 0 {
		for i := range t {
			t[i] = float64(i) / math.Max(1, float64(len(t)-1))
		}
		return t
	}
	for i := range t {
		t[i] /= total
	}
	t[len(t)-1] = 1
	return t
}

// LinePoints samples n points evenly along the segment from a to b,
// inclusive of both ends. n must be >= 2 for a meaningful sampling;
// n <= 1 returns a single copy of a.
func LinePoints(a, b Point, n int) []Point {
	if n <= 1 {
		return []Point{a}
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = Point{
			X: a.X + t*(b.X-a.X),
			Y: a.Y + t*(b.Y-a.Y),
		}
	}
	out[n-1] = b
	return out
}

// Reversed returns a new slice with the points of pts in opposite order.
// The input is never mutated.
func Reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
