// Package planner turns a noisy user-drawn polyline into a fixed-size
// sequence of arena-space waypoints. The pipeline is pure and stateless
// between calls: validate and orient the drawn path, smooth and densify it,
// estimate curvature, select waypoints with curvature-adaptive spacing, then
// map the result into arena units.
package planner

import (
	"fmt"

	"github.com/banshee-data/pathplan/internal/geom"
)

// Endpoints is the pair of target positions a drawn path must connect, in
// surface units, owned by a single robot.
type Endpoints struct {
	Owner string // display name used in validation messages
	Start geom.Point
	End   geom.Point
}

// ValidationResult reports whether a drawn path is usable and, when it is,
// whether it was drawn backwards (end to start).
type ValidationResult struct {
	Accepted            bool
	Reason              string
	OrientationReversed bool
}

// Validator checks drawn paths against a robot's target endpoints and
// canonicalizes their direction. It performs no shape or smoothness checks:
// self-intersections and local reversals in free-hand input are accepted on
// purpose, because shape rejection produced unacceptable false positives
// against real drawings. The smoothing stage absorbs that noise instead.
type Validator struct {
	// Tolerance is the maximum distance (surface pixels) between a path
	// endpoint and its target position.
	Tolerance float64

	// MinPathLength is the minimum acceptable total drawn length (surface pixels).
	MinPathLength float64
}

// NewValidator returns a validator with the given endpoint tolerance and
// minimum path length, both in surface pixels.
func NewValidator(tolerance, minPathLength float64) *Validator {
	return &Validator{Tolerance: tolerance, MinPathLength: minPathLength}
}

// Validate checks that path connects ep.Start and ep.End (in either
// direction, within tolerance) and is at least MinPathLength long.
// OrientationReversed is set when only the backwards direction matches, or
// when both match and the first point is strictly closer to the end target.
func (v *Validator) Validate(path []geom.Point, ep Endpoints) ValidationResult {
	if len(path) < 2 {
		return ValidationResult{
			Accepted: false,
			Reason:   fmt.Sprintf("%s: no path drawn", ep.Owner),
		}
	}

	first := path[0]
	last := path[len(path)-1]

	firstToStart := geom.Dist(first, ep.Start)
	firstToEnd := geom.Dist(first, ep.End)
	lastToStart := geom.Dist(last, ep.Start)
	lastToEnd := geom.Dist(last, ep.End)

	forwardValid := firstToStart <= v.Tolerance && lastToEnd <= v.Tolerance
	reverseValid := firstToEnd <= v.Tolerance && lastToStart <= v.Tolerance

	if !forwardValid && !reverseValid {
		return ValidationResult{
			Accepted: false,
			Reason: fmt.Sprintf(
				"%s: path must connect start (%.0f, %.0f) to end (%.0f, %.0f); drawn path runs (%.0f, %.0f) to (%.0f, %.0f)",
				ep.Owner, ep.Start.X, ep.Start.Y, ep.End.X, ep.End.Y,
				first.X, first.Y, last.X, last.Y),
		}
	}

	length := geom.PathLength(path)
	if length < v.MinPathLength {
		return ValidationResult{
			Accepted: false,
			Reason: fmt.Sprintf("%s: path too short (%.1fpx, need %.1fpx)",
				ep.Owner, length, v.MinPathLength),
		}
	}

	reversed := reverseValid && (!forwardValid || firstToEnd < firstToStart)
	reason := fmt.Sprintf("%s: path is valid", ep.Owner)
	if reversed {
		reason += " (auto-reversed)"
	}
	return ValidationResult{
		Accepted:            true,
		Reason:              reason,
		OrientationReversed: reversed,
	}
}

// Normalize returns a copy of path oriented to run ep.Start -> ep.End,
// reversing the point order when the path was drawn backwards. It assumes
// path already passed Validate and never rejects; the input slice is left
// untouched so callers can keep showing the original drawing.
func (v *Validator) Normalize(path []geom.Point, ep Endpoints) []geom.Point {
	if len(path) < 2 {
		out := make([]geom.Point, len(path))
		copy(out, path)
		return out
	}

	firstToStart := geom.Dist(path[0], ep.Start)
	firstToEnd := geom.Dist(path[0], ep.End)
	if firstToEnd < firstToStart {
		return geom.Reversed(path)
	}
	out := make([]geom.Point, len(path))
	copy(out, path)
	return out
}
