package planner

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/pathplan/internal/geom"
)

// Curvature tier constants. Normalized curvature (κ/κmax) routes each dense
/// curve point into one of three spacing tiers: essentially straight stretches
// take very long strides, mild bends take long strides, and sharp bends take
// a stride that shrinks in proportion to the curvature.
const (
	// flatCurvature is the normalized curvature below which a point counts
	// as lying on an essentially straight stretch.
	flatCurvature = 0.01

	// straightStrideFactor multiplies the base spacing on straight stretches.
	straightStrideFactor = 4.0

	// mildStrideFactor multiplies the base spacing on mild bends.
	mildStrideFactor = 3.0

	// sharpStrideBase is the constant in the sharp-bend stride formula
	// max(0, sharpStrideBase − κnorm) × spacing: the stride tightens toward
	// half the base spacing as curvature approaches its maximum.
	sharpStrideBase = 1.5

	// straightTau and curvedTau are the curvature-significance thresholds
	// (fractions of κmax) that mark the sharp tier. A predominantly straight
	// path uses the stricter bar: a point must carry roughly the top 40% of
	// local curvature before it is treated as a genuine bend. A genuinely
	// curved path uses the permissive bar since curvature is spread
	// throughout.
	straightTau = 0.6
	curvedTau   = 0.3

	// negligibleCurvature is the absolute κ floor below which the whole
	// profile is treated as flat. Collinear input leaves only rounding noise
	// in the profile; normalizing by a noise-scale maximum would route
	// points into arbitrary tiers.
	negligibleCurvature = 1e-9
)

// Selector walks a smoothed dense curve and picks a sparse subset of points
// using curvature-adaptive spacing. Classifying the whole path first and
// tiering per point second lets the same rule aggressively collapse
// near-straight paths while still densely resolving genuine bends wherever
// they occur; a single global threshold cannot serve both cases.
type Selector struct {
	// MinSpacing is the base arc-length gap between selected points, in the
	// units of the curve handed to Select.
	MinSpacing float64
}

// NewSelector returns a selector with the given base spacing.
func NewSelector(minSpacing float64) *Selector {
	return &Selector{MinSpacing: minSpacing}
}

// Select returns the curvature-adaptively spaced subset of curve. The first
// and last curve points are always included; every other point is selected
// once the accumulated arc length since the previous selection reaches the
// tier stride for its normalized curvature. The caller caps and pads the
// result to the fixed output count.
//
// curvature must be the profile of curve (same length). A shorter or longer
// profile is treated as all-zero curvature rather than an error.
func (s *Selector) Select(curve []geom.Point, curvature []float64) []geom.Point {
	if len(curve) == 0 {
		return nil
	}
	if len(curve) == 1 {
		return []geom.Point{curve[0]}
	}
	if len(curvature) != len(curve) {
		curvature = make([]float64, len(curve))
	}

	kmax := 0.0
	for _, k := range curvature {
		if k > kmax {
			kmax = k
		}
	}
	if kmax < negligibleCurvature {
		kmax = 0
	}
	tau := s.significanceThreshold(curvature, kmax)

	selected := make([]geom.Point, 0, 32)
	selected = append(selected, curve[0])
	sinceLast := 0.0

	for i := 1; i < len(curve)-1; i++ {
		sinceLast += geom.Dist(curve[i-1], curve[i])

		knorm := 0.0
		if kmax > 0 {
			knorm = curvature[i] / kmax
		}

		var stride float64
		switch {
		case knorm < flatCurvature:
			stride = s.MinSpacing * straightStrideFactor
		case knorm < tau:
			stride = s.MinSpacing * mildStrideFactor
		default:
			factor := sharpStrideBase - knorm
			if factor < 0 {
				factor = 0
			}
			stride = s.MinSpacing * factor
		}

		if sinceLast >= stride {
			selected = append(selected, curve[i])
			sinceLast = 0
		}
	}

	// The final point is force-selected so the output ends exactly at the
	// target endpoint, whatever the spacing rule says.
	selected = append(selected, curve[len(curve)-1])
	return selected
}

// significanceThreshold classifies the path as predominantly straight or
// genuinely curved and returns the matching sharp-tier threshold. The path
// counts as predominantly straight when the 75th-percentile curvature sits
// below half the maximum. Known sensitivity: anchoring on the maximum makes
// the classification reactive to a single curvature outlier; the behaviour
// is kept for compatibility with the established tuning.
func (s *Selector) significanceThreshold(curvature []float64, kmax float64) float64 {
	if kmax <= 0 {
		return straightTau
	}
	sorted := make([]float64, len(curvature))
	copy(sorted, curvature)
	sort.Float64s(sorted)
	k75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)

	if k75 < 0.5*kmax {
		return straightTau
	}
	return curvedTau
}
