package planner

import (
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/pathplan/internal/geom"
	"github.com/banshee-data/pathplan/internal/monitoring"
)

// dedupeEpsilon is the per-axis distance below which consecutive drawn
// points are treated as duplicates. Continuous pointer capture emits runs of
// identical points; without deduplication the chord parameterization degenerates.
const dedupeEpsilon = 0.1

// Smoother fits a smoothing spline through a normalized drawn path and
// resamples it to a fixed, dense point count. Free-hand input carries
// small-scale jitter uncorrelated with the intended geometry; left in place,
// the curvature stage downstream mistakes that jitter for genuine turns and
// over-selects waypoints everywhere. The spline acts as a low-pass filter
// exposing the macroscopic shape.
type Smoother struct {
	// Strength is the permitted sum of squared deviation between the fitted
	// curve and the drawn points. Zero forces exact interpolation.
	Strength float64

	// Degree is the spline degree, reduced when fewer than Degree+1 distinct
	// points survive deduplication.
	Degree int
}

// NewSmoother returns a smoother with the given smoothing strength and
// spline degree (typically cubic).
func NewSmoother(strength float64, degree int) *Smoother {
	if degree < 1 {
		degree = 1
	}
	return &Smoother{Strength: strength, Degree: degree}
}

// Smooth produces a dense curve of exactly outputCount points from path.
// The returned curve's first and last points equal the path's first and last
// points. Degenerate input (fewer than two distinct points) or a failed fit
// falls back to straight-line sampling between the path's endpoints; Smooth
// never fails once given a non-empty path.
func (s *Smoother) Smooth(path []geom.Point, outputCount int) []geom.Point {
	if len(path) == 0 {
		return nil
	}
	if outputCount < 2 {
		outputCount = 2
	}

	clean := dedupePoints(path)
	if len(clean) < 2 {
		// All drawn points coincide.
		return geom.LinePoints(path[0], path[len(path)-1], outputCount)
	}
	if len(clean) == 2 {
		return geom.LinePoints(clean[0], clean[1], outputCount)
	}

	t := geom.ChordParameters(clean)

	var out []geom.Point
	var ok bool
	if s.Strength == 0 {
		out, ok = interpolateExact(clean, t, outputCount)
	} else {
		degree := s.Degree
		if degree > len(clean)-1 {
			degree = len(clean) - 1
		}
		out, ok = fitSmoothingSpline(clean, t, degree, s.Strength, outputCount)
	}
	if !ok {
		monitoring.Logf("planner: spline fit failed for %d points, using linear fallback", len(clean))
		return geom.LinePoints(clean[0], clean[len(clean)-1], outputCount)
	}

	// The fit may drift at the boundary; the dense curve must land exactly
	// on the normalized path's endpoints.
	out[0] = clean[0]
	out[len(out)-1] = clean[len(clean)-1]
	return out
}

// dedupePoints drops consecutive points closer than dedupeEpsilon on both axes.
func dedupePoints(path []geom.Point) []geom.Point {
	if len(path) == 0 {
		return nil
	}
	clean := make([]geom.Point, 0, len(path))
	clean = append(clean, path[0])
	for _, p := range path[1:] {
		last := clean[len(clean)-1]
		if abs(p.X-last.X) > dedupeEpsilon || abs(p.Y-last.Y) > dedupeEpsilon {
			clean = append(clean, p)
		}
	}
	return clean
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// interpolateExact runs a natural cubic spline through every cleaned point
// and samples it at outputCount evenly spaced parameters. Used when the
// smoothing strength is zero: the curve must honour every drawn point,
// jitter included.
func interpolateExact(clean []geom.Point, t []float64, outputCount int) ([]geom.Point, bool) {
	xs := make([]float64, len(clean))
	ys := make([]float64, len(clean))
	for i, p := range clean {
		xs[i] = p.X
		ys[i] = p.Y
	}

	var cx, cy interp.NaturalCubic
	if err := cx.Fit(t, xs); err != nil {
		return nil, false
	}
	if err := cy.Fit(t, ys); err != nil {
		return nil, false
	}

	out := make([]geom.Point, outputCount)
	for i := range out {
		u := float64(i) / float64(outputCount-1)
		out[i] = geom.Point{X: cx.Predict(u), Y: cy.Predict(u)}
	}
	return out, true
}

// fitSmoothingSpline fits a least-squares B-spline of the given degree,
// growing the interior knot count until the sum of squared residuals drops
// to strength or the basis is as large as the point set (at which point the
// fit is effectively interpolating and is accepted as-is).
func fitSmoothingSpline(clean []geom.Point, t []float64, degree int, strength float64, outputCount int) ([]geom.Point, bool) {
	n := len(clean)
	rhs := mat.NewDense(n, 2, nil)
	for i, p := range clean {
		rhs.Set(i, 0, p.X)
		rhs.Set(i, 1, p.Y)
	}

	maxBases := n
	interior := 0
	for {
		bases := degree + 1 + interior
		if bases > maxBases {
			bases = maxBases
		}
		knots := clampedUniformKnots(bases, degree)

		design := mat.NewDense(n, bases, nil)
		for i, u := range t {
			span := findSpan(bases, degree, u, knots)
			row := basisFunctions(span, u, degree, knots)
			for j, v := range row {
				design.Set(i, span-degree+j, v)
			}
		}

		var coef mat.Dense
		if err := coef.Solve(design, rhs); err != nil {
			return nil, false
		}

		var fitted mat.Dense
		fitted.Mul(design, &coef)
		residual := 0.0
		for i := 0; i < n; i++ {
			dx := fitted.At(i, 0) - rhs.At(i, 0)
			dy := fitted.At(i, 1) - rhs.At(i, 1)
			residual += dx*dx + dy*dy
		}

		if residual <= strength || bases >= maxBases {
			return sampleBSpline(&coef, bases, degree, knots, outputCount), true
		}
		if interior == 0 {
			interior = 1
		} else {
			interior *= 2
		}
	}
}

// sampleBSpline evaluates the fitted spline at outputCount evenly spaced
// parameters in [0, 1].
func sampleBSpline(coef *mat.Dense, bases, degree int, knots []float64, outputCount int) []geom.Point {
	out := make([]geom.Point, outputCount)
	for i := range out {
		u := float64(i) / float64(outputCount-1)
		span := findSpan(bases, degree, u, knots)
		row := basisFunctions(span, u, degree, knots)
		var x, y float64
		for j, v := range row {
			x += v * coef.At(span-degree+j, 0)
			y += v * coef.At(span-degree+j, 1)
		}
		out[i] = geom.Point{X: x, Y: y}
	}
	return out
}

// clampedUniformKnots builds the clamped knot vector for bases basis
// functions of the given degree: degree+1 zeros, evenly spaced interior
// knots, degree+1 ones.
func clampedUniformKnots(bases, degree int) []float64 {
	knots := make([]float64, bases+degree+1)
	interior := bases - degree - 1
	for i := 0; i <= degree; i++ {
		knots[i] = 0
		knots[len(knots)-1-i] = 1
	}
	for j := 1; j <= interior; j++ {
		knots[degree+j] = float64(j) / float64(interior+1)
	}
	return knots
}

// findSpan locates the knot span containing u (NURBS book algorithm A2.1).
func findSpan(bases, degree int, u float64, knots []float64) int {
	if u >= knots[bases] {
		return bases - 1
	}
	if u <= knots[degree] {
		return degree
	}
	lo, hi := degree, bases
	mid := (lo + hi) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFunctions computes the degree+1 non-zero B-spline basis values at u
// for the given span (NURBS book algorithm A2.2).
func basisFunctions(span int, u float64, degree int, knots []float64) []float64 {
	vals := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	vals[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			denom := right[r+1] + left[j-r]
			temp := 0.0
			if denom != 0 {
				temp = vals[r] / denom
			}
			vals[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		vals[j] = saved
	}
	return vals
}
