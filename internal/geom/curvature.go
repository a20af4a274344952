package geom

import "math"

// curvatureDenomEpsilon guards the κ denominator against zero-velocity
// samples (coincident neighbours in the dense curve).
const curvatureDenomEpsilon = 1e-12

// CurvatureProfile estimates the discrete curvature at every point of a
// densely sampled curve. Derivatives are taken with centered finite
// differences over the index parameterization, giving
//
//	κ = |x'·y'' − y'·x''| / (x'² + y'²)^(3/2)
//
// at each interior point. Points where the velocity denominator is
// numerically zero get κ = 0. The two boundary points, which lack two-sided
// derivatives, take the curvature of their nearest interior neighbour.
// The result always has the same length as curve and is non-negative.
func CurvatureProfile(curve []Point) []float64 {
	k := make([]float64, len(curve))
	if len(curve) < 3 {
		return k
	}

	for i := 1; i < len(curve)-1; i++ {
		dx := (curve[i+1].X - curve[i-1].X) / 2
		dy := (curve[i+1].Y - curve[i-1].Y) / 2
		ddx := curve[i+1].X - 2*curve[i].X + curve[i-1].X
		ddy := curve[i+1].Y - 2*curve[i].Y + curve[i-1].Y

		speedSq := dx*dx + dy*dy
		denom := math.Pow(speedSq, 1.5)
		if denom < curvatureDenomEpsilon {
			k[i] = 0
			continue
		}
		k[i] = math.Abs(dx*ddy-dy*ddx) / denom
	}

	k[0] = k[1]
	k[len(k)-1] = k[len(k)-2]
	return k
}
