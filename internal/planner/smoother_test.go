package planner

import (
	"math"
	"testing"

	"github.com/banshee-data/pathplan/internal/geom"
)

func TestSmoothOutputCountAndEndpoints(t *testing.T) {
	s := NewSmoother(200, 3)
	path := []geom.Point{
		{X: 100, Y: 100}, {X: 120, Y: 105}, {X: 150, Y: 110}, {X: 200, Y: 120}, {X: 300, Y: 140},
		{X: 400, Y: 160}, {X: 420, Y: 170}, {X: 440, Y: 190}, {X: 450, Y: 220}, {X: 455, Y: 260},
		{X: 460, Y: 300}, {X: 462, Y: 350}, {X: 463, Y: 400},
	}

	for _, count := range []int{10, 100, 500} {
		dense := s.Smooth(path, count)
		if len(dense) != count {
			t.Fatalf("Smooth produced %d points, want %d", len(dense), count)
		}
		if dense[0] != path[0] {
			t.Errorf("first point %v, want %v", dense[0], path[0])
		}
		if dense[len(dense)-1] != path[len(path)-1] {
			t.Errorf("last point %v, want %v", dense[len(dense)-1], path[len(path)-1])
		}
	}
}

func TestSmoothTwoPointsIsStraightLine(t *testing.T) {
	s := NewSmoother(200, 3)
	dense := s.Smooth([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, 50)

	if len(dense) != 50 {
		t.Fatalf("expected 50 points, got %d", len(dense))
	}
	for i, p := range dense {
		if math.Abs(p.X-p.Y) > 1e-9 {
			t.Errorf("dense[%d] = %v, want on the diagonal", i, p)
		}
	}
}

func TestSmoothExactInterpolationHonoursInput(t *testing.T) {
	// Zero strength must keep the curve on the drawn points, jitter and all.
	s := NewSmoother(0, 3)
	path := []geom.Point{
		{X: 0, Y: 0}, {X: 50, Y: 30}, {X: 100, Y: 10}, {X: 150, Y: 45}, {X: 200, Y: 20}, {X: 250, Y: 60}, {X: 300, Y: 0},
	}
	dense := s.Smooth(path, 500)

	for _, p := range path {
		best := math.Inf(1)
		for _, d := range dense {
			if dist := geom.Dist(p, d); dist < best {
				best = dist
			}
		}
		if best > 2.0 {
			t.Errorf("drawn point %v sits %.2fpx from the interpolated curve", p, best)
		}
	}
}

func TestSmoothFiltersJitter(t *testing.T) {
	// A straight line plus sinusoidal pointer jitter. Smoothing must yield a
	// curve shorter than the jittery drawing (jitter adds length) and close
	// to the underlying straight line.
	raw := make([]geom.Point, 0, 51)
	for i := 0; i <= 50; i++ {
		tt := float64(i) / 50
		raw = append(raw, geom.Point{X: 100 + 600*tt, Y: 100 + 600*tt + 15*math.Sin(float64(i)*0.5)})
	}

	dense := NewSmoother(200, 3).Smooth(raw, 500)

	rawLen := geom.PathLength(raw)
	denseLen := geom.PathLength(dense)
	if denseLen >= rawLen {
		t.Errorf("smoothed length %.1f not below raw length %.1f", denseLen, rawLen)
	}

	// The ideal line runs (100,100)..(700,700); the fitted curve must not
	// deviate from it beyond the jitter amplitude (plus a little spline
	// overshoot headroom).
	for i, p := range dense {
		dev := math.Abs(p.Y-p.X) / math.Sqrt2
		if dev > 20 {
			t.Fatalf("dense[%d] deviates %.1fpx from the ideal line", i, dev)
		}
	}
}

func TestSmoothDegenerateFallbacks(t *testing.T) {
	s := NewSmoother(200, 3)

	t.Run("all points coincident", func(t *testing.T) {
		p := geom.Point{X: 42, Y: 17}
		dense := s.Smooth([]geom.Point{p, p, p, p}, 100)
		if len(dense) != 100 {
			t.Fatalf("expected 100 points, got %d", len(dense))
		}
		for i, d := range dense {
			if d != p {
				t.Errorf("dense[%d] = %v, want %v", i, d, p)
			}
		}
	})

	t.Run("near-duplicates collapse to two points", func(t *testing.T) {
		dense := s.Smooth([]geom.Point{
			{X: 0, Y: 0}, {X: 0.05, Y: 0.02}, {X: 0.01, Y: 0.05}, {X: 100, Y: 0},
		}, 50)
		if len(dense) != 50 {
			t.Fatalf("expected 50 points, got %d", len(dense))
		}
		for i, d := range dense {
			if math.Abs(d.Y) > 1e-9 {
				t.Errorf("dense[%d] = %v, want on the x axis", i, d)
			}
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if dense := s.Smooth(nil, 100); dense != nil {
			t.Errorf("expected nil for empty path, got %d points", len(dense))
		}
	})

	t.Run("three points reduce the degree", func(t *testing.T) {
		dense := s.Smooth([]geom.Point{{X: 0, Y: 0}, {X: 50, Y: 80}, {X: 100, Y: 0}}, 200)
		if len(dense) != 200 {
			t.Fatalf("expected 200 points, got %d", len(dense))
		}
		if dense[0] != (geom.Point{X: 0, Y: 0}) || dense[199] != (geom.Point{X: 100, Y: 0}) {
			t.Errorf("endpoints %v..%v drifted", dense[0], dense[199])
		}
	})
}
