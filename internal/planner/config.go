package planner

import "fmt"

// Config holds the tuning parameters for one planning pipeline. It is an
// immutable value: build it once at startup (or per test) and pass it to New.
// Nothing in the pipeline mutates it afterwards, so a single Config can back
// any number of concurrent Plan calls.
type Config struct {
	// TolerancePixels is the endpoint-match radius: how far (surface pixels)
	// a drawn path's ends may sit from the robot's target start/end positions.
	TolerancePixels float64

	// MinPathLength is the rejection floor for total drawn length (surface pixels).
	MinPathLength float64

	// SmoothingStrength is the allowed sum of squared deviation between the
	// fitted curve and the drawn points. Zero forces exact interpolation
	// (keeps all pointer jitter); larger values trade point fidelity for a
	// smoother macroscopic shape.
	SmoothingStrength float64

	// SplineDegree is the smoothing spline degree, reduced automatically when
	// the drawn path has too few distinct points.
	SplineDegree int

	// DenseSampleCount is the fixed length of the resampled dense curve.
	DenseSampleCount int

	// MinWaypointSpacing is the base arc-length gap (surface units) between
	// selected waypoints; the curvature tiers scale it up or down. The unit
	// mapping is applied after selection, so the physical gap is this value
	// times the arena/surface scale.
	MinWaypointSpacing float64

	// OutputWaypointCount is the exact number of waypoints every accepted
	// plan produces, padding with the end position when fewer are selected.
	OutputWaypointCount int

	// Surface and arena dimensions drive the per-axis linear unit mapping.
	SurfaceWidth  float64 // pixels
	SurfaceHeight float64 // pixels
	ArenaWidth    float64 // millimetres
	ArenaHeight   float64 // millimetres
}

// DefaultConfig returns the tuning used on the 800x800 px drawing surface
// mapped onto a 2x2 m arena.
func DefaultConfig() Config {
	return Config{
		TolerancePixels:     30.0,
		MinPathLength:       50.0,
		SmoothingStrength:   200.0,
		SplineDegree:        3,
		DenseSampleCount:    500,
		MinWaypointSpacing:  100.0,
		OutputWaypointCount: 20,
		SurfaceWidth:        800,
		SurfaceHeight:       800,
		ArenaWidth:          2000,
		ArenaHeight:         2000,
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c Config) Validate() error {
	if c.TolerancePixels < 0 {
		return fmt.Errorf("tolerance_pixels must be non-negative, got %f", c.TolerancePixels)
	}
	if c.MinPathLength < 0 {
		return fmt.Errorf("min_path_length must be non-negative, got %f", c.MinPathLength)
	}
	if c.SmoothingStrength < 0 {
		return fmt.Errorf("smoothing_strength must be non-negative, got %f", c.SmoothingStrength)
	}
	if c.SplineDegree < 1 {
		return fmt.Errorf("spline_degree must be at least 1, got %d", c.SplineDegree)
	}
	if c.DenseSampleCount < 2 {
		return fmt.Errorf("dense_sample_count must be at least 2, got %d", c.DenseSampleCount)
	}
	if c.MinWaypointSpacing <= 0 {
		return fmt.Errorf("min_waypoint_spacing must be positive, got %f", c.MinWaypointSpacing)
	}
	if c.OutputWaypointCount < 2 {
		return fmt.Errorf("output_waypoint_count must be at least 2, got %d", c.OutputWaypointCount)
	}
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return fmt.Errorf("surface dimensions must be positive, got %fx%f", c.SurfaceWidth, c.SurfaceHeight)
	}
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %fx%f", c.ArenaWidth, c.ArenaHeight)
	}
	return nil
}
