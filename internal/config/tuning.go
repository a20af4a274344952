// Package config loads planner tuning parameters from JSON files. Fields
// omitted from a file keep their defaults, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/pathplan/internal/planner"
)

// TuningConfig is the on-disk tuning schema. Every field is optional; the
// Get* accessors supply defaults for anything the file omits.
type TuningConfig struct {
	// Validation params
	TolerancePixels *float64 `json:"tolerance_pixels,omitempty"`
	MinPathLength   *float64 `json:"min_path_length,omitempty"`

	// Smoothing params
	SmoothingStrength *float64 `json:"smoothing_strength,omitempty"`
	SplineDegree      *int     `json:"spline_degree,omitempty"`
	DenseSampleCount  *int     `json:"dense_sample_count,omitempty"`

	// Waypoint selection params
	MinWaypointSpacing  *float64 `json:"min_waypoint_spacing,omitempty"`
	OutputWaypointCount *int     `json:"output_waypoint_count,omitempty"`

	// Unit mapping params
	SurfaceWidth  *float64 `json:"surface_width,omitempty"`
	SurfaceHeight *float64 `json:"surface_height,omitempty"`
	ArenaWidthMM  *float64 `json:"arena_width_mm,omitempty"`
	ArenaHeightMM *float64 `json:"arena_height_mm,omitempty"`
}

// EmptyTuningConfig returns a TuningConfig with all fields unset.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The path must have
// a .json extension and the file must be under 1MB.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that any set field carries a usable value.
func (c *TuningConfig) Validate() error {
	if c.TolerancePixels != nil && *c.TolerancePixels < 0 {
		return fmt.Errorf("tolerance_pixels must be non-negative, got %f", *c.TolerancePixels)
	}
	if c.MinPathLength != nil && *c.MinPathLength < 0 {
		return fmt.Errorf("min_path_length must be non-negative, got %f", *c.MinPathLength)
	}
	if c.SmoothingStrength != nil && *c.SmoothingStrength < 0 {
		return fmt.Errorf("smoothing_strength must be non-negative, got %f", *c.SmoothingStrength)
	}
	if c.SplineDegree != nil && *c.SplineDegree < 1 {
		return fmt.Errorf("spline_degree must be at least 1, got %d", *c.SplineDegree)
	}
	if c.DenseSampleCount != nil && *c.DenseSampleCount < 2 {
		return fmt.Errorf("dense_sample_count must be at least 2, got %d", *c.DenseSampleCount)
	}
	if c.MinWaypointSpacing != nil && *c.MinWaypointSpacing <= 0 {
		return fmt.Errorf("min_waypoint_spacing must be positive, got %f", *c.MinWaypointSpacing)
	}
	if c.OutputWaypointCount != nil && *c.OutputWaypointCount < 2 {
		return fmt.Errorf("output_waypoint_count must be at least 2, got %d", *c.OutputWaypointCount)
	}
	if c.SurfaceWidth != nil && *c.SurfaceWidth <= 0 {
		return fmt.Errorf("surface_width must be positive, got %f", *c.SurfaceWidth)
	}
	if c.SurfaceHeight != nil && *c.SurfaceHeight <= 0 {
		return fmt.Errorf("surface_height must be positive, got %f", *c.SurfaceHeight)
	}
	if c.ArenaWidthMM != nil && *c.ArenaWidthMM <= 0 {
		return fmt.Errorf("arena_width_mm must be positive, got %f", *c.ArenaWidthMM)
	}
	if c.ArenaHeightMM != nil && *c.ArenaHeightMM <= 0 {
		return fmt.Errorf("arena_height_mm must be positive, got %f", *c.ArenaHeightMM)
	}
	return nil
}

// GetTolerancePixels returns the tolerance_pixels value or the default.
func (c *TuningConfig) GetTolerancePixels() float64 {
	if c.TolerancePixels == nil {
		return 30.0
	}
	return *c.TolerancePixels
}

// GetMinPathLength returns the min_path_length value or the default.
func (c *TuningConfig) GetMinPathLength() float64 {
	if c.MinPathLength == nil {
		return 50.0
	}
	return *c.MinPathLength
}

// GetSmoothingStrength returns the smoothing_strength value or the default.
func (c *TuningConfig) GetSmoothingStrength() float64 {
	if c.SmoothingStrength == nil {
		return 200.0
	}
	return *c.SmoothingStrength
}

// GetSplineDegree returns the spline_degree value or the default.
func (c *TuningConfig) GetSplineDegree() int {
	if c.SplineDegree == nil {
		return 3
	}
	return *c.SplineDegree
}

// GetDenseSampleCount returns the dense_sample_count value or the default.
func (c *TuningConfig) GetDenseSampleCount() int {
	if c.DenseSampleCount == nil {
		return 500
	}
	return *c.DenseSampleCount
}

// GetMinWaypointSpacing returns the min_waypoint_spacing value or the default.
func (c *TuningConfig) GetMinWaypointSpacing() float64 {
	if c.MinWaypointSpacing == nil {
		return 100.0
	}
	return *c.MinWaypointSpacing
}

// GetOutputWaypointCount returns the output_waypoint_count value or the default.
func (c *TuningConfig) GetOutputWaypointCount() int {
	if c.OutputWaypointCount == nil {
		return 20
	}
	return *c.OutputWaypointCount
}

// GetSurfaceWidth returns the surface_width value or the default.
func (c *TuningConfig) GetSurfaceWidth() float64 {
	if c.SurfaceWidth == nil {
		return 800
	}
	return *c.SurfaceWidth
}

// GetSurfaceHeight returns the surface_height value or the default.
func (c *TuningConfig) GetSurfaceHeight() float64 {
	if c.SurfaceHeight == nil {
		return 800
	}
	return *c.SurfaceHeight
}

// GetArenaWidthMM returns the arena_width_mm value or the default.
func (c *TuningConfig) GetArenaWidthMM() float64 {
	if c.ArenaWidthMM == nil {
		return 2000
	}
	return *c.ArenaWidthMM
}

// GetArenaHeightMM returns the arena_height_mm value or the default.
func (c *TuningConfig) GetArenaHeightMM() float64 {
	if c.ArenaHeightMM == nil {
		return 2000
	}
	return *c.ArenaHeightMM
}

// PlannerConfig resolves the tuning file into the immutable configuration
// value the pipeline consumes.
func (c *TuningConfig) PlannerConfig() planner.Config {
	return planner.Config{
		TolerancePixels:     c.GetTolerancePixels(),
		MinPathLength:       c.GetMinPathLength(),
		SmoothingStrength:   c.GetSmoothingStrength(),
		SplineDegree:        c.GetSplineDegree(),
		DenseSampleCount:    c.GetDenseSampleCount(),
		MinWaypointSpacing:  c.GetMinWaypointSpacing(),
		OutputWaypointCount: c.GetOutputWaypointCount(),
		SurfaceWidth:        c.GetSurfaceWidth(),
		SurfaceHeight:       c.GetSurfaceHeight(),
		ArenaWidth:          c.GetArenaWidthMM(),
		ArenaHeight:         c.GetArenaHeightMM(),
	}
}
