package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmptyTuningConfigDefaults(t *testing.T) {
	cfg := EmptyTuningConfig()

	// Unset fields resolve to the built-in defaults.
	if cfg.GetTolerancePixels() != 30.0 {
		t.Errorf("GetTolerancePixels() = %f, want 30.0", cfg.GetTolerancePixels())
	}
	if cfg.GetMinPathLength() != 50.0 {
		t.Errorf("GetMinPathLength() = %f, want 50.0", cfg.GetMinPathLength())
	}
	if cfg.GetSmoothingStrength() != 200.0 {
		t.Errorf("GetSmoothingStrength() = %f, want 200.0", cfg.GetSmoothingStrength())
	}
	if cfg.GetSplineDegree() != 3 {
		t.Errorf("GetSplineDegree() = %d, want 3", cfg.GetSplineDegree())
	}
	if cfg.GetDenseSampleCount() != 500 {
		t.Errorf("GetDenseSampleCount() = %d, want 500", cfg.GetDenseSampleCount())
	}
	if cfg.GetMinWaypointSpacing() != 100.0 {
		t.Errorf("GetMinWaypointSpacing() = %f, want 100.0", cfg.GetMinWaypointSpacing())
	}
	if cfg.GetOutputWaypointCount() != 20 {
		t.Errorf("GetOutputWaypointCount() = %d, want 20", cfg.GetOutputWaypointCount())
	}
	if cfg.GetSurfaceWidth() != 800 || cfg.GetSurfaceHeight() != 800 {
		t.Errorf("surface = %fx%f, want 800x800", cfg.GetSurfaceWidth(), cfg.GetSurfaceHeight())
	}
	if cfg.GetArenaWidthMM() != 2000 || cfg.GetArenaHeightMM() != 2000 {
		t.Errorf("arena = %fx%f, want 2000x2000", cfg.GetArenaWidthMM(), cfg.GetArenaHeightMM())
	}
}

func TestLoadTuningConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tuning.json")

	// Partial config: unset fields keep defaults.
	testJSON := `{
  "tolerance_pixels": 45,
  "smoothing_strength": 350,
  "output_waypoint_count": 30,
  "arena_width_mm": 3000
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadTuningConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TolerancePixels == nil || *cfg.TolerancePixels != 45 {
		t.Errorf("Expected TolerancePixels 45, got %v", cfg.TolerancePixels)
	}
	if cfg.GetSmoothingStrength() != 350 {
		t.Errorf("GetSmoothingStrength() = %f, want 350", cfg.GetSmoothingStrength())
	}
	if cfg.GetOutputWaypointCount() != 30 {
		t.Errorf("GetOutputWaypointCount() = %d, want 30", cfg.GetOutputWaypointCount())
	}
	if cfg.GetArenaWidthMM() != 3000 {
		t.Errorf("GetArenaWidthMM() = %f, want 3000", cfg.GetArenaWidthMM())
	}
	// Untouched field falls back.
	if cfg.MinPathLength != nil {
		t.Errorf("Expected MinPathLength unset, got %v", *cfg.MinPathLength)
	}
	if cfg.GetMinPathLength() != 50.0 {
		t.Errorf("GetMinPathLength() = %f, want default 50.0", cfg.GetMinPathLength())
	}
}

func TestLoadTuningConfigRejectsNonJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tuning.yaml")
	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := LoadTuningConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for non-.json extension, got nil")
	}
	if !strings.Contains(err.Error(), ".json extension") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadTuningConfigMissingFile(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestLoadTuningConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"negative tolerance", `{"tolerance_pixels": -1}`},
		{"zero spacing", `{"min_waypoint_spacing": 0}`},
		{"degree zero", `{"spline_degree": 0}`},
		{"single waypoint", `{"output_waypoint_count": 1}`},
		{"negative arena", `{"arena_height_mm": -500}`},
		{"malformed", `{"tolerance_pixels": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "bad.json")
			if err := os.WriteFile(configPath, []byte(tt.json), 0644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}
			if _, err := LoadTuningConfig(configPath); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestPlannerConfig(t *testing.T) {
	tolerance := 25.0
	count := 15
	cfg := EmptyTuningConfig()
	cfg.TolerancePixels = &tolerance
	cfg.OutputWaypointCount = &count

	pc := cfg.PlannerConfig()
	if pc.TolerancePixels != 25.0 {
		t.Errorf("TolerancePixels = %f, want 25.0", pc.TolerancePixels)
	}
	if pc.OutputWaypointCount != 15 {
		t.Errorf("OutputWaypointCount = %d, want 15", pc.OutputWaypointCount)
	}
	if pc.DenseSampleCount != 500 {
		t.Errorf("DenseSampleCount = %d, want default 500", pc.DenseSampleCount)
	}
	if err := pc.Validate(); err != nil {
		t.Errorf("Resolved config should validate: %v", err)
	}
}
