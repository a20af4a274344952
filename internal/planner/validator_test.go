package planner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/pathplan/internal/geom"
)

var testEndpoints = Endpoints{
	Owner: "Red Robot",
	Start: geom.Point{X: 100, Y: 100},
	End:   geom.Point{X: 700, Y: 700},
}

func TestValidate(t *testing.T) {
	v := NewValidator(30, 50)

	tests := []struct {
		name         string
		path         []geom.Point
		wantAccepted bool
		wantReversed bool
		wantReason   string // substring
	}{
		{
			name:         "valid forward path",
			path:         []geom.Point{{X: 100, Y: 100}, {X: 200, Y: 200}, {X: 400, Y: 400}, {X: 600, Y: 600}, {X: 700, Y: 700}},
			wantAccepted: true,
		},
		{
			name:         "valid within tolerance",
			path:         []geom.Point{{X: 115, Y: 110}, {X: 400, Y: 400}, {X: 690, Y: 710}},
			wantAccepted: true,
		},
		{
			name:         "valid reversed path",
			path:         []geom.Point{{X: 700, Y: 700}, {X: 400, Y: 400}, {X: 100, Y: 100}},
			wantAccepted: true,
			wantReversed: true,
		},
		{
			name:       "wrong start",
			path:       []geom.Point{{X: 200, Y: 150}, {X: 400, Y: 400}, {X: 700, Y: 700}},
			wantReason: "must connect",
		},
		{
			name:       "wrong end",
			path:       []geom.Point{{X: 100, Y: 100}, {X: 400, Y: 400}, {X: 650, Y: 650}},
			wantReason: "must connect",
		},
		{
			name:       "both ends at start",
			path:       []geom.Point{{X: 100, Y: 100}, {X: 400, Y: 400}, {X: 105, Y: 105}},
			wantReason: "must connect",
		},
		{
			name:       "empty path",
			path:       nil,
			wantReason: "no path drawn",
		},
		{
			name:       "single point",
			path:       []geom.Point{{X: 100, Y: 100}},
			wantReason: "no path drawn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.Validate(tt.path, testEndpoints)
			if result.Accepted != tt.wantAccepted {
				t.Errorf("Accepted = %v, want %v (reason: %s)", result.Accepted, tt.wantAccepted, result.Reason)
			}
			if result.OrientationReversed != tt.wantReversed {
				t.Errorf("OrientationReversed = %v, want %v", result.OrientationReversed, tt.wantReversed)
			}
			if tt.wantReason != "" && !strings.Contains(result.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateMinLength(t *testing.T) {
	// Targets close together so a short hop between them is geometrically
	// valid but under the length floor.
	ep := Endpoints{Owner: "Red Robot", Start: geom.Point{X: 100, Y: 100}, End: geom.Point{X: 120, Y: 100}}
	v := NewValidator(30, 50)

	result := v.Validate([]geom.Point{{X: 100, Y: 100}, {X: 120, Y: 100}}, ep)
	if result.Accepted {
		t.Fatalf("expected rejection for 20px path with 50px floor")
	}
	if !strings.Contains(result.Reason, "too short") {
		t.Errorf("Reason = %q, want substring %q", result.Reason, "too short")
	}

	// A zero floor admits the same path.
	v = NewValidator(30, 0)
	if result := v.Validate([]geom.Point{{X: 100, Y: 100}, {X: 120, Y: 100}}, ep); !result.Accepted {
		t.Errorf("expected acceptance with zero floor, got %q", result.Reason)
	}
}

func TestValidateRepeatedSinglePoint(t *testing.T) {
	// Degenerate drawing: the pointer never moved. Accepted only when the
	// length floor is zero and the point sits on both targets.
	p := geom.Point{X: 300, Y: 300}
	ep := Endpoints{Owner: "Red Robot", Start: p, End: p}
	path := []geom.Point{p, p, p, p}

	if result := NewValidator(30, 0).Validate(path, ep); !result.Accepted {
		t.Errorf("expected acceptance with zero floor, got %q", result.Reason)
	}
	if result := NewValidator(30, 50).Validate(path, ep); result.Accepted {
		t.Error("expected rejection with 50px floor")
	}
}

func TestNormalize(t *testing.T) {
	v := NewValidator(30, 50)
	forward := []geom.Point{{X: 100, Y: 100}, {X: 300, Y: 280}, {X: 500, Y: 520}, {X: 700, Y: 700}}

	t.Run("forward path unchanged", func(t *testing.T) {
		got := v.Normalize(forward, testEndpoints)
		if diff := cmp.Diff(forward, got); diff != "" {
			t.Errorf("forward path changed (-want +got):\n%s", diff)
		}
	})

	t.Run("backwards path reversed", func(t *testing.T) {
		backwards := geom.Reversed(forward)
		got := v.Normalize(backwards, testEndpoints)
		if diff := cmp.Diff(forward, got); diff != "" {
			t.Errorf("reversed path not normalized (-want +got):\n%s", diff)
		}
		// Input untouched.
		if backwards[0] != (geom.Point{X: 700, Y: 700}) {
			t.Errorf("Normalize mutated its input: %v", backwards[0])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := v.Normalize(geom.Reversed(forward), testEndpoints)
		twice := v.Normalize(once, testEndpoints)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Normalize not idempotent (-once +twice):\n%s", diff)
		}
	})
}
