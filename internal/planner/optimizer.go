package planner

import (
	"github.com/google/uuid"

	"github.com/banshee-data/pathplan/internal/geom"
	"github.com/banshee-data/pathplan/internal/monitoring"
)

// PlanResult is the output of one pipeline invocation for one robot's drawn
// path. Every derived field is built fresh per call; results carry no state
// across invocations.
type PlanResult struct {
	// RunID identifies this planning invocation in logs and exports.
	RunID uuid.UUID

	// Owner is the robot the drawn path belongs to.
	Owner string

	// Validation reports whether the drawn path was usable. When it is not,
	// the remaining fields are empty.
	Validation ValidationResult

	// DenseCurve is the smoothed, densified path in surface units, kept for
	// rendering over the original drawing.
	DenseCurve []geom.Point

	// OrganicCount is how many waypoints the selector produced before
	// padding (after the even-subsample cap, when that applied).
	OrganicCount int

	// Waypoints is the final fixed-size sequence in arena millimetres. Its
	// first element is the mapped target start; its trailing run (the padded
	// duplicates plus the last organic point) is the mapped target end.
	// Trailing duplicates are intentional: downstream actuator control
	// expects a constant-cardinality command list.
	Waypoints []geom.Point
}

// Optimizer wires the pipeline stages together. It is stateless between
// Plan calls apart from its immutable configuration, so one Optimizer can
// serve any number of robots and goroutines.
type Optimizer struct {
	cfg       Config
	validator *Validator
	smoother  *Smoother
	selector  *Selector
	mapper    *Mapper
}

// New builds an optimizer from cfg. The caller should have validated cfg;
// New does not re-check it.
func New(cfg Config) *Optimizer {
	return &Optimizer{
		cfg:       cfg,
		validator: NewValidator(cfg.TolerancePixels, cfg.MinPathLength),
		smoother:  NewSmoother(cfg.SmoothingStrength, cfg.SplineDegree),
		selector:  NewSelector(cfg.MinWaypointSpacing),
		mapper:    NewMapper(cfg.SurfaceWidth, cfg.SurfaceHeight, cfg.ArenaWidth, cfg.ArenaHeight),
	}
}

// Config returns the optimizer's immutable configuration.
func (o *Optimizer) Config() Config { return o.cfg }

// Mapper returns the surface/arena unit mapper, for callers that need to
// render arena-space results back onto the drawing surface.
func (o *Optimizer) Mapper() *Mapper { return o.mapper }

// Validate checks raw against ep without running the rest of the pipeline,
// for immediate user feedback while drawing.
func (o *Optimizer) Validate(raw []geom.Point, ep Endpoints) ValidationResult {
	return o.validator.Validate(raw, ep)
}

// Plan runs the full pipeline on one drawn path: validate and orient,
// smooth and densify, estimate curvature, select waypoints adaptively, cap
// or pad to the configured count, convert to arena units and snap the
// endpoints onto the mapped targets. A rejected drawing returns a PlanResult
// whose Validation explains why; malformed geometry never causes an error
// beyond that.
func (o *Optimizer) Plan(raw []geom.Point, ep Endpoints) PlanResult {
	result := PlanResult{
		RunID: uuid.New(),
		Owner: ep.Owner,
	}

	result.Validation = o.validator.Validate(raw, ep)
	if !result.Validation.Accepted {
		return result
	}

	normalized := o.validator.Normalize(raw, ep)
	if result.Validation.OrientationReversed {
		monitoring.Logf("planner: %s path drawn backwards, auto-reversed (run %s)", ep.Owner, result.RunID)
	}

	dense := o.smoother.Smooth(normalized, o.cfg.DenseSampleCount)
	result.DenseCurve = dense

	curvature := geom.CurvatureProfile(dense)
	selected := o.selector.Select(dense, curvature)

	n := o.cfg.OutputWaypointCount
	if len(selected) > n {
		selected = subsampleEven(selected, n)
	}
	result.OrganicCount = len(selected)

	// Pad in surface units, then apply the unit mapping identically to every
	// waypoint, padding included.
	padded := make([]geom.Point, 0, n)
	padded = append(padded, selected...)
	for len(padded) < n {
		padded = append(padded, padded[len(padded)-1])
	}

	waypoints := o.mapper.PathToArena(padded)
	snapEndpoints(waypoints, o.mapper.ToArena(ep.Start), o.mapper.ToArena(ep.End))
	result.Waypoints = waypoints
	return result
}

// subsampleEven picks n evenly spaced points from pts, always keeping the
// first and last.
func subsampleEven(pts []geom.Point, n int) []geom.Point {
	if n >= len(pts) || n < 2 {
		return pts
	}
	out := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		idx := i * (len(pts) - 1) / (n - 1)
		out[i] = pts[idx]
	}
	out[n-1] = pts[len(pts)-1]
	return out
}

// snapEndpoints pins the first waypoint to the exact mapped start position
// and the whole trailing duplicate run (padding plus the final organic
// point) to the exact mapped end position. The drawn path only has to land
// within tolerance of the targets; the actuator must be commanded to the
// targets themselves.
func snapEndpoints(waypoints []geom.Point, start, end geom.Point) {
	if len(waypoints) == 0 {
		return
	}
	waypoints[0] = start
	if len(waypoints) == 1 {
		return
	}

	lastUnique := len(waypoints) - 1
	for i := len(waypoints) - 2; i >= 0; i-- {
		if waypoints[i] != waypoints[i+1] {
			lastUnique = i + 1
			break
		}
	}
	for i := lastUnique; i < len(waypoints); i++ {
		waypoints[i] = end
	}
}
