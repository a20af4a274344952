package planner

import "github.com/banshee-data/pathplan/internal/geom"

// Mapper converts between drawing-surface pixels and arena millimetres with
// an independent per-axis linear scale. No rotation, skew or calibration is
// applied; the scale is fixed at construction and the mapper is stateless.
type Mapper struct {
	scaleX float64 // mm per pixel
	scaleY float64
}

// NewMapper builds a mapper for the given surface (pixels) and arena
// (millimetres) dimensions.
func NewMapper(surfaceWidth, surfaceHeight, arenaWidth, arenaHeight float64) *Mapper {
	return &Mapper{
		scaleX: arenaWidth / surfaceWidth,
		scaleY: arenaHeight / surfaceHeight,
	}
}

// ToArena converts a surface-space point to arena millimetres.
func (m *Mapper) ToArena(p geom.Point) geom.Point {
	return geom.Point{X: p.X * m.scaleX, Y: p.Y * m.scaleY}
}

// ToSurface converts an arena-space point back to surface pixels, used when
// rendering planned waypoints over the original drawing.
func (m *Mapper) ToSurface(p geom.Point) geom.Point {
	return geom.Point{X: p.X / m.scaleX, Y: p.Y / m.scaleY}
}

// PathToArena converts a whole path to arena millimetres.
func (m *Mapper) PathToArena(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = m.ToArena(p)
	}
	return out
}

// PathToSurface converts a whole path back to surface pixels.
func (m *Mapper) PathToSurface(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = m.ToSurface(p)
	}
	return out
}
